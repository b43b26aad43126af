package mux

import (
	"errors"
	"fmt"
	"net/http"

	"holdem-showdown/internal/rng"
	"holdem-showdown/pkg/deck"
	"holdem-showdown/pkg/poker"
	"holdem-showdown/pkg/round"
)

type roundSummary struct {
	PlayerA   int `json:"playerA"`
	PlayerB   int `json:"playerB"`
	Ties      int `json:"ties"`
	Divergent int `json:"divergent"`
}

type getRoundResponse struct {
	Rounds  []*round.Result `json:"rounds"`
	Summary roundSummary    `json:"summary"`
}

func (m *Mux) getRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seed, rows, err := parseRoundOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		var gen rng.Generator
		if seed > 0 {
			gen = rng.NewSeeded(seed)
		} else {
			gen = m.config.NewGenerator()
		}

		dealer := round.New(m.logger, gen, round.Options{Audit: m.config.Audit})

		resp := getRoundResponse{Rounds: make([]*round.Result, 0, rows)}
		for i := 0; i < rows; i++ {
			result, err := dealer.Play()
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			switch result.Outcome {
			case poker.PlayerAWins:
				resp.Summary.PlayerA++
			case poker.PlayerBWins:
				resp.Summary.PlayerB++
			default:
				resp.Summary.Ties++
			}

			if result.Divergent {
				resp.Summary.Divergent++
			}

			resp.Rounds = append(resp.Rounds, result)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type postClassifyPayload struct {
	Hole      string `json:"hole" validate:"required"`
	Community string `json:"community" validate:"required"`
}

type postClassifyResponse struct {
	Category    poker.Category `json:"category"`
	Strength    int            `json:"strength"`
	Cards       deck.Hand      `json:"cards"`
	Description string         `json:"description"`
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postClassifyPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		hands, err := parseHands(payload.Hole, payload.Community)
		if err != nil {
			writeJSONError(w, statusFor(err), err)
			return
		}

		h, err := poker.NewHandAnalyzer(hands[0], hands[1])
		if err != nil {
			writeJSONError(w, statusFor(err), err)
			return
		}

		desc, err := poker.Describe(deck.Concat(hands[0], hands[1]))
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, postClassifyResponse{
			Category:    h.GetCategory(),
			Strength:    h.GetCategory().Strength(),
			Cards:       h.Cards(),
			Description: desc,
		})
	}
}

type postShowdownPayload struct {
	HoleA     string `json:"holeA" validate:"required"`
	HoleB     string `json:"holeB" validate:"required"`
	Community string `json:"community" validate:"required"`
}

type postShowdownResponse struct {
	CategoryA poker.Category `json:"categoryA"`
	CategoryB poker.Category `json:"categoryB"`
	Outcome   poker.Outcome  `json:"outcome"`
	Message   string         `json:"message"`
	Reference poker.Outcome  `json:"reference"`
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postShowdownPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		hands, err := parseHands(payload.HoleA, payload.HoleB, payload.Community)
		if err != nil {
			writeJSONError(w, statusFor(err), err)
			return
		}

		holeA, holeB, community := hands[0], hands[1], hands[2]
		cardsA := deck.Concat(holeA, community)
		cardsB := deck.Concat(holeB, community)

		var resp postShowdownResponse
		if resp.CategoryA, err = poker.Classify(cardsA); err != nil {
			writeJSONError(w, statusFor(err), err)
			return
		}

		if resp.CategoryB, err = poker.Classify(cardsB); err != nil {
			writeJSONError(w, statusFor(err), err)
			return
		}

		if resp.Outcome, err = poker.Resolve(resp.CategoryA, resp.CategoryB, cardsA, cardsB); err != nil {
			writeJSONError(w, statusFor(err), err)
			return
		}

		if resp.Reference, err = poker.ReferenceResolve(holeA, holeB, community); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		resp.Message = resp.Outcome.String()
		writeJSON(w, http.StatusOK, resp)
	}
}

var errDuplicateCard = errors.New("duplicate card")

// parseHands parses each comma-separated list of cards and rejects any card dealt twice
func parseHands(lists ...string) ([]deck.Hand, error) {
	hands := make([]deck.Hand, len(lists))
	for i, list := range lists {
		h, err := deck.ParseCards(list)
		if err != nil {
			return nil, err
		}

		hands[i] = h
	}

	if card, ok := deck.Duplicate(hands...); ok {
		return nil, fmt.Errorf("%w: %s", errDuplicateCard, deck.CardToString(card))
	}

	return hands, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, deck.ErrInvalidCard),
		errors.Is(err, poker.ErrWrongCardCount),
		errors.Is(err, errDuplicateCard):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
