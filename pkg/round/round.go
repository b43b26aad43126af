package round

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-showdown/internal/rng"
	"holdem-showdown/pkg/deck"
	"holdem-showdown/pkg/poker"
)

// ErrShortDeal is returned when the deck runs out before every card is dealt
var ErrShortDeal = errors.New("not enough cards to deal")

// Options configures how a round is played
type Options struct {
	// Audit compares each outcome against standard best-of-seven poker rules
	Audit bool
}

// Dealer plays heads-up rounds
// A Dealer is not safe for concurrent use
type Dealer struct {
	logger logrus.FieldLogger
	gen    rng.Generator
	opts   Options
}

// New returns a new Dealer
func New(logger logrus.FieldLogger, gen rng.Generator, opts Options) *Dealer {
	return &Dealer{
		logger: logger,
		gen:    gen,
		opts:   opts,
	}
}

// Play shuffles a fresh deck and plays a single round from it
func (d *Dealer) Play() (*Result, error) {
	return d.PlayDeck(deck.NewShuffled(d.gen))
}

// PlayDeck plays a single round from the top of an already-shuffled deck
// Each player gets a card in turn until both have two, then five community cards are dealt.
func (d *Dealer) PlayDeck(dk *deck.Deck) (*Result, error) {
	r := &Result{
		ID:       uuid.New(),
		DeckHash: dk.HashCode(),
		Seed:     dk.GetSeed(),
		HoleA:    make(deck.Hand, 0, poker.HoleCards),
		HoleB:    make(deck.Hand, 0, poker.HoleCards),
	}

	for i := 0; i < poker.HoleCards; i++ {
		for _, hole := range []*deck.Hand{&r.HoleA, &r.HoleB} {
			card, err := dk.Draw()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrShortDeal, err)
			}

			hole.AddCard(card)
		}
	}

	r.Community = dk.Deal(poker.CommunityCards)
	if len(r.Community) < poker.CommunityCards {
		return nil, fmt.Errorf("%w: wanted %d community cards, got %d", ErrShortDeal, poker.CommunityCards, len(r.Community))
	}

	r.CardsLeft = dk.CardsLeft()

	if err := d.showdown(r); err != nil {
		return nil, err
	}

	d.logger.WithFields(logrus.Fields{
		"round":     r.ID.String(),
		"outcome":   r.Outcome.String(),
		"categoryA": r.CategoryA.String(),
		"categoryB": r.CategoryB.String(),
	}).Debug("round complete")

	return r, nil
}

func (d *Dealer) showdown(r *Result) error {
	cardsA := r.CardsA()
	cardsB := r.CardsB()

	var err error
	if r.CategoryA, err = poker.Classify(cardsA); err != nil {
		return err
	}

	if r.CategoryB, err = poker.Classify(cardsB); err != nil {
		return err
	}

	if r.Outcome, err = poker.Resolve(r.CategoryA, r.CategoryB, cardsA, cardsB); err != nil {
		return err
	}

	if !d.opts.Audit {
		return nil
	}

	reference, err := poker.ReferenceResolve(r.HoleA, r.HoleB, r.Community)
	if err != nil {
		return err
	}

	r.Reference = &reference
	r.Divergent = reference != r.Outcome
	if r.Divergent {
		d.logger.WithFields(logrus.Fields{
			"round":     r.ID.String(),
			"outcome":   r.Outcome.String(),
			"reference": reference.String(),
			"cardsA":    cardsA.String(),
			"cardsB":    cardsB.String(),
		}).Debug("outcome differs from standard rules")
	}

	return nil
}
