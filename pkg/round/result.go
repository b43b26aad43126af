package round

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"holdem-showdown/pkg/deck"
	"holdem-showdown/pkg/poker"
)

// Result is the record of a single round
type Result struct {
	ID        uuid.UUID      `json:"id"`
	HoleA     deck.Hand      `json:"holeA"`
	HoleB     deck.Hand      `json:"holeB"`
	Community deck.Hand      `json:"community"`
	CategoryA poker.Category `json:"categoryA"`
	CategoryB poker.Category `json:"categoryB"`
	Outcome   poker.Outcome  `json:"outcome"`
	CardsLeft int            `json:"cardsLeft"`
	DeckHash  string         `json:"deckHash"`
	Seed      int64          `json:"seed,omitempty"`

	// only set when the dealer audits
	Reference *poker.Outcome `json:"reference,omitempty"`
	Divergent bool           `json:"divergent,omitempty"`
}

// CardsA returns player A's hole cards followed by the community cards
func (r *Result) CardsA() deck.Hand {
	return deck.Concat(r.HoleA, r.Community)
}

// CardsB returns player B's hole cards followed by the community cards
func (r *Result) CardsB() deck.Hand {
	return deck.Concat(r.HoleB, r.Community)
}

// Lines returns the human-readable summary of the round
func (r *Result) Lines() []string {
	return []string{
		fmt.Sprintf("Player 1 Hand: %s", displayHand(r.HoleA)),
		fmt.Sprintf("Player 2 Hand: %s", displayHand(r.HoleB)),
		fmt.Sprintf("Community Cards: %s", displayHand(r.Community)),
		fmt.Sprintf("Player 1 Best Hand: %s", r.CategoryA),
		fmt.Sprintf("Player 2 Best Hand: %s", r.CategoryB),
		r.Outcome.String(),
	}
}

func displayHand(h deck.Hand) string {
	cards := make([]string, len(h))
	for i, c := range h {
		cards[i] = c.String()
	}

	return "[" + strings.Join(cards, ", ") + "]"
}
