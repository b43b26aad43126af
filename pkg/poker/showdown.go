package poker

import (
	"fmt"

	"holdem-showdown/pkg/deck"
)

// Outcome is the result of a heads-up showdown
type Outcome int

// Constants for outcome
const (
	Tie Outcome = iota
	PlayerAWins
	PlayerBWins
)

// String returns the announcement for the outcome
func (o Outcome) String() string {
	switch o {
	case PlayerAWins:
		return "Player 1 wins!"
	case PlayerBWins:
		return "Player 2 wins!"
	case Tie:
		return "Tie!"
	default:
		panic(fmt.Sprintf("unknown outcome: %d", o))
	}
}

// MarshalText encodes the outcome as a, b, or tie
func (o Outcome) MarshalText() ([]byte, error) {
	switch o {
	case PlayerAWins:
		return []byte("a"), nil
	case PlayerBWins:
		return []byte("b"), nil
	case Tie:
		return []byte("tie"), nil
	default:
		return nil, fmt.Errorf("unknown outcome: %d", o)
	}
}

// UnmarshalText decodes a, b, or tie
func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "a":
		*o = PlayerAWins
	case "b":
		*o = PlayerBWins
	case "tie":
		*o = Tie
	default:
		return fmt.Errorf("unknown outcome: %q", text)
	}

	return nil
}

// Resolve determines the winner of a showdown
// The stronger category wins outright. When the categories are equally strong, the
// players' whole seven-card sets are compared with CompareCards.
func Resolve(a, b Category, cardsA, cardsB []deck.Card) (Outcome, error) {
	if a.Strength() < b.Strength() {
		return PlayerAWins, nil
	} else if a.Strength() > b.Strength() {
		return PlayerBWins, nil
	}

	return CompareCards(cardsA, cardsB)
}

// ResolveLabels is Resolve for category labels
// A label that does not name a category is weaker than every category.
func ResolveLabels(labelA, labelB string, cardsA, cardsB []deck.Card) (Outcome, error) {
	return Resolve(ParseCategory(labelA), ParseCategory(labelB), cardsA, cardsB)
}

// CompareCards breaks a tie between two seven-card sets
// Both sets are sorted by rank and compared from the highest card down; the first
// differing rank decides. Suits are never consulted. Shared community cards are
// included on both sides, and every card counts, not just the best five.
func CompareCards(cardsA, cardsB []deck.Card) (Outcome, error) {
	if len(cardsA) != ShowdownCards || len(cardsB) != ShowdownCards {
		return Tie, fmt.Errorf("%w: expected %d cards per player, got %d and %d", ErrWrongCardCount, ShowdownCards, len(cardsA), len(cardsB))
	}

	sortedA := deck.Hand(cardsA).SortedByRank()
	sortedB := deck.Hand(cardsB).SortedByRank()

	for i := ShowdownCards - 1; i >= 0; i-- {
		if sortedA[i].Rank > sortedB[i].Rank {
			return PlayerAWins, nil
		} else if sortedA[i].Rank < sortedB[i].Rank {
			return PlayerBWins, nil
		}
	}

	return Tie, nil
}
