package poker

import (
	"fmt"

	ref "github.com/paulhankin/poker"
	"holdem-showdown/pkg/deck"
)

// toReference converts a card to the reference evaluator's representation,
// which numbers ranks 1-13 with the ace as 1
func toReference(c deck.Card) (ref.Card, error) {
	var card ref.Card
	if err := c.Validate(); err != nil {
		return card, err
	}

	rank := int(c.Rank)
	if c.Rank == deck.Ace {
		rank = 1
	}

	card, err := ref.MakeCard(ref.Suit(c.Suit.Index()), ref.Rank(rank))
	if err != nil {
		return card, fmt.Errorf("could not convert %s: %w", c, err)
	}

	return card, nil
}

func toReference7(cards []deck.Card) ([7]ref.Card, error) {
	var out [7]ref.Card
	if len(cards) != ShowdownCards {
		return out, fmt.Errorf("%w: expected %d cards, got %d", ErrWrongCardCount, ShowdownCards, len(cards))
	}

	for i, c := range cards {
		rc, err := toReference(c)
		if err != nil {
			return out, err
		}

		out[i] = rc
	}

	return out, nil
}

// ReferenceResolve settles a showdown by standard poker rules: each player's best
// five of seven, aces playing high or low. It exists to audit Resolve, which
// deliberately compares whole seven-card sets instead.
func ReferenceResolve(holeA, holeB, community []deck.Card) (Outcome, error) {
	a, err := toReference7(deck.Concat(holeA, community))
	if err != nil {
		return Tie, err
	}

	b, err := toReference7(deck.Concat(holeB, community))
	if err != nil {
		return Tie, err
	}

	scoreA, scoreB := ref.Eval7(&a), ref.Eval7(&b)
	switch {
	case scoreA > scoreB:
		return PlayerAWins, nil
	case scoreA < scoreB:
		return PlayerBWins, nil
	default:
		return Tie, nil
	}
}

// Describe returns the standard name of the best five-card hand in seven cards
func Describe(cards []deck.Card) (string, error) {
	c, err := toReference7(cards)
	if err != nil {
		return "", err
	}

	return ref.Describe(c[:])
}
