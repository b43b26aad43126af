package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrWrongCardCount is returned when a card set is not the size the evaluator requires
var ErrWrongCardCount = errors.New("wrong number of cards")

// card counts for a heads-up hold'em showdown
const (
	HoleCards      = 2
	CommunityCards = 5
	ShowdownCards  = HoleCards + CommunityCards
)

// Category is the classification of a player's seven cards, i.e., royal flush
// Categories are declared strongest first, so a lower value is a stronger hand
type Category int

// Constants for category
const (
	RoyalFlush Category = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard

	// Nothing means none of the player's hole cards matched the highest rank on the board
	// It is weaker than every other category
	Nothing
)

// labels are the printed names, in strength order
var labels = [...]string{
	RoyalFlush:    "Royal Flush",
	StraightFlush: "Straight Flush",
	FourOfAKind:   "Four of a Kind",
	FullHouse:     "Full House",
	Flush:         "Flush",
	Straight:      "Straight",
	ThreeOfAKind:  "Three of a Kind",
	TwoPair:       "Two Pair",
	Pair:          "A Pair",
	HighCard:      "High Card",
	Nothing:       "Nothing",
}

// Strength returns the ordinal strength of the category where 0 is the strongest
// Any unrecognized category is weaker than all others
func (c Category) Strength() int {
	if c < RoyalFlush || c > Nothing {
		return int(Nothing)
	}

	return int(c)
}

// Beats returns true if the category is strictly stronger than the other
func (c Category) Beats(other Category) bool {
	return c.Strength() < other.Strength()
}

// String returns the string representation of a category
func (c Category) String() string {
	if c < RoyalFlush || c > Nothing {
		return fmt.Sprintf("Category(%d)", int(c))
	}

	return labels[c]
}

// MarshalText encodes the category as its label
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a label. Unrecognized labels decode to Nothing.
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}

// ParseCategory returns the category whose label prefixes s (case-insensitive)
// Labels are checked strongest first. "Pair" is accepted for a pair.
// Anything that is not recognized is treated as Nothing.
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := RoyalFlush; c < Nothing; c++ {
		if strings.HasPrefix(s, strings.ToLower(labels[c])) {
			return c
		}
	}

	if strings.HasPrefix(s, "pair") {
		return Pair
	}

	return Nothing
}
