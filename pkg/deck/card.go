package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed or is outside of a standard deck
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
// Suits are nominal: they are only ever compared for equality
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits is the number of suits in a standard deck
const Suits = 4

// Index returns the frequency slot of the suit (0-3), or -1 if the suit is unknown
func (s Suit) Index() int {
	switch s {
	case Clubs:
		return 0
	case Diamonds:
		return 1
	case Hearts:
		return 2
	case Spades:
		return 3
	default:
		return -1
	}
}

// Rank is the face value of a card. Ace is always high.
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks is the number of ranks in a standard deck
const Ranks = 13

// Index returns the frequency slot of the rank (0 for a two, 12 for an ace), or -1 if the rank is invalid
func (r Rank) Index() int {
	if !r.Valid() {
		return -1
	}

	return int(r - Two)
}

// Valid returns true if the rank is between a two and an ace
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is an individual playing card
// Cards are values and are never modified once created
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card, validating the rank and suit
func NewCard(rank Rank, suit Suit) (Card, error) {
	card := Card{Rank: rank, Suit: suit}
	if err := card.Validate(); err != nil {
		return Card{}, err
	}

	return card, nil
}

// Validate returns ErrInvalidCard if the card could not come from a standard deck
func (c Card) Validate() error {
	if !c.Rank.Valid() {
		return fmt.Errorf("%w: rank %d", ErrInvalidCard, c.Rank)
	}

	if c.Suit.Index() < 0 {
		return fmt.Errorf("%w: suit %q", ErrInvalidCard, c.Suit)
	}

	return nil
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return fmt.Sprintf("%s%s", c.Rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c == card
}

var cardRx = regexp.MustCompile(`(?i)^\s*([0-9]|1[0-4]|[jqka])([cdhs])\s*\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 (or J, Q, K, A) and suit in [cdhs]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("%w: could not parse %q", ErrInvalidCard, s)
	}

	var rank Rank
	switch strings.ToLower(match[1]) {
	case "j":
		rank = Jack
	case "q":
		rank = Queen
	case "k":
		rank = King
	case "a":
		rank = Ace
	default:
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return Card{}, fmt.Errorf("%w: could not parse %q: %v", ErrInvalidCard, s, err)
		}

		rank = Rank(n)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return NewCard(rank, suit)
}

// ParseCards parses a comma-separated list of cards in the format of 2c,3h,14s
func ParseCards(s string) (Hand, error) {
	if strings.TrimSpace(s) == "" {
		return Hand{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, str := range cardStrings {
		card, err := ParseCard(str)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString returns a Card from the string, and panics if it cannot be parsed.
// Intended for fixtures: use ParseCard for user input.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will return a slice of cards, and panics if any card cannot be parsed
func CardsFromString(s string) Hand {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
