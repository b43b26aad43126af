package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"holdem-showdown/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a full deck
const Size = Ranks * Suits

// Deck represents a playing deck
// Cards only ever leave the deck: there is no way to put a drawn card back
type Deck struct {
	Cards []Card `json:"cards"`
	seed  int64
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

// NewShuffled returns a full deck shuffled with the generator
func NewShuffled(gen rng.Generator) *Deck {
	d := New()
	d.Shuffle(gen)
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
	d.seed = 0
}

// Shuffle will rebuild the full deck and shuffle it using the generator
func (d *Deck) Shuffle(gen rng.Generator) {
	// we always want to shuffle from an unshuffled deck
	d.buildDeck()

	if s, ok := gen.(*rng.Seeded); ok {
		d.seed = s.Seed()
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// ShuffleSeed will shuffle the deck with a reproducible seed and return the seed used.
// If seed is 0, the current time is used.
func (d *Deck) ShuffleSeed(seed int64) int64 {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	d.Shuffle(rng.NewSeeded(seed))
	return d.seed
}

// GetSeed returns the seed used to shuffle the deck, or 0 if the generator was not seeded
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal will draw up to n cards.
// If the deck runs out, fewer than n cards are returned; callers must check the length.
func (d *Deck) Deal(n int) Hand {
	if n <= 0 {
		return Hand{}
	}

	hand := make(Hand, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		if err != nil {
			break
		}

		hand = append(hand, card)
	}

	return hand
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
