package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-showdown/pkg/deck"
)

// analyze splits seven cards into two hole cards and five community cards
func analyze(t *testing.T, cards string) *HandAnalyzer {
	t.Helper()

	all := deck.CardsFromString(cards)
	h, err := NewHandAnalyzer(all[:2], all[2:])
	if err != nil {
		t.Fatal(err)
	}

	return h
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected Category
	}{
		{"royal flush", "14s,13s,12s,11s,10s,2c,3d", RoyalFlush},
		{"straight flush", "9h,8h,7h,6h,5h,2c,2d", StraightFlush},
		{"four of a kind", "2c,2d,2h,2s,7c,9d,13h", FourOfAKind},
		{"full house", "5c,5d,5h,8s,8c,2d,13h", FullHouse},
		{"flush", "2h,5h,9h,11h,13h,3c,4d", Flush},
		{"straight", "3c,4d,5h,6s,7c,13d,10h", Straight},
		{"straight with a paired rank", "5c,5d,6h,7s,8c,9d,13h", Straight},
		{"three of a kind", "7c,7d,7h,2s,9c,11d,13h", ThreeOfAKind},
		{"two pair", "7c,7d,9h,9s,2c,11d,13h", TwoPair},
		{"three pairs", "7c,7d,9h,9s,2c,2d,13h", TwoPair},
		{"pair", "7c,7d,9h,2s,4c,11d,13h", Pair},
		{"high card in hand", "14c,3d,9h,2s,4c,11d,13h", HighCard},
		{"high card on the board", "3c,5d,9h,2s,8c,11d,13h", Nothing},
		{"no wheel", "14c,2d,3h,4s,5c,9d,11h", HighCard},
		{"two sets of trips is not a full house", "3c,3d,3h,4c,4d,4h,9s", ThreeOfAKind},
		{"straight and flush from different cards", "5h,6c,7h,8d,9h,2h,12h", StraightFlush},
		{"royal from different cards", "10h,11d,12h,13s,14h,2h,3h", RoyalFlush},
		{"quads beat a full house", "9c,9d,9h,9s,13c,13d,13h", FourOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := deck.CardsFromString(tt.cards)
			category, err := Classify(cards)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, category, "got %s", category)

			// input is never reordered
			assert.Equal(t, tt.cards, deck.Hand(cards).String())
		})
	}
}

func TestClassify_deterministic(t *testing.T) {
	a := assert.New(t)

	// same hole cards, community in any order
	c1, err := Classify(deck.CardsFromString("7c,9d,7h,2s,4c,11d,13h"))
	a.NoError(err)
	c2, err := Classify(deck.CardsFromString("9d,7c,13h,11d,4c,2s,7h"))
	a.NoError(err)
	a.Equal(c1, c2)
	a.Equal(Pair, c1)
}

func TestClassify_errors(t *testing.T) {
	a := assert.New(t)

	_, err := Classify(deck.CardsFromString("14s,13s,12s,11s,10s,2c"))
	a.ErrorIs(err, ErrWrongCardCount)

	_, err = Classify(deck.CardsFromString("14s,13s,12s,11s,10s,2c,3c,4c"))
	a.ErrorIs(err, ErrWrongCardCount)

	cards := deck.CardsFromString("14s,13s,12s,11s,10s,2c,3c")
	cards[3] = deck.Card{Rank: 1, Suit: deck.Clubs}
	_, err = Classify(cards)
	a.ErrorIs(err, deck.ErrInvalidCard)

	_, err = NewHandAnalyzer(deck.CardsFromString("14s"), deck.CardsFromString("12s,11s,10s,2c,3c,4c"))
	a.ErrorIs(err, ErrWrongCardCount)

	_, err = NewHandAnalyzer(deck.CardsFromString("14s,13s"), deck.CardsFromString("12s,11s,10s,2c"))
	a.ErrorIs(err, ErrWrongCardCount)
}

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	h := analyze(t, "2c,3c,3d,3h,3s,9d,11c")
	r, ok := h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, deck.Three, r)
	_, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	_, ok = h.GetPair()
	assert.False(t, ok)

	h = analyze(t, "9s,4h,5c,4d,4c,12d,13h")
	r, ok = h.GetFourOfAKind()
	assert.False(t, ok)
	assert.Equal(t, deck.Rank(0), r)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	h := analyze(t, "14c,2c,14d,5c,14h,2d,5h")
	r, ok := h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []deck.Rank{deck.Ace, deck.Five}, r)

	h = analyze(t, "3c,3d,3h,4c,5d,6h,8c")
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)

	h = analyze(t, "3c,3d,4h,4c,5d,5h,7c")
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	h := analyze(t, "5c,5d,6h,6d,3h,3c,9s")
	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []deck.Rank{deck.Six, deck.Five}, r)

	h = analyze(t, "2c,2d,3h,4h,5d,9s,11c")
	r, ok = h.GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetFlush(t *testing.T) {
	h := analyze(t, "2c,3c,4c,5c,7c,7d,8d")
	assert.True(t, h.GetFlush())
	assert.False(t, h.GetStraight())

	h = analyze(t, "2c,3c,4c,5c,7d,7h,9d")
	assert.False(t, h.GetFlush())
}

func TestHandAnalyzer_GetStraight(t *testing.T) {
	tests := []struct {
		cards    string
		expected bool
	}{
		{"2c,3d,4h,5s,6c,13d,13h", true},
		{"12c,2d,4h,5s,6c,7d,8h", true},
		{"10c,11d,12h,13s,14c,2d,2h", true},
		{"2c,2d,3h,3s,4c,5d,6h", true},
		{"14c,2d,3h,4s,5c,9d,9h", false},
		{"12c,13d,14h,2s,3c,9d,9h", false},
		{"2c,3d,4h,5s,7c,8d,9h", false},
	}

	for _, tt := range tests {
		h := analyze(t, tt.cards)
		assert.Equal(t, tt.expected, h.GetStraight(), tt.cards)
	}
}

func TestHandAnalyzer_GetRoyalFlush(t *testing.T) {
	h := analyze(t, "10s,11s,12s,8d,13s,14s,9d")
	assert.True(t, h.GetRoyalFlush())
	assert.True(t, h.GetStraightFlush())

	h = analyze(t, "9s,10s,11s,12s,13s,2d,3d")
	assert.False(t, h.GetRoyalFlush())
	assert.True(t, h.GetStraightFlush())
}

func TestHandAnalyzer_GetHighCard(t *testing.T) {
	h := analyze(t, "14c,2c,5c,8d,3h,10s,11d")
	card, held := h.GetHighCard()
	assert.Equal(t, deck.CardFromString("14c"), card)
	assert.True(t, held)

	h = analyze(t, "2c,5c,14c,8d,3h,10s,11d")
	card, held = h.GetHighCard()
	assert.Equal(t, deck.CardFromString("14c"), card)
	assert.False(t, held)
}

func TestHandAnalyzer_Cards(t *testing.T) {
	h := analyze(t, "14c,2c,5c,8d,3h,10s,11d")
	assert.Equal(t, "2c,3h,5c,8d,10s,11d,14c", h.Cards().String())
}

func BenchmarkClassify(b *testing.B) {
	cards := deck.CardsFromString("3s,5s,6h,7h,11c,12c,14h")
	for i := 0; i < b.N; i++ {
		_, _ = Classify(cards)
	}
}
