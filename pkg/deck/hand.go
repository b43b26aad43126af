package deck

import "sort"

// Hand represents a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasRank returns true if any card in the hand is of the specified rank
func (h Hand) HasRank(rank Rank) bool {
	for _, c := range h {
		if c.Rank == rank {
			return true
		}
	}

	return false
}

// FirstCard returns the first card in the hand and false if the hand is empty
func (h Hand) FirstCard() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}

	return h[0], true
}

// LastCard returns the last card in the hand and false if the hand is empty
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

// SortedByRank returns a copy of the hand sorted by ascending rank
// Cards of equal rank keep their relative order
func (h Hand) SortedByRank() Hand {
	sorted := h.Clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})

	return sorted
}

// Duplicate returns the first card that appears more than once across the hands
func Duplicate(hands ...Hand) (Card, bool) {
	seen := make(map[Card]bool)
	for _, h := range hands {
		for _, c := range h {
			if seen[c] {
				return c, true
			}

			seen[c] = true
		}
	}

	return Card{}, false
}

// Concat returns a new hand with the cards of each hand in order
func Concat(hands ...Hand) Hand {
	n := 0
	for _, h := range hands {
		n += len(h)
	}

	all := make(Hand, 0, n)
	for _, h := range hands {
		all = append(all, h...)
	}

	return all
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
