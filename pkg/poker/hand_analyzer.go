package poker

import (
	"fmt"

	"holdem-showdown/pkg/deck"
)

// HandAnalyzer classifies a player's two hole cards combined with the five community cards
//
// Every category is detected from rank and suit frequencies over all seven cards.
// Flushes and straights are detected independently of each other, so a straight and a
// flush made from different cards still count as a straight flush. An ace is always high.
type HandAnalyzer struct {
	hole     deck.Hand
	cards    deck.Hand // all seven cards, ascending by rank
	rankFreq [deck.Ranks]int
	suitFreq [deck.Suits]int
	flush    bool
	straight bool

	category Category
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// Neither slice is modified.
func NewHandAnalyzer(hole, community []deck.Card) (*HandAnalyzer, error) {
	if len(hole) != HoleCards {
		return nil, fmt.Errorf("%w: expected %d hole cards, got %d", ErrWrongCardCount, HoleCards, len(hole))
	}

	if len(community) != CommunityCards {
		return nil, fmt.Errorf("%w: expected %d community cards, got %d", ErrWrongCardCount, CommunityCards, len(community))
	}

	all := deck.Concat(hole, community)
	for _, card := range all {
		if err := card.Validate(); err != nil {
			return nil, err
		}
	}

	h := &HandAnalyzer{
		hole:  deck.Hand(hole).Clone(),
		cards: all.SortedByRank(),
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateCategory()

	return h, nil
}

// Classify returns the category of seven cards where the first two are the player's hole cards
func Classify(cards []deck.Card) (Category, error) {
	if len(cards) != ShowdownCards {
		return Nothing, fmt.Errorf("%w: expected %d cards, got %d", ErrWrongCardCount, ShowdownCards, len(cards))
	}

	h, err := NewHandAnalyzer(cards[:HoleCards], cards[HoleCards:])
	if err != nil {
		return Nothing, err
	}

	return h.GetCategory(), nil
}

// analyzeHand tallies the rank and suit frequencies and detects flushes and straights
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	for _, card := range h.cards {
		h.rankFreq[card.Rank.Index()]++
		h.suitFreq[card.Suit.Index()]++
	}

	for _, count := range h.suitFreq {
		if count >= 5 {
			h.flush = true
			break
		}
	}

	h.straight = hasStraight(h.cards)
}

// Cards returns the seven cards sorted by ascending rank
func (h *HandAnalyzer) Cards() deck.Hand {
	return h.cards.Clone()
}

// GetCategory will return the category of the cards
func (h *HandAnalyzer) GetCategory() Category {
	return h.category
}

// GetRoyalFlush will return true if there's a straight flush and the highest card is an ace
func (h *HandAnalyzer) GetRoyalFlush() bool {
	if !h.GetStraightFlush() {
		return false
	}

	high, _ := h.cards.LastCard()
	return high.Rank == deck.Ace
}

// GetStraightFlush will return true if there is both a straight and a flush
func (h *HandAnalyzer) GetStraightFlush() bool {
	return h.straight && h.flush
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (deck.Rank, bool) {
	return h.highestWithCount(4)
}

// GetFullHouse will return the rank of the trips and the rank of the pair, if possible
func (h *HandAnalyzer) GetFullHouse() ([]deck.Rank, bool) {
	trips, ok := h.GetThreeOfAKind()
	if !ok {
		return nil, false
	}

	pair, ok := h.GetPair()
	if !ok {
		return nil, false
	}

	return []deck.Rank{trips, pair}, true
}

// GetFlush will return true if five or more cards share a suit
func (h *HandAnalyzer) GetFlush() bool {
	return h.flush
}

// GetStraight will return true if five ranks are in a row
func (h *HandAnalyzer) GetStraight() bool {
	return h.straight
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (deck.Rank, bool) {
	return h.highestWithCount(3)
}

// GetTwoPair will return the best two pairs, if possible
func (h *HandAnalyzer) GetTwoPair() ([]deck.Rank, bool) {
	pairs := h.ranksWithCount(2)
	if len(pairs) >= 2 {
		return pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (deck.Rank, bool) {
	return h.highestWithCount(2)
}

// GetHighCard will return the highest card and whether the player holds a card of that rank
func (h *HandAnalyzer) GetHighCard() (deck.Card, bool) {
	high, _ := h.cards.LastCard()
	return high, h.hole.HasRank(high.Rank)
}

// ranksWithCount returns every rank that appears exactly n times, highest first
func (h *HandAnalyzer) ranksWithCount(n int) []deck.Rank {
	var ranks []deck.Rank
	for i := len(h.rankFreq) - 1; i >= 0; i-- {
		if h.rankFreq[i] == n {
			ranks = append(ranks, deck.Two+deck.Rank(i))
		}
	}

	return ranks
}

func (h *HandAnalyzer) highestWithCount(n int) (deck.Rank, bool) {
	if ranks := h.ranksWithCount(n); len(ranks) > 0 {
		return ranks[0], true
	}

	return 0, false
}

// calculateCategory will determine the category, strongest first
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateCategory() {
	if h.GetRoyalFlush() {
		h.category = RoyalFlush
	} else if h.GetStraightFlush() {
		h.category = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.category = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.category = FullHouse
	} else if h.GetFlush() {
		h.category = Flush
	} else if h.GetStraight() {
		h.category = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.category = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.category = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.category = Pair
	} else if _, held := h.GetHighCard(); held {
		h.category = HighCard
	} else {
		h.category = Nothing
	}
}
