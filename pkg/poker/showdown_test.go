package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-showdown/pkg/deck"
)

func combined(hole, community string) deck.Hand {
	return deck.Concat(deck.CardsFromString(hole), deck.CardsFromString(community))
}

func TestResolve_category(t *testing.T) {
	a := assert.New(t)

	// the category decides before any card is looked at
	cardsA := combined("2c,3d", "5h,7s,9c,11d,13h")
	cardsB := combined("14c,14d", "5h,7s,9c,11d,13h")

	o, err := Resolve(Pair, TwoPair, cardsA, cardsB)
	a.NoError(err)
	a.Equal(PlayerBWins, o)

	o, err = Resolve(Flush, Straight, cardsA, cardsB)
	a.NoError(err)
	a.Equal(PlayerAWins, o)

	o, err = Resolve(HighCard, Nothing, cardsA, cardsB)
	a.NoError(err)
	a.Equal(PlayerAWins, o)

	o, err = Resolve(Category(42), Nothing, cardsA, cardsB)
	a.NoError(err)
	a.Equal(PlayerBWins, o, "unknown ties with nothing and falls through to the cards")
}

func TestResolve_tieBreak(t *testing.T) {
	a := assert.New(t)
	community := "2c,4d,6h,8s,10c"
	cardsA := combined("12d,14h", community)
	cardsB := combined("12h,13s", community)

	catA, err := Classify(cardsA)
	a.NoError(err)
	catB, err := Classify(cardsB)
	a.NoError(err)
	a.Equal(HighCard, catA)
	a.Equal(HighCard, catB)

	o, err := Resolve(catA, catB, cardsA, cardsB)
	a.NoError(err)
	a.Equal(PlayerAWins, o)
	a.Equal("Player 1 wins!", o.String())

	o, err = Resolve(catB, catA, cardsB, cardsA)
	a.NoError(err)
	a.Equal(PlayerBWins, o)
	a.Equal("Player 2 wins!", o.String())
}

func TestResolve_identicalRanks(t *testing.T) {
	a := assert.New(t)
	community := "2c,4d,6h,8s,10c"
	cardsA := combined("14h,13s", community)
	cardsB := combined("14d,13c", community)

	o, err := Resolve(HighCard, HighCard, cardsA, cardsB)
	a.NoError(err)
	a.Equal(Tie, o)
	a.Equal("Tie!", o.String())
}

func TestCompareCards_wholeSet(t *testing.T) {
	a := assert.New(t)

	// both have a pair of nines; the lower cards still decide
	community := "9c,9d,13h,12s,7c"
	o, err := CompareCards(combined("3h,2s", community), combined("4h,2d", community))
	a.NoError(err)
	a.Equal(PlayerBWins, o)

	// a single high card outranks a stronger run of lower cards
	o, err = CompareCards(combined("14s,2h", "3c,5d,7h,9s,11c"), combined("13s,12h", "3c,5d,7h,9s,11c"))
	a.NoError(err)
	a.Equal(PlayerAWins, o)

	_, err = CompareCards(combined("14s", community), combined("4h,2d", community))
	a.ErrorIs(err, ErrWrongCardCount)
}

func TestResolveLabels(t *testing.T) {
	a := assert.New(t)
	community := "2c,4d,6h,8s,10c"
	cardsA := combined("12d,14h", community)
	cardsB := combined("12h,13s", community)

	o, err := ResolveLabels("A Pair", "High Card", cardsB, cardsA)
	a.NoError(err)
	a.Equal(PlayerAWins, o)

	// unrecognized labels are the weakest and fall back on the cards
	o, err = ResolveLabels("???", "Nothing", cardsA, cardsB)
	a.NoError(err)
	a.Equal(PlayerAWins, o)

	o, err = ResolveLabels("???", "High Card", cardsA, cardsB)
	a.NoError(err)
	a.Equal(PlayerBWins, o)
}

func TestOutcome_Text(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal([]Outcome{PlayerAWins, PlayerBWins, Tie})
	a.NoError(err)
	a.Equal(`["a","b","tie"]`, string(b))

	var out []Outcome
	a.NoError(json.Unmarshal(b, &out))
	a.Equal([]Outcome{PlayerAWins, PlayerBWins, Tie}, out)

	a.Error(json.Unmarshal([]byte(`["c"]`), &out))
	a.PanicsWithValue("unknown outcome: 9", func() {
		_ = Outcome(9).String()
	})
}
