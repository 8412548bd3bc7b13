package card

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCompareDiceHigherValueWins(t *testing.T) {
	winner, loser := CompareDice(NewDie(Red, 4), NewDie(Black, 2))
	require.Equal(t, NewDie(Red, 4), winner)
	require.Equal(t, NewDie(Black, 2), loser)
}

func TestCompareDiceJokerBeatsNonSix(t *testing.T) {
	winner, loser := CompareDice(NewDie(White, 1), NewDie(Black, 5))
	require.Equal(t, NewDie(White, 1), winner)
	require.Equal(t, NewDie(Black, 5), loser)
}

func TestCompareDiceSixBeatsJoker(t *testing.T) {
	winner, loser := CompareDice(NewDie(Red, 6), NewDie(White, 1))
	require.Equal(t, NewDie(Red, 6), winner)
	require.Equal(t, NewDie(White, 1), loser)

	// Symmetric: joker passed first still loses to a six.
	winner, loser = CompareDice(NewDie(White, 1), NewDie(Red, 6))
	require.Equal(t, NewDie(Red, 6), winner)
	require.Equal(t, NewDie(White, 1), loser)
}

func TestCompareDiceTieOpponentLoses(t *testing.T) {
	// A synthetic tie: opponent's die (passed second) loses.
	winner, loser := CompareDice(NewDie(Red, 3), NewDie(Black, 3))
	require.Equal(t, NewDie(Red, 3), winner)
	require.Equal(t, NewDie(Black, 3), loser)
}

func TestCardTopDieAndEmpty(t *testing.T) {
	c := NewCard(Gold)
	require.True(t, c.IsEmpty())
	_, ok := c.TopDie()
	require.False(t, ok)

	c.Dice = append(c.Dice, NewDie(Red, 2))
	top, ok := c.TopDie()
	require.True(t, ok)
	require.Equal(t, NewDie(Red, 2), top)
	require.Equal(t, 1, c.Height())
}

func TestParseDeck(t *testing.T) {
	d, err := ParseDeck("gggjjjj")
	require.NoError(t, err)
	require.Len(t, d, 7)
	require.Equal(t, Gold, d[0])
	require.Equal(t, Jade, d[3])
}

func TestParseDeckInvalid(t *testing.T) {
	_, err := ParseDeck("gggx")
	require.Error(t, err)
}

func TestDeckShuffleDeterministicWithSeed(t *testing.T) {
	d1, _ := ParseDeck("gggjjjj")
	d2, _ := ParseDeck("gggjjjj")

	d1.Shuffle(rand.New(rand.NewSource(42)))
	d2.Shuffle(rand.New(rand.NewSource(42)))

	require.Equal(t, d1, d2, "same seed must produce identical shuffles")
}
