package move

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rokumon/board"
	"rokumon/card"
	"rokumon/coord"
)

func testBoard(t *testing.T) *board.Board {
	t.Helper()
	deck, err := card.ParseDeck("gggjjjj")
	require.NoError(t, err)
	b, err := board.New(board.Bricks7, deck)
	require.NoError(t, err)
	return b
}

func TestParseDie(t *testing.T) {
	d, err := ParseDie("r2")
	require.NoError(t, err)
	require.Equal(t, card.NewDie(card.Red, 2), d)

	d, err = ParseDie("W1")
	require.NoError(t, err)
	require.Equal(t, card.NewDie(card.White, 1), d)
}

func TestParseDieInvalid(t *testing.T) {
	_, err := ParseDie("x2")
	require.Error(t, err)
	_, err = ParseDie("r9")
	require.Error(t, err)
	_, err = ParseDie("r")
	require.Error(t, err)
}

func TestParseUserCoord(t *testing.T) {
	b := testBoard(t)
	c, err := ParseCoord("r2c3", b)
	require.NoError(t, err)
	row, col, err := b.InternalToUser(c)
	require.NoError(t, err)
	require.Equal(t, 2, row)
	require.Equal(t, 3, col)
}

func TestParseInternalCoord(t *testing.T) {
	c, err := ParseCoord("<1, -1, 0>", nil)
	require.NoError(t, err)
	require.Equal(t, coord.Coord{X: 1, Y: -1, Z: 0}, c)
}

func TestParsePlace(t *testing.T) {
	b := testBoard(t)
	m, err := Parse("place r2 at r2c3", b)
	require.NoError(t, err)
	require.Equal(t, Place, m.Kind)
	require.Equal(t, card.NewDie(card.Red, 2), m.Die)
}

func TestParseMove(t *testing.T) {
	b := testBoard(t)
	m, err := Parse("move b3 from r1c2 to r2c3", b)
	require.NoError(t, err)
	require.Equal(t, Move, m.Kind)
	require.Equal(t, card.NewDie(card.Black, 3), m.Die)
}

func TestParseFight(t *testing.T) {
	b := testBoard(t)
	m, err := Parse("fight at r2c3", b)
	require.NoError(t, err)
	require.Equal(t, Fight, m.Kind)
}

func TestParseSurprise(t *testing.T) {
	b := testBoard(t)
	m, err := Parse("surprise from r1c1 to r1c2", b)
	require.NoError(t, err)
	require.Equal(t, Surprise, m.Kind)
}

func TestParseSubmit(t *testing.T) {
	m, err := Parse("submit", nil)
	require.NoError(t, err)
	require.Equal(t, Submit, m.Kind)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("teleport r2 to r2c3", nil)
	require.Error(t, err)
	_, err = Parse("place r2 near r2c3", nil)
	require.Error(t, err)
}

func TestStringRoundTripsThroughInternalForm(t *testing.T) {
	b := testBoard(t)
	c, err := b.UserToInternal(2, 3)
	require.NoError(t, err)
	m := NewPlace(card.NewDie(card.Red, 2), c)

	str := m.String()
	reparsed, err := Parse(str, b)
	require.NoError(t, err)
	require.True(t, m.Equal(reparsed))
}

func TestSubmitString(t *testing.T) {
	require.Equal(t, "submit", NewSubmit().String())
}

func TestEqualDistinguishesKinds(t *testing.T) {
	c := coord.NewHex(0, 0)
	require.False(t, NewFight(c).Equal(NewSurprise(c, c)))
}
