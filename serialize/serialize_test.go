package serialize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"rokumon/board"
	"rokumon/card"
	"rokumon/game"
	"rokumon/move"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.WithLayout(board.Bricks7), game.WithCards("gggjjjj"))
	require.NoError(t, err)
	return g
}

func TestFromGameReflectsCurrentState(t *testing.T) {
	g := newTestGame(t)
	to, err := g.Board.UserToInternal(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Red, 2), to)))

	snap := FromGame(g)
	require.Equal(t, "hex", snap.Grid)
	require.Len(t, snap.Cards, 7)
	require.True(t, snap.Player1ToMove == false) // side flipped after the Place
	require.Equal(t, "InProgress", snap.Result)
	require.Len(t, snap.History, 1)
	require.Equal(t, 3, len(snap.Player1Dice)) // one r2 removed from the starting 4

	found := false
	for _, cc := range snap.Cards {
		if len(cc.Card.Dice) == 1 && cc.Card.Dice[0] == "r2" {
			found = true
		}
	}
	require.True(t, found, "placed die not found in snapshot")
}

func TestMarshalJSONRoundTripsStructurally(t *testing.T) {
	g := newTestGame(t)
	data, err := MarshalJSON(g)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, FromGame(g), decoded)
}

func TestTableIncludesReservesAndTurn(t *testing.T) {
	g := newTestGame(t)
	table := Table(g)
	require.Contains(t, table, "player 1 reserve")
	require.Contains(t, table, "player 1 to move")
}

func TestTableReportsResultWhenTerminal(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Apply(move.NewSubmit()))
	table := Table(g)
	require.Contains(t, table, "result: Player2Won")
}
