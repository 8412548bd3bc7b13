// Package serialize renders a game.Game to the two external forms
// spec.md §6 names: a human-readable table for a terminal or console
// UI, and a JSON-compatible machine snapshot for the external UI
// described in spec.md's EXTERNAL INTERFACES section.
package serialize

import (
	"encoding/json"
	"fmt"

	"rokumon/card"
	"rokumon/coord"
	"rokumon/game"
)

// CoordCard pairs a board coordinate with its card, JSON-shaped for
// the machine snapshot's "array of (coord, card) pairs".
type CoordCard struct {
	Coord coord.Coord `json:"coord"`
	Card  CardView    `json:"card"`
}

// CardView is card.Card's wire form: dice rendered as their two-
// character literal (e.g. "r4", "w1") bottom-to-top, matching the
// grammar spec.md §4.7 defines for die literals.
type CardView struct {
	Kind string   `json:"kind"`
	Dice []string `json:"dice"`
}

func newCardView(c *card.Card) CardView {
	dice := make([]string, len(c.Dice))
	for i, d := range c.Dice {
		dice[i] = d.String()
	}
	return CardView{Kind: c.Kind.String(), Dice: dice}
}

// Snapshot is the JSON machine form of a position: grid tag, dealt
// cards in reading order, both reserves, the side-to-move flag, the
// result, and move history rendered through move.Move.String().
type Snapshot struct {
	Grid          string      `json:"grid"`
	Layout        string      `json:"layout"`
	Cards         []CoordCard `json:"cards"`
	Player1Dice   []string    `json:"player1_reserve"`
	Player2Dice   []string    `json:"player2_reserve"`
	Player1ToMove bool        `json:"player1_to_move"`
	Result        string      `json:"result"`
	Ply           int         `json:"ply"`
	History       []string    `json:"history"`
}

// FromGame builds a Snapshot of g's current state. g is read-only
// during this call: nothing here mutates the Game.
func FromGame(g *game.Game) Snapshot {
	coords := g.Board.Coords()
	cards := make([]CoordCard, 0, len(coords))
	for _, c := range coords {
		crd, _ := g.Board.CardAt(c)
		cards = append(cards, CoordCard{Coord: c, Card: newCardView(crd)})
	}

	history := make([]string, len(g.History))
	for i, h := range g.History {
		history[i] = h.Move.String()
	}

	return Snapshot{
		Grid:          g.Board.Grid.String(),
		Layout:        g.Board.Layout.String(),
		Cards:         cards,
		Player1Dice:   diceStrings(g.Reserves[0]),
		Player2Dice:   diceStrings(g.Reserves[1]),
		Player1ToMove: g.Player1ToMove,
		Result:        g.Result.String(),
		Ply:           g.Ply,
		History:       history,
	}
}

func diceStrings(r game.Reserve) []string {
	out := make([]string, len(r))
	for i, d := range r {
		out[i] = d.String()
	}
	return out
}

// MarshalJSON encodes g's current Snapshot.
func MarshalJSON(g *game.Game) ([]byte, error) {
	return json.Marshal(FromGame(g))
}

// Table renders g's board as the human-readable grid described in
// spec.md §6, one row per line, cards space-separated - grounded on
// original_source/rokumon_core/src/board.rs's Display impl, which
// board.Board.String already reproduces; this wraps it with the
// reserves and side-to-move line a console UI would also want.
func Table(g *game.Game) string {
	out := g.Board.String()
	out += fmt.Sprintf("player 1 reserve: %v\n", diceStrings(g.Reserves[0]))
	out += fmt.Sprintf("player 2 reserve: %v\n", diceStrings(g.Reserves[1]))
	if g.Result == game.InProgress {
		if g.Player1ToMove {
			out += "player 1 to move\n"
		} else {
			out += "player 2 to move\n"
		}
	} else {
		out += fmt.Sprintf("result: %s\n", g.Result)
	}
	return out
}
