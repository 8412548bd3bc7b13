package game

import (
	"rokumon/board"
	"rokumon/coord"
	"rokumon/move"
)

// IsLegalFor reports whether m is legal for actor (0 for player 1, 1
// for player 2) to play right now. It checks turn order before
// delegating to IsLegal's per-kind checks, for callers that track a
// player identity distinct from the engine's own "side to move" —
// e.g. an interactive front end validating a move against whichever
// player submitted it, or a networked layer authenticating a claimed
// actor. Apply itself has no such external actor and calls IsLegal
// directly, since every move it dispatches is already g.moverIndex()'s
// by construction.
func (g *Game) IsLegalFor(actor int, m move.Move) (bool, InvalidMoveReason) {
	if g.Result != InProgress {
		return false, RuleDisabled
	}
	if actor != g.moverIndex() {
		return false, NotYourTurn
	}
	return g.IsLegal(m)
}

// IsLegal reports whether m is legal in g's current position, and if
// not, why. Used both by Apply (which must reject illegal moves) and
// by the generator's own consistency tests.
func (g *Game) IsLegal(m move.Move) (bool, InvalidMoveReason) {
	if g.Result != InProgress {
		return false, RuleDisabled
	}
	switch m.Kind {
	case move.Place:
		return g.isLegalPlace(m)
	case move.Move:
		return g.isLegalMove(m)
	case move.Fight:
		return g.isLegalFight(m)
	case move.Surprise:
		return g.isLegalSurprise(m)
	case move.Submit:
		return true, 0
	default:
		return false, OffBoard
	}
}

func (g *Game) isLegalPlace(m move.Move) (bool, InvalidMoveReason) {
	crd, ok := g.Board.CardAt(m.To)
	if !ok {
		return false, OffBoard
	}
	if crd.Height() >= 2 {
		return false, OccupiedFull
	}
	if !g.Reserves[g.moverIndex()].Has(m.Die) {
		return false, EmptyReserve
	}
	return true, 0
}

func (g *Game) isLegalMove(m move.Move) (bool, InvalidMoveReason) {
	source, ok := g.Board.CardAt(m.From)
	if !ok {
		return false, OffBoard
	}
	top, hasTop := source.TopDie()
	if !hasTop {
		return false, EmptyStack
	}
	if !g.isOwnedByMover(top) {
		return false, NotYourDie
	}
	if m.Die != top {
		return false, NotYourDie
	}
	dest, ok := g.Board.CardAt(m.To)
	if !ok {
		return false, OffBoard
	}
	if !coord.AreAdjacent(g.Board.Grid, m.From, m.To) {
		return false, NotAdjacent
	}
	if dest.Height() >= 2 {
		return false, OccupiedFull
	}
	return true, 0
}

func (g *Game) isLegalFight(m move.Move) (bool, InvalidMoveReason) {
	if !g.Rules.EnableFight {
		return false, RuleDisabled
	}
	crd, ok := g.Board.CardAt(m.At)
	if !ok {
		return false, OffBoard
	}
	if crd.Height() != 2 {
		return false, EmptyStack
	}
	if !g.isOwnedByMover(crd.Dice[0]) && !g.isOwnedByMover(crd.Dice[1]) {
		return false, NotYourDie
	}
	return true, 0
}

func (g *Game) isLegalSurprise(m move.Move) (bool, InvalidMoveReason) {
	if !g.Rules.EnableSurprise {
		return false, RuleDisabled
	}
	source, ok := g.Board.CardAt(m.From)
	if !ok {
		return false, OffBoard
	}
	if !source.IsEmpty() {
		return false, EmptyStack
	}
	if _, occupied := g.Board.CardAt(m.To); occupied {
		return false, OccupiedFull
	}
	if !g.preservesShape(m.From, m.To) {
		return false, ShapeViolation
	}
	return true, 0
}

// preservesShape reports whether relocating the card at from to to
// keeps the coordinate set connected and within the original layout's
// convex (bounding-box) enclosure, per SPEC_FULL.md §10(b).
func (g *Game) preservesShape(from, to coord.Coord) bool {
	left, right, top, bottom := g.initialBounds()
	if to.X < left || to.X > right || to.Y < top || to.Y > bottom {
		return false
	}

	current := g.Board.Coords()
	next := make([]coord.Coord, 0, len(current))
	for _, c := range current {
		if c == from {
			continue
		}
		next = append(next, c)
	}
	next = append(next, to)
	return board.IsConnected(g.Board.Grid, next)
}
