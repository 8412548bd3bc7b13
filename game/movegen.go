package game

import (
	"rokumon/coord"
	"rokumon/move"
)

// LegalMoves enumerates every legal move for the side to move, in
// generator order: Place, then Move, then Fight (if enabled), then
// Surprise (if enabled), then Submit last. The generator is
// deterministic: identical Game states yield byte-identical output.
func (g *Game) LegalMoves() []move.Move {
	if g.Result != InProgress {
		return nil
	}

	var moves []move.Move
	moves = append(moves, g.placeMoves()...)
	moves = append(moves, g.moveMoves()...)
	if g.Rules.EnableFight {
		moves = append(moves, g.fightMoves()...)
	}
	if g.Rules.EnableSurprise {
		moves = append(moves, g.surpriseMoves()...)
	}
	moves = append(moves, move.NewSubmit())
	return moves
}

func (g *Game) placeMoves() []move.Move {
	var moves []move.Move
	identities := g.Reserves[g.moverIndex()].DistinctIdentities()
	for _, c := range g.Board.Coords() {
		crd, _ := g.Board.CardAt(c)
		if crd.Height() >= 2 {
			continue
		}
		for _, die := range identities {
			moves = append(moves, move.NewPlace(die, c))
		}
	}
	return moves
}

func (g *Game) moveMoves() []move.Move {
	var moves []move.Move
	for _, s := range g.Board.Coords() {
		crd, _ := g.Board.CardAt(s)
		top, ok := crd.TopDie()
		if !ok || !g.isOwnedByMover(top) {
			continue
		}
		for _, d := range g.Board.Neighbors(s) {
			destCard, _ := g.Board.CardAt(d)
			if destCard.Height() < 2 {
				moves = append(moves, move.NewMove(top, s, d))
			}
		}
	}
	return moves
}

func (g *Game) fightMoves() []move.Move {
	var moves []move.Move
	for _, c := range g.Board.Coords() {
		crd, _ := g.Board.CardAt(c)
		if crd.Height() != 2 {
			continue
		}
		if g.isOwnedByMover(crd.Dice[0]) || g.isOwnedByMover(crd.Dice[1]) {
			moves = append(moves, move.NewFight(c))
		}
	}
	return moves
}

// surpriseMoves enumerates every empty source card and every legal
// destination for it. Destination candidates are the neighbors of
// currently occupied coordinates (a Surprise destination must border
// the existing cluster or the check in preservesShape would fail
// anyway), deduplicated, and filtered through the same legality
// predicate the interactive shell would use.
func (g *Game) surpriseMoves() []move.Move {
	var moves []move.Move
	candidates := g.surpriseDestinationCandidates()

	for _, s := range g.Board.Coords() {
		crd, _ := g.Board.CardAt(s)
		if !crd.IsEmpty() {
			continue
		}
		for _, d := range candidates {
			if d == s {
				continue
			}
			if _, occupied := g.Board.CardAt(d); occupied {
				continue
			}
			if g.preservesShape(s, d) {
				moves = append(moves, move.NewSurprise(s, d))
			}
		}
	}
	return moves
}

func (g *Game) surpriseDestinationCandidates() []coord.Coord {
	seen := make(map[coord.Coord]bool)
	var out []coord.Coord
	for _, c := range g.Board.Coords() {
		for _, n := range coord.Neighbors(g.Board.Grid, c) {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
