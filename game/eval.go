package game

import (
	"rokumon/card"
	"rokumon/coord"
)

// Evaluation weights, hand-tuned starting values. They are exported
// compile-time constants: a test can read them, but nothing can
// substitute different weights at run time. The evaluator is a single
// concrete function, no dynamic dispatch.
const (
	WeightTripleProgress = 10
	WeightReserveEconomy = 1
	WeightGoldPresence   = 3
	WeightMobility       = 1
)

// Inf is the mate-score magnitude; actual terminal scores are
// depth-adjusted (see search package) so shallower wins score higher
// than deeper ones.
const Inf = 1_000_000

// Evaluate scores the current position from the perspective of the
// side to move: positive is good for the mover. Only meaningful for
// InProgress positions; callers must special-case terminal results
// with mate/draw scores themselves (search does this, since it alone
// knows the search depth to adjust by).
func (g *Game) Evaluate() int {
	return g.tripleProgress() + g.reserveEconomy() + g.goldPresence() + g.mobility()
}

func (g *Game) tripleProgress() int {
	mover := g.moverIndex()
	total := 0
	for _, triple := range g.Board.Triples() {
		moverCount, opponentCount := 0, 0
		for _, c := range [3]coord.Coord{triple.A, triple.B, triple.C} {
			crd, _ := g.Board.CardAt(c)
			for _, d := range crd.Dice {
				if ownerIndex(d) == mover {
					moverCount++
				} else {
					opponentCount++
				}
			}
		}
		if moverCount > 2 {
			moverCount = 2
		}
		if opponentCount > 2 {
			opponentCount = 2
		}
		total += WeightTripleProgress * (moverCount - opponentCount)
	}
	return total
}

func (g *Game) reserveEconomy() int {
	mover := g.moverIndex()
	opponent := g.opponentIndex()
	return WeightReserveEconomy * (g.Reserves[opponent].Len() - g.Reserves[mover].Len())
}

func (g *Game) goldPresence() int {
	mover := g.moverIndex()
	moverGold, opponentGold := 0, 0
	for _, c := range g.Board.Coords() {
		crd, _ := g.Board.CardAt(c)
		if crd.Kind != card.Gold {
			continue
		}
		for _, d := range crd.Dice {
			if ownerIndex(d) == mover {
				moverGold++
			} else {
				opponentGold++
			}
		}
	}
	return WeightGoldPresence * (moverGold - opponentGold)
}

// mobility approximates each side's legal-move count cheaply via
// per-coordinate degree rather than a full alternate-side generation.
func (g *Game) mobility() int {
	moverMoves := 0
	opponentMoves := 0
	for _, c := range g.Board.Coords() {
		crd, _ := g.Board.CardAt(c)
		top, ok := crd.TopDie()
		if !ok {
			continue
		}
		degree := 0
		for _, n := range g.Board.Neighbors(c) {
			nCard, _ := g.Board.CardAt(n)
			if nCard.Height() < 2 {
				degree++
			}
		}
		if ownerIndex(top) == g.moverIndex() {
			moverMoves += degree
		} else {
			opponentMoves += degree
		}
	}
	return WeightMobility * (moverMoves - opponentMoves)
}
