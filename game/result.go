package game

// checkTerminal re-evaluates g.Result after an apply. Order: triple
// win (checked regardless of whose turn it now is), then forced pass
// for the new side to move, then the ply-count draw guard.
func (g *Game) checkTerminal() {
	if winner, ok := g.tripleWinner(); ok {
		g.Result = winner
		return
	}
	if g.isForcedPass() {
		if g.Player1ToMove {
			g.Result = Player2Won
		} else {
			g.Result = Player1Won
		}
		return
	}
	if g.Ply >= maxPlies {
		g.Result = Draw
	}
}

// tripleWinner reports whether some collinear triple hosts exactly
// one die each, all owned (per ownerIndex) by the same player. A
// White die on the triple counts toward player 2, matching its
// origin in player 2's starting reserve.
func (g *Game) tripleWinner() (Result, bool) {
	for _, triple := range g.Board.Triples() {
		crdA, _ := g.Board.CardAt(triple.A)
		crdB, _ := g.Board.CardAt(triple.B)
		crdC, _ := g.Board.CardAt(triple.C)
		if crdA.Height() != 1 || crdB.Height() != 1 || crdC.Height() != 1 {
			continue
		}
		dieA, _ := crdA.TopDie()
		dieB, _ := crdB.TopDie()
		dieC, _ := crdC.TopDie()
		ownerA, ownerB, ownerC := ownerIndex(dieA), ownerIndex(dieB), ownerIndex(dieC)
		if ownerA != ownerB || ownerB != ownerC {
			continue
		}
		if ownerA == 0 {
			return Player1Won, true
		}
		return Player2Won, true
	}
	return InProgress, false
}

// isForcedPass reports whether the side now to move has an empty
// reserve and no legal Move, Fight, or Surprise available (Place is
// impossible with an empty reserve, and Submit doesn't count as a
// "move" for this check per spec.md §4.4).
func (g *Game) isForcedPass() bool {
	if g.Reserves[g.moverIndex()].Len() > 0 {
		return false
	}
	if len(g.moveMoves()) > 0 {
		return false
	}
	if g.Rules.EnableFight && len(g.fightMoves()) > 0 {
		return false
	}
	if g.Rules.EnableSurprise && len(g.surpriseMoves()) > 0 {
		return false
	}
	return true
}
