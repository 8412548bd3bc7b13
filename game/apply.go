package game

import (
	"rokumon/card"
	"rokumon/move"
)

// historyEntry carries enough state to invert exactly one apply.
// Everything here is a value copy or index, never a pointer into
// Board's live structures.
type historyEntry struct {
	Move       move.Move
	PrevResult Result
	PrevPly    int

	// Place
	reserveOwner int
	reserveIdx   int

	// Fight
	loserDie    card.Die
	loserOwner  int
	loserWasIdx int
}

// Apply mutates g in place according to m, which must be legal.
// Returns InvalidMoveError if not, TerminalStateError if the game is
// already decided.
func (g *Game) Apply(m move.Move) error {
	if g.Result != InProgress {
		return &TerminalStateError{}
	}
	legal, reason := g.IsLegal(m)
	if !legal {
		return &InvalidMoveError{Move: m, Reason: reason}
	}

	entry := historyEntry{Move: m, PrevResult: g.Result, PrevPly: g.Ply}

	locked := false
	switch m.Kind {
	case move.Place:
		g.applyPlace(m, &entry)
	case move.Move:
		locked = g.applyMove(m, &entry)
	case move.Fight:
		g.applyFight(m, &entry)
	case move.Surprise:
		g.applySurprise(m, &entry)
	case move.Submit:
		g.applySubmit()
	}

	g.History = append(g.History, entry)

	if m.Kind != move.Submit {
		g.Ply++
		if !locked {
			g.checkTerminal()
		}
	}
	return nil
}

func (g *Game) applyPlace(m move.Move, entry *historyEntry) {
	owner := g.moverIndex()
	idx, _ := g.Reserves[owner].Remove(m.Die)
	entry.reserveOwner, entry.reserveIdx = owner, idx

	crd, _ := g.Board.CardAt(m.To)
	slot := crd.Height()
	g.Board.PlaceDieTop(m.To, m.Die)
	g.hash ^= g.zobrist.dieAt(m.Die, m.To, slot)
	g.flipSide()
}

// applyMove relocates the top die from m.From to m.To. Between the
// pop and the push it checks for a triple win exposed by the die the
// move just uncovered at the source: original_source's
// apply_move_unchecked resolves this "in flight" instead of waiting
// for the final board, so a source reveal that already completes a
// triple wins outright even if the same move also completes a
// different triple at the destination. Reports whether the result was
// locked in this way, so Apply knows not to re-derive it from the
// final board.
func (g *Game) applyMove(m move.Move, entry *historyEntry) (locked bool) {
	_ = entry
	srcCard, _ := g.Board.CardAt(m.From)
	srcSlot := srcCard.Height() - 1
	die, _ := g.Board.PopDieTop(m.From)
	g.hash ^= g.zobrist.dieAt(die, m.From, srcSlot)

	if winner, ok := g.tripleWinner(); ok {
		g.Result = winner
		locked = true
	}

	dstCard, _ := g.Board.CardAt(m.To)
	dstSlot := dstCard.Height()
	g.Board.PlaceDieTop(m.To, die)
	g.hash ^= g.zobrist.dieAt(die, m.To, dstSlot)

	g.flipSide()
	return locked
}

func (g *Game) applyFight(m move.Move, entry *historyEntry) {
	crd, _ := g.Board.CardAt(m.At)
	d0, d1 := crd.Dice[0], crd.Dice[1]

	// The mover's own die is always compared first, per SPEC_FULL.md
	// §10(a); if both dice happen to belong to the mover, the bottom
	// die (index 0) is treated as "mover's" for ordering purposes.
	var moverDie, otherDie card.Die
	var moverIdx, otherIdx int
	if g.isOwnedByMover(d0) {
		moverDie, otherDie, moverIdx, otherIdx = d0, d1, 0, 1
	} else {
		moverDie, otherDie, moverIdx, otherIdx = d1, d0, 1, 0
	}

	winner, loser := card.CompareDice(moverDie, otherDie)
	loserIdx := otherIdx
	if loser == moverDie {
		loserIdx = moverIdx
	}
	_ = winner

	loserOwner := ownerIdentityForFight(loser)
	removed, _ := g.Board.RemoveDieAt(m.At, loserIdx)
	g.hash ^= g.zobrist.dieAt(removed, m.At, loserIdx)

	// The remaining winner die shifts from slot 1 to slot 0 if the
	// loser occupied the bottom; re-key it so the hash reflects the
	// new stack shape exactly like a real Move would.
	if loserIdx == 0 {
		remainingCard, _ := g.Board.CardAt(m.At)
		if top, ok := remainingCard.TopDie(); ok {
			g.hash ^= g.zobrist.dieAt(top, m.At, 1)
			g.hash ^= g.zobrist.dieAt(top, m.At, 0)
		}
	}

	g.Reserves[loserOwner] = append(g.Reserves[loserOwner], removed)

	entry.loserDie = removed
	entry.loserOwner = loserOwner
	entry.loserWasIdx = loserIdx

	g.flipSide()
}

// ownerIdentityForFight resolves which reserve a losing die returns
// to. A losing White die is attributed to player 2's reserve, the same
// as any other White die on the board, per DESIGN.md's Open Question
// (d) decision — White has no reserve distinct from player 2's.
func ownerIdentityForFight(d card.Die) int {
	return ownerIndex(d)
}

func (g *Game) applySurprise(m move.Move, entry *historyEntry) {
	_ = entry
	g.hash ^= g.zobrist.presenceAt(m.From)
	g.hash ^= g.zobrist.presenceAt(m.To)
	g.Board.MoveCard(m.From, m.To)
	g.flipSide()
}

func (g *Game) applySubmit() {
	if g.Player1ToMove {
		g.Result = Player2Won
	} else {
		g.Result = Player1Won
	}
}

func (g *Game) flipSide() {
	g.Player1ToMove = !g.Player1ToMove
	g.hash ^= g.zobrist.side()
}

// Undo reverses the most recent Apply, restoring g to its exact prior
// state including the cached hash.
func (g *Game) Undo() error {
	if len(g.History) == 0 {
		return &NothingToUndoError{}
	}
	entry := g.History[len(g.History)-1]
	g.History = g.History[:len(g.History)-1]

	switch entry.Move.Kind {
	case move.Place:
		g.undoPlace(entry)
	case move.Move:
		g.undoMove(entry)
	case move.Fight:
		g.undoFight(entry)
	case move.Surprise:
		g.undoSurprise(entry)
	case move.Submit:
		// side never flipped, nothing on the board changed
	}

	g.Result = entry.PrevResult
	g.Ply = entry.PrevPly
	return nil
}

func (g *Game) undoPlace(entry historyEntry) {
	m := entry.Move
	g.flipSide()
	crd, _ := g.Board.CardAt(m.To)
	slot := crd.Height() - 1
	die, _ := g.Board.PopDieTop(m.To)
	g.hash ^= g.zobrist.dieAt(die, m.To, slot)
	g.Reserves[entry.reserveOwner].InsertAt(entry.reserveIdx, die)
}

func (g *Game) undoMove(entry historyEntry) {
	m := entry.Move
	g.flipSide()
	dstCard, _ := g.Board.CardAt(m.To)
	dstSlot := dstCard.Height() - 1
	die, _ := g.Board.PopDieTop(m.To)
	g.hash ^= g.zobrist.dieAt(die, m.To, dstSlot)

	srcCard, _ := g.Board.CardAt(m.From)
	srcSlot := srcCard.Height()
	g.Board.PlaceDieTop(m.From, die)
	g.hash ^= g.zobrist.dieAt(die, m.From, srcSlot)
}

func (g *Game) undoFight(entry historyEntry) {
	g.flipSide()

	if entry.loserWasIdx == 0 {
		remainingCard, _ := g.Board.CardAt(entry.Move.At)
		if top, ok := remainingCard.TopDie(); ok {
			g.hash ^= g.zobrist.dieAt(top, entry.Move.At, 0)
			g.hash ^= g.zobrist.dieAt(top, entry.Move.At, 1)
		}
	}

	g.Reserves[entry.loserOwner].RemoveLast()
	g.Board.InsertDieAt(entry.Move.At, entry.loserWasIdx, entry.loserDie)
	g.hash ^= g.zobrist.dieAt(entry.loserDie, entry.Move.At, entry.loserWasIdx)
}

func (g *Game) undoSurprise(entry historyEntry) {
	m := entry.Move
	g.flipSide()
	g.Board.MoveCard(m.To, m.From)
	g.hash ^= g.zobrist.presenceAt(m.To)
	g.hash ^= g.zobrist.presenceAt(m.From)
}
