package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rokumon/board"
	"rokumon/card"
	"rokumon/coord"
	"rokumon/move"
)

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	base := []Option{WithLayout(board.Bricks7), WithCards("gggjjjj")}
	g, err := NewGame(append(base, opts...)...)
	require.NoError(t, err)
	return g
}

func uc(t *testing.T, g *Game, row, col int) coord.Coord {
	t.Helper()
	c, err := g.Board.UserToInternal(row, col)
	require.NoError(t, err)
	return c
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Player1ToMove)
	require.Equal(t, InProgress, g.Result)
	require.Len(t, g.Reserves[0], 4)
	require.Len(t, g.Reserves[1], 5)
}

func TestNewGameRejectsMismatchedCards(t *testing.T) {
	_, err := NewGame(WithLayout(board.Square6), WithCards("gggjjjj"))
	require.Error(t, err)
}

// TestScenarioS1 reproduces the literal end-to-end scenario: fight
// resolves in favor of the higher-value die and the loser returns to
// its owner's reserve.
func TestScenarioS1(t *testing.T) {
	g := newTestGame(t)

	r2c3 := uc(t, g, 2, 3)
	r1c2 := uc(t, g, 1, 2)
	r1c1 := uc(t, g, 1, 1)

	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Red, 2), r2c3)))
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Black, 3), r1c2)))
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Red, 4), r1c1)))
	require.NoError(t, g.Apply(move.NewMove(card.NewDie(card.Black, 3), r1c2, r2c3)))
	require.NoError(t, g.Apply(move.NewFight(r2c3)))

	crd, _ := g.Board.CardAt(r2c3)
	require.Equal(t, 1, crd.Height())
	top, _ := crd.TopDie()
	require.Equal(t, card.NewDie(card.Black, 3), top)

	crdR1C1, _ := g.Board.CardAt(r1c1)
	require.Equal(t, 1, crdR1C1.Height())

	crdR1C2, _ := g.Board.CardAt(r1c2)
	require.True(t, crdR1C2.IsEmpty())

	require.Contains(t, g.Reserves[0], card.NewDie(card.Red, 2))
}

// TestScenarioS2 continues from S1 to a three-in-a-row win for player
// 2, including a White ("joker") die completing the triple. r1c1's hex
// neighbors are r1c2, r2c1 and r2c2 (not r2c3), so r4 vacates r1c1 by
// moving onto r2c1, matching original_source's own worked example of
// this exact sequence.
func TestScenarioS2(t *testing.T) {
	g := newTestGame(t)

	r2c3 := uc(t, g, 2, 3)
	r1c2 := uc(t, g, 1, 2)
	r1c1 := uc(t, g, 1, 1)
	r2c2 := uc(t, g, 2, 2)
	r2c1 := uc(t, g, 2, 1)
	r1c3 := uc(t, g, 1, 3)

	moves := []move.Move{
		move.NewPlace(card.NewDie(card.Red, 2), r2c3),
		move.NewPlace(card.NewDie(card.Black, 3), r1c2),
		move.NewPlace(card.NewDie(card.Red, 4), r1c1),
		move.NewMove(card.NewDie(card.Black, 3), r1c2, r2c3),
		move.NewFight(r2c3),
		move.NewPlace(card.NewDie(card.Black, 1), r2c2),
		move.NewMove(card.NewDie(card.Red, 4), r1c1, r2c1),
		move.NewPlace(card.NewDie(card.Black, 3), r1c2),
		move.NewPlace(card.NewDie(card.Red, 6), r2c1),
		move.NewPlace(card.NewDie(card.Black, 5), r1c3),
		move.NewMove(card.NewDie(card.Red, 6), r2c1, r2c2),
		move.NewPlace(card.NewDie(card.White, 1), r1c1),
	}
	for i, m := range moves {
		require.NoErrorf(t, g.Apply(m), "move %d (%s) failed", i, m)
	}

	require.Equal(t, Player2Won, g.Result)
}

// TestScenarioS3 applies then undoes every move of S2 and checks the
// game returns to its exact initial state, including hash.
func TestScenarioS3(t *testing.T) {
	g := newTestGame(t)
	initialHash := g.Hash()
	initialReserve0 := g.Reserves[0].Clone()
	initialReserve1 := g.Reserves[1].Clone()

	r2c3 := uc(t, g, 2, 3)
	r1c2 := uc(t, g, 1, 2)
	r1c1 := uc(t, g, 1, 1)
	r2c2 := uc(t, g, 2, 2)
	r2c1 := uc(t, g, 2, 1)
	r1c3 := uc(t, g, 1, 3)

	moves := []move.Move{
		move.NewPlace(card.NewDie(card.Red, 2), r2c3),
		move.NewPlace(card.NewDie(card.Black, 3), r1c2),
		move.NewPlace(card.NewDie(card.Red, 4), r1c1),
		move.NewMove(card.NewDie(card.Black, 3), r1c2, r2c3),
		move.NewFight(r2c3),
		move.NewPlace(card.NewDie(card.Black, 1), r2c2),
		move.NewMove(card.NewDie(card.Red, 4), r1c1, r2c1),
		move.NewPlace(card.NewDie(card.Black, 3), r1c2),
		move.NewPlace(card.NewDie(card.Red, 6), r2c1),
		move.NewPlace(card.NewDie(card.Black, 5), r1c3),
		move.NewMove(card.NewDie(card.Red, 6), r2c1, r2c2),
		move.NewPlace(card.NewDie(card.White, 1), r1c1),
	}
	for _, m := range moves {
		require.NoError(t, g.Apply(m))
	}
	require.Equal(t, Player2Won, g.Result)

	for range moves {
		require.NoError(t, g.Undo())
	}

	require.Equal(t, InProgress, g.Result)
	require.Equal(t, initialHash, g.Hash())
	require.ElementsMatch(t, initialReserve0, g.Reserves[0])
	require.ElementsMatch(t, initialReserve1, g.Reserves[1])
	require.True(t, g.Player1ToMove)
	for _, c := range g.Board.Coords() {
		crd, _ := g.Board.CardAt(c)
		require.True(t, crd.IsEmpty())
	}
}

// TestScenarioS4: with fights disabled, Fight is rejected.
func TestScenarioS4(t *testing.T) {
	g := newTestGame(t, WithFight(false))

	r2c3 := uc(t, g, 2, 3)
	r1c2 := uc(t, g, 1, 2)

	// With fights disabled, player 2's reserve holds only b1 dice.
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Red, 2), r2c3)))
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Black, 1), r1c2)))
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Red, 2), uc(t, g, 1, 1))))
	require.NoError(t, g.Apply(move.NewMove(card.NewDie(card.Black, 1), r1c2, r2c3)))

	err := g.Apply(move.NewFight(r2c3))
	require.Error(t, err)
	var invalidErr *InvalidMoveError
	require.ErrorAs(t, err, &invalidErr)
	require.Equal(t, RuleDisabled, invalidErr.Reason)
}

func TestSubmitEndsGameWithoutFlippingSide(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Apply(move.NewSubmit()))
	require.Equal(t, Player2Won, g.Result)
	require.True(t, g.Player1ToMove)
}

func TestApplyOnTerminalGameFails(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Apply(move.NewSubmit()))
	err := g.Apply(move.NewSubmit())
	require.Error(t, err)
	var terminalErr *TerminalStateError
	require.ErrorAs(t, err, &terminalErr)
}

func TestUndoWithEmptyHistoryFails(t *testing.T) {
	g := newTestGame(t)
	err := g.Undo()
	require.Error(t, err)
	var nothingErr *NothingToUndoError
	require.ErrorAs(t, err, &nothingErr)
}

func TestLegalMovesDeterministic(t *testing.T) {
	g := newTestGame(t)
	a := g.LegalMoves()
	b := g.LegalMoves()
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.True(t, a[i].Equal(b[i]))
	}
}

func TestLegalMovesEndsWithSubmit(t *testing.T) {
	g := newTestGame(t)
	moves := g.LegalMoves()
	require.NotEmpty(t, moves)
	require.Equal(t, move.Submit, moves[len(moves)-1].Kind)
}

func TestLegalMovesAreAllLegal(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Red, 2), uc(t, g, 2, 3))))
	for _, m := range g.LegalMoves() {
		legal, reason := g.IsLegal(m)
		require.Truef(t, legal, "move %s flagged illegal: %s", m, reason)
	}
}

func TestReserveMultisetInvariant(t *testing.T) {
	g := newTestGame(t)
	initial := append(g.Reserves[0].Clone(), g.Reserves[1].Clone()...)

	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Red, 2), uc(t, g, 2, 3))))
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Black, 3), uc(t, g, 1, 2))))

	var onBoard []card.Die
	for _, c := range g.Board.Coords() {
		crd, _ := g.Board.CardAt(c)
		onBoard = append(onBoard, crd.Dice...)
	}
	current := append(append(g.Reserves[0].Clone(), g.Reserves[1].Clone()...), onBoard...)
	require.ElementsMatch(t, initial, current)
}

func TestStackHeightNeverExceedsTwo(t *testing.T) {
	g := newTestGame(t)
	c := uc(t, g, 2, 3)
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Red, 2), c)))
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Black, 3), uc(t, g, 1, 2))))
	require.NoError(t, g.Apply(move.NewPlace(card.NewDie(card.Red, 2), uc(t, g, 1, 1))))
	require.NoError(t, g.Apply(move.NewMove(card.NewDie(card.Black, 3), uc(t, g, 1, 2), c)))

	err := g.Apply(move.NewPlace(card.NewDie(card.Red, 4), c))
	require.Error(t, err)
}

func TestIsLegalForRejectsWrongActor(t *testing.T) {
	g := newTestGame(t)
	m := move.NewPlace(card.NewDie(card.Black, 3), uc(t, g, 1, 2))

	legal, reason := g.IsLegalFor(1, m)
	require.False(t, legal)
	require.Equal(t, NotYourTurn, reason)

	legal, reason = g.IsLegalFor(0, move.NewPlace(card.NewDie(card.Red, 2), uc(t, g, 2, 3)))
	require.True(t, legal, "reason: %s", reason)
}

func TestIsLegalForReportsTerminalBeforeActor(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Apply(move.NewSubmit()))

	// Actor 1 is not the side flagged to move, so a turn check run
	// first would report NotYourTurn instead.
	legal, reason := g.IsLegalFor(1, move.NewSubmit())
	require.False(t, legal)
	require.Equal(t, RuleDisabled, reason)
}

// TestMoveSourceRevealTripleTakesPriorityOverDestination builds a
// position where popping the moving die exposes a winning triple for
// the opponent (bottom row, all black) at the same instant that
// completing the move would otherwise complete a different winning
// triple for the mover (top row, all red). Per original_source's
// apply_move_unchecked, the source reveal is checked and locked in
// first: the opponent wins, even though a final-board-only check
// would find the mover's top-row triple first (topRow sorts ahead of
// bottomRow in reading order) and report the wrong winner.
func TestMoveSourceRevealTripleTakesPriorityOverDestination(t *testing.T) {
	g, err := NewGame(WithLayout(board.Square6), WithCards("gggggg"))
	require.NoError(t, err)

	topLeft := uc(t, g, 1, 1)
	topMid := uc(t, g, 1, 2)
	topRight := uc(t, g, 1, 3)
	botLeft := uc(t, g, 2, 1)
	botMid := uc(t, g, 2, 2)
	botRight := uc(t, g, 2, 3)

	require.NoError(t, g.Board.PlaceDieTop(topLeft, card.NewDie(card.Red, 2)))
	require.NoError(t, g.Board.PlaceDieTop(topRight, card.NewDie(card.Red, 2)))
	require.NoError(t, g.Board.PlaceDieTop(botLeft, card.NewDie(card.Black, 1)))
	require.NoError(t, g.Board.PlaceDieTop(botRight, card.NewDie(card.Black, 1)))
	require.NoError(t, g.Board.PlaceDieTop(botMid, card.NewDie(card.Black, 1)))
	require.NoError(t, g.Board.PlaceDieTop(botMid, card.NewDie(card.Red, 6)))
	g.Player1ToMove = true

	require.NoError(t, g.Apply(move.NewMove(card.NewDie(card.Red, 6), botMid, topMid)))

	require.Equal(t, Player2Won, g.Result)
}

func TestForcedPassPredicate(t *testing.T) {
	g := newTestGame(t, WithFight(false), WithSurprise(false))
	g.Reserves[0] = nil
	for _, c := range g.Board.Coords() {
		require.NoError(t, g.Board.PlaceDieTop(c, card.NewDie(card.Black, 1)))
	}
	require.True(t, g.isForcedPass())
}
