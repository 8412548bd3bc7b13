// Package search implements iterative-deepening fail-hard alpha-beta
// search over a game.Game, following the negamax framing: every node
// is scored from the perspective of the side to move at that node.
package search

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"rokumon/game"
	"rokumon/move"
)

// Inf mirrors game.Inf: the mate-score magnitude before depth
// adjustment.
const Inf = game.Inf

// Stats reports how much work a Run performed.
type Stats struct {
	NodesExamined int64
	DepthReached  int
	Completed     bool
}

// Result is the public contract of a search: the best move found, its
// signed evaluation from the side-to-move's perspective, the
// principal variation starting with Best, and search statistics.
type Result struct {
	Best  move.Move
	Score int
	PV    []move.Move
	Stats Stats
}

type searcher struct {
	cfg      config
	tt       *transpositionTable
	nodes    int64
	deadline time.Time
	hasStop  bool
}

// Run performs iterative-deepening alpha-beta search on g, respecting
// whichever of the depth limit or time budget is configured. g is
// mutated via Apply/Undo during the search and is restored to its
// original state before Run returns.
func Run(g *game.Game, opts ...Option) Result {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g.Result != game.InProgress {
		return Result{Stats: Stats{Completed: true}}
	}

	s := &searcher{cfg: cfg}
	if cfg.useTT {
		s.tt = newTranspositionTable(cfg.ttSize)
	}
	if cfg.timeBudget > 0 {
		s.deadline = cfg.clock().Add(cfg.timeBudget)
		s.hasStop = true
	}

	var result Result
	var pv []move.Move
	interrupted := false

	for depth := 1; depth <= cfg.maxDepth; depth++ {
		aborted := false
		score, line := s.negamax(g, depth, 0, -Inf, Inf, pv, &aborted)
		if aborted {
			log.Warn().Int("depth", depth).Msg("search: iteration aborted by time budget or stop flag")
			interrupted = true
			break
		}

		pv = line
		result.Score = score
		result.PV = line
		result.Stats.DepthReached = depth
		if len(line) > 0 {
			result.Best = line[0]
		}

		log.Debug().
			Int("depth", depth).
			Int("score", score).
			Int64("nodes", s.nodes).
			Msg("search: iteration complete")

		if score >= Inf-depth || score <= -Inf+depth {
			break // forced mate found at this depth, no point searching deeper
		}
	}

	result.Stats.NodesExamined = s.nodes
	result.Stats.Completed = !interrupted
	return result
}

// shouldStop reports whether the deadline or an external stop flag
// has fired. Checked every checkInterval nodes, never on every node,
// to keep the clock/atomic read off the hot path.
func (s *searcher) shouldStop() bool {
	if s.cfg.stop != nil && s.cfg.stop.Load() {
		return true
	}
	if s.hasStop && !s.cfg.clock().Before(s.deadline) {
		return true
	}
	return false
}

// terminalScore converts g.Result into a mate-depth-adjusted score
// from the perspective of the side the parent node negates for: the
// side currently flagged as mover (g.Player1ToMove), except after a
// Submit, which does not flip the side, where it is the submitter's
// opponent. For a forced pass the flip already happened, so the stuck
// side is correctly the "mover" being scored.
func terminalScore(g *game.Game, ply int) int {
	p1Perspective := g.Player1ToMove
	if n := len(g.History); n > 0 && g.History[n-1].Move.Kind == move.Submit {
		p1Perspective = !p1Perspective
	}
	switch g.Result {
	case game.Draw:
		return 0
	case game.Player1Won:
		if p1Perspective {
			return Inf - ply
		}
		return -Inf + ply
	case game.Player2Won:
		if !p1Perspective {
			return Inf - ply
		}
		return -Inf + ply
	default:
		return 0
	}
}

// negamax runs fail-hard alpha-beta to depth, returning the score and
// the principal variation from this node. prevPV is the previous
// iteration's PV, consulted only to order this node's move at the
// matching ply — it is not assumed correct, only a good guess.
func (s *searcher) negamax(g *game.Game, depth, ply int, alpha, beta int, prevPV []move.Move, aborted *bool) (int, []move.Move) {
	s.nodes++
	if s.nodes%s.cfg.checkInterval == 0 && s.shouldStop() {
		*aborted = true
		return 0, nil
	}

	if g.Result != game.InProgress {
		return terminalScore(g, ply), nil
	}
	if depth == 0 {
		return g.Evaluate(), nil
	}

	hash := g.Hash()
	if s.tt != nil && ply > 0 {
		if v, mv, ok := s.tt.probe(hash, depth, alpha, beta); ok {
			return v, s.reconstructLine(g, mv, depth)
		}
	}

	var pvMove move.Move
	hasPVMove := ply < len(prevPV)
	if hasPVMove {
		pvMove = prevPV[ply]
	}

	moves := g.LegalMoves()
	orderMoves(moves, pvMove, hasPVMove)

	origAlpha := alpha
	best := -Inf - 1
	var bestLine []move.Move
	var bestMove move.Move

	for _, m := range moves {
		if err := g.Apply(m); err != nil {
			continue // generator/legality drift, skip defensively rather than crash the search
		}
		score, line := s.negamax(g, depth-1, ply+1, -beta, -alpha, prevPV, aborted)
		score = -score
		_ = g.Undo()

		if *aborted {
			return 0, nil
		}

		if score > best {
			best = score
			bestMove = m
			bestLine = append([]move.Move{m}, line...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	// Fail-hard: the returned value never leaves the [alpha, beta] window.
	if best < origAlpha {
		best = origAlpha
	} else if best > beta {
		best = beta
	}

	if s.tt != nil {
		kind := exact
		if best <= origAlpha {
			kind = upperBound
		} else if best >= beta {
			kind = lowerBound
		}
		s.tt.store(hash, depth, best, kind, bestMove)
	}

	return best, bestLine
}

// reconstructLine extends a transposition-table hit into a real
// principal variation instead of the dead end an ancestor would
// otherwise splice into its own line. It walks the table's recorded
// best moves forward for up to depth plies, reading straight from
// entries already computed rather than re-searching a subtree: one
// Apply per ply of chain found, not a full negamax call.
func (s *searcher) reconstructLine(g *game.Game, mv move.Move, depth int) []move.Move {
	var line []move.Move
	for remaining := depth; remaining > 0; remaining-- {
		if err := g.Apply(mv); err != nil {
			break
		}
		line = append(line, mv)
		if remaining == 1 || g.Result != game.InProgress {
			break
		}
		e := s.tt.slot(g.Hash())
		if !e.valid || e.hash != g.Hash() {
			break
		}
		mv = e.move
	}
	for range line {
		_ = g.Undo()
	}
	return line
}

// rankOf orders move kinds within a ply when no PV move applies:
// Fight first (resolves tension immediately), then Move, then Place,
// then Surprise, with Submit always last.
func rankOf(k move.Kind) int {
	switch k {
	case move.Fight:
		return 0
	case move.Move:
		return 1
	case move.Place:
		return 2
	case move.Surprise:
		return 3
	case move.Submit:
		return 4
	default:
		return 5
	}
}

// orderMoves sorts moves in place: the previous iteration's PV move
// for this ply first (if present among the legal moves), then by
// rankOf, preserving the generator's own order within each rank
// (stable sort).
func orderMoves(moves []move.Move, pvMove move.Move, hasPVMove bool) {
	sort.SliceStable(moves, func(i, j int) bool {
		iPV := hasPVMove && moves[i].Equal(pvMove)
		jPV := hasPVMove && moves[j].Equal(pvMove)
		if iPV != jPV {
			return iPV
		}
		return rankOf(moves[i].Kind) < rankOf(moves[j].Kind)
	})
}
