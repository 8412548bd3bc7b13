package search

import "rokumon/move"

// bound classifies how a stored transposition-table value relates to
// the true minimax value, per the standard fail-hard alpha-beta
// memoization scheme.
type bound int

const (
	exact bound = iota
	lowerBound
	upperBound
)

type ttEntry struct {
	hash  uint64
	depth int
	value int
	kind  bound
	move  move.Move
	valid bool
}

// transpositionTable is a fixed-size hash table keyed by Zobrist
// hash, one entry per slot. Collisions between different positions
// are resolved by last-write-wins rather than chaining, trading a
// small false-hit rate for O(1) lookups - acceptable since the
// evaluator and search are already heuristic. A store for the same
// position does not replace an entry searched to a greater depth.
type transpositionTable struct {
	entries []ttEntry
}

func newTranspositionTable(size int) *transpositionTable {
	return &transpositionTable{entries: make([]ttEntry, size)}
}

func (t *transpositionTable) slot(hash uint64) *ttEntry {
	return &t.entries[hash%uint64(len(t.entries))]
}

// probe reports the cached value for hash at depth (if the cutoff
// conditions for its bound kind are met) along with the best move
// recorded for the position, so a caller that adopts this value can
// still extend a real line by continuing play through that move
// instead of splicing in a dead end.
func (t *transpositionTable) probe(hash uint64, depth, alpha, beta int) (int, move.Move, bool) {
	e := t.slot(hash)
	if !e.valid || e.hash != hash || e.depth < depth {
		return 0, move.Move{}, false
	}
	switch e.kind {
	case exact:
		return e.value, e.move, true
	case lowerBound:
		if e.value >= beta {
			return e.value, e.move, true
		}
	case upperBound:
		if e.value <= alpha {
			return e.value, e.move, true
		}
	}
	return 0, move.Move{}, false
}

func (t *transpositionTable) store(hash uint64, depth, value int, kind bound, mv move.Move) {
	e := t.slot(hash)
	if e.valid && e.hash == hash && e.depth > depth {
		return
	}
	*e = ttEntry{hash: hash, depth: depth, value: value, kind: kind, move: mv, valid: true}
}
