package game

import (
	"golang.org/x/exp/rand"

	"rokumon/card"
	"rokumon/coord"
)

// zobrist lazily assigns and caches a random 64-bit key per
// (die identity, coordinate) pair, plus a side-to-move key. Keys are
// generated on first use rather than precomputed over the full
// coordinate space, since Surprise can relocate a card to any
// coordinate within the layout's bounding box — an a-priori-unbounded
// set from the table's point of view. The table is owned by one Game
// and never shared, so no synchronization is needed (a Game is never
// used from two goroutines at once).
type zobrist struct {
	rng         *rand.Rand
	dieKeys     map[dieCoordKey]uint64
	presenceKeys map[coord.Coord]uint64
	sideKey     uint64
}

// dieCoordKey includes the stack slot (0 = bottom, 1 = top) so that
// two dice sharing a (color, value) identity stacked on the same card
// hash to distinct keys instead of XOR-cancelling each other out.
type dieCoordKey struct {
	die  card.Die
	at   coord.Coord
	slot int
}

// newZobrist builds a table whose RNG has a fixed seed, independent
// of the game's own shuffle RNG, so hash values don't leak shuffle
// entropy. Keys are drawn in first-use order, so the absolute hash of
// a position depends on which positions the Game visited before;
// callers should rely only on equality within a single Game's
// lifetime (undo round-trip, transposition lookups).
func newZobrist() *zobrist {
	return &zobrist{
		rng:          rand.New(rand.NewSource(0x726f6b756d6f6e)), // "rokumon" in hex-ish, fixed for reproducible tests
		dieKeys:      make(map[dieCoordKey]uint64),
		presenceKeys: make(map[coord.Coord]uint64),
		sideKey:      0x9e3779b97f4a7c15,
	}
}

// presenceAt returns the key toggled when a card is present at c,
// used to make the hash sensitive to Surprise-relocated board shape
// even though the relocated card itself is always empty.
func (z *zobrist) presenceAt(c coord.Coord) uint64 {
	if k, ok := z.presenceKeys[c]; ok {
		return k
	}
	k := z.rng.Uint64()
	z.presenceKeys[c] = k
	return k
}

func (z *zobrist) dieAt(die card.Die, at coord.Coord, slot int) uint64 {
	key := dieCoordKey{die: die, at: at, slot: slot}
	if k, ok := z.dieKeys[key]; ok {
		return k
	}
	k := z.rng.Uint64()
	z.dieKeys[key] = k
	return k
}

func (z *zobrist) side() uint64 {
	return z.sideKey
}
