package game

import (
	"rokumon/card"
	"rokumon/utils"
)

// Reserve is a player's ordered multiset of dice not currently on the
// board. Order is preserved so undo can restore a removed die to its
// exact former slot.
type Reserve []card.Die

// Remove deletes the first die matching identity (color, value) and
// returns the index it held and true, or -1 and false if no die
// matches. Removing the first match keeps Place deterministic.
func (r *Reserve) Remove(die card.Die) (int, bool) {
	idx := utils.FindIndex(*r, die)
	if idx < 0 {
		return -1, false
	}
	*r = append((*r)[:idx], (*r)[idx+1:]...)
	return idx, true
}

// RemoveLast pops the most recently appended die, used by undo to
// exactly reverse the append a fight loser's return performed.
func (r *Reserve) RemoveLast() card.Die {
	d := (*r)[len(*r)-1]
	*r = (*r)[:len(*r)-1]
	return d
}

// InsertAt restores a die to a specific index, used by undo.
func (r *Reserve) InsertAt(idx int, die card.Die) {
	*r = append(*r, card.Die{})
	copy((*r)[idx+1:], (*r)[idx:])
	(*r)[idx] = die
}

// Has reports whether die identity (color, value) is present.
func (r Reserve) Has(die card.Die) bool {
	return utils.FindIndex(r, die) >= 0
}

// DistinctIdentities returns one representative die per distinct
// (color, value) identity, in first-occurrence order — the move
// generator's de-duplication unit (spec: "distinct reserve positions
// holding identical dice produce the same logical Place move exactly
// once").
func (r Reserve) DistinctIdentities() []card.Die {
	var out []card.Die
	seen := make(map[card.Die]bool)
	for _, d := range r {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

func (r Reserve) Clone() Reserve {
	return append(Reserve(nil), r...)
}

func (r Reserve) Len() int {
	return len(r)
}
