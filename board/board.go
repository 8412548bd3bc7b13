// Package board implements the fixed coordinate→card mapping cards
// are dealt onto, together with the adjacency and collinear-triple
// caches the rest of the engine queries heavily.
package board

import (
	"fmt"
	"sort"

	"rokumon/card"
	"rokumon/coord"
)

// Board maps a fixed set of coordinates (the "layout") to Cards. The
// coordinate set is fixed at construction except for Surprise moves,
// which relocate one empty card at a time without changing the set's
// size.
type Board struct {
	Grid   coord.Grid
	Layout Layout

	cards map[coord.Coord]*card.Card
	// order is the deterministic reading-order enumeration of coords,
	// recomputed whenever the coordinate set changes (construction,
	// or a Surprise move). Move generation and hashing iterate this
	// slice, never the map directly, to keep output order stable
	// (spec.md §8 property 6: move generator determinism).
	order []coord.Coord

	adjacency map[coord.Coord][]coord.Coord
	triples   []coord.Triple
}

// New deals deck onto layout's coordinates in reading order and
// builds the adjacency/triple caches.
func New(layout Layout, deck card.Deck) (*Board, error) {
	coords := layout.coords()
	if len(deck) != len(coords) {
		return nil, fmt.Errorf("board: deck has %d cards, layout %s needs %d", len(deck), layout, len(coords))
	}

	b := &Board{
		Grid:   layout.Grid(),
		Layout: layout,
		cards:  make(map[coord.Coord]*card.Card, len(coords)),
	}
	for i, c := range coords {
		b.cards[c] = &card.Card{Kind: deck[i]}
	}
	b.refreshCaches()
	return b, nil
}

// Clone deep-copies the board, including per-coordinate card stacks.
func (b *Board) Clone() *Board {
	nb := &Board{
		Grid:   b.Grid,
		Layout: b.Layout,
		cards:  make(map[coord.Coord]*card.Card, len(b.cards)),
	}
	for c, crd := range b.cards {
		cp := *crd
		cp.Dice = append([]card.Die(nil), crd.Dice...)
		nb.cards[c] = &cp
	}
	nb.refreshCaches()
	return nb
}

func (b *Board) refreshCaches() {
	order := make([]coord.Coord, 0, len(b.cards))
	for c := range b.cards {
		order = append(order, c)
	}
	sort.Slice(order, func(i, j int) bool {
		return lessReadingOrder(order[i], order[j])
	})
	b.order = order

	adjacency := make(map[coord.Coord][]coord.Coord, len(order))
	for _, c := range order {
		var neighbors []coord.Coord
		for _, n := range order {
			if n != c && coord.AreAdjacent(b.Grid, c, n) {
				neighbors = append(neighbors, n)
			}
		}
		adjacency[c] = neighbors
	}
	b.adjacency = adjacency
	b.triples = coord.CollinearTriples(b.Grid, order)
}

// lessReadingOrder orders coordinates row-major: ascending Y (row),
// then ascending X (column) within the row.
func lessReadingOrder(a, b coord.Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Coords returns all board coordinates in deterministic reading
// order.
func (b *Board) Coords() []coord.Coord {
	return b.order
}

// CardAt returns the card at c, if any.
func (b *Board) CardAt(c coord.Coord) (*card.Card, bool) {
	crd, ok := b.cards[c]
	return crd, ok
}

// Neighbors returns the coordinates adjacent to c that currently hold
// a card (cached at construction / last refresh).
func (b *Board) Neighbors(c coord.Coord) []coord.Coord {
	return b.adjacency[c]
}

// Triples returns every collinear, unit-adjacent triple of board
// coordinates.
func (b *Board) Triples() []coord.Triple {
	return b.triples
}

// PlaceDieTop pushes die onto the stack at c. Returns an error if c
// has no card or the stack is already full.
func (b *Board) PlaceDieTop(c coord.Coord, die card.Die) error {
	crd, ok := b.cards[c]
	if !ok {
		return fmt.Errorf("board: no card at %s", c)
	}
	if len(crd.Dice) >= 2 {
		return fmt.Errorf("board: stack at %s is already full", c)
	}
	crd.Dice = append(crd.Dice, die)
	return nil
}

// PopDieTop removes and returns the top die at c.
func (b *Board) PopDieTop(c coord.Coord) (card.Die, error) {
	crd, ok := b.cards[c]
	if !ok {
		return card.Die{}, fmt.Errorf("board: no card at %s", c)
	}
	if len(crd.Dice) == 0 {
		return card.Die{}, fmt.Errorf("board: stack at %s is empty", c)
	}
	die := crd.Dice[len(crd.Dice)-1]
	crd.Dice = crd.Dice[:len(crd.Dice)-1]
	return die, nil
}

// InsertDieAt inserts die at zero-based stack index idx (used by undo
// to restore a fight loser to its exact former slot).
func (b *Board) InsertDieAt(c coord.Coord, idx int, die card.Die) error {
	crd, ok := b.cards[c]
	if !ok {
		return fmt.Errorf("board: no card at %s", c)
	}
	if idx < 0 || idx > len(crd.Dice) {
		return fmt.Errorf("board: insertion index %d out of range for %s", idx, c)
	}
	crd.Dice = append(crd.Dice, card.Die{})
	copy(crd.Dice[idx+1:], crd.Dice[idx:])
	crd.Dice[idx] = die
	return nil
}

// RemoveDieAt removes and returns the die at zero-based stack index
// idx, regardless of whether it is the top die (used by Fight
// resolution, which may remove either the bottom or top die).
func (b *Board) RemoveDieAt(c coord.Coord, idx int) (card.Die, error) {
	crd, ok := b.cards[c]
	if !ok {
		return card.Die{}, fmt.Errorf("board: no card at %s", c)
	}
	if idx < 0 || idx >= len(crd.Dice) {
		return card.Die{}, fmt.Errorf("board: index %d out of range for %s", idx, c)
	}
	die := crd.Dice[idx]
	crd.Dice = append(crd.Dice[:idx], crd.Dice[idx+1:]...)
	return die, nil
}

// MoveCard relocates the (necessarily empty) card at from to a new
// coordinate to, which must not already hold a card. Refreshes the
// adjacency and triple caches, since the coordinate set changed.
func (b *Board) MoveCard(from, to coord.Coord) error {
	crd, ok := b.cards[from]
	if !ok {
		return fmt.Errorf("board: no card at %s", from)
	}
	if !crd.IsEmpty() {
		return fmt.Errorf("board: card at %s is not empty, cannot Surprise it", from)
	}
	if _, exists := b.cards[to]; exists {
		return fmt.Errorf("board: card already at %s", to)
	}
	delete(b.cards, from)
	b.cards[to] = crd
	b.refreshCaches()
	return nil
}

// BoundingBox returns (left, right, top, bottom) inclusive over the
// current coordinate set's X and Y extents.
func (b *Board) BoundingBox() (left, right, top, bottom int8) {
	left, right = b.order[0].X, b.order[0].X
	top, bottom = b.order[0].Y, b.order[0].Y
	for _, c := range b.order {
		if c.X < left {
			left = c.X
		}
		if c.X > right {
			right = c.X
		}
		if c.Y < top {
			top = c.Y
		}
		if c.Y > bottom {
			bottom = c.Y
		}
	}
	return
}

// IsConnected reports whether the given coordinate set forms one
// connected component under the board's adjacency relation.
func IsConnected(grid coord.Grid, coords []coord.Coord) bool {
	if len(coords) == 0 {
		return true
	}
	set := make(map[coord.Coord]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	visited := make(map[coord.Coord]bool, len(coords))
	queue := []coord.Coord{coords[0]}
	visited[coords[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range coord.Neighbors(grid, cur) {
			if set[n] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(set)
}

// UserToInternal maps 1-based (row, col) user coordinates — row 1 at
// top, column 1 at left — to the current internal coordinate, per
// spec.md §4.1. Rows are the ascending-Y groups of currently occupied
// coordinates; columns are ascending-X within a row.
func (b *Board) UserToInternal(row, col int) (coord.Coord, error) {
	if row < 1 || col < 1 {
		return coord.Coord{}, fmt.Errorf("board: user coordinates are 1-based, got row=%d col=%d", row, col)
	}
	rows := b.rowsByY()
	if row > len(rows) {
		return coord.Coord{}, fmt.Errorf("board: row %d out of bounds (%d rows)", row, len(rows))
	}
	rowCoords := rows[row-1]
	if col > len(rowCoords) {
		return coord.Coord{}, fmt.Errorf("board: column %d out of bounds (row %d has %d cards)", col, row, len(rowCoords))
	}
	return rowCoords[col-1], nil
}

// InternalToUser is the inverse of UserToInternal.
func (b *Board) InternalToUser(c coord.Coord) (row, col int, err error) {
	rows := b.rowsByY()
	for i, rowCoords := range rows {
		for j, rc := range rowCoords {
			if rc == c {
				return i + 1, j + 1, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("board: coordinate %s not on board", c)
}

// rowsByY groups the current coordinate set into rows (ascending Y),
// each row's coordinates sorted ascending by X.
func (b *Board) rowsByY() [][]coord.Coord {
	byY := make(map[int8][]coord.Coord)
	var ys []int8
	for _, c := range b.order {
		if _, ok := byY[c.Y]; !ok {
			ys = append(ys, c.Y)
		}
		byY[c.Y] = append(byY[c.Y], c)
	}
	sort.Slice(ys, func(i, j int) bool { return ys[i] < ys[j] })
	rows := make([][]coord.Coord, len(ys))
	for i, y := range ys {
		row := byY[y]
		sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })
		rows[i] = row
	}
	return rows
}

// String renders the board as a human-readable grid, one row per
// line, cards space-separated — grounded on
// original_source/rokumon_core/src/board.rs's Display impl.
func (b *Board) String() string {
	rows := b.rowsByY()
	out := ""
	for _, row := range rows {
		for _, c := range row {
			out += b.cards[c].String() + " "
		}
		out += "\n"
	}
	return out
}
