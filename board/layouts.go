package board

import "rokumon/coord"

// Layout names a fixed board shape.
type Layout int

const (
	Bricks7 Layout = iota
	Square6
)

func (l Layout) String() string {
	switch l {
	case Bricks7:
		return "Bricks7"
	case Square6:
		return "Square6"
	default:
		return "Layout(unknown)"
	}
}

// ParseLayout parses a layout name, accepting the long and short
// forms used by the original implementation ("bricks7"/"b7",
// "square6"/"sq6").
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "bricks7", "b7", "Bricks7":
		return Bricks7, nil
	case "square6", "sq6", "Square6":
		return Square6, nil
	default:
		return 0, errUnknownLayout(s)
	}
}

type errUnknownLayout string

func (e errUnknownLayout) Error() string {
	return "board: unknown layout " + string(e)
}

// Grid reports which coordinate geometry a layout uses.
func (l Layout) Grid() coord.Grid {
	switch l {
	case Bricks7:
		return coord.Hex
	case Square6:
		return coord.SquareOffset
	default:
		panic("board: unknown layout")
	}
}

// Size is the number of cards a layout holds.
func (l Layout) Size() int {
	switch l {
	case Bricks7:
		return 7
	case Square6:
		return 6
	default:
		panic("board: unknown layout")
	}
}

// coords returns the layout's coordinates in reading order: rows
// top-to-bottom (ascending Y), columns left-to-right (ascending X)
// within a row. This is both the deck-dealing order and the initial
// user-coordinate row-major order (r1c1 is coords[0], etc.), grounded
// on original_source/rokumon_core/src/board.rs's Board::new, whose
// per-layout nested loops enumerate in exactly this order.
func (l Layout) coords() []coord.Coord {
	switch l {
	case Bricks7:
		// Hex grid: (0,0,0) is the bottom-left position. Two rows:
		// top row y=-1 (3 cards), bottom row y=0 (4 cards).
		out := make([]coord.Coord, 0, 7)
		for y := int8(-1); y <= 0; y++ {
			for x := -y; x < 4; x++ {
				out = append(out, coord.NewHex(x, y))
			}
		}
		return out
	case Square6:
		// Square grid: two rows of three, y=-1 (top) then y=0 (bottom).
		out := make([]coord.Coord, 0, 6)
		for y := int8(-1); y <= 0; y++ {
			for x := int8(0); x < 3; x++ {
				out = append(out, coord.NewSquare(x, y))
			}
		}
		return out
	default:
		panic("board: unknown layout")
	}
}
