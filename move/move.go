// Package move implements the Move sum type shared by the generator,
// the rules engine, and the search: Place, Move, Fight, Surprise, and
// Submit, along with their textual grammar.
package move

import (
	"fmt"

	"rokumon/card"
	"rokumon/coord"
)

// Kind discriminates the Move sum type. Dispatch on Kind is a switch,
// never a type hierarchy.
type Kind int

const (
	Place Kind = iota
	Move
	Fight
	Surprise
	Submit
)

func (k Kind) String() string {
	switch k {
	case Place:
		return "Place"
	case Move:
		return "Move"
	case Fight:
		return "Fight"
	case Surprise:
		return "Surprise"
	case Submit:
		return "Submit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Move is a tagged-union value; only the fields relevant to Kind are
// meaningful:
//
//	Place:    Die, To
//	Move:     Die, From, To  (Die names the mover's own top die at From,
//	                          for the grammar's benefit — it is always
//	                          redundant with board_at(From).TopDie())
//	Fight:    At
//	Surprise: From, To
//	Submit:   (none)
type Move struct {
	Kind Kind

	Die  card.Die
	From coord.Coord
	To   coord.Coord
	At   coord.Coord
}

func NewPlace(die card.Die, to coord.Coord) Move {
	return Move{Kind: Place, Die: die, To: to}
}

func NewMove(die card.Die, from, to coord.Coord) Move {
	return Move{Kind: Move, Die: die, From: from, To: to}
}

func NewFight(at coord.Coord) Move {
	return Move{Kind: Fight, At: at}
}

func NewSurprise(from, to coord.Coord) Move {
	return Move{Kind: Surprise, From: from, To: to}
}

func NewSubmit() Move {
	return Move{Kind: Submit}
}

// String renders a move in the grammar Parse accepts, using each
// coordinate's internal <x, y, z> form. It round-trips
// through Parse when given the same board.
func (m Move) String() string {
	switch m.Kind {
	case Place:
		return fmt.Sprintf("place %s at %s", m.Die, m.To)
	case Move:
		return fmt.Sprintf("move %s from %s to %s", m.Die, m.From, m.To)
	case Fight:
		return fmt.Sprintf("fight at %s", m.At)
	case Surprise:
		return fmt.Sprintf("surprise from %s to %s", m.From, m.To)
	case Submit:
		return "submit"
	default:
		return fmt.Sprintf("<invalid move %d>", int(m.Kind))
	}
}

// Equal compares two moves field-by-field for the fields relevant to
// their Kind, used by the generator's own duplicate-detection tests.
func (m Move) Equal(other Move) bool {
	if m.Kind != other.Kind {
		return false
	}
	switch m.Kind {
	case Place:
		return m.Die == other.Die && m.To == other.To
	case Move:
		return m.Die == other.Die && m.From == other.From && m.To == other.To
	case Fight:
		return m.At == other.At
	case Surprise:
		return m.From == other.From && m.To == other.To
	case Submit:
		return true
	default:
		return false
	}
}
