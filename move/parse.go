package move

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"rokumon/board"
	"rokumon/card"
	"rokumon/coord"
)

// ParseError reports a textual move (or sub-token) that did not
// match the grammar documented on Parse.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("move: cannot parse %q: %s", e.Input, e.Reason)
}

// ParseDie parses a die literal: a color letter in {r, b, w} followed
// by a value 1..6, case-insensitively, e.g. "r2", "b5", "w1".
func ParseDie(s string) (card.Die, error) {
	if len(s) != 2 {
		return card.Die{}, &ParseError{Input: s, Reason: "expected a color letter followed by a digit, e.g. r2"}
	}
	color, err := card.ParseColor(s[0:1])
	if err != nil {
		return card.Die{}, &ParseError{Input: s, Reason: err.Error()}
	}
	value, err := strconv.Atoi(s[1:2])
	if err != nil || value < 1 || value > 6 {
		return card.Die{}, &ParseError{Input: s, Reason: "die value must be 1..6"}
	}
	return card.NewDie(color, value), nil
}

// ParseCoord parses a coordinate literal, either the user form rNcM
// (resolved against b) or the internal triple form "<x, y, z>".
func ParseCoord(s string, b *board.Board) (coord.Coord, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		return parseInternalCoord(s)
	}
	return parseUserCoord(s, b)
}

func parseUserCoord(s string, b *board.Board) (coord.Coord, error) {
	if len(s) != 4 {
		return coord.Coord{}, &ParseError{Input: s, Reason: "expected four characters like r1c2"}
	}
	lower := strings.ToLower(s)
	if lower[0] != 'r' || lower[2] != 'c' {
		return coord.Coord{}, &ParseError{Input: s, Reason: "expected form rNcM"}
	}
	row, err1 := strconv.Atoi(lower[1:2])
	col, err2 := strconv.Atoi(lower[3:4])
	if err1 != nil || err2 != nil {
		return coord.Coord{}, &ParseError{Input: s, Reason: "row and column must be digits"}
	}
	if b == nil {
		return coord.Coord{}, &ParseError{Input: s, Reason: "user coordinates require a board to resolve against"}
	}
	c, err := b.UserToInternal(row, col)
	if err != nil {
		return coord.Coord{}, &ParseError{Input: s, Reason: err.Error()}
	}
	return c, nil
}

func parseInternalCoord(s string) (coord.Coord, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return coord.Coord{}, &ParseError{Input: s, Reason: "expected <x, y, z>"}
	}
	var xyz [3]int8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return coord.Coord{}, &ParseError{Input: s, Reason: "coordinate components must be integers"}
		}
		xyz[i] = int8(v)
	}
	return coord.Coord{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// tokenize splits s on whitespace like strings.Fields, except a
// "<...>" span (the internal coordinate form's embedded ", " commas)
// is kept as one token instead of being split apart, so the tokenizer
// stays the exact inverse of Move.String()/Coord.String().
func tokenize(s string) []string {
	var tokens []string
	var b strings.Builder
	depth := 0
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '<':
			depth++
			b.WriteRune(r)
		case r == '>':
			if depth > 0 {
				depth--
			}
			b.WriteRune(r)
		case unicode.IsSpace(r) && depth == 0:
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// Parse parses a full move string against b, per the grammar:
//
//	place <die> at <coord>
//	move <die> from <coord> to <coord>
//	fight at <coord>
//	surprise from <coord> to <coord>
//	submit
func Parse(s string, b *board.Board) (Move, error) {
	fields := tokenize(strings.TrimSpace(s))
	if len(fields) == 0 {
		return Move{}, &ParseError{Input: s, Reason: "empty input"}
	}

	verb := strings.ToLower(fields[0])
	switch verb {
	case "place":
		if len(fields) != 4 || strings.ToLower(fields[2]) != "at" {
			return Move{}, &ParseError{Input: s, Reason: "expected: place <die> at <coord>"}
		}
		die, err := ParseDie(fields[1])
		if err != nil {
			return Move{}, err
		}
		c, err := ParseCoord(fields[3], b)
		if err != nil {
			return Move{}, err
		}
		return NewPlace(die, c), nil

	case "move":
		if len(fields) != 6 || strings.ToLower(fields[2]) != "from" || strings.ToLower(fields[4]) != "to" {
			return Move{}, &ParseError{Input: s, Reason: "expected: move <die> from <coord> to <coord>"}
		}
		die, err := ParseDie(fields[1])
		if err != nil {
			return Move{}, err
		}
		from, err := ParseCoord(fields[3], b)
		if err != nil {
			return Move{}, err
		}
		to, err := ParseCoord(fields[5], b)
		if err != nil {
			return Move{}, err
		}
		return NewMove(die, from, to), nil

	case "fight":
		if len(fields) != 3 || strings.ToLower(fields[1]) != "at" {
			return Move{}, &ParseError{Input: s, Reason: "expected: fight at <coord>"}
		}
		c, err := ParseCoord(fields[2], b)
		if err != nil {
			return Move{}, err
		}
		return NewFight(c), nil

	case "surprise":
		if len(fields) != 5 || strings.ToLower(fields[1]) != "from" || strings.ToLower(fields[3]) != "to" {
			return Move{}, &ParseError{Input: s, Reason: "expected: surprise from <coord> to <coord>"}
		}
		from, err := ParseCoord(fields[2], b)
		if err != nil {
			return Move{}, err
		}
		to, err := ParseCoord(fields[4], b)
		if err != nil {
			return Move{}, err
		}
		return NewSurprise(from, to), nil

	case "submit":
		if len(fields) != 1 {
			return Move{}, &ParseError{Input: s, Reason: "expected: submit"}
		}
		return NewSubmit(), nil

	default:
		return Move{}, &ParseError{Input: s, Reason: fmt.Sprintf("unrecognized move verb %q", fields[0])}
	}
}
