// Package card implements the dice and card model: die identity and
// comparison, card kinds, and the finite card/dice multiset dealt at
// game construction.
package card

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Color identifies which player a die belongs to, or the neutral
// "joker" color.
type Color int

const (
	Red   Color = iota // player 1
	Black              // player 2
	White              // joker, belongs to no player
)

func (c Color) String() string {
	switch c {
	case Red:
		return "r"
	case Black:
		return "b"
	case White:
		return "w"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// ParseColor parses a single die-color letter, case-insensitively.
func ParseColor(s string) (Color, error) {
	switch s {
	case "r", "R":
		return Red, nil
	case "b", "B":
		return Black, nil
	case "w", "W":
		return White, nil
	default:
		return 0, fmt.Errorf("card: unrecognized die color %q", s)
	}
}

// BelongsToPlayer1 reports whether the die's color is controlled by
// player 1. White dice belong to no player.
func (c Color) BelongsToPlayer1() bool {
	return c == Red
}

// BelongsToPlayer2 reports whether the die's color is controlled by
// player 2.
func (c Color) BelongsToPlayer2() bool {
	return c == Black
}

// Die is a colored, valued token. Two dice are equal (for reserve
// de-duplication purposes) iff both their color and value match —
// same-value dice of the same color are interchangeable.
type Die struct {
	Color Color
	Value int
}

func NewDie(color Color, value int) Die {
	return Die{Color: color, Value: value}
}

func (d Die) String() string {
	return fmt.Sprintf("%s%d", d.Color, d.Value)
}

// CompareDice resolves a fight between two dice on the same card and
// returns (winner, loser). The joker beats any value less than 6 but
// loses to a 6; otherwise strictly higher value wins. On a genuine
// value tie (with the standard deck only possible between two dice of
// the same player, e.g. r2 on r2), the second die (conventionally the
// opponent's, i.e. the one NOT belonging to the mover who triggered
// the fight) loses — callers pass d1 as the mover's own die when one
// side is known, but CompareDice itself is symmetric except for the
// documented tie rule: given equal, non-joker values, d2 loses.
func CompareDice(d1, d2 Die) (winner, loser Die) {
	if d1.Color == White && d2.Color != White && d2.Value == 6 {
		return d2, d1
	}
	if d2.Color == White && d1.Color != White && d1.Value == 6 {
		return d1, d2
	}
	if d1.Color == White && d2.Color != White {
		return d1, d2
	}
	if d2.Color == White && d1.Color != White {
		return d2, d1
	}
	if d1.Value > d2.Value {
		return d1, d2
	}
	if d2.Value > d1.Value {
		return d2, d1
	}
	// Tie: opponent's die (d2, by convention the second-listed die)
	// loses. See SPEC_FULL.md §10(a).
	return d1, d2
}

// Kind is a card's static classification. Gold cards are the
// "stronger" squares for victory-condition weighting; Jade cards are
// "weaker".
type Kind int

const (
	Jade Kind = iota
	Gold
)

func (k Kind) String() string {
	switch k {
	case Jade:
		return "Jade"
	case Gold:
		return "Gold"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a single deck-string character into a card Kind.
func ParseKind(c byte) (Kind, error) {
	switch c {
	case 'g', 'G':
		return Gold, nil
	case 'j', 'J':
		return Jade, nil
	default:
		return 0, fmt.Errorf("card: unrecognized card kind %q", string(c))
	}
}

// Card is a tile of a fixed Kind holding an ordered stack of dice,
// bottom-to-top. A stack holds at most two dice during play.
type Card struct {
	Kind Kind
	Dice []Die // bottom-to-top; Dice[len(Dice)-1] is the top die
}

func NewCard(kind Kind) Card {
	return Card{Kind: kind}
}

// TopDie returns the uncovered die, if any.
func (c Card) TopDie() (Die, bool) {
	if len(c.Dice) == 0 {
		return Die{}, false
	}
	return c.Dice[len(c.Dice)-1], true
}

func (c Card) IsEmpty() bool {
	return len(c.Dice) == 0
}

func (c Card) Height() int {
	return len(c.Dice)
}

func (c Card) String() string {
	s := fmt.Sprintf("%s[", c.Kind)
	for i, d := range c.Dice {
		if i > 0 {
			s += " < "
		}
		s += d.String()
	}
	return s + "]"
}

// Deck is an ordered sequence of card kinds, one per board coordinate
// in layout order, parsed from a string over {'g','j'}.
type Deck []Kind

// ParseDeck parses a deck string such as "gggjjjj".
func ParseDeck(s string) (Deck, error) {
	d := make(Deck, len(s))
	for i := 0; i < len(s); i++ {
		k, err := ParseKind(s[i])
		if err != nil {
			return nil, err
		}
		d[i] = k
	}
	return d, nil
}

// Shuffle randomizes deck order in place using the supplied RNG,
// following the teacher's math/rand-backed shuffle in
// GameState.InitCards, but with an injected source so callers control
// determinism (spec.md §5: no global mutable RNG).
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// StandardPlayer1Dice is the fixed starting reserve for player 1 when
// fights are enabled, grounded on original_source's Player::first.
func StandardPlayer1Dice() []Die {
	return []Die{
		NewDie(Red, 2),
		NewDie(Red, 2),
		NewDie(Red, 4),
		NewDie(Red, 6),
	}
}

// StandardPlayer2Dice is the fixed starting reserve for player 2 when
// fights are enabled, grounded on original_source's Player::second.
func StandardPlayer2Dice() []Die {
	return []Die{
		NewDie(Black, 1),
		NewDie(Black, 3),
		NewDie(Black, 3),
		NewDie(Black, 5),
		NewDie(White, 1),
	}
}
