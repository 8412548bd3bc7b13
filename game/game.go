// Package game implements the Rokumon rules engine: reserves, turn
// order, the legality predicate, reversible apply/undo, terminal
// detection, move generation, and static evaluation.
package game

import (
	"time"

	"golang.org/x/exp/rand"

	"rokumon/board"
	"rokumon/card"
)

// Result classifies a Game's outcome.
type Result int

const (
	InProgress Result = iota
	Player1Won
	Player2Won
	Draw
)

func (r Result) String() string {
	switch r {
	case InProgress:
		return "InProgress"
	case Player1Won:
		return "Player1Won"
	case Player2Won:
		return "Player2Won"
	case Draw:
		return "Draw"
	default:
		return "Result(unknown)"
	}
}

// maxPlies is the hard move-limit guard that finitizes the game
// (spec.md §4.4: 200 plies without a terminal condition is a Draw).
const maxPlies = 200

// Game holds the full mutable state of a Rokumon position: the board,
// both reserves, side-to-move, rules, move history (for undo), and a
// cached Zobrist hash.
type Game struct {
	Board          *board.Board
	Reserves       [2]Reserve // index 0 = player 1, index 1 = player 2
	Player1ToMove  bool
	Rules          Rules
	History        []historyEntry
	Result         Result
	Ply            int

	hash    uint64
	zobrist *zobrist

	// initial bounding box of the layout as dealt, before any
	// Surprise relocation - the convex enclosure Surprise must
	// respect (SPEC_FULL.md §10(b)).
	initLeft, initRight, initTop, initBottom int8
}

func (g *Game) initialBounds() (left, right, top, bottom int8) {
	return g.initLeft, g.initRight, g.initTop, g.initBottom
}

// NewGame constructs a Game from Options, dealing the deck onto the
// layout and seeding both reserves. A malformed Options value (wrong
// deck length, unrecognized layout) is rejected here, never later.
func NewGame(opts ...Option) (*Game, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	deck, err := card.ParseDeck(c.deck)
	if err != nil {
		return nil, err
	}
	if c.shuffle {
		seed := c.seed
		if !c.seedSet {
			seed = uint64(time.Now().UnixNano())
		}
		deck.Shuffle(rand.New(rand.NewSource(seed)))
	}

	b, err := board.New(c.layout, deck)
	if err != nil {
		return nil, err
	}

	rules := Rules{
		EnableFight:    c.enableFight,
		EnableSurprise: c.enableSurprise,
		StartingPlayer: c.startingPlayer,
	}

	g := &Game{
		Board:         b,
		Reserves:      initialReserves(rules),
		Player1ToMove: rules.StartingPlayer == 1,
		Rules:         rules,
		zobrist:       newZobrist(),
	}
	g.initLeft, g.initRight, g.initTop, g.initBottom = b.BoundingBox()
	g.hash = g.computeInitialHash()
	return g, nil
}

// initialReserves seeds each player's starting dice, matching
// original_source's Player::first / Player::second: the standard
// asymmetric dice set when fights are enabled, otherwise equal-value
// dice (with fights disabled no fight ever compares dice values, so
// the distinction is moot).
func initialReserves(rules Rules) [2]Reserve {
	if rules.EnableFight {
		return [2]Reserve{
			Reserve(card.StandardPlayer1Dice()),
			Reserve(card.StandardPlayer2Dice()),
		}
	}
	p1 := make(Reserve, 4)
	for i := range p1 {
		p1[i] = card.NewDie(card.Red, 2)
	}
	p2 := make(Reserve, 5)
	for i := range p2 {
		p2[i] = card.NewDie(card.Black, 1)
	}
	return [2]Reserve{p1, p2}
}

func (g *Game) computeInitialHash() uint64 {
	var h uint64
	for _, c := range g.Board.Coords() {
		crd, _ := g.Board.CardAt(c)
		h ^= g.zobrist.presenceAt(c)
		for slot, d := range crd.Dice {
			h ^= g.zobrist.dieAt(d, c, slot)
		}
	}
	if !g.Player1ToMove {
		h ^= g.zobrist.side()
	}
	return h
}

// Hash returns the cached Zobrist-style hash of the current position.
func (g *Game) Hash() uint64 {
	return g.hash
}

// moverIndex and opponentIndex map Player1ToMove-relative
// "mover"/"opponent" to a Reserves slot.
func (g *Game) moverIndex() int {
	if g.Player1ToMove {
		return 0
	}
	return 1
}

func (g *Game) opponentIndex() int {
	return 1 - g.moverIndex()
}

// ownerIndex returns which reserve a die belongs to, for movement,
// fight-participation, and triple-win purposes: White ("joker") dice
// only ever originate from player 2's starting reserve, so they count
// as player 2's own once on the board - only Fight's value resolution
// treats White specially (card.CompareDice), never ownership.
func ownerIndex(d card.Die) int {
	if d.Color.BelongsToPlayer1() {
		return 0
	}
	return 1
}

// isOwnedByMover reports whether die is owned by the side to move,
// for Move/Fight legality and triple-win attribution.
func (g *Game) isOwnedByMover(d card.Die) bool {
	return ownerIndex(d) == g.moverIndex()
}
