package game

import (
	"fmt"

	"rokumon/board"
	"rokumon/card"
)

// Rules is the enumerated set of flags governing legality, fixed for
// the lifetime of a Game.
type Rules struct {
	EnableFight    bool
	EnableSurprise bool
	StartingPlayer int // 1 or 2
}

// Option configures a Game at construction, following the functional-
// options pattern used throughout this codebase's search construction.
type Option func(*config)

type config struct {
	layout         board.Layout
	deck           string
	shuffle        bool
	seed           uint64
	seedSet        bool
	enableFight    bool
	enableSurprise bool
	startingPlayer int
}

func defaultConfig() config {
	return config{
		layout:         board.Bricks7,
		deck:           "gggjjjj",
		enableFight:    true,
		enableSurprise: false,
		startingPlayer: 1,
	}
}

// WithLayout selects the board shape. Default Bricks7.
func WithLayout(l board.Layout) Option {
	return func(c *config) { c.layout = l }
}

// WithCards sets the deck string, kinds in layout order.
func WithCards(deck string) Option {
	return func(c *config) { c.deck = deck }
}

// WithShuffle enables deck randomization at construction.
func WithShuffle(enable bool) Option {
	return func(c *config) { c.shuffle = enable }
}

// WithSeed pins the shuffle RNG's seed. If never called, a time-
// derived seed is used.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed, c.seedSet = seed, true }
}

// WithFight toggles Fight legality. Default true.
func WithFight(enable bool) Option {
	return func(c *config) { c.enableFight = enable }
}

// WithSurprise toggles Surprise legality. Default false.
func WithSurprise(enable bool) Option {
	return func(c *config) { c.enableSurprise = enable }
}

// WithStartingPlayer sets which player moves first (1 or 2). Default 1.
func WithStartingPlayer(player int) Option {
	return func(c *config) { c.startingPlayer = player }
}

func (c config) validate() error {
	if c.layout != board.Bricks7 && c.layout != board.Square6 {
		return fmt.Errorf("game: unrecognized layout %s", c.layout)
	}
	if _, err := card.ParseDeck(c.deck); err != nil {
		return fmt.Errorf("game: invalid cards option: %w", err)
	}
	if len(c.deck) != c.layout.Size() {
		return fmt.Errorf("game: cards option has length %d, layout %s needs %d", len(c.deck), c.layout, c.layout.Size())
	}
	if c.startingPlayer != 1 && c.startingPlayer != 2 {
		return fmt.Errorf("game: starting player must be 1 or 2, got %d", c.startingPlayer)
	}
	return nil
}
