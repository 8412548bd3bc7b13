package search

import (
	"sync/atomic"
	"time"
)

// Clock abstracts wall-clock reads so tests can inject a synthetic
// clock instead of racing against real time.
type Clock func() time.Time

// Option configures a search run, following the functional-options
// pattern used throughout this module.
type Option func(*config)

type config struct {
	maxDepth      int
	timeBudget    time.Duration
	clock         Clock
	stop          *atomic.Bool
	useTT         bool
	ttSize        int
	checkInterval int64
}

func defaultConfig() config {
	return config{
		maxDepth:      64,
		clock:         time.Now,
		useTT:         true,
		ttSize:        1 << 16,
		checkInterval: 1024,
	}
}

// WithDepthLimit caps iterative deepening at depth. Zero or negative
// leaves the default cap of 64 plies; the time budget, the stop flag
// or a forced mate can end the search earlier.
func WithDepthLimit(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithTimeBudget bounds search wall-clock time. When both a depth
// limit and a time budget are set, whichever is hit first wins.
func WithTimeBudget(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeBudget = d
		}
	}
}

// WithClock injects a deterministic time source, for tests that must
// not depend on wall-clock timing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithStopFlag wires an externally-owned cancellation flag. Search
// polls it at the same cadence as the time budget and aborts the
// instant it observes true.
func WithStopFlag(stop *atomic.Bool) Option {
	return func(c *config) {
		c.stop = stop
	}
}

// WithTranspositionTable toggles the Zobrist-keyed transposition
// table. Enabled by default; tests exercising raw alpha-beta behavior
// without memoization can disable it.
func WithTranspositionTable(enabled bool) Option {
	return func(c *config) {
		c.useTT = enabled
	}
}

// WithTranspositionTableSize sets the table's entry capacity (one
// entry per slot, indexed by hash modulo the size).
func WithTranspositionTableSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.ttSize = n
		}
	}
}
