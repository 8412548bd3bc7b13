// Command perft counts the move tree below a Rokumon position to a
// fixed depth, exercising only the documented core API (construct,
// enumerate, apply, undo) per SPEC_FULL.md §1's "parallel perft" tool
// allowance.
package main

import (
	"flag"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rokumon/board"
	"rokumon/game"
)

func main() {
	layoutFlag := flag.String("layout", "bricks7", "board layout: bricks7 or square6")
	cardsFlag := flag.String("cards", "gggjjjj", "deck string, kinds in layout order")
	depthFlag := flag.Int("depth", 4, "perft depth")
	fightFlag := flag.Bool("fight", true, "enable Fight moves")
	surpriseFlag := flag.Bool("surprise", false, "enable Surprise moves")
	seedFlag := flag.Uint64("seed", 0, "shuffle seed (0 = time-derived)")
	shuffleFlag := flag.Bool("shuffle", false, "shuffle the deck before dealing")
	verboseFlag := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	if *verboseFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	layout, err := board.ParseLayout(*layoutFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("perft: invalid layout")
	}

	opts := []game.Option{
		game.WithLayout(layout),
		game.WithCards(*cardsFlag),
		game.WithFight(*fightFlag),
		game.WithSurprise(*surpriseFlag),
		game.WithShuffle(*shuffleFlag),
	}
	if *seedFlag != 0 {
		opts = append(opts, game.WithSeed(*seedFlag))
	}

	g, err := game.NewGame(opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("perft: could not construct game")
	}

	start := time.Now()
	for d := 1; d <= *depthFlag; d++ {
		count := perft(g, d)
		elapsed := time.Since(start)
		log.Info().
			Int("depth", d).
			Int64("nodes", count).
			Dur("elapsed", elapsed).
			Msg("perft")
	}
}

// perft counts the leaves of the move tree rooted at g at exactly
// depth plies, mutating g via Apply/Undo and restoring it exactly
// before returning - the same discipline the search package relies
// on.
func perft(g *game.Game, depth int) int64 {
	if depth == 0 {
		return 1
	}
	if g.Result != game.InProgress {
		return 1
	}

	var count int64
	for _, m := range g.LegalMoves() {
		if err := g.Apply(m); err != nil {
			log.Fatal().Err(err).Str("move", m.String()).Msg("perft: generator produced an illegal move")
		}
		count += perft(g, depth-1)
		if err := g.Undo(); err != nil {
			log.Fatal().Err(err).Msg("perft: undo failed")
		}
	}
	return count
}
