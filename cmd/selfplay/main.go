package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/mvledder/reversi/internal/ai"
	"github.com/mvledder/reversi/internal/config"
	"github.com/mvledder/reversi/internal/reversi"
)

func newSearcher(depth int, evaluator string) *ai.Searcher {
	searcher := ai.NewSearcher(depth)

	switch evaluator {
	case "discs":
	case "weighted":
		searcher.Evaluate = ai.Weighted
	default:
		slog.Error("Unknown evaluator", "evaluator", evaluator)
		os.Exit(1)
	}

	return searcher
}

// playGame runs one game between the two searchers. The first plies are
// random so deterministic searchers don't replay the same game every time.
func playGame(black, white *ai.Searcher, randomPlies int, rng *rand.Rand) *reversi.Game {
	game := reversi.NewGame()

	for plies := 0; !game.IsTerminal(); plies++ {
		player := game.CurrentPlayer()

		var pos reversi.TilePos

		if plies < randomPlies {
			move, err := ai.RandomMove(game, rng)
			if err != nil {
				break
			}
			pos = move
		} else {
			searcher := black
			if player == reversi.White {
				searcher = white
			}

			result, err := searcher.BestMove(game)
			if err != nil {
				break
			}
			pos = result.Move
		}

		if err := game.ApplyMove(pos, player); err != nil {
			slog.Error("Self-play produced an illegal move", "move", pos.Field(), "error", err)
			os.Exit(1)
		}
	}

	return game
}

func main() {
	config.SetLogLevel()

	var (
		games       = flag.Int("games", 100, "number of games to play")
		blackDepth  = flag.Int("black-depth", ai.DefaultDepth, "search depth for black")
		whiteDepth  = flag.Int("white-depth", 2, "search depth for white")
		blackEval   = flag.String("black-eval", "weighted", "evaluator for black (discs or weighted)")
		whiteEval   = flag.String("white-eval", "discs", "evaluator for white (discs or weighted)")
		randomPlies = flag.Int("random-plies", 4, "random opening plies per game")
		seed        = flag.Uint64("seed", 1, "seed for the random openings")
	)
	flag.Parse()

	black := newSearcher(*blackDepth, *blackEval)
	white := newSearcher(*whiteDepth, *whiteEval)

	bar := progressbar.NewOptions(*games,
		progressbar.OptionSetDescription("self-play"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
	)

	var blackWins, whiteWins, draws int

	for i := range *games {
		rng := rand.New(rand.NewPCG(*seed, uint64(i)))

		game := playGame(black, white, *randomPlies, rng)

		switch game.Winner() {
		case reversi.Black:
			blackWins++
		case reversi.White:
			whiteWins++
		default:
			draws++
		}

		_ = bar.Add(1)
	}

	_ = bar.Finish()

	fmt.Println()
	fmt.Printf("black (depth %d, %s): %d wins\n", *blackDepth, *blackEval, blackWins)
	fmt.Printf("white (depth %d, %s): %d wins\n", *whiteDepth, *whiteEval, whiteWins)
	fmt.Printf("draws: %d\n", draws)
}
