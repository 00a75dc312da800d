package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mvledder/reversi/internal/ai"
	"github.com/mvledder/reversi/internal/cli"
	"github.com/mvledder/reversi/internal/config"
	"github.com/mvledder/reversi/internal/reversi"
)

// aiMoveDelay slows the computer down a little so games are easier to follow.
const aiMoveDelay = 200 * time.Millisecond

// passMessage reports whether the opponent of the player who just moved was
// left without moves. ApplyMove keeps the turn with the mover in that case,
// so the skipped turn has to be announced here.
func passMessage(game *reversi.Game, mover reversi.Piece) (string, bool) {
	if game.IsTerminal() || game.CurrentPlayer() != mover {
		return "", false
	}

	return fmt.Sprintf("%s has no moves and passes", mover.Opposite()), true
}

func main() {
	config.SetLogLevel()

	var (
		depth    = flag.Int("depth", ai.DefaultDepth, "search depth for the computer player")
		blackAI  = flag.Bool("black-ai", false, "let the computer play black")
		whiteAI  = flag.Bool("white-ai", true, "let the computer play white")
		weighted = flag.Bool("weighted", true, "use the corner/edge weighted evaluation")
	)
	flag.Parse()

	searcher := ai.NewSearcher(*depth)
	if *weighted {
		searcher.Evaluate = ai.Weighted
	}

	game := reversi.NewGame()
	in := bufio.NewReader(os.Stdin)

	for !game.IsTerminal() {
		fmt.Println()
		cli.Print(game)
		fmt.Println(cli.FormatScores(game))

		player := game.CurrentPlayer()
		isAI := (player == reversi.Black && *blackAI) || (player == reversi.White && *whiteAI)

		var pos reversi.TilePos

		if isAI {
			result, err := searcher.BestMove(game)
			if err != nil {
				slog.Error("Search failed", "error", err)
				return
			}

			pos = result.Move
			fmt.Printf("%s plays %s\n", player, pos.Field())
			time.Sleep(aiMoveDelay)
		} else {
			var err error

			pos, err = cli.PromptMove(in, os.Stdout, game)
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return
			}
			if err != nil {
				slog.Error("Failed to read move", "error", err)
				return
			}
		}

		if err := game.ApplyMove(pos, player); err != nil {
			slog.Error("Failed to apply move", "move", pos.Field(), "error", err)
			return
		}

		if msg, skipped := passMessage(game, player); skipped {
			fmt.Println(msg)
		}
	}

	fmt.Println()
	cli.Print(game)
	fmt.Println(cli.FormatScores(game))

	switch game.Winner() {
	case reversi.Black:
		fmt.Println("The winner is: black")
	case reversi.White:
		fmt.Println("The winner is: white")
	default:
		fmt.Println("The game ended with a tie")
	}
}
