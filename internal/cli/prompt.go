package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mvledder/reversi/internal/reversi"
)

// PromptMove repeatedly asks for a move until the input names a valid one
// for the current player. The error is io.EOF when input ends.
func PromptMove(in *bufio.Reader, out io.Writer, game *reversi.Game) (reversi.TilePos, error) {
	player := game.CurrentPlayer()

	for {
		fmt.Fprintf(out, "Enter a move for %s (e.g. d3): ", player)

		line, err := in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return reversi.TilePos{}, err
		}

		pos, parseErr := reversi.ParseField(line)
		if parseErr != nil {
			fmt.Fprintln(out, parseErr)
			continue
		}

		if !game.IsValidMove(pos, player) {
			fmt.Fprintf(out, "%s is not a valid move, pick a highlighted tile\n", pos.Field())
			continue
		}

		return pos, nil
	}
}
