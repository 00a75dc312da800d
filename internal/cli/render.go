package cli

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/mvledder/reversi/internal/reversi"
)

// Render returns the board as terminal lines. The current player's valid
// moves are highlighted so a human player can see their options.
func Render(game *reversi.Game) []string {
	valid := make(map[reversi.TilePos]bool)
	for _, move := range game.ValidMoves(game.CurrentPlayer()) {
		valid[move] = true
	}

	lines := make([]string, 0, reversi.Size+1)
	lines = append(lines, "  a b c d e f g h")

	grid := game.Grid()
	for i, cells := range grid.Rows() {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d ", i+1)

		for j, piece := range cells {
			switch {
			case piece == reversi.Black:
				sb.WriteString(aurora.Cyan("● ").String())
			case piece == reversi.White:
				sb.WriteString(aurora.Magenta("○ ").String())
			case valid[reversi.TilePos{Row: i, Col: j}]:
				sb.WriteString(aurora.Yellow("· ").String())
			default:
				sb.WriteString("  ")
			}
		}

		lines = append(lines, sb.String())
	}

	return lines
}

// Print writes the rendered board to stdout.
func Print(game *reversi.Game) {
	for _, line := range Render(game) {
		fmt.Println(line)
	}
}

// FormatScores returns a one-line score report.
func FormatScores(game *reversi.Game) string {
	scores := game.Scores()

	return fmt.Sprintf("Score: %s %d | %s %d",
		aurora.Cyan("●"), scores[reversi.Black],
		aurora.Magenta("○"), scores[reversi.White])
}
