package ai

import (
	"errors"
	"fmt"
	"math"

	"github.com/mvledder/reversi/internal/reversi"
)

const (
	// DefaultDepth is the search depth used when none is configured.
	DefaultDepth = 4

	// MaxDepth caps client-supplied depths: the search is exponential in depth.
	MaxDepth = 8
)

// ErrNoMoves is returned by move pickers when the side to move has to pass.
var ErrNoMoves = errors.New("no valid moves")

// SearchResult is a chosen move with its negamax score.
type SearchResult struct {
	Move  reversi.TilePos
	Score int
}

// Searcher picks moves with a fixed-depth negamax search.
type Searcher struct {
	Depth    int
	Evaluate Evaluator
}

// NewSearcher creates a searcher with the disc-differential evaluator.
func NewSearcher(depth int) *Searcher {
	return &Searcher{Depth: depth, Evaluate: DiscDifference}
}

// BestMove returns the highest-scoring move for the player to move. Ties
// break towards the first move in row-major order, so repeated calls on the
// same game return the same result. It fails on terminal games and when the
// side to move has to pass.
func (s *Searcher) BestMove(game *reversi.Game) (SearchResult, error) {
	if game.IsTerminal() {
		return SearchResult{}, reversi.ErrGameOver
	}

	player := game.CurrentPlayer()
	moves := game.ValidMoves(player)
	if len(moves) == 0 {
		return SearchResult{}, ErrNoMoves
	}

	best := SearchResult{Score: math.MinInt}
	for _, move := range moves {
		child := game.Clone()
		if err := child.ApplyMove(move, player); err != nil {
			return SearchResult{}, fmt.Errorf("searching move %s: %w", move.Field(), err)
		}

		if score := s.Score(child, s.Depth-1, player); score > best.Score {
			best = SearchResult{Move: move, Score: score}
		}
	}

	return best, nil
}

// Score returns the negamax value of game searched to the given depth, from
// the perspective of player. At depth 0 and on terminal games it is exactly
// the static evaluation. Each branch explores an independent clone, so
// sibling branches never see each other's mutations.
//
// When the side to move has to pass, the search continues with the opponent
// at reduced depth without flipping the sign: the perspective only switches
// when a move is actually made.
func (s *Searcher) Score(game *reversi.Game, depth int, player reversi.Piece) int {
	if depth <= 0 || game.IsTerminal() {
		return s.Evaluate(game, player)
	}

	current := game.CurrentPlayer()
	moves := game.ValidMoves(current)

	if len(moves) == 0 {
		passed := game.Clone()
		if err := passed.Pass(); err != nil {
			return s.Evaluate(game, player)
		}

		return s.Score(passed, depth-1, player)
	}

	best := math.MinInt
	for _, move := range moves {
		child := game.Clone()
		if err := child.ApplyMove(move, current); err != nil {
			continue
		}

		if score := s.Score(child, depth-1, current); score > best {
			best = score
		}
	}

	if current == player {
		return best
	}

	// Zero-sum: the opponent's best line is the worst case for player.
	return -best
}
