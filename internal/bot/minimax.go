package bot

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// winScore is the value of a won game. Depth does not scale it, a late win
// counts the same as an immediate one.
const winScore = 10

// BestMove - searches the full game tree with minimax and alpha-beta pruning
// and returns the strongest cell for the given mark. Cells are tried in
// row-major order and the first best one wins ties, so the result is
// deterministic for a given position.
func BestMove(game *entity.Game, mark string) (int, error) {
	cells := game.AvailableCells()
	if len(cells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	bestCell := cells[0]
	bestScore := math.MinInt

	for _, cell := range cells {
		next := game.Clone()
		if err := next.MakeTurn(mark, cell); err != nil {
			return 0, fmt.Errorf("failed to try cell %d: %w", cell, err)
		}

		if value := minimax(next, mark, false, math.MinInt, math.MaxInt); value > bestScore {
			bestScore = value
			bestCell = cell
		}
	}

	return bestCell, nil
}

// minimax - scores a position from mark's perspective. The maximizing flag
// flips on every ply; alpha and beta bound the values both sides can still
// force, and a branch is cut as soon as the window closes.
func minimax(game *entity.Game, mark string, maximizing bool, alpha, beta int) int {
	if game.IsFinished() {
		return score(game, mark)
	}

	if maximizing {
		best := math.MinInt
		for _, cell := range game.AvailableCells() {
			next := game.Clone()
			_ = next.MakeTurn(next.Turn, cell) // the cell comes from AvailableCells, the move cannot fail

			if value := minimax(next, mark, false, alpha, beta); value > best {
				best = value
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for _, cell := range game.AvailableCells() {
		next := game.Clone()
		_ = next.MakeTurn(next.Turn, cell)

		if value := minimax(next, mark, true, alpha, beta); value < best {
			best = value
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}

	return best
}

// score - evaluates a finished or cut-off game for the given mark: winScore
// when the mark has won, -winScore when the opponent has, 0 for a tie or an
// unfinished position.
func score(game *entity.Game, mark string) int {
	switch game.Winner {
	case mark:
		return winScore
	case entity.OpponentMark(mark):
		return -winScore
	default:
		return 0
	}
}
