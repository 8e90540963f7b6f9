package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// console - the interactive collaborator the human talks through.
type console interface {
	AskCell(ctx context.Context, mark string) (int, error)
	Reject(reason error)
}

type humanPlayer struct {
	mark    string
	console console
}

// NewHuman - returns a player that asks a live person for every move.
func NewHuman(mark string, console console) Player {
	return &humanPlayer{
		mark:    mark,
		console: console,
	}
}

func (that *humanPlayer) Mark() string {
	return that.mark
}

func (that *humanPlayer) IsHuman() bool {
	return true
}

// ChooseMove - prompts until a legal cell is named. Unparseable input and
// occupied cells are rejected and asked again; only a closed input stream or a
// cancelled context gets out as an error.
func (that *humanPlayer) ChooseMove(ctx context.Context, game *entity.Game) (int, error) {
	for {
		cell, err := that.console.AskCell(ctx, that.mark)
		if errors.Is(err, apperror.ErrInvalidCell) {
			that.console.Reject(err)
			continue
		}

		if err != nil {
			return 0, fmt.Errorf("failed to read a move: %w", err)
		}

		if cell < 0 || cell >= len(game.Board) {
			that.console.Reject(apperror.ErrInvalidCell)
			continue
		}

		if game.Board[cell] != entity.EmptyCell {
			that.console.Reject(apperror.ErrCellOccupied)
			continue
		}

		return cell, nil
	}
}
