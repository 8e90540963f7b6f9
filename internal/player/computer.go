package player

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/bot"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type computerPlayer struct {
	mark  string
	delay time.Duration
}

// NewComputer - returns a player driven by the minimax search. The delay keeps
// the bot from answering instantly so a human can follow the game; it never
// changes the chosen cell.
func NewComputer(mark string, delay time.Duration) Player {
	return &computerPlayer{
		mark:  mark,
		delay: delay,
	}
}

func (that *computerPlayer) Mark() string {
	return that.mark
}

func (that *computerPlayer) IsHuman() bool {
	return false
}

func (that *computerPlayer) ChooseMove(ctx context.Context, game *entity.Game) (int, error) {
	if that.delay > 0 {
		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("failed to wait out the move delay: %w", ctx.Err())
		case <-time.After(that.delay):
		}
	}

	cell, err := bot.BestMove(game, that.mark)
	if err != nil {
		return 0, fmt.Errorf("failed to pick a cell: %w", err)
	}

	return cell, nil
}
