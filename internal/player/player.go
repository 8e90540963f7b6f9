package player

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	KindHuman   = "human"
	KindRandom  = "random"
	KindMinimax = "minimax"
)

// Player - one side of the game: it is bound to a mark and produces moves for
// it. A player never touches the game itself, the loop applies the chosen cell.
type Player interface {
	Mark() string
	IsHuman() bool
	ChooseMove(ctx context.Context, game *entity.Game) (int, error)
}
