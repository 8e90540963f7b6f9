package player

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"golang.org/x/exp/rand"
)

type randomPlayer struct {
	mark string
	rng  *rand.Rand
}

// NewRandom - returns a player that picks uniformly among the free cells.
// The seed makes runs reproducible.
func NewRandom(mark string, seed uint64) Player {
	return &randomPlayer{
		mark: mark,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (that *randomPlayer) Mark() string {
	return that.mark
}

func (that *randomPlayer) IsHuman() bool {
	return false
}

func (that *randomPlayer) ChooseMove(_ context.Context, game *entity.Game) (int, error) {
	cells := game.AvailableCells()
	if len(cells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return cells[that.rng.Intn(len(cells))], nil
}
