package gameplay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/player"
)

var ErrWrongPlayerMarks = errors.New("players must hold the X and O marks")

// renderer - the presentation collaborator the loop reports through.
type renderer interface {
	RenderBoard(game *entity.Game)
	RenderResult(game *entity.Game)
}

type Service interface {
	Run(ctx context.Context) (*entity.Game, error)
}

type service struct {
	logger   *slog.Logger
	renderer renderer

	playerX player.Player
	playerO player.Player
}

// NewService - wires two players and a renderer into a playable game.
// The players must carry the X and O marks respectively.
func NewService(logger *slog.Logger, renderer renderer, playerX, playerO player.Player) (Service, error) {
	if playerX.Mark() != entity.PlayerX || playerO.Mark() != entity.PlayerO {
		return nil, ErrWrongPlayerMarks
	}

	return &service{
		logger:   logger,
		renderer: renderer,
		playerX:  playerX,
		playerO:  playerO,
	}, nil
}

// Run - plays one game from the empty board to the end and returns the final
// state. The board is rendered before every move; a human's illegal move is
// asked again, an illegal move by any other player aborts the game.
func (that *service) Run(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID())
	log := that.logger.With("component", "gameplay", "gameID", game.ID)

	log.Info("game started")

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("game interrupted: %w", err)
		}

		that.renderer.RenderBoard(game)

		current := that.currentPlayer(game)

		cell, err := current.ChooseMove(ctx, game)
		if err != nil {
			return game, fmt.Errorf("player %s failed to choose a move: %w", current.Mark(), err)
		}

		if err = game.MakeTurn(current.Mark(), cell); err != nil {
			if current.IsHuman() {
				log.Warn("move rejected", "mark", current.Mark(), "cell", cell, "error", err)
				continue
			}

			return game, fmt.Errorf("player %s made an illegal move to cell %d: %w", current.Mark(), cell, err)
		}

		log.Debug("turn made", "mark", current.Mark(), "cell", cell)
	}

	that.renderer.RenderBoard(game)
	that.renderer.RenderResult(game)

	log.Info("game finished", "winner", game.Winner, "moves", game.MoveCount())

	return game, nil
}

func (that *service) currentPlayer(game *entity.Game) player.Player {
	if game.Turn == entity.PlayerO {
		return that.playerO
	}

	return that.playerX
}
