package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/gameplay"
	"github.com/rocketscienceinc/tictactoe-cli/internal/player"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
)

var ErrUnknownPlayerKind = errors.New("unknown player kind")

// RunApp - wires the terminal and the configured players and plays one game.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
		// the next signal falls through to the default handler and kills us
		signal.Stop(sigs)
	}()

	term := terminal.New(os.Stdin, os.Stdout, !conf.UI.NoColor, !conf.UI.NoClear)

	seed := conf.Bot.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
	}

	playerX, err := buildPlayer(conf.PlayerX, entity.PlayerX, term, conf, seed)
	if err != nil {
		return fmt.Errorf("failed to build player X: %w", err)
	}

	// the O seat gets its own stream so two random players do not mirror each other
	playerO, err := buildPlayer(conf.PlayerO, entity.PlayerO, term, conf, seed+1)
	if err != nil {
		return fmt.Errorf("failed to build player O: %w", err)
	}

	game, err := gameplay.NewService(logger, term, playerX, playerO)
	if err != nil {
		return fmt.Errorf("failed to wire the game: %w", err)
	}

	term.RenderWelcome()

	finished, err := game.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Game interrupted")
			return nil
		}

		return fmt.Errorf("failed to play the game: %w", err)
	}

	log.Info("Game over", "winner", finished.Winner)

	return nil
}

// buildPlayer - maps a configured kind onto a player implementation.
func buildPlayer(kind, mark string, term *terminal.Terminal, conf *config.Config, seed uint64) (player.Player, error) {
	switch kind {
	case player.KindHuman:
		return player.NewHuman(mark, term), nil
	case player.KindRandom:
		return player.NewRandom(mark, seed), nil
	case player.KindMinimax:
		return player.NewComputer(mark, conf.Bot.MoveDelay), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s, %s or %s)",
			ErrUnknownPlayerKind, kind, player.KindHuman, player.KindRandom, player.KindMinimax)
	}
}
