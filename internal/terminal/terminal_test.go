package terminal

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainTerminal(input string) (*Terminal, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, false, false), out
}

func TestParseCell(t *testing.T) {
	t.Run("Accepts letters and digits in either order", func(t *testing.T) {
		cases := map[string]int{
			"A1":    0,
			"a1":    0,
			"1A":    0,
			"C1":    2,
			"B2":    4,
			"2b":    4,
			"3C":    8,
			"c3":    8,
			"11":    0,
			"13":    2,
			"23":    5,
			"33":    8,
			" b 2 ": 4,
		}

		for input, expected := range cases {
			cell, err := ParseCell(input)

			require.NoErrorf(t, err, "input %q", input)
			assert.Equalf(t, expected, cell, "input %q", input)
		}
	})

	t.Run("Rejects everything else", func(t *testing.T) {
		cases := []string{
			"",
			" ",
			"B",
			"4",
			"B22",
			"123",
			"D2",
			"B4",
			"44",
			"AA",
			"0A",
			"A0",
			"--",
			"hello",
		}

		for _, input := range cases {
			_, err := ParseCell(input)

			assert.ErrorIsf(t, err, apperror.ErrInvalidCell, "input %q", input)
		}
	})
}

func TestTerminal_AskCell(t *testing.T) {
	t.Run("Prompts and returns the parsed cell", func(t *testing.T) {
		// Given: a terminal fed one move
		term, out := plainTerminal("b2\n")

		// When: asking X for a cell
		cell, err := term.AskCell(context.Background(), entity.PlayerX)

		// Then: the parsed index comes back and the prompt names the mark
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Contains(t, out.String(), "move for X")
	})

	t.Run("Reads one line per call", func(t *testing.T) {
		// Given: a terminal fed two moves
		term, _ := plainTerminal("A1\nB2\n")

		// When: asking twice
		first, err := term.AskCell(context.Background(), entity.PlayerX)
		require.NoError(t, err)
		second, err := term.AskCell(context.Background(), entity.PlayerO)
		require.NoError(t, err)

		// Then: the lines are consumed in order
		assert.Equal(t, 0, first)
		assert.Equal(t, 4, second)
	})

	t.Run("Returns ErrInvalidCell for unparseable input", func(t *testing.T) {
		// Given: a terminal fed nonsense
		term, _ := plainTerminal("nope\n")

		// When: asking for a cell
		_, err := term.AskCell(context.Background(), entity.PlayerX)

		// Then: an ErrInvalidCell error should be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Returns EOF when the input ends", func(t *testing.T) {
		// Given: a terminal with no input at all
		term, _ := plainTerminal("")

		// When: asking for a cell
		_, err := term.AskCell(context.Background(), entity.PlayerX)

		// Then: the stream end is reported
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Respects a cancelled context", func(t *testing.T) {
		// Given: a cancelled context
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		term, _ := plainTerminal("A1\n")

		// When: asking for a cell
		_, err := term.AskCell(ctx, entity.PlayerX)

		// Then: the cancellation wins over the pending input
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestTerminal_Reject(t *testing.T) {
	t.Run("Explains an occupied cell", func(t *testing.T) {
		term, out := plainTerminal("")

		term.Reject(apperror.ErrCellOccupied)

		assert.Contains(t, out.String(), "already taken")
	})

	t.Run("Explains bad input", func(t *testing.T) {
		term, out := plainTerminal("")

		term.Reject(apperror.ErrInvalidCell)

		assert.Contains(t, out.String(), "not a valid cell")
	})
}

func TestTerminal_RenderBoard(t *testing.T) {
	t.Run("Draws marks on the labelled grid", func(t *testing.T) {
		// Given: a game with an X in the corner and an O in the center
		game := entity.NewGame("123")
		require.NoError(t, game.MakeTurn(entity.PlayerX, 0))
		require.NoError(t, game.MakeTurn(entity.PlayerO, 4))

		term, out := plainTerminal("")

		// When: rendering the board
		term.RenderBoard(game)

		// Then: the grid carries the labels and both marks in place
		rendered := out.String()
		assert.Contains(t, rendered, "    A   B   C")
		assert.Contains(t, rendered, "1 │ X │   │   │")
		assert.Contains(t, rendered, "2 │   │ O │   │")
		assert.Contains(t, rendered, "3 │   │   │   │")
	})

	t.Run("Clears the screen only when asked to", func(t *testing.T) {
		// Given: one terminal with clearing on and one with it off
		game := entity.NewGame("123")

		clearingOut := &bytes.Buffer{}
		clearing := New(strings.NewReader(""), clearingOut, false, true)

		plain, plainOut := plainTerminal("")

		// When: both render the board
		clearing.RenderBoard(game)
		plain.RenderBoard(game)

		// Then: only the clearing terminal emits the erase sequence
		assert.Contains(t, clearingOut.String(), "[2J")
		assert.NotContains(t, plainOut.String(), "[2J")
	})

	t.Run("Highlights the winning line on a colored terminal", func(t *testing.T) {
		// Given: a finished game and a terminal forced to ANSI colors
		game := &entity.Game{
			Board: [9]string{
				entity.PlayerX, entity.PlayerX, entity.PlayerX,
				entity.PlayerO, entity.PlayerO, entity.EmptyCell,
				entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
			},
			Status: entity.StatusFinished,
			Winner: entity.PlayerX,
		}

		out := &bytes.Buffer{}
		term := &Terminal{
			output:  termenv.NewOutput(out, termenv.WithProfile(termenv.ANSI)),
			scanner: bufio.NewScanner(strings.NewReader("")),
		}

		// When: rendering the board
		term.RenderBoard(game)

		// Then: the output carries styling sequences
		assert.Contains(t, out.String(), "\x1b[")
	})
}

func TestTerminal_RenderResult(t *testing.T) {
	t.Run("Announces the winner", func(t *testing.T) {
		game := &entity.Game{Status: entity.StatusFinished, Winner: entity.PlayerX}
		term, out := plainTerminal("")

		term.RenderResult(game)

		assert.Contains(t, out.String(), "Player X wins!")
	})

	t.Run("Announces a tie", func(t *testing.T) {
		game := &entity.Game{Status: entity.StatusFinished, Winner: entity.PlayerTie}
		term, out := plainTerminal("")

		term.RenderResult(game)

		assert.Contains(t, out.String(), "tie")
	})
}

func TestTerminal_RenderWelcome(t *testing.T) {
	t.Run("Names the game and the move format", func(t *testing.T) {
		term, out := plainTerminal("")

		term.RenderWelcome()

		assert.Contains(t, out.String(), "Tic-tac-toe")
		assert.Contains(t, out.String(), "B2")
	})
}
