package terminal

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// RenderWelcome - greets the players and explains the move format.
func (that *Terminal) RenderWelcome() {
	fmt.Fprintln(that.output, "Tic-tac-toe. Name a cell with a column letter and a row number, like B2.")
	fmt.Fprintln(that.output)
}

// RenderBoard - draws the grid with A..C column headers and 1..3 row labels.
// On a finished game the winning line is highlighted.
func (that *Terminal) RenderBoard(game *entity.Game) {
	if that.clearScreen {
		that.output.ClearScreen()
	}

	highlighted := make(map[int]bool)
	for _, cell := range game.WinningCells() {
		highlighted[cell] = true
	}

	fmt.Fprintln(that.output, "    A   B   C")
	fmt.Fprintln(that.output, "  ┌───┬───┬───┐")

	for row := 0; row < 3; row++ {
		fmt.Fprintf(that.output, "%d │", row+1)
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			fmt.Fprintf(that.output, " %s │", that.cellText(game, cell, highlighted[cell]))
		}
		fmt.Fprintln(that.output)

		if row < 2 {
			fmt.Fprintln(that.output, "  ├───┼───┼───┤")
		}
	}

	fmt.Fprintln(that.output, "  └───┴───┴───┘")
}

// RenderResult - announces the outcome of a finished game.
func (that *Terminal) RenderResult(game *entity.Game) {
	if game.Winner == entity.PlayerTie {
		fmt.Fprintln(that.output, "Nobody wins, it is a tie.")
		return
	}

	fmt.Fprintf(that.output, "Player %s wins!\n", that.styledMark(game.Winner))
}

func (that *Terminal) cellText(game *entity.Game, cell int, highlighted bool) string {
	mark := game.Board[cell]
	if mark == entity.EmptyCell {
		return " "
	}

	style := that.markStyle(mark)
	if highlighted {
		style = style.Bold().Underline()
	}

	return style.String()
}
