package terminal

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Terminal - the console front of the game: it draws the board and reads moves.
// The input side is an injected reader so tests can script it.
type Terminal struct {
	output  *termenv.Output
	scanner *bufio.Scanner

	clearScreen bool
}

// New - wraps the given reader and writer. With color off every mark is
// printed plain, otherwise the writer's own color support decides.
func New(in io.Reader, out io.Writer, color, clearScreen bool) *Terminal {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Terminal{
		output:      termenv.NewOutput(out, opts...),
		scanner:     bufio.NewScanner(in),
		clearScreen: clearScreen,
	}
}

func (that *Terminal) markStyle(mark string) termenv.Style {
	style := that.output.String(mark)

	switch mark {
	case entity.PlayerX:
		style = style.Foreground(termenv.ANSIBrightRed)
	case entity.PlayerO:
		style = style.Foreground(termenv.ANSIBrightCyan)
	}

	return style
}

func (that *Terminal) styledMark(mark string) string {
	return that.markStyle(mark).String()
}
