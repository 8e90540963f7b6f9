package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// AskCell - prompts the given mark for a move and reads one line of input.
// Returns io.EOF when the input stream ends.
func (that *Terminal) AskCell(ctx context.Context, mark string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("input cancelled: %w", err)
	}

	fmt.Fprintf(that.output, "move for %s: ", that.styledMark(mark))

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		return 0, io.EOF
	}

	return ParseCell(that.scanner.Text())
}

// Reject - explains why the last answer was not accepted.
func (that *Terminal) Reject(reason error) {
	if errors.Is(reason, apperror.ErrCellOccupied) {
		fmt.Fprintln(that.output, "That cell is already taken, try another one.")
		return
	}

	fmt.Fprintln(that.output, "That is not a valid cell, use a letter and a digit like B2.")
}

// ParseCell - turns input like "B2", "2b" or "21" into a cell index. A letter
// names the column A..C, a digit names the row 1..3; a pair of digits is read
// as row then column.
func ParseCell(text string) (int, error) {
	cleaned := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	if len(cleaned) != 2 {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, text)
	}

	row, col := -1, -1
	for _, symbol := range cleaned {
		switch {
		case symbol >= 'A' && symbol <= 'C' && col < 0:
			col = int(symbol - 'A')
		case symbol >= '1' && symbol <= '3' && row < 0:
			row = int(symbol - '1')
		case symbol >= '1' && symbol <= '3' && col < 0:
			col = int(symbol - '1')
		default:
			return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, text)
		}
	}

	return row*3 + col, nil
}
