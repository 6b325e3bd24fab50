package annotate

import (
	"errors"

	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/parser"
)

// Annotate replaces every blank cell of board with the number of mines among
// its eight neighbours, leaving it blank when there are none. Mines ('*') are
// copied unchanged. The input is not modified.
//
// An empty board yields an empty result and a board whose first row is empty
// yields [""]. Width is taken from the first row: longer rows are truncated,
// missing cells in shorter rows read as blank, and unrecognized bytes are
// annotated as if they were blank.
func Annotate(board []string) []string {
	return annotate(board, DefaultMine, DefaultBlank)
}

// AnnotateWithOptions annotates board using the markers in opts.
// With opts.Strict set the board is validated first.
func AnnotateWithOptions(board []string, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Strict {
		if err := Validate(board, opts); err != nil {
			return nil, err
		}
	}
	return annotate(board, opts.Mine, opts.Blank), nil
}

// Validate reports the first ragged row or unrecognized byte in board.
func Validate(board []string, opts Options) error {
	if _, err := parser.ParseRows(board, opts.Mine, opts.Blank, true); err != nil {
		var cellErr *parser.CellError
		if errors.As(err, &cellErr) {
			return NewBoardError(cellErr.Row, cellErr.Col, cellErr.Err)
		}
		return err
	}
	return nil
}

// annotate counts with an accumulator: each mine bumps the counters of its
// clipped 3x3 window, then every non-mine cell renders its counter.
func annotate(board []string, mine, blank byte) []string {
	height := len(board)
	if height == 0 {
		return []string{}
	}
	width := len(board[0])
	if width == 0 {
		return []string{""}
	}

	counts := make([]uint8, width*height)
	for y, row := range board {
		for x := 0; x < width && x < len(row); x++ {
			if row[x] != mine {
				continue
			}
			for ny := max(0, y-1); ny <= min(height-1, y+1); ny++ {
				for nx := max(0, x-1); nx <= min(width-1, x+1); nx++ {
					counts[ny*width+nx]++
				}
			}
		}
	}

	out := make([]string, height)
	buf := make([]byte, width)
	for y, row := range board {
		for x := 0; x < width; x++ {
			n := counts[y*width+x]
			switch {
			case x < len(row) && row[x] == mine:
				buf[x] = mine
			case n == 0:
				buf[x] = blank
			default:
				buf[x] = '0' + n
			}
		}
		out[y] = string(buf)
	}
	return out
}
