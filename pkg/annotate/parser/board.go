// Package parser converts plain-text boards into cell grids.
package parser

import (
	"errors"
	"fmt"

	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/models"
)

// ErrRaggedRow indicates a row whose length differs from the first row.
var ErrRaggedRow = errors.New("row length differs from first row")

// ErrUnknownCell indicates a byte that is neither the mine nor the blank marker.
var ErrUnknownCell = errors.New("unrecognized cell")

// CellError locates a parse failure on the board.
type CellError struct {
	Row int
	Col int
	Err error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, col %d: %v", e.Row, e.Col, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// ParseRows builds a board from text rows. The width is taken from the first row.
// In strict mode ragged rows and unknown bytes are rejected; otherwise longer rows
// are truncated, missing cells read as blank and unknown bytes are treated as blank.
func ParseRows(rows []string, mine, blank byte, strict bool) (*models.Board, error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	board := models.NewBoard(width, len(rows))

	for y, row := range rows {
		if strict && len(row) != width {
			return nil, &CellError{Row: y, Col: min(len(row), width), Err: ErrRaggedRow}
		}
		for x := 0; x < width && x < len(row); x++ {
			switch row[x] {
			case mine:
				board.Cells[y][x].Kind = models.KindMine
			case blank:
			default:
				if strict {
					return nil, &CellError{Row: y, Col: x, Err: fmt.Errorf("%w %q", ErrUnknownCell, row[x])}
				}
			}
		}
	}

	return board, nil
}
