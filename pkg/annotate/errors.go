package annotate

import (
	"errors"
	"fmt"

	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/parser"
)

// ErrRaggedBoard indicates rows of unequal length.
var ErrRaggedBoard = parser.ErrRaggedRow

// ErrInvalidCell indicates a byte that is neither the mine nor the blank marker.
var ErrInvalidCell = parser.ErrUnknownCell

// ErrInvalidOptions indicates unusable annotation options.
var ErrInvalidOptions = errors.New("invalid options")

// BoardError represents a malformed board found during strict validation.
type BoardError struct {
	Row int
	Col int
	Err error
}

func (e *BoardError) Error() string {
	return fmt.Sprintf("invalid board at row %d, col %d: %v", e.Row, e.Col, e.Err)
}

func (e *BoardError) Unwrap() error {
	return e.Err
}

// NewBoardError creates a new BoardError.
func NewBoardError(row, col int, err error) *BoardError {
	return &BoardError{
		Row: row,
		Col: col,
		Err: err,
	}
}
