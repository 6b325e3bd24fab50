package annotate

import (
	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/models"
	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/parser"
)

// Summarize annotates board and collects the result document described by opts.Mode.
func Summarize(board []string, opts Options) (*models.Result, error) {
	rows, err := AnnotateWithOptions(board, opts)
	if err != nil {
		return nil, err
	}

	// Strictness was already enforced above.
	parsed, err := parser.ParseRows(board, opts.Mine, opts.Blank, false)
	if err != nil {
		return nil, err
	}

	res := &models.Result{
		Width:  parsed.Width,
		Height: parsed.Height,
		Mines:  parsed.Mines(),
		Mine:   string(opts.Mine),
		Blank:  string(opts.Blank),
		Rows:   rows,
	}
	// Zero-width boards collapse to a single empty row.
	if parsed.Width == 0 {
		res.Height = 0
	}

	if opts.Mode != ModeLight {
		res.Input = append([]string{}, board...)
	}
	if opts.Mode == ModeVerbose {
		res.Board = AnnotateBoard(parsed)
	}

	return res, nil
}
