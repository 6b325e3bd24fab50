// Package annotate annotates minesweeper boards with adjacent-mine counts.
package annotate

import "fmt"

// Mode represents the detail level of a Result.
type Mode string

const (
	// ModeLight reports the annotated rows, dimensions and mine count only.
	ModeLight Mode = "light"
	// ModeStandard also echoes the input rows.
	ModeStandard Mode = "standard"
	// ModeVerbose also includes the annotated cell grid.
	ModeVerbose Mode = "verbose"
)

// DefaultMine is the mine marker used by Annotate.
const DefaultMine = '*'

// DefaultBlank is the blank marker used by Annotate.
const DefaultBlank = ' '

// Options configures annotation behavior.
type Options struct {
	// Mine is the byte marking a mine cell.
	Mine byte
	// Blank is the byte marking an empty cell and rendering a zero count.
	Blank byte
	// Strict rejects ragged rows and unrecognized bytes instead of normalising them.
	Strict bool
	// Mode selects what Summarize includes in its Result.
	Mode Mode
}

// DefaultOptions returns default annotation options.
func DefaultOptions() Options {
	return Options{
		Mine:  DefaultMine,
		Blank: DefaultBlank,
		Mode:  ModeStandard,
	}
}

// Validate checks that the markers are usable.
func (o Options) Validate() error {
	if o.Mine == o.Blank {
		return fmt.Errorf("%w: mine and blank markers are both %q", ErrInvalidOptions, o.Mine)
	}
	if isDigit(o.Mine) || isDigit(o.Blank) {
		return fmt.Errorf("%w: markers must not be digits", ErrInvalidOptions)
	}
	switch o.Mode {
	case "", ModeLight, ModeStandard, ModeVerbose:
	default:
		return fmt.Errorf("%w: invalid mode %q", ErrInvalidOptions, o.Mode)
	}
	return nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
