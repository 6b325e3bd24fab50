// Package models defines data structures for board annotation.
package models

import "fmt"

// Kind classifies a board cell.
type Kind uint8

const (
	// KindBlank is a cell with no mine and no adjacent mines.
	KindBlank Kind = iota
	// KindMine is a cell holding a mine.
	KindMine
	// KindCount is a blank cell annotated with its adjacent-mine count.
	KindCount
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindMine:
		return "mine"
	case KindCount:
		return "count"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindBlank, KindMine, KindCount:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("unknown cell kind %d", uint8(k))
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "blank":
		*k = KindBlank
	case "mine":
		*k = KindMine
	case "count":
		*k = KindCount
	default:
		return fmt.Errorf("unknown cell kind %q", b)
	}
	return nil
}

// Cell represents a single board position.
type Cell struct {
	// Kind is the semantic value of the cell.
	Kind Kind `json:"kind"`
	// N is the adjacent-mine count (1..8), set only for KindCount.
	N int `json:"n,omitempty"`
}

// Mine reports whether the cell holds a mine.
func (c Cell) Mine() bool { return c.Kind == KindMine }

// Byte renders the cell using the given markers.
func (c Cell) Byte(mine, blank byte) byte {
	switch c.Kind {
	case KindMine:
		return mine
	case KindCount:
		return '0' + byte(c.N)
	}
	return blank
}
