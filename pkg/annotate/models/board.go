package models

// Board is a rectangular grid of cells indexed as Cells[row][col].
type Board struct {
	// Width is the number of columns.
	Width int `json:"width"`
	// Height is the number of rows.
	Height int `json:"height"`
	// Cells holds Height rows of Width cells each.
	Cells [][]Cell `json:"cells"`
}

// NewBoard returns a board of blank cells.
func NewBoard(width, height int) *Board {
	cells := make([][]Cell, height)
	data := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		cells[y] = data[:width:width]
		data = data[width:]
	}
	return &Board{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// In reports whether (row, col) lies on the board.
func (b *Board) In(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// At returns the cell at (row, col). Out-of-range positions read as blank.
func (b *Board) At(row, col int) Cell {
	if !b.In(row, col) {
		return Cell{}
	}
	return b.Cells[row][col]
}

// Mines returns the number of mine cells on the board.
func (b *Board) Mines() int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c.Mine() {
				n++
			}
		}
	}
	return n
}

// Adjacent counts the mines among the up to eight neighbours of (row, col).
// The window is clipped to the board and never wraps.
func (b *Board) Adjacent(row, col int) int {
	count := 0
	for y := max(0, row-1); y <= min(b.Height-1, row+1); y++ {
		for x := max(0, col-1); x <= min(b.Width-1, col+1); x++ {
			if y == row && x == col {
				continue
			}
			if b.Cells[y][x].Mine() {
				count++
			}
		}
	}
	return count
}

// Rows renders the board as text rows.
func (b *Board) Rows(mine, blank byte) []string {
	rows := make([]string, b.Height)
	buf := make([]byte, b.Width)
	for y, row := range b.Cells {
		for x, c := range row {
			buf[x] = c.Byte(mine, blank)
		}
		rows[y] = string(buf)
	}
	return rows
}
