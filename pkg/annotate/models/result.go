package models

// Result is the document produced for one annotated board.
type Result struct {
	// Width is the number of columns.
	Width int `json:"width"`
	// Height is the number of rows.
	Height int `json:"height"`
	// Mines is the number of mine cells.
	Mines int `json:"mines"`
	// Mine is the mine marker used by Input and Rows.
	Mine string `json:"mine"`
	// Blank is the blank marker used by Input and Rows.
	Blank string `json:"blank"`
	// Input echoes the board as given (omitted in light mode).
	Input []string `json:"input,omitempty"`
	// Rows is the annotated board.
	Rows []string `json:"rows"`
	// Board is the annotated cell grid (verbose mode only).
	Board *Board `json:"board,omitempty"`
}
