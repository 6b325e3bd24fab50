package parser

import (
	"bufio"
	"io"
)

// ReadRows reads a plain-text board, one row per line.
// CRLF endings are accepted; trailing spaces are kept since blanks are significant.
func ReadRows(r io.Reader) ([]string, error) {
	rows := []string{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
