// Package output renders annotation results.
package output

import "strings"

// ToText joins rows with newlines, terminating the last row.
func ToText(rows []string) []byte {
	if len(rows) == 0 {
		return nil
	}
	return []byte(strings.Join(rows, "\n") + "\n")
}
