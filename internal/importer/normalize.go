package importer

import (
	"strconv"
	"strings"
)

// CellString returns the trimmed value of the 1-based column col, or nil when
// the cell is empty or the row is shorter than col.
func CellString(row []string, col int) *string {
	if col < 1 || col > len(row) {
		return nil
	}

	v := strings.TrimSpace(row[col-1])
	if v == "" {
		return nil
	}

	return &v
}

// CellFloat parses the cell as a float. Empty, absent and unparsable cells
// degrade to nil, never to an error.
func CellFloat(row []string, col int) *float64 {
	s := CellString(row, col)
	if s == nil {
		return nil
	}

	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil
	}

	return &v
}
