package menu

import (
	"errors"
	"strings"
)

// ErrInvalidWidth is returned by Wrap when the row width is below one column.
var ErrInvalidWidth = errors.New("menu: wrap width must be at least 1")

// Wrap splits text on newlines and hard-wraps every segment into rows of at
// most width characters. There is no word-boundary handling. Empty segments
// produce one empty row so blank lines keep their vertical space.
func Wrap(text string, width int) ([]string, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}

	var rows []string
	for _, segment := range strings.Split(text, "\n") {
		line := []rune(segment)
		for len(line) > width {
			rows = append(rows, string(line[:width]))
			line = line[width:]
		}
		rows = append(rows, string(line))
	}
	return rows, nil
}

// wrappedHeight is the number of rows text occupies at width. Width is
// clamped to one column so layout math never fails on tiny terminals.
func wrappedHeight(text string, width int) int {
	rows, _ := Wrap(text, max(width, 1))
	return len(rows)
}
