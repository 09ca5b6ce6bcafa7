package notation

import (
	"fmt"
	"strings"

	"github.com/nelhage/puyotician/puyo"
)

// MaxRows is the number of rows a field string may describe: the
// twelve visible rows and the two hidden ones.
const MaxRows = puyo.Height + 2

// ParseField reads a field written top row first, six glyphs per row.
// Each line holds one or more whole rows; several rows may share a line
// by concatenation. Tabs and carriage returns are stripped from both
// ends of a line, but spaces are glyphs for empty cells. Blank lines
// are skipped. The last six glyphs are row 1.
func ParseField(s string) (*puyo.PlainField, error) {
	var glyphs []byte
	for i, line := range strings.Split(s, "\n") {
		line = strings.Trim(line, "\t\r")
		if line == "" {
			continue
		}
		if len(line)%puyo.Width != 0 {
			return nil, fmt.Errorf("bad field: line %d has %d glyphs, not a multiple of %d", i+1, len(line), puyo.Width)
		}
		glyphs = append(glyphs, line...)
	}
	rows := len(glyphs) / puyo.Width
	if rows > MaxRows {
		return nil, fmt.Errorf("bad field: %d rows", rows)
	}
	f := puyo.NewPlainField()
	for i := 0; i < rows; i++ {
		y := rows - i
		for x := 1; x <= puyo.Width; x++ {
			b := glyphs[i*puyo.Width+x-1]
			c, ok := puyo.ColorFromGlyph(b)
			if !ok || c == puyo.Wall {
				return nil, fmt.Errorf("bad glyph %q at x=%d y=%d", b, x, y)
			}
			f.Set(x, y, c)
		}
	}
	return f, nil
}

// FormatField renders the rows of f up to its highest column, top row
// first, one row per line.
func FormatField(f puyo.Field) string {
	top := 0
	for x := 1; x <= puyo.Width; x++ {
		for y := MaxRows; y > top; y-- {
			if f.Color(x, y) != puyo.Empty {
				top = y
				break
			}
		}
	}
	var rows []string
	for y := top; y >= 1; y-- {
		var row [puyo.Width]byte
		for x := 1; x <= puyo.Width; x++ {
			row[x-1] = f.Color(x, y).Glyph()
		}
		rows = append(rows, string(row[:]))
	}
	return strings.Join(rows, "\n")
}
