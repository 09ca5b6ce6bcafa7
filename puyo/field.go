package puyo

import "fmt"

const (
	// MapWidth and MapHeight include the wall border.
	MapWidth  = 8
	MapHeight = 16

	Width  = 6
	Height = 12
)

// Field is a read-only view of a puyo field. Color must be defined
// for every x, y at least one cell beyond the playable area.
type Field interface {
	Color(x, y int) Color
}

// PlainField stores one Color per cell, column-major. Column 0 and
// column 7 and rows 0 and 15 are walls; rows 13 and 14 are hidden.
type PlainField struct {
	cells [MapWidth][MapHeight]Color
}

func NewPlainField() *PlainField {
	f := &PlainField{}
	for x := 0; x < MapWidth; x++ {
		f.cells[x][0] = Wall
		f.cells[x][MapHeight-1] = Wall
	}
	for y := 0; y < MapHeight; y++ {
		f.cells[0][y] = Wall
		f.cells[MapWidth-1][y] = Wall
	}
	return f
}

// Color returns Wall for coordinates outside the map.
func (f *PlainField) Color(x, y int) Color {
	if x < 0 || x >= MapWidth || y < 0 || y >= MapHeight {
		return Wall
	}
	return f.cells[x][y]
}

func (f *PlainField) Set(x, y int, c Color) {
	if x < 0 || x >= MapWidth || y < 0 || y >= MapHeight {
		panic(fmt.Sprintf("PlainField.Set: out of range x=%d y=%d", x, y))
	}
	f.cells[x][y] = c
}

func (f *PlainField) IsEmpty(x, y int) bool {
	return f.Color(x, y) == Empty
}

// Height returns the number of non-empty cells stacked in column x,
// counting from row 1.
func (f *PlainField) Height(x int) int {
	if x < 0 || x >= MapWidth {
		panic(fmt.Sprintf("PlainField.Height: out of range x=%d", x))
	}
	h := 0
	for y := 1; y < MapHeight-1 && f.cells[x][y] != Empty; y++ {
		h++
	}
	return h
}

func (f *PlainField) Clone() *PlainField {
	out := *f
	return &out
}

// CountColor counts cells of color c within the playable area.
func (f *PlainField) CountColor(c Color) int {
	n := 0
	for x := 1; x <= Width; x++ {
		for y := 1; y <= Height+2; y++ {
			if f.cells[x][y] == c {
				n++
			}
		}
	}
	return n
}
