package kumipuyo

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos is the position of a falling pair: the axis cell and a rotation.
// The child sits above the axis at R=0, right at 1, below at 2 and
// left at 3.
type Pos struct {
	X, Y, R int
}

var InitialPos = Pos{X: 3, Y: 12, R: 0}

var childDX = [4]int{0, 1, 0, -1}
var childDY = [4]int{1, 0, -1, 0}

func (p Pos) AxisX() int { return p.X }
func (p Pos) AxisY() int { return p.Y }

func (p Pos) ChildX() int {
	return p.X + childDX[p.R]
}

func (p Pos) ChildY() int {
	return p.Y + childDY[p.R]
}

func (p Pos) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.R)
}

// ParsePos reads the "x,y,r" form produced by String.
func ParsePos(s string) (Pos, error) {
	bits := strings.Split(s, ",")
	if len(bits) != 3 {
		return Pos{}, fmt.Errorf("bad pos %q: want x,y,r", s)
	}
	var v [3]int
	for i, b := range bits {
		n, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return Pos{}, fmt.Errorf("bad pos %q: %w", s, err)
		}
		v[i] = n
	}
	if v[2] < 0 || v[2] > 3 {
		return Pos{}, fmt.Errorf("bad pos %q: rotation must be 0-3", s)
	}
	return Pos{X: v[0], Y: v[1], R: v[2]}, nil
}
