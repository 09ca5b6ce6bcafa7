package puyo

import "fmt"

type Color byte

const (
	Empty Color = iota
	Wall
	Ojama
	Iron
	Red
	Blue
	Yellow
	Green
)

var NormalColors = []Color{Red, Blue, Yellow, Green}

func (c Color) IsNormal() bool {
	return c >= Red && c <= Green
}

func (c Color) Glyph() byte {
	switch c {
	case Empty:
		return '.'
	case Wall:
		return '#'
	case Ojama:
		return '@'
	case Iron:
		return '&'
	case Red:
		return 'R'
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	case Green:
		return 'G'
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// ColorFromGlyph is the inverse of Glyph. ' ' is accepted as Empty.
func ColorFromGlyph(b byte) (Color, bool) {
	switch b {
	case '.', ' ':
		return Empty, true
	case '#':
		return Wall, true
	case '@':
		return Ojama, true
	case '&':
		return Iron, true
	case 'R':
		return Red, true
	case 'B':
		return Blue, true
	case 'Y':
		return Yellow, true
	case 'G':
		return Green, true
	}
	return Empty, false
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Ojama:
		return "ojama"
	case Iron:
		return "iron"
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	for v := Empty; v <= Green; v++ {
		if v.String() == string(b) {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("bad color %q", b)
}
