package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/puyo"
)

type KeySource interface {
	// GetKeys returns the key sets for the next frames. An error ends
	// the session.
	GetKeys(s *kumipuyo.MovingState) ([]puyo.KeySet, error)
}

type Glyphs struct {
	Axis  string
	Child string
	// Colors overrides Color.Glyph for the colors it lists.
	Colors map[puyo.Color]string
}

type CLI struct {
	frames []puyo.KeySet
	s      kumipuyo.MovingState

	Field  puyo.Field
	Config *kumipuyo.Config
	Start  kumipuyo.Pos
	Glyphs *Glyphs
	Out    io.Writer
	Input  KeySource
}

var DefaultGlyphs = Glyphs{
	Axis:  "O",
	Child: "o",
}

var UnicodeGlyphs = Glyphs{
	Axis:  "◉",
	Child: "○",
	Colors: map[puyo.Color]string{
		puyo.Empty: "·",
		puyo.Wall:  "█",
		puyo.Ojama: "◇",
		puyo.Iron:  "▣",
	},
}

// Play steps a pair from Start until it locks or Input fails, and
// returns the last state.
func (c *CLI) Play() (kumipuyo.MovingState, error) {
	c.frames = nil
	c.s = kumipuyo.New(c.Config, c.Start)
	for {
		c.render()
		if c.s.Grounded {
			fmt.Fprintf(c.Out, "Locked at %s after %d frames.\n", c.s.Pos, len(c.frames))
			return c.s, nil
		}
		keys, err := c.Input.GetKeys(&c.s)
		if err != nil {
			return c.s, err
		}
		for _, ks := range keys {
			if c.s.Grounded {
				break
			}
			down := c.s.Move(c.Field, ks)
			c.frames = append(c.frames, ks)
			if down {
				fmt.Fprintf(c.Out, "%d. %s (drop)\n", len(c.frames), ks)
			} else {
				fmt.Fprintf(c.Out, "%d. %s\n", len(c.frames), ks)
			}
		}
	}
}

// Frames returns the key sets played so far.
func (c *CLI) Frames() []puyo.KeySet {
	return c.frames
}

func (c *CLI) render() {
	RenderField(c.Glyphs, c.Out, c.Field, &c.s)
}

// RenderField draws rows 14 down to 1 of f with the pair in s, if any,
// drawn over the field.
func RenderField(g *Glyphs, out io.Writer, f puyo.Field, s *kumipuyo.MovingState) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for y := puyo.MapHeight - 2; y >= 1; y-- {
		fmt.Fprintf(w, "%d.\t", y)
		for x := 1; x <= puyo.Width; x++ {
			fmt.Fprintf(w, "%s\t", g.cell(f, s, x, y))
		}
		fmt.Fprintf(w, "\n")
		if y == puyo.Height+1 {
			fmt.Fprintf(w, "\t")
			for x := 1; x <= puyo.Width; x++ {
				fmt.Fprintf(w, "-\t")
			}
			fmt.Fprintf(w, "\n")
		}
	}
	fmt.Fprintf(w, "\t")
	for x := 1; x <= puyo.Width; x++ {
		fmt.Fprintf(w, "%d\t", x)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	if s != nil {
		fmt.Fprintf(out, "pos: %s fall: %d grounded: %d", s.Pos, s.RestFramesForFreefall, s.NumGrounded)
		if s.Grounding {
			fmt.Fprintf(out, " (resting)")
		}
		fmt.Fprintln(out)
	}
}

func (g *Glyphs) cell(f puyo.Field, s *kumipuyo.MovingState, x, y int) string {
	if s != nil {
		switch {
		case s.Pos.AxisX() == x && s.Pos.AxisY() == y:
			return g.Axis
		case s.Pos.ChildX() == x && s.Pos.ChildY() == y:
			return g.Child
		}
	}
	c := f.Color(x, y)
	if str, ok := g.Colors[c]; ok {
		return str
	}
	return string(c.Glyph())
}
