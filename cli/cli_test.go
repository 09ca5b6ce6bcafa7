package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/puyo"
	"github.com/nelhage/puyotician/puyotest"
)

func TestPlayLocks(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(strings.Repeat("v,", 29) + "v\n"))
	c := &CLI{
		Field: puyotest.Field(""),
		Start: kumipuyo.InitialPos,
		Out:   &out,
		Input: NewLineReader(&out, in),
	}
	s, err := c.Play()
	require.NoError(t, err)
	assert.True(t, s.Grounded)
	assert.Equal(t, kumipuyo.Pos{X: 3, Y: 1, R: 0}, s.Pos)
	// a held drop moves one row every other frame, then locks on the
	// second accepted drop once resting
	assert.Len(t, c.Frames(), 24)
	assert.Equal(t, 13, strings.Count(out.String(), "(drop)"))
	assert.Contains(t, out.String(), "Locked at 3,1,0")
}

func TestPlayEndOfInput(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(">\n\n"))
	c := &CLI{
		Field: puyotest.Field(""),
		Start: kumipuyo.InitialPos,
		Out:   &out,
		Input: NewLineReader(&out, in),
	}
	s, err := c.Play()
	assert.Equal(t, io.EOF, err)
	assert.False(t, s.Grounded)
	assert.Equal(t, 4, s.Pos.X)
	assert.Len(t, c.Frames(), 2)
}

func TestLineReaderRetries(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("x\n>A,<\n"))
	s := kumipuyo.New(nil, kumipuyo.InitialPos)
	ks, err := NewLineReader(&out, in).GetKeys(&s)
	require.NoError(t, err)
	assert.Equal(t, []puyo.KeySet{
		puyo.Keys(puyo.Right, puyo.RightTurn),
		puyo.Keys(puyo.Left),
	}, ks)
	assert.Contains(t, out.String(), "parse error: frame 0: bad key 'x'\n")
}

func TestRenderField(t *testing.T) {
	var out bytes.Buffer
	f := puyotest.Field("RB....")
	s := kumipuyo.New(nil, kumipuyo.Pos{X: 2, Y: 2, R: 1})
	RenderField(nil, &out, f, &s)
	lines := strings.Split(out.String(), "\n")

	var row1, row2 string
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "1."):
			row1 = l
		case strings.HasPrefix(l, "2."):
			row2 = l
		}
	}
	assert.Equal(t, []string{"1.", "R", "B", ".", ".", ".", "."}, strings.Fields(row1))
	assert.Equal(t, []string{"2.", ".", "O", "o", ".", ".", "."}, strings.Fields(row2))
	assert.Contains(t, out.String(), "pos: 2,2,1")
}

func TestRenderUnicode(t *testing.T) {
	var out bytes.Buffer
	RenderField(&UnicodeGlyphs, &out, puyotest.Field("@....."), nil)
	assert.Contains(t, out.String(), "◇")
	assert.NotContains(t, out.String(), "pos:")
}
