package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/puyotician/puyo"
)

func TestParseField(t *testing.T) {
	f, err := ParseField(`
		R.....
		RBB..@
		YYGG&B`)
	require.NoError(t, err)

	assert.Equal(t, puyo.Red, f.Color(1, 3))
	assert.Equal(t, puyo.Empty, f.Color(2, 3))
	assert.Equal(t, puyo.Red, f.Color(1, 2))
	assert.Equal(t, puyo.Blue, f.Color(3, 2))
	assert.Equal(t, puyo.Ojama, f.Color(6, 2))
	assert.Equal(t, puyo.Iron, f.Color(5, 1))
	assert.Equal(t, puyo.Blue, f.Color(6, 1))
	assert.Equal(t, puyo.Wall, f.Color(0, 1))
	assert.Equal(t, puyo.Wall, f.Color(3, 0))
	assert.Equal(t, 3, f.Height(1))
	assert.Equal(t, 0, f.Height(4))
}

func TestParseFieldConcatenated(t *testing.T) {
	a, err := ParseField("R.....RBB..@")
	require.NoError(t, err)
	b, err := ParseField("R.....\nRBB..@")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseFieldSpaces(t *testing.T) {
	f, err := ParseField("R    B\nRRRR  ")
	require.NoError(t, err)
	assert.Equal(t, puyo.Red, f.Color(1, 2))
	assert.Equal(t, puyo.Empty, f.Color(2, 2))
	assert.Equal(t, puyo.Blue, f.Color(6, 2))
	assert.Equal(t, puyo.Red, f.Color(4, 1))
	assert.Equal(t, puyo.Empty, f.Color(5, 1))
	assert.Equal(t, 2, f.Height(1))
	assert.Equal(t, 1, f.Height(4))

	dots, err := ParseField("R....B\nRRRR..")
	require.NoError(t, err)
	assert.Equal(t, dots, f)

	blank, err := ParseField("      \n\tR.....\r\n")
	require.NoError(t, err)
	assert.Equal(t, puyo.Empty, blank.Color(1, 2))
	assert.Equal(t, puyo.Red, blank.Color(1, 1))
}

func TestParseFieldErrors(t *testing.T) {
	cases := []string{
		"RRR",
		"RRRRRX",
		"#.....",
		"R.....\nRR",
		"R   B\nRRRR  ",
		"R.\t...",
		"......\n......\n......\n......\n......\n......\n......\n......\n......\n......\n......\n......\n......\n......\nR.....",
	}
	for _, tc := range cases {
		_, err := ParseField(tc)
		assert.Error(t, err, "ParseField(%q)", tc)
	}
}

func TestFormatField(t *testing.T) {
	in := "..Y...\nR.Y...\nRBBG.@"
	f, err := ParseField(in)
	require.NoError(t, err)
	assert.Equal(t, in, FormatField(f))
	assert.Equal(t, "", FormatField(puyo.NewPlainField()))
}

func TestKeys(t *testing.T) {
	seq, err := ParseKeys("A,,>v, B<")
	require.NoError(t, err)
	require.Len(t, seq, 4)
	assert.True(t, seq[0].HasKey(puyo.RightTurn))
	assert.True(t, seq[1].IsEmpty())
	assert.Equal(t, puyo.Keys(puyo.Right, puyo.Down), seq[2])
	assert.Equal(t, puyo.Keys(puyo.Left, puyo.LeftTurn), seq[3])
	assert.Equal(t, "A,,>v,<B", FormatKeys(seq))

	seq, err = ParseKeys("")
	require.NoError(t, err)
	assert.Empty(t, seq)

	_, err = ParseKeys(">,x")
	assert.Error(t, err)
}
