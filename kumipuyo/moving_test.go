package kumipuyo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/puyotician/puyo"
	"github.com/nelhage/puyotician/puyotest"
)

// slowConfig makes the half-period reset observable within a frame.
func slowConfig() *Config {
	cfg := DefaultConfig
	cfg.FramesFreeFall = 8
	return &cfg
}

func play(t *testing.T, s *MovingState, f puyo.Field, keys string) {
	t.Helper()
	for i, ks := range puyotest.Keys(keys) {
		require.False(t, s.Grounded, "grounded before frame %d", i)
		s.Move(f, ks)
	}
}

func TestMoveRight(t *testing.T) {
	f := puyo.NewPlainField()
	s := New(nil, InitialPos)

	down := s.Move(f, puyo.Keys(puyo.Right))
	assert.False(t, down)
	assert.Equal(t, 4, s.Pos.X)
	assert.Equal(t, DefaultConfig.FramesContinuousArrowProhibited, s.RestFramesArrowProhibited)

	s.Move(f, puyo.Keys(puyo.Right))
	assert.Equal(t, 4, s.Pos.X, "right accepted during cooldown")
	assert.Equal(t, 0, s.RestFramesArrowProhibited)

	s.Move(f, puyo.Keys(puyo.Right))
	assert.Equal(t, 5, s.Pos.X)
}

func TestMoveBlockedConsumesCooldown(t *testing.T) {
	f := puyo.NewPlainField()
	s := New(nil, Pos{X: 1, Y: 12, R: 0})
	s.Move(f, puyo.Keys(puyo.Left))
	assert.Equal(t, 1, s.Pos.X)
	assert.Equal(t, 1, s.RestFramesArrowProhibited)
}

func TestFreefallCadence(t *testing.T) {
	f := puyo.NewPlainField()
	s := New(nil, InitialPos)
	period := DefaultConfig.FramesFreeFall

	frames := 0
	for !s.Grounded {
		down := s.Move(f, 0)
		require.False(t, down)
		frames++
		if frames <= (InitialPos.Y-1)*period {
			require.Equal(t, InitialPos.Y-frames/period, s.Pos.Y, "frame %d", frames)
		}
	}
	assert.Equal(t, 25, frames)
	assert.Equal(t, Pos{X: 3, Y: 1, R: 0}, s.Pos)
	assert.Equal(t, 1, s.NumGrounded)
}

func TestDownPriority(t *testing.T) {
	f := puyo.NewPlainField()
	s := New(nil, InitialPos)
	down := s.Move(f, puyo.Keys(puyo.Right, puyo.Down))
	assert.False(t, down)
	assert.Equal(t, 4, s.Pos.X)
	assert.Equal(t, 1, s.RestFramesForFreefall)
}

func TestSoftDrop(t *testing.T) {
	f := puyo.NewPlainField()
	s := New(nil, InitialPos)

	down := s.Move(f, puyo.Keys(puyo.Down))
	assert.True(t, down)
	assert.Equal(t, 12, s.Pos.Y)
	assert.Equal(t, 0, s.RestFramesForFreefall)
	assert.Equal(t, 0, s.RestFramesArrowProhibited)

	down = s.Move(f, puyo.Keys(puyo.Down))
	assert.False(t, down)
	assert.Equal(t, 11, s.Pos.Y)
	assert.Equal(t, DefaultConfig.FramesFreeFall, s.RestFramesForFreefall)
}

func TestSoftDropWhileGroundingLocks(t *testing.T) {
	f := puyo.NewPlainField()
	s := New(nil, Pos{X: 3, Y: 1, R: 0})
	s.Grounding = true
	s.NumGrounded = 1

	down := s.Move(f, puyo.Keys(puyo.Down))
	assert.True(t, down)
	assert.True(t, s.Grounded)
	assert.Equal(t, 0, s.RestFramesForFreefall)
}

// well is a one column shaft in column 3.
var well = strings.Repeat(".@.@..\n", 12)

func TestQuickTurn(t *testing.T) {
	f := puyotest.Field(well)
	s := New(slowConfig(), InitialPos)

	play(t, &s, f, "A")
	assert.Equal(t, InitialPos, s.Pos)
	assert.Equal(t, 20, s.RestFramesToAcceptQuickTurn)
	assert.Equal(t, 1, s.RestFramesTurnProhibited)

	play(t, &s, f, ",B")
	assert.Equal(t, Pos{X: 3, Y: 13, R: 2}, s.Pos)
	assert.Equal(t, 0, s.RestFramesToAcceptQuickTurn)
	// reset to half a period, then counted down by this frame's freefall
	assert.Equal(t, 3, s.RestFramesForFreefall)
}

func TestQuickTurnBack(t *testing.T) {
	f := puyotest.Field(well)
	s := New(slowConfig(), Pos{X: 3, Y: 10, R: 2})

	play(t, &s, f, "B,,A")
	assert.Equal(t, Pos{X: 3, Y: 9, R: 0}, s.Pos)
	assert.Equal(t, 0, s.RestFramesToAcceptQuickTurn)
}

func TestQuickTurnExpired(t *testing.T) {
	f := puyotest.Field(well)
	s := New(slowConfig(), InitialPos)

	play(t, &s, f, "A")
	for i := 0; i < DefaultConfig.FramesQuickTurn+1; i++ {
		s.Move(f, 0)
	}
	require.Equal(t, 0, s.RestFramesToAcceptQuickTurn)

	play(t, &s, f, "B")
	assert.Equal(t, 0, s.Pos.R)
	assert.Equal(t, 3, s.Pos.X)
	assert.Equal(t, 20, s.RestFramesToAcceptQuickTurn)
}

func TestWallKick(t *testing.T) {
	f := puyo.NewPlainField()

	s := New(nil, Pos{X: 1, Y: 12, R: 0})
	play(t, &s, f, "B")
	assert.Equal(t, Pos{X: 2, Y: 12, R: 3}, s.Pos)

	s = New(nil, Pos{X: 6, Y: 12, R: 0})
	play(t, &s, f, "A")
	assert.Equal(t, Pos{X: 5, Y: 12, R: 1}, s.Pos)

	s = New(nil, Pos{X: 6, Y: 12, R: 2})
	play(t, &s, f, "B")
	assert.Equal(t, Pos{X: 5, Y: 12, R: 1}, s.Pos)
}

func TestKickCancelsQuickTurn(t *testing.T) {
	f := puyo.NewPlainField()
	s := New(nil, Pos{X: 1, Y: 12, R: 0})
	s.RestFramesToAcceptQuickTurn = 10
	play(t, &s, f, "B")
	assert.Equal(t, 0, s.RestFramesToAcceptQuickTurn)
}

func TestTurnToTop(t *testing.T) {
	f := puyo.NewPlainField()
	s := New(nil, Pos{X: 3, Y: 5, R: 3})
	play(t, &s, f, "A")
	assert.Equal(t, Pos{X: 3, Y: 5, R: 0}, s.Pos)

	s = New(nil, Pos{X: 3, Y: 5, R: 1})
	play(t, &s, f, "B")
	assert.Equal(t, Pos{X: 3, Y: 5, R: 0}, s.Pos)
}

func TestFloorKick(t *testing.T) {
	f := puyo.NewPlainField()
	s := New(slowConfig(), Pos{X: 3, Y: 1, R: 1})
	play(t, &s, f, "A")
	assert.Equal(t, Pos{X: 3, Y: 2, R: 2}, s.Pos)
	assert.True(t, s.Grounding)
	assert.Equal(t, 1, s.NumGrounded)
	assert.Equal(t, 8, s.RestFramesForFreefall)
}

func TestFloorKickAtCeiling(t *testing.T) {
	f := puyotest.Field(strings.Repeat("..@...\n", 12))
	s := New(slowConfig(), Pos{X: 3, Y: 13, R: 1})
	play(t, &s, f, "A")
	assert.Equal(t, Pos{X: 3, Y: 13, R: 1}, s.Pos)
	assert.Equal(t, 1, s.RestFramesTurnProhibited)
	assert.False(t, s.Grounding)

	s = New(slowConfig(), Pos{X: 3, Y: 13, R: 3})
	play(t, &s, f, "B")
	assert.Equal(t, Pos{X: 3, Y: 13, R: 3}, s.Pos)
}

func TestGroundingWaitsForHalfPeriod(t *testing.T) {
	f := puyotest.Field("@@@...")
	cfg := slowConfig()
	s := New(cfg, Pos{X: 3, Y: 2, R: 0})

	// Resting from the first frame, but the countdown starts above half.
	for i := 1; i < cfg.FramesFreeFall/2; i++ {
		s.Move(f, 0)
		require.Equal(t, cfg.FramesFreeFall-i, s.RestFramesForFreefall, "frame %d", i)
		require.False(t, s.Grounding, "frame %d", i)
		require.Equal(t, 0, s.NumGrounded, "frame %d", i)
	}

	s.Move(f, 0)
	assert.True(t, s.Grounding)
	assert.Equal(t, 1, s.NumGrounded)
	assert.Equal(t, cfg.FramesFreeFall, s.RestFramesForFreefall)
	assert.Equal(t, Pos{X: 3, Y: 2, R: 0}, s.Pos)
}

func TestGroundingLimit(t *testing.T) {
	f := puyotest.Field("@@@...")
	cfg := slowConfig()
	s := New(cfg, Pos{X: 3, Y: 2, R: 0})

	for !s.Grounding {
		s.Move(f, 0)
	}
	require.Equal(t, 1, s.NumGrounded)
	require.Equal(t, 3, s.Pos.X)

	cycles := 0
	for {
		// Step off the ledge and back on again.
		play(t, &s, f, ">")
		require.Equal(t, 4, s.Pos.X)
		require.False(t, s.Grounding)
		require.Equal(t, cfg.FramesFreeFall/2, s.RestFramesForFreefall)
		play(t, &s, f, ",<")
		cycles++
		if s.Grounded {
			break
		}
		require.True(t, s.Grounding)
		require.Equal(t, cycles+1, s.NumGrounded)
		s.Move(f, 0)
	}
	assert.Equal(t, 7, cycles)
	assert.Equal(t, 8, s.NumGrounded)
	assert.Equal(t, Pos{X: 3, Y: 2, R: 0}, s.Pos)
	assert.Panics(t, func() { s.Move(f, 0) })
}

func TestBadRotationPanics(t *testing.T) {
	f := puyo.NewPlainField()
	s := New(nil, Pos{X: 3, Y: 5, R: 4})
	assert.Panics(t, func() { s.Move(f, puyo.Keys(puyo.RightTurn)) })
}

func TestParsePos(t *testing.T) {
	p, err := ParsePos("3, 12, 0")
	require.NoError(t, err)
	assert.Equal(t, InitialPos, p)
	assert.Equal(t, "3,12,0", p.String())

	for _, bad := range []string{"3,12", "a,1,0", "3,12,4"} {
		_, err := ParsePos(bad)
		assert.Error(t, err, bad)
	}
}
