package kumipuyo

import "fmt"

// Config holds the frame constants of the movement rules.
type Config struct {
	// A free piece falls one row every FramesFreeFall frames.
	FramesFreeFall int
	// Frames a turn or left/right key is ignored after being handled.
	FramesContinuousTurnProhibited  int
	FramesContinuousArrowProhibited int
	// How long a blocked turn leaves a quick turn available.
	FramesQuickTurn int
	// The piece locks the GroundingLimit'th time it lands.
	GroundingLimit int
	// Floor kicks may push the axis up only while it is below MaxAxisY.
	MaxAxisY int
}

// Upper bounds accepted by Validate. The reachable state space grows
// with the product of the frame counts.
const (
	MaxFramesFreeFall   = 64
	MaxFramesQuickTurn  = 64
	MaxFramesProhibited = 16
	MaxGroundingLimit   = 32
	MaxMaxAxisY         = 14
)

// DefaultConfig is a copy of the built-in constants for callers to
// start from. Changing it does not affect pairs created with a nil
// config; they use Defaults.
var DefaultConfig = Defaults()

func Defaults() Config {
	return Config{
		FramesFreeFall:                  2,
		FramesContinuousTurnProhibited:  1,
		FramesContinuousArrowProhibited: 1,
		FramesQuickTurn:                 20,
		GroundingLimit:                  8,
		MaxAxisY:                        13,
	}
}

var builtin = Defaults()

func (c *Config) Validate() error {
	check := func(name string, v, lo, hi int) error {
		if v < lo || v > hi {
			return fmt.Errorf("%s=%d out of range [%d, %d]", name, v, lo, hi)
		}
		return nil
	}
	for _, e := range []error{
		check("FramesFreeFall", c.FramesFreeFall, 1, MaxFramesFreeFall),
		check("FramesContinuousTurnProhibited", c.FramesContinuousTurnProhibited, 0, MaxFramesProhibited),
		check("FramesContinuousArrowProhibited", c.FramesContinuousArrowProhibited, 0, MaxFramesProhibited),
		check("FramesQuickTurn", c.FramesQuickTurn, 0, MaxFramesQuickTurn),
		check("GroundingLimit", c.GroundingLimit, 1, MaxGroundingLimit),
		check("MaxAxisY", c.MaxAxisY, 1, MaxMaxAxisY),
	} {
		if e != nil {
			return e
		}
	}
	return nil
}

func (c *Config) halfFreeFall() int {
	return c.FramesFreeFall / 2
}
