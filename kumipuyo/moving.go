package kumipuyo

import (
	"fmt"

	"github.com/nelhage/puyotician/puyo"
)

// MovingState tracks a falling pair frame by frame. A MovingState is
// owned by a single goroutine; copies are independent.
type MovingState struct {
	Pos Pos

	RestFramesTurnProhibited    int
	RestFramesArrowProhibited   int
	RestFramesToAcceptQuickTurn int
	RestFramesForFreefall       int

	NumGrounded int
	// Grounding is set while the pair rests on something and may still
	// be moved. Grounded is set once the pair has locked.
	Grounding bool
	Grounded  bool

	cfg *Config
}

// New returns the state of a pair that has just appeared at pos. A nil
// cfg means the built-in Defaults.
func New(cfg *Config, pos Pos) MovingState {
	if cfg == nil {
		cfg = &builtin
	}
	s := MovingState{Pos: pos, cfg: cfg}
	s.RestFramesForFreefall = s.config().FramesFreeFall
	return s
}

func (s *MovingState) config() *Config {
	if s.cfg == nil {
		return &builtin
	}
	return s.cfg
}

// Move advances the pair by one frame with keys held, and reports
// whether a soft drop was accepted. It panics if the pair has already
// been grounded.
func (s *MovingState) Move(f puyo.Field, keys puyo.KeySet) (downAccepted bool) {
	if s.Grounded {
		panic("kumipuyo: Move on a grounded pair")
	}
	if s.Pos.R < 0 || s.Pos.R > 3 {
		panic(fmt.Sprintf("kumipuyo: bad rotation %d", s.Pos.R))
	}
	cfg := s.config()

	if s.RestFramesToAcceptQuickTurn > 0 {
		s.RestFramesToAcceptQuickTurn--
	}

	// Turn keys are consumed before arrow keys.
	if s.RestFramesTurnProhibited > 0 {
		s.RestFramesTurnProhibited--
	} else {
		s.moveByTurnKey(cfg, f, keys)
	}

	if s.Grounded {
		return false
	}

	if s.RestFramesArrowProhibited > 0 {
		s.RestFramesArrowProhibited--
	} else {
		downAccepted = s.moveByArrowKey(cfg, f, keys)
	}

	if !downAccepted {
		s.moveByFreefall(cfg, f)
	}

	if s.Grounded {
		return downAccepted
	}

	s.updateGrounding(cfg, f)
	return downAccepted
}

func (s *MovingState) resting(f puyo.Field) bool {
	p := s.Pos
	return f.Color(p.AxisX(), p.AxisY()-1) != puyo.Empty ||
		f.Color(p.ChildX(), p.ChildY()-1) != puyo.Empty
}

func (s *MovingState) updateGrounding(cfg *Config, f puyo.Field) {
	grounding := s.Grounding
	if s.resting(f) {
		grounding = grounding || s.RestFramesForFreefall <= cfg.halfFreeFall()
	} else {
		grounding = false
	}

	if grounding && !s.Grounding {
		s.RestFramesForFreefall = cfg.FramesFreeFall
		s.Grounding = true
		s.NumGrounded++
		if s.NumGrounded >= cfg.GroundingLimit {
			s.Grounded = true
			return
		}
	}
	if !grounding && s.Grounding {
		s.RestFramesForFreefall = cfg.halfFreeFall()
		s.Grounding = false
	}
}

// moveByArrowKey handles at most one of right, left and down, in that
// order of priority.
func (s *MovingState) moveByArrowKey(cfg *Config, f puyo.Field, keys puyo.KeySet) bool {
	p := &s.Pos
	if keys.HasKey(puyo.Right) {
		s.RestFramesArrowProhibited = cfg.FramesContinuousArrowProhibited
		if f.Color(p.AxisX()+1, p.AxisY()) == puyo.Empty &&
			f.Color(p.ChildX()+1, p.ChildY()) == puyo.Empty {
			p.X++
		}
		return false
	}

	if keys.HasKey(puyo.Left) {
		s.RestFramesArrowProhibited = cfg.FramesContinuousArrowProhibited
		if f.Color(p.AxisX()-1, p.AxisY()) == puyo.Empty &&
			f.Color(p.ChildX()-1, p.ChildY()) == puyo.Empty {
			p.X--
		}
		return false
	}

	// Down does not set RestFramesArrowProhibited.
	if keys.HasKey(puyo.Down) && s.RestFramesForFreefall > 0 {
		s.RestFramesForFreefall = 0
		if s.Grounding {
			s.Grounded = true
		}
		return true
	}
	return false
}

func (s *MovingState) moveByTurnKey(cfg *Config, f puyo.Field, keys puyo.KeySet) {
	if keys.HasKey(puyo.RightTurn) {
		s.turn(cfg, f, 1)
		return
	}
	if keys.HasKey(puyo.LeftTurn) {
		s.turn(cfg, f, -1)
	}
}

// turn rotates clockwise for dir=1 and counter-clockwise for dir=-1.
func (s *MovingState) turn(cfg *Config, f puyo.Field, dir int) {
	s.RestFramesTurnProhibited = cfg.FramesContinuousTurnProhibited
	p := &s.Pos
	next := (p.R + dir + 4) % 4

	switch p.R {
	case 0, 2:
		// The child swings to the side; kick away from a blocked side.
		side := dir
		if p.R == 2 {
			side = -dir
		}
		if f.Color(p.X+side, p.Y) == puyo.Empty {
			p.R = next
			s.RestFramesToAcceptQuickTurn = 0
			return
		}
		if f.Color(p.X-side, p.Y) == puyo.Empty {
			p.R = next
			p.X -= side
			s.RestFramesToAcceptQuickTurn = 0
			return
		}
		if s.RestFramesToAcceptQuickTurn > 0 {
			s.RestFramesToAcceptQuickTurn = 0
			if p.R == 0 {
				p.R = 2
				p.Y++
				s.RestFramesForFreefall = cfg.halfFreeFall()
			} else {
				p.R = 0
				p.Y--
			}
			return
		}
		s.RestFramesToAcceptQuickTurn = cfg.FramesQuickTurn
	case 1, 3:
		if next != 2 {
			// The child moves above the axis, which is always allowed.
			p.R = next
			return
		}
		if f.Color(p.X, p.Y-1) == puyo.Empty {
			p.R = next
			return
		}
		if p.Y < cfg.MaxAxisY {
			p.R = next
			p.Y++
			s.RestFramesForFreefall = cfg.halfFreeFall()
		}
	default:
		panic(fmt.Sprintf("kumipuyo: bad rotation %d", p.R))
	}
}

func (s *MovingState) moveByFreefall(cfg *Config, f puyo.Field) {
	if s.RestFramesForFreefall > 1 {
		s.RestFramesForFreefall--
		return
	}

	s.RestFramesForFreefall = cfg.FramesFreeFall
	p := &s.Pos
	if f.Color(p.AxisX(), p.AxisY()-1) == puyo.Empty &&
		f.Color(p.ChildX(), p.ChildY()-1) == puyo.Empty {
		p.Y--
		return
	}
	s.Grounded = true
}

func (s MovingState) String() string {
	return fmt.Sprintf("pos=%v turn=%d arrow=%d quick=%d freefall=%d grounded=%d/%v/%v",
		s.Pos,
		s.RestFramesTurnProhibited,
		s.RestFramesArrowProhibited,
		s.RestFramesToAcceptQuickTurn,
		s.RestFramesForFreefall,
		s.NumGrounded, s.Grounding, s.Grounded)
}
