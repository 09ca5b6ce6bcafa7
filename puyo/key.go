package puyo

import (
	"fmt"
	"strings"
)

type Key byte

const (
	Up Key = iota
	Right
	Down
	Left
	RightTurn
	LeftTurn
	Start

	NumKeys = 7
)

var keyGlyphs = [NumKeys]byte{'^', '>', 'v', '<', 'A', 'B', 'S'}

func (k Key) Glyph() byte {
	if int(k) >= NumKeys {
		panic(fmt.Sprintf("bad key: %d", int(k)))
	}
	return keyGlyphs[k]
}

func KeyFromGlyph(b byte) (Key, bool) {
	for i, g := range keyGlyphs {
		if g == b {
			return Key(i), true
		}
	}
	return 0, false
}

func (k Key) String() string {
	switch k {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case RightTurn:
		return "right-turn"
	case LeftTurn:
		return "left-turn"
	case Start:
		return "start"
	default:
		panic(fmt.Sprintf("bad key: %d", int(k)))
	}
}

// KeySet is the set of keys held during a single frame.
type KeySet uint8

func Keys(ks ...Key) KeySet {
	var s KeySet
	for _, k := range ks {
		s = s.Add(k)
	}
	return s
}

func (s KeySet) HasKey(k Key) bool {
	return s&(1<<k) != 0
}

func (s KeySet) Add(k Key) KeySet {
	return s | 1<<k
}

func (s KeySet) Remove(k Key) KeySet {
	return s &^ (1 << k)
}

func (s KeySet) IsEmpty() bool {
	return s == 0
}

func (s KeySet) String() string {
	var b strings.Builder
	for k := Key(0); k < NumKeys; k++ {
		if s.HasKey(k) {
			b.WriteByte(k.Glyph())
		}
	}
	return b.String()
}

func (s KeySet) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *KeySet) UnmarshalText(b []byte) error {
	var out KeySet
	for _, g := range b {
		k, ok := KeyFromGlyph(g)
		if !ok {
			return fmt.Errorf("bad key %q", g)
		}
		out = out.Add(k)
	}
	*s = out
	return nil
}
