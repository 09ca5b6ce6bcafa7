package notation

import (
	"fmt"
	"strings"

	"github.com/nelhage/puyotician/puyo"
)

// ParseKeys reads one KeySet per frame. Frames are separated by ','
// and an empty frame holds no keys, so "A,,>" is three frames.
func ParseKeys(s string) ([]puyo.KeySet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []puyo.KeySet
	for i, frame := range strings.Split(s, ",") {
		var ks puyo.KeySet
		frame = strings.TrimSpace(frame)
		for j := 0; j < len(frame); j++ {
			k, ok := puyo.KeyFromGlyph(frame[j])
			if !ok {
				return nil, fmt.Errorf("frame %d: bad key %q", i, frame[j])
			}
			ks = ks.Add(k)
		}
		out = append(out, ks)
	}
	return out, nil
}

func FormatKeys(seq []puyo.KeySet) string {
	bits := make([]string, len(seq))
	for i, ks := range seq {
		bits[i] = ks.String()
	}
	return strings.Join(bits, ",")
}
