// Package analysis builds reports over fields and pairs from the
// bitboard and kumipuyo primitives.
package analysis

import (
	"github.com/nelhage/puyotician/bitboard"
	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/puyo"
)

// VanishSize is the smallest group that clears.
const VanishSize = 4

type Group struct {
	Size       int             `json:"size"`
	Cells      []puyo.Position `json:"cells"`
	Vanishable bool            `json:"vanishable"`
}

type ColorGroups struct {
	Color  puyo.Color `json:"color"`
	Count  int        `json:"count"`
	Groups []Group    `json:"groups"`
}

// Groups reports the connected groups of every normal color in f,
// largest first within a color.
func Groups(f puyo.Field) []ColorGroups {
	var out []ColorGroups
	var buf []bitboard.FieldBits
	for _, c := range puyo.NormalColors {
		bits := bitboard.FromField(f, c)
		cg := ColorGroups{Color: c, Count: bits.Popcount()}
		buf = bits.Groups(buf[:0])
		for _, g := range buf {
			size := g.Popcount()
			cg.Groups = append(cg.Groups, Group{
				Size:       size,
				Cells:      g.Positions(make([]puyo.Position, 0, size)),
				Vanishable: size >= VanishSize,
			})
		}
		sortGroups(cg.Groups)
		out = append(out, cg)
	}
	return out
}

func sortGroups(gs []Group) {
	// insertion sort; there are never more than a few dozen groups
	for i := 1; i < len(gs); i++ {
		for j := i; j > 0 && gs[j].Size > gs[j-1].Size; j-- {
			gs[j], gs[j-1] = gs[j-1], gs[j]
		}
	}
}

// Vanishable returns every cell that would clear in f.
func Vanishable(f puyo.Field) bitboard.FieldBits {
	var out bitboard.FieldBits
	var buf []bitboard.FieldBits
	for _, c := range puyo.NormalColors {
		buf = bitboard.FromField(f, c).Groups(buf[:0])
		for _, g := range buf {
			if g.Popcount() >= VanishSize {
				out = out.Or(g)
			}
		}
	}
	return out
}

type Step struct {
	Frame        int                  `json:"frame"`
	Keys         puyo.KeySet          `json:"keys"`
	State        kumipuyo.MovingState `json:"state"`
	DownAccepted bool                 `json:"down_accepted"`
}

// Simulate applies keys one frame at a time, stopping early once the
// pair is grounded. Once the keys run out, frames with no input are
// played until the pair locks, up to idleLimit more frames.
func Simulate(f puyo.Field, s kumipuyo.MovingState, keys []puyo.KeySet, idleLimit int) []Step {
	var out []Step
	frame := 0
	step := func(ks puyo.KeySet) {
		down := s.Move(f, ks)
		out = append(out, Step{Frame: frame, Keys: ks, State: s, DownAccepted: down})
		frame++
	}
	for _, ks := range keys {
		if s.Grounded {
			return out
		}
		step(ks)
	}
	for i := 0; i < idleLimit && !s.Grounded; i++ {
		step(0)
	}
	return out
}
