package bitboard

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/nelhage/puyotician/puyo"
)

// FieldBits is a bitset shaped like a puyo field. Bits are stored
// column-major, 16 rows per column: lo holds columns 0-3 and hi holds
// columns 4-7. Bits outside FieldMask are always zero.
type FieldBits struct {
	lo, hi uint64
}

const (
	laneBottom = 0x0001000100010001
	laneTop    = 0x8000800080008000

	maskLo = 0x3FFE3FFE3FFE0000
	maskHi = 0x00003FFE3FFE3FFE

	// Capacity is the number of addressable bits, guard border included.
	Capacity = puyo.MapWidth * puyo.MapHeight
)

// FieldMask covers columns 1-6 and rows 1-13.
var FieldMask = FieldBits{maskLo, maskHi}

func onebit(x, y int) FieldBits {
	if x < 0 || x >= puyo.MapWidth || y < 0 || y >= puyo.MapHeight {
		panic(fmt.Sprintf("bitboard: out of range x=%d y=%d", x, y))
	}
	i := uint(x*puyo.MapHeight + y)
	if i < 64 {
		return FieldBits{lo: 1 << i}
	}
	return FieldBits{hi: 1 << (i - 64)}
}

// FromField returns the cells of f whose color is exactly c.
func FromField(f puyo.Field, c puyo.Color) FieldBits {
	var b FieldBits
	for x := 0; x < puyo.MapWidth; x++ {
		for y := 0; y < puyo.MapHeight; y++ {
			if f.Color(x, y) == c {
				b = b.Or(onebit(x, y))
			}
		}
	}
	return b.And(FieldMask)
}

func (b FieldBits) Get(x, y int) bool {
	return !b.And(onebit(x, y)).IsEmpty()
}

// Set turns on (x, y). Bits on the guard border stay off.
func (b *FieldBits) Set(x, y int) {
	*b = b.Or(onebit(x, y)).And(FieldMask)
}

func (b *FieldBits) Unset(x, y int) {
	*b = b.AndNot(onebit(x, y))
}

func (b FieldBits) Or(o FieldBits) FieldBits {
	return FieldBits{b.lo | o.lo, b.hi | o.hi}
}

func (b FieldBits) And(o FieldBits) FieldBits {
	return FieldBits{b.lo & o.lo, b.hi & o.hi}
}

func (b FieldBits) AndNot(o FieldBits) FieldBits {
	return FieldBits{b.lo &^ o.lo, b.hi &^ o.hi}
}

func (b FieldBits) IsEmpty() bool {
	return b.lo == 0 && b.hi == 0
}

func (b FieldBits) Equal(o FieldBits) bool {
	return b == o
}

// Contains reports whether every bit of o is set in b.
func (b FieldBits) Contains(o FieldBits) bool {
	return o.AndNot(b).IsEmpty()
}

func (b FieldBits) Popcount() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

func (b FieldBits) up() FieldBits {
	return FieldBits{(b.lo << 1) &^ laneBottom, (b.hi << 1) &^ laneBottom}
}

func (b FieldBits) down() FieldBits {
	return FieldBits{(b.lo >> 1) &^ laneTop, (b.hi >> 1) &^ laneTop}
}

func (b FieldBits) right() FieldBits {
	return FieldBits{b.lo << 16, b.hi<<16 | b.lo>>48}
}

func (b FieldBits) left() FieldBits {
	return FieldBits{b.lo>>16 | b.hi<<48, b.hi >> 16}
}

func grow(within, seed FieldBits) FieldBits {
	next := seed
	next = next.Or(seed.up())
	next = next.Or(seed.down())
	next = next.Or(seed.right())
	next = next.Or(seed.left())
	return next.And(within)
}

func flood(within, seed FieldBits) FieldBits {
	for {
		next := grow(within, seed)
		if seed.Contains(next) {
			return next
		}
		seed = next
	}
}

// Expand returns the 4-connected region of b containing (x, y), or
// the empty set if (x, y) is not set.
func (b FieldBits) Expand(x, y int) FieldBits {
	seed := onebit(x, y)
	if b.And(seed).IsEmpty() {
		return FieldBits{}
	}
	return flood(b, seed)
}

// Expand4 is a cheaper Expand that spreads three rounds only. Bits at
// distance 4 or more from (x, y) may be missing from the result.
func (b FieldBits) Expand4(x, y int) FieldBits {
	c := onebit(x, y)
	if b.And(c).IsEmpty() {
		return FieldBits{}
	}
	for i := 0; i < 3; i++ {
		c = c.Or(c.right().And(b))
		c = c.Or(c.left().And(b))
		c = c.Or(c.up().And(b))
		c = c.Or(c.down().And(b))
	}
	return c
}

// Positions appends every set bit to out in column-major order.
func (b FieldBits) Positions(out []puyo.Position) []puyo.Position {
	for v := b.lo; v != 0; v &= v - 1 {
		bit := bits.TrailingZeros64(v)
		out = append(out, puyo.Position{X: bit >> 4, Y: bit & 0xF})
	}
	for v := b.hi; v != 0; v &= v - 1 {
		bit := bits.TrailingZeros64(v)
		out = append(out, puyo.Position{X: 4 + bit>>4, Y: bit & 0xF})
	}
	return out
}

func (b FieldBits) lowest() FieldBits {
	if b.lo != 0 {
		return FieldBits{lo: b.lo & -b.lo}
	}
	return FieldBits{hi: b.hi & -b.hi}
}

// Groups appends every maximal connected region of b to out.
func (b FieldBits) Groups(out []FieldBits) []FieldBits {
	for !b.IsEmpty() {
		g := flood(b, b.lowest())
		out = append(out, g)
		b = b.AndNot(g)
	}
	return out
}

// String renders rows 13 down to 1, one line per row.
func (b FieldBits) String() string {
	var s strings.Builder
	for y := puyo.Height + 1; y >= 1; y-- {
		for x := 1; x <= puyo.Width; x++ {
			if b.Get(x, y) {
				s.WriteByte('o')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
