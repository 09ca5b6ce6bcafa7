package puyotest

import (
	"github.com/nelhage/puyotician/notation"
	"github.com/nelhage/puyotician/puyo"
)

func Field(s string) *puyo.PlainField {
	f, e := notation.ParseField(s)
	if e != nil {
		panic(e)
	}
	return f
}

func Keys(s string) []puyo.KeySet {
	ks, e := notation.ParseKeys(s)
	if e != nil {
		panic(e)
	}
	return ks
}

// Repeat returns n copies of ks.
func Repeat(ks puyo.KeySet, n int) []puyo.KeySet {
	out := make([]puyo.KeySet, n)
	for i := range out {
		out[i] = ks
	}
	return out
}
