package kumipuyo

import (
	"sort"

	"github.com/nelhage/puyotician/puyo"
)

// Placement is a position a pair can lock at, and the shortest key
// sequence that gets it there.
type Placement struct {
	Pos  Pos
	Keys []puyo.KeySet
}

// SearchKeys are the key sets tried on every frame by Reachable.
var SearchKeys = []puyo.KeySet{
	0,
	puyo.Keys(puyo.Right),
	puyo.Keys(puyo.Left),
	puyo.Keys(puyo.Down),
	puyo.Keys(puyo.RightTurn),
	puyo.Keys(puyo.LeftTurn),
	puyo.Keys(puyo.Right, puyo.RightTurn),
	puyo.Keys(puyo.Right, puyo.LeftTurn),
	puyo.Keys(puyo.Left, puyo.RightTurn),
	puyo.Keys(puyo.Left, puyo.LeftTurn),
}

type edge struct {
	prev MovingState
	keys puyo.KeySet
}

// Reachable explores every frame-by-frame input from start and returns
// each distinct locked position, ordered by column, rotation and row.
func Reachable(f puyo.Field, start MovingState) []Placement {
	if start.Grounded {
		return []Placement{{Pos: start.Pos}}
	}
	parent := map[MovingState]edge{start: {}}
	locked := make(map[Pos]MovingState)
	queue := []MovingState{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, ks := range SearchKeys {
			next := cur
			next.Move(f, ks)
			if _, ok := parent[next]; ok {
				continue
			}
			parent[next] = edge{prev: cur, keys: ks}
			if next.Grounded {
				if _, ok := locked[next.Pos]; !ok {
					locked[next.Pos] = next
				}
				continue
			}
			queue = append(queue, next)
		}
	}

	out := make([]Placement, 0, len(locked))
	for pos, s := range locked {
		out = append(out, Placement{Pos: pos, Keys: keysTo(parent, start, s)})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Pos, out[j].Pos
		if a.X != b.X {
			return a.X < b.X
		}
		if a.R != b.R {
			return a.R < b.R
		}
		return a.Y < b.Y
	})
	return out
}

func keysTo(parent map[MovingState]edge, start, s MovingState) []puyo.KeySet {
	var rev []puyo.KeySet
	for s != start {
		e := parent[s]
		rev = append(rev, e.keys)
		s = e.prev
	}
	out := make([]puyo.KeySet, len(rev))
	for i, k := range rev {
		out[len(rev)-1-i] = k
	}
	return out
}
