package verify

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/puyotician/bitboard"
	"github.com/nelhage/puyotician/notation"
	"github.com/nelhage/puyotician/puyo"
)

type Command struct {
	fields  int
	seed    int64
	threads int
	fill    float64
}

func (*Command) Name() string     { return "verify" }
func (*Command) Synopsis() string { return "Check bitboard expansion against a reference search" }
func (*Command) Usage() string {
	return `verify [flags]

Generate random fields and compare Expand, Expand4 and Positions on
every occupied cell against a breadth-first search over the field.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.fields, "fields", 10000, "number of random fields")
	flags.Int64Var(&c.seed, "seed", 1, "random seed")
	flags.IntVar(&c.threads, "threads", 4, "parallel workers")
	flags.Float64Var(&c.fill, "fill", 0.6, "chance that a cell is occupied")
}

const prime = 1099511628211

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.threads < 1 {
		log.Error().Int("threads", c.threads).Msg("need at least one thread")
		return subcommands.ExitUsageError
	}
	todo := int64(c.fields)
	var failures int64

	grp, ctx := errgroup.WithContext(ctx)
	for i := 0; i < c.threads; i++ {
		id := i
		grp.Go(func() error {
			rng := rand.New(rand.NewSource(prime*c.seed + int64(id)))
			for atomic.AddInt64(&todo, -1) >= 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
				f := randomField(rng, c.fill)
				if err := check(f); err != nil {
					atomic.AddInt64(&failures, 1)
					log.Error().Err(err).Str("field", notation.FormatField(f)).Msg("mismatch")
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		log.Error().Err(err).Msg("verify")
		return subcommands.ExitFailure
	}
	if failures > 0 {
		log.Error().Int64("failures", failures).Int("fields", c.fields).Msg("verify failed")
		return subcommands.ExitFailure
	}
	log.Info().Int("fields", c.fields).Msg("all fields agree")
	return subcommands.ExitSuccess
}

func randomField(rng *rand.Rand, fill float64) *puyo.PlainField {
	f := puyo.NewPlainField()
	for x := 1; x <= puyo.Width; x++ {
		for y := 1; y <= puyo.Height+1; y++ {
			if rng.Float64() < fill {
				f.Set(x, y, puyo.NormalColors[rng.Intn(len(puyo.NormalColors))])
			}
		}
	}
	return f
}

func check(f *puyo.PlainField) error {
	var buf []puyo.Position
	for _, c := range puyo.NormalColors {
		bits := bitboard.FromField(f, c)
		buf = bits.Positions(buf[:0])
		if len(buf) != bits.Popcount() {
			return fmt.Errorf("%s: %d positions, popcount %d", c, len(buf), bits.Popcount())
		}
		for _, p := range buf {
			dist := distances(bits, p)
			full := bits.Expand(p.X, p.Y)
			near := bits.Expand4(p.X, p.Y)
			for x := 1; x <= puyo.Width; x++ {
				for y := 1; y <= puyo.Height+1; y++ {
					d, ok := dist[puyo.Position{X: x, Y: y}]
					if full.Get(x, y) != ok {
						return fmt.Errorf("%s: Expand(%s) disagrees at %d,%d", c, p, x, y)
					}
					if near.Get(x, y) && !ok {
						return fmt.Errorf("%s: Expand4(%s) leaks to %d,%d", c, p, x, y)
					}
					if ok && d <= 3 && !near.Get(x, y) {
						return fmt.Errorf("%s: Expand4(%s) misses %d,%d at distance %d", c, p, x, y, d)
					}
				}
			}
		}
	}
	return nil
}

// distances runs a breadth-first search over bits from p.
func distances(bits bitboard.FieldBits, p puyo.Position) map[puyo.Position]int {
	dist := map[puyo.Position]int{p: 0}
	queue := []puyo.Position{p}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := puyo.Position{X: cur.X + d[0], Y: cur.Y + d[1]}
			if next.X < 0 || next.X >= puyo.MapWidth || next.Y < 0 || next.Y >= puyo.MapHeight {
				continue
			}
			if _, seen := dist[next]; seen || !bits.Get(next.X, next.Y) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return dist
}
