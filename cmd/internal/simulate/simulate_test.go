package simulate

import (
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/nelhage/puyotician/analysis"
	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/logs"
	"github.com/nelhage/puyotician/puyotest"
)

func TestStore(t *testing.T) {
	is := is.New(t)
	c := &Command{db: filepath.Join(t.TempDir(), "sim.db")}

	f := puyotest.Field("")
	start := kumipuyo.InitialPos
	st := kumipuyo.New(nil, start)
	steps := analysis.Simulate(f, st, puyotest.Keys(">,>,v"), 100)
	is.True(len(steps) > 3)
	final := steps[len(steps)-1].State
	is.True(final.Grounded)

	is.NoErr(c.store(f, start, steps, &final))

	repo, err := logs.Open(c.db)
	is.NoErr(err)
	defer repo.Close()
	tr, err := repo.Trace(1)
	is.NoErr(err)
	is.True(tr.Grounded)
	is.Equal(tr.Final, final.Pos.String())
	frames, err := repo.Frames(tr.ID)
	is.NoErr(err)
	is.Equal(len(frames), len(steps))
	is.Equal(frames[0].X, 4)
	is.Equal(frames[1].X, 4) // arrow cooldown
}
