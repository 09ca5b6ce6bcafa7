package logs

import (
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/puyo"
	"github.com/nelhage/puyotician/puyotest"
)

func TestInsertTrace(t *testing.T) {
	is := is.New(t)
	repo, err := Open(filepath.Join(t.TempDir(), "traces.db"))
	is.NoErr(err)
	defer repo.Close()

	f := puyotest.Field("RRB...")
	keys := puyotest.Keys(">,,v,A")
	s := kumipuyo.New(nil, kumipuyo.InitialPos)
	var frames []Frame
	for i, ks := range keys {
		down := s.Move(f, ks)
		frames = append(frames, MakeFrame(i, ks, &s, down))
	}
	tr := MakeTrace(f, kumipuyo.InitialPos, keys, &s)

	id, err := repo.InsertTrace(&tr, frames)
	is.NoErr(err)
	is.Equal(tr.ID, id)

	got, err := repo.Trace(id)
	is.NoErr(err)
	is.Equal(got.Field, "RRB...")
	is.Equal(got.Keys, ">,,v,A")
	is.Equal(got.Start, "3,12,0")
	is.Equal(got.Final, s.Pos.String())

	rows, err := repo.Frames(id)
	is.NoErr(err)
	is.Equal(len(rows), len(keys))
	is.Equal(rows[0].X, 4)
	is.Equal(rows[0].Keys, puyo.Keys(puyo.Right).String())
	is.True(rows[2].DownAccepted)
	is.Equal(rows[3].R, s.Pos.R)
	for i, r := range rows {
		is.Equal(r.Frame, i)
		is.Equal(r.TraceID, id)
	}
}
