package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite

	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/notation"
	"github.com/nelhage/puyotician/puyo"
)

type Repository struct {
	db *sqlx.DB
}

type Trace struct {
	ID        int64     `db:"id"`
	Timestamp time.Time `db:"time"`
	Field     string    `db:"field"`
	Start     string    `db:"start"`
	Keys      string    `db:"keys"`
	Final     string    `db:"final"`
	Grounded  bool      `db:"grounded"`
}

// Frame is one row per simulated frame: the keys held and the state
// after the frame.
type Frame struct {
	TraceID         int64  `db:"trace_id"`
	Frame           int    `db:"frame"`
	Keys            string `db:"keys"`
	X               int    `db:"x"`
	Y               int    `db:"y"`
	R               int    `db:"r"`
	TurnProhibited  int    `db:"turn_prohibited"`
	ArrowProhibited int    `db:"arrow_prohibited"`
	QuickTurn       int    `db:"quick_turn"`
	Freefall        int    `db:"freefall"`
	NumGrounded     int    `db:"num_grounded"`
	Grounding       bool   `db:"grounding"`
	Grounded        bool   `db:"grounded"`
	DownAccepted    bool   `db:"down_accepted"`
}

func MakeFrame(i int, keys puyo.KeySet, s *kumipuyo.MovingState, down bool) Frame {
	return Frame{
		Frame:           i,
		Keys:            keys.String(),
		X:               s.Pos.X,
		Y:               s.Pos.Y,
		R:               s.Pos.R,
		TurnProhibited:  s.RestFramesTurnProhibited,
		ArrowProhibited: s.RestFramesArrowProhibited,
		QuickTurn:       s.RestFramesToAcceptQuickTurn,
		Freefall:        s.RestFramesForFreefall,
		NumGrounded:     s.NumGrounded,
		Grounding:       s.Grounding,
		Grounded:        s.Grounded,
		DownAccepted:    down,
	}
}

func MakeTrace(f puyo.Field, start kumipuyo.Pos, keys []puyo.KeySet, final *kumipuyo.MovingState) Trace {
	return Trace{
		Timestamp: time.Now().UTC(),
		Field:     notation.FormatField(f),
		Start:     start.String(),
		Keys:      notation.FormatKeys(keys),
		Final:     final.Pos.String(),
		Grounded:  final.Grounded,
	}
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(createTraceTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create trace table: %w", err)
	}
	if _, err = db.Exec(createFrameTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create frame table: %w", err)
	}
	return &Repository{db: db}, nil
}

// InsertTrace stores t and its frames in one transaction and returns
// the new trace id.
func (r *Repository) InsertTrace(t *Trace, frames []Frame) (int64, error) {
	txn, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer txn.Rollback()

	res, err := txn.NamedExec(insertTraceStmt, t)
	if err != nil {
		return 0, fmt.Errorf("insert trace: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	stmt, err := txn.PrepareNamed(insertFrameStmt)
	if err != nil {
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()
	for i := range frames {
		frames[i].TraceID = id
		if _, err := stmt.Exec(&frames[i]); err != nil {
			return 0, fmt.Errorf("insert frame %d: %w", frames[i].Frame, err)
		}
	}
	if err := txn.Commit(); err != nil {
		return 0, err
	}
	t.ID = id
	return id, nil
}

func (r *Repository) Trace(id int64) (*Trace, error) {
	var t Trace
	if err := r.db.Get(&t, selectTraceStmt, id); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Frames(traceID int64) ([]Frame, error) {
	var out []Frame
	if err := r.db.Select(&out, selectFramesStmt, traceID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Close() {
	r.db.Close()
}
