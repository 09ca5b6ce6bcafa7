// Package cache stores reachability search results in a badger
// database, keyed by field, starting position and frame constants.
package cache

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/nelhage/puyotician/kumipuyo"
	"github.com/nelhage/puyotician/notation"
	"github.com/nelhage/puyotician/puyo"
)

type Placements struct {
	db *badger.DB
}

// Open opens the cache in dir. An empty dir keeps the cache in memory.
func Open(dir string) (*Placements, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &Placements{db: db}, nil
}

func (p *Placements) Close() error {
	return p.db.Close()
}

// Key names the search from a freshly spawned pair at start. A nil cfg
// means kumipuyo.Defaults.
func Key(f puyo.Field, cfg *kumipuyo.Config, start kumipuyo.Pos) []byte {
	if cfg == nil {
		d := kumipuyo.Defaults()
		cfg = &d
	}
	return []byte(fmt.Sprintf("reach/%s/%s/%d,%d,%d,%d,%d,%d",
		strings.ReplaceAll(notation.FormatField(f), "\n", ""),
		start,
		cfg.FramesFreeFall,
		cfg.FramesContinuousTurnProhibited,
		cfg.FramesContinuousArrowProhibited,
		cfg.FramesQuickTurn,
		cfg.GroundingLimit,
		cfg.MaxAxisY,
	))
}

// Reachable returns kumipuyo.Reachable for a pair spawned at start,
// reading the cache first and filling it on a miss. hit reports
// whether the result came from the cache.
func (p *Placements) Reachable(f puyo.Field, cfg *kumipuyo.Config, start kumipuyo.Pos) (ps []kumipuyo.Placement, hit bool, err error) {
	key := Key(f, cfg, start)
	err = p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		hit = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &ps)
		})
	})
	if err != nil || hit {
		return ps, hit, err
	}

	ps = kumipuyo.Reachable(f, kumipuyo.New(cfg, start))
	data, err := json.Marshal(ps)
	if err != nil {
		return nil, false, err
	}
	err = p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	return ps, false, err
}
