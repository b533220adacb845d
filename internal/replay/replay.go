// Package replay implements an append-only action log backed by BadgerDB,
// satisfying the "seed + timestamped action log" determinism-replay
// contract: a fresh Match built from the stored seed and fed the logged
// actions back through the same public control operations reproduces the
// original run byte-for-byte.
package replay

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/blockforge/puzzlecore/internal/match"
	"github.com/blockforge/puzzlecore/internal/playfield"
)

const (
	keySeed       = "seed"
	actionPrefix  = "action/"
	actionKeyFmt  = "action/%020d"
)

// ActionKind names a public control operation.
type ActionKind string

const (
	ActionMoveLeft   ActionKind = "move_left"
	ActionMoveRight  ActionKind = "move_right"
	ActionSoftDrop   ActionKind = "soft_drop"
	ActionRotateCW   ActionKind = "rotate_cw"
	ActionRotateCCW  ActionKind = "rotate_ccw"
	ActionRotate180  ActionKind = "rotate_180"
	ActionHardDrop   ActionKind = "hard_drop"
	ActionHold       ActionKind = "hold"
	ActionTick       ActionKind = "tick"
)

// Action is one recorded input: which playfield it targets, what control
// operation to replay, and (for "tick") the elapsed-time payload.
type Action struct {
	Frame       int        `json:"frame"`
	PlayfieldID int        `json:"playfield_id"`
	Kind        ActionKind `json:"kind"`
	TimestampNS int64      `json:"timestamp_ns"`
	TickSeconds float64    `json:"tick_seconds,omitempty"`
}

// Recorder appends actions to a BadgerDB-backed log, keyed by a monotonic,
// fixed-width sequence number so key order matches append order.
type Recorder struct {
	db  *badger.DB
	seq uint64
}

// NewRecorder opens (creating if needed) a BadgerDB at dir and writes the
// match seed as the log's header record.
func NewRecorder(dir string, seed int64) (*Recorder, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("replay: opening log at %s: %w", dir, err)
	}

	r := &Recorder{db: db}
	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySeed), []byte(fmt.Sprintf("%d", seed)))
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("replay: writing seed: %w", err)
	}
	return r, nil
}

// Close closes the underlying database.
func (r *Recorder) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Append records one action under the next sequence number. Match does not
// call it; whoever applies actions to a live match records them here.
func (r *Recorder) Append(a Action) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("replay: marshaling action: %w", err)
	}
	key := fmt.Sprintf(actionKeyFmt, r.seq)
	r.seq++
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Load reads a log's seed and ordered action list back out of dir.
func Load(dir string) (seed int64, actions []Action, err error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return 0, nil, fmt.Errorf("replay: opening log at %s: %w", dir, err)
	}
	defer db.Close()

	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySeed))
		if err != nil {
			return fmt.Errorf("replay: reading seed: %w", err)
		}
		return item.Value(func(val []byte) error {
			_, scanErr := fmt.Sscanf(string(val), "%d", &seed)
			return scanErr
		})
	})
	if err != nil {
		return 0, nil, err
	}

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(actionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var a Action
			decodeErr := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &a)
			})
			if decodeErr != nil {
				return fmt.Errorf("replay: decoding action: %w", decodeErr)
			}
			actions = append(actions, a)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return seed, actions, nil
}

// Replay constructs a fresh Match from cfg (whose Seed should equal the
// log's stored seed) and feeds every action back through the Match's
// public control operations, in order.
func Replay(cfg match.MatchConfig, playerCount int, actions []Action) *match.Match {
	m := match.New(cfg)
	for i := 0; i < playerCount; i++ {
		m.AddPlayer()
	}
	for _, a := range actions {
		Apply(m, a)
	}
	return m
}

// Apply dispatches a single action to the matching Match control
// operation.
func Apply(m *match.Match, a Action) {
	switch a.Kind {
	case ActionMoveLeft:
		m.Move(a.PlayfieldID, -1, 0)
	case ActionMoveRight:
		m.Move(a.PlayfieldID, 1, 0)
	case ActionSoftDrop:
		m.Move(a.PlayfieldID, 0, -1)
	case ActionRotateCW:
		m.Rotate(a.PlayfieldID, playfield.RotateCW)
	case ActionRotateCCW:
		m.Rotate(a.PlayfieldID, playfield.RotateCCW)
	case ActionRotate180:
		m.Rotate(a.PlayfieldID, playfield.Rotate180)
	case ActionHardDrop:
		m.HardDrop(a.PlayfieldID)
	case ActionHold:
		m.Hold(a.PlayfieldID)
	case ActionTick:
		m.Update(a.TickSeconds)
	}
}
