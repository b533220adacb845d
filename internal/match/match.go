// Package match implements the cross-player coordinator: N playfields
// sharing a seed and pseudo-random source, a single GravityClock driving
// them in lockstep, and a GarbageRouter ferrying attacks between them.
package match

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/blockforge/puzzlecore/internal/playfield"
)

// Match owns every playfield in a game, the shared deterministic random
// source, the GravityClock, and the GarbageRouter.
type Match struct {
	cfg    MatchConfig
	rng    *rand.Rand
	fields []*playfield.Playfield
	router *GarbageRouter
	clock  *GravityClock
}

// New returns a Match configured per cfg with no players yet; call
// AddPlayer to populate it.
func New(cfg MatchConfig) *Match {
	m := &Match{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		router: NewGarbageRouter(cfg.Garbage.DelayFrames, nil),
	}
	m.clock = NewGravityClock(cfg.Gravity, m.applyGravityToAll)
	return m
}

// NewWithTimeSource returns a Match whose GravityClock is driven by ts
// instead of the real wall clock, for deterministic tests.
func NewWithTimeSource(cfg MatchConfig, ts TimeSource) *Match {
	m := &Match{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		router: NewGarbageRouter(cfg.Garbage.DelayFrames, nil),
	}
	m.clock = NewGravityClockWithTimeSource(cfg.Gravity, m.applyGravityToAll, ts)
	return m
}

// SetTargetPolicy swaps the GarbageRouter's target-selection strategy.
func (m *Match) SetTargetPolicy(policy TargetPolicy) {
	m.router.policy = policy
	if policy == nil {
		m.router.policy = roundRobinPolicy{}
	}
}

// AddPlayer creates and registers a new playfield, returning its id (its
// index).
func (m *Match) AddPlayer() int {
	id := len(m.fields)
	pf := playfield.New(id, m.rng, playfield.Config{
		LockDelayDuration:  m.cfg.LockDelay.DurationSeconds,
		LockDelayMaxResets: m.cfg.LockDelay.MaxResets,
		GarbageCapPerLock:  m.cfg.Garbage.CapPerLock,
	})
	pf.SetAttackSink(m)
	m.fields = append(m.fields, pf)
	m.router.Register(id, pf)
	log.Printf("[MATCH] player %d joined, seed=%d", id, m.cfg.Seed)
	return id
}

// SendAttack implements playfield.AttackSink: a playfield's outgoing
// attack is routed through the GarbageRouter's cancellation/forward logic.
func (m *Match) SendAttack(senderID, lines int) {
	log.Printf("[ATTACK] player %d sends %d", senderID, lines)
	m.router.Transfer(senderID, lines)
}

// applyGravityToAll is the GravityClock's narrow callback: it never reaches
// back into Match state beyond the rows count it's given.
func (m *Match) applyGravityToAll(rows int) {
	for _, pf := range m.fields {
		pf.ApplyGravity(rows)
	}
}

// Reset reseeds the shared RNG and resets every playfield and the router,
// producing a state equal to a freshly constructed match with the same
// seed.
func (m *Match) Reset() {
	m.rng = rand.New(rand.NewSource(m.cfg.Seed))
	m.router.Reset()
	for _, pf := range m.fields {
		pf.Reset(m.rng)
	}
	m.clock.Reset()
	log.Printf("[MATCH] reset, seed=%d", m.cfg.Seed)
}

// Update advances one simulated frame: the GravityClock ticks (applying
// gravity to every playfield as needed), every playfield services its
// lock-delay timer, and the GarbageRouter ages its pending queues.
//
// Per-playfield input actions are expected to have already been applied by
// the caller (via the playfield's control methods) before Update runs.
func (m *Match) Update(dt float64) {
	m.clock.Update()
	for _, pf := range m.fields {
		pf.Update(dt, m.rng)
	}
	m.router.Update()
}

// GetBoard returns the playfield at index i. Accessing a non-existent
// playfield is a precondition violation, not a recoverable condition: it
// panics.
func (m *Match) GetBoard(i int) *playfield.Playfield {
	if i < 0 || i >= len(m.fields) {
		panic(fmt.Sprintf("match: playfield index %d out of range [0,%d)", i, len(m.fields)))
	}
	return m.fields[i]
}

// PlayerCount reports how many playfields this match has.
func (m *Match) PlayerCount() int {
	return len(m.fields)
}

// GetSeed returns the match's shared random seed.
func (m *Match) GetSeed() int64 {
	return m.cfg.Seed
}

// TransferGarbage is the external-driver-facing entry point for sending an
// attack against another player; it is identical to the SendAttack hook
// but exported for direct driver/test use.
func (m *Match) TransferGarbage(senderID, lines int) {
	m.router.Transfer(senderID, lines)
}

// PendingGarbage reports the total attack lines queued (not yet released)
// against a playfield, for HUDs and tests.
func (m *Match) PendingGarbage(id int) int {
	return m.router.PendingLines(id)
}

// The following are thin forwarding wrappers so an external driver (e.g.
// internal/protocol) can drive a playfield's control operations without
// reaching into the Match-owned shared RNG itself.

// Move forwards to the playfield's Move.
func (m *Match) Move(boardID, dx, dy int) bool {
	return m.GetBoard(boardID).Move(dx, dy)
}

// Rotate forwards to the playfield's Rotate.
func (m *Match) Rotate(boardID int, dir playfield.RotationDir) bool {
	return m.GetBoard(boardID).Rotate(dir)
}

// HardDrop forwards to the playfield's HardDrop, supplying the
// match-shared RNG.
func (m *Match) HardDrop(boardID int) {
	m.GetBoard(boardID).HardDrop(m.rng)
}

// Hold forwards to the playfield's Hold, supplying the match-shared RNG.
func (m *Match) Hold(boardID int) bool {
	return m.GetBoard(boardID).Hold(m.rng)
}
