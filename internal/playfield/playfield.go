package playfield

import (
	"math/rand"

	"github.com/blockforge/puzzlecore/internal/board"
)

// AttackSink is the narrow, one-way seam a Playfield uses to hand attacks
// to its Match: the Playfield never reads Match state back, it only pushes.
type AttackSink interface {
	SendAttack(senderID, lines int)
}

// noopSink discards attacks; used until a Playfield is registered with a
// Match.
type noopSink struct{}

func (noopSink) SendAttack(int, int) {}

// Config bundles the house-rule tunables a Match derives from its
// MatchConfig and hands down to each Playfield it constructs: lock-delay
// timing and the per-lock garbage cap.
type Config struct {
	LockDelayDuration  float64
	LockDelayMaxResets int
	GarbageCapPerLock  int
}

// DefaultConfig returns the canonical Guideline-compatible tuning.
func DefaultConfig() Config {
	return Config{
		LockDelayDuration:  LockDelayDuration,
		LockDelayMaxResets: LockDelayMaxResets,
		GarbageCapPerLock:  garbageCapPerLock,
	}
}

// Playfield is one player's complete falling-block state machine: grid,
// active piece, hold slot, bag, lock-delay timer, garbage reception queue,
// and scoring counters.
type Playfield struct {
	id   int
	cfg  Config
	grid *board.Grid
	bag  *board.BagGenerator
	lock *LockDelayTimer
	sink AttackSink

	active              board.Piece
	hasActive           bool
	lastMoveWasRotation bool

	heldKind  board.PieceKind
	hasHeld   bool
	canHold   bool

	receptionQueue []int
	activeHoleCol  int

	score         int
	linesCleared  int
	combo         int
	b2bChain      int
	garbageDealt  int

	gameOver bool
}

// New returns a freshly reset Playfield with the given player id. The id is
// the value passed to the AttackSink when this playfield's attacks are
// forwarded, and the value the GarbageRouter uses to target it. rng must be
// the Match-shared pseudo-random source. cfg tunes lock-delay timing and
// the per-lock garbage cap; pass DefaultConfig() for the canonical rules.
func New(id int, rng *rand.Rand, cfg Config) *Playfield {
	p := &Playfield{
		id:   id,
		cfg:  cfg,
		grid: board.NewGrid(),
		bag:  board.NewBagGenerator(),
		lock: NewLockDelayTimer(cfg.LockDelayDuration, cfg.LockDelayMaxResets),
		sink: noopSink{},
	}
	p.Reset(rng)
	return p
}

// SetAttackSink wires this playfield's outgoing attacks to a Match (or any
// test double implementing AttackSink).
func (p *Playfield) SetAttackSink(sink AttackSink) {
	if sink == nil {
		sink = noopSink{}
	}
	p.sink = sink
}

// ID returns this playfield's player id.
func (p *Playfield) ID() int { return p.id }

// Reset clears the grid, counters, bag, and lock-delay state, and spawns
// the first piece.
func (p *Playfield) Reset(rng *rand.Rand) {
	p.grid.Reset()
	p.bag.Reset()
	p.lock.Cancel()
	p.lock.ResetCounter()

	p.hasActive = false
	p.lastMoveWasRotation = false
	p.hasHeld = false
	p.canHold = true
	p.receptionQueue = nil
	p.activeHoleCol = -1
	p.score = 0
	p.linesCleared = 0
	p.combo = -1
	p.b2bChain = 0
	p.garbageDealt = 0
	p.gameOver = false

	p.spawn(p.bag.Draw(rng))
}

// Spawn installs a new active piece of the given kind at its canonical
// spawn position. Exported for the Match/test harness to drive directly.
func (p *Playfield) Spawn(kind board.PieceKind) {
	p.spawn(kind)
}

func (p *Playfield) spawn(kind board.PieceKind) {
	piece := board.Piece{Kind: kind, Rotation: board.Spawn, Pos: board.SpawnAnchor(kind)}
	if !p.grid.IsValid(piece.Mask(), piece.Pos) {
		p.gameOver = true
		p.hasActive = false
		return
	}
	p.active = piece
	p.hasActive = true
	p.lastMoveWasRotation = false
	p.lock.Cancel()
	p.lock.ResetCounter()
	p.maybeStartLockDelay()
}

// restingOnFloor reports whether the active piece cannot move one cell
// further down.
func (p *Playfield) restingOnFloor() bool {
	return !p.grid.IsValid(p.active.Mask(), p.active.Pos.Add(0, -1))
}

func (p *Playfield) maybeStartLockDelay() {
	if p.restingOnFloor() {
		p.lock.Start()
	}
}

// Move attempts to translate the active piece by (dx, dy). Returns false
// if the destination collides or there is no active piece.
func (p *Playfield) Move(dx, dy int) bool {
	if !p.hasActive {
		return false
	}
	newPos := p.active.Pos.Add(dx, dy)
	if !p.grid.IsValid(p.active.Mask(), newPos) {
		return false
	}
	p.active.Pos = newPos
	p.lastMoveWasRotation = false
	if dx != 0 && p.lock.Active() {
		p.lock.Reset()
	}
	p.maybeStartLockDelay()
	return true
}

// RotationDir is the direction of a rotate() call.
type RotationDir uint8

const (
	RotateCW RotationDir = iota
	RotateCCW
	Rotate180
)

// Rotate attempts to rotate the active piece, trying each SRS+ kick offset
// in order until one succeeds.
func (p *Playfield) Rotate(dir RotationDir) bool {
	if !p.hasActive {
		return false
	}
	if p.active.Kind == board.O {
		return true
	}

	var toRot board.Rotation
	switch dir {
	case RotateCW:
		toRot = p.active.Rotation.RotateCW()
	case RotateCCW:
		toRot = p.active.Rotation.RotateCCW()
	case Rotate180:
		toRot = p.active.Rotation.Rotate180()
	}

	mask := board.MaskFor(p.active.Kind, toRot)
	for _, off := range board.Kicks(p.active.Kind, p.active.Rotation, toRot) {
		pos := p.active.Pos.Add(off.DX, off.DY)
		if !p.grid.IsValid(mask, pos) {
			continue
		}
		p.active.Rotation = toRot
		p.active.Pos = pos
		p.lastMoveWasRotation = true
		if p.lock.Active() {
			p.lock.Reset()
		}
		p.maybeStartLockDelay()
		return true
	}
	return false
}

// HardDrop drops the active piece to the floor and locks it immediately.
func (p *Playfield) HardDrop(rng *rand.Rand) {
	if !p.hasActive {
		return
	}
	p.lock.Cancel()
	for {
		next := p.active.Pos.Add(0, -1)
		if !p.grid.IsValid(p.active.Mask(), next) {
			break
		}
		p.active.Pos = next
	}
	p.lastMoveWasRotation = false
	if !p.grid.IsValid(p.active.Mask(), p.active.Pos) {
		return
	}
	p.lockPiece(rng)
}

// Hold swaps the active piece into the hold slot, spawning its replacement.
func (p *Playfield) Hold(rng *rand.Rand) bool {
	if !p.hasActive || !p.canHold {
		return false
	}
	current := p.active.Kind
	if !p.hasHeld {
		p.heldKind = current
		p.hasHeld = true
		p.spawn(p.bag.Draw(rng))
	} else {
		swap := p.heldKind
		p.heldKind = current
		p.spawn(swap)
	}
	p.canHold = false
	return true
}

// lockPiece runs the full lock pipeline: spin classification, grid write,
// line clear, garbage insertion, scoring/attack, then clears the active
// piece and spawns the next one.
func (p *Playfield) lockPiece(rng *rand.Rand) {
	p.lock.Cancel()

	spin := ClassifySpin(p.grid, p.active, p.lastMoveWasRotation)
	p.grid.Place(p.active.Mask(), p.active.Pos, board.CellForKind(p.active.Kind))

	cleared := clearFullLines(p.grid)
	if cleared == 0 {
		p.insertPendingGarbage(rng)
	}

	outcome := p.scoreLock(spin, cleared)
	p.score += outcome.points
	if outcome.attack > 0 {
		p.sink.SendAttack(p.id, outcome.attack)
		p.garbageDealt += outcome.attack
	}
	for _, wave := range outcome.releaseOnly {
		if wave <= 0 {
			continue
		}
		p.sink.SendAttack(p.id, wave)
		p.garbageDealt += wave
	}

	p.linesCleared += cleared
	p.hasActive = false
	p.canHold = true

	p.spawn(p.bag.Draw(rng))
}

// Update advances the lock-delay timer by dt seconds. If the timer expires
// while the piece still can't descend, the piece locks.
func (p *Playfield) Update(dt float64, rng *rand.Rand) {
	if !p.hasActive {
		return
	}
	if p.lock.Update(dt) && p.restingOnFloor() {
		p.lockPiece(rng)
	}
}

// ApplyGravity drops the active piece by up to rows cells, stopping early
// on collision (used by the GravityClock hook).
func (p *Playfield) ApplyGravity(rows int) {
	for i := 0; i < rows; i++ {
		if !p.Move(0, -1) {
			break
		}
	}
}

// ReceiveGarbage queues incoming garbage lines for insertion on the next
// non-clearing lock. Called by the Match's GarbageRouter.
func (p *Playfield) ReceiveGarbage(lines int) {
	p.receiveGarbage(lines)
}

// --- accessors ---

func (p *Playfield) IsGameOver() bool           { return p.gameOver }
func (p *Playfield) HasActivePiece() bool       { return p.hasActive }
func (p *Playfield) CurrentPiecePosition() board.Coord { return p.active.Pos }
func (p *Playfield) GetScore() int              { return p.score }
func (p *Playfield) GetLinesCleared() int       { return p.linesCleared }
func (p *Playfield) GetCombo() int              { return p.combo }
func (p *Playfield) GetB2BChain() int           { return p.b2bChain }
func (p *Playfield) GetGarbageQueued() int      { return p.queuedGarbageLines() }
func (p *Playfield) GetGarbageDealt() int       { return p.garbageDealt }
func (p *Playfield) CanHold() bool              { return p.canHold }

// GetHeldKind returns the held piece kind and whether the hold slot is
// occupied.
func (p *Playfield) GetHeldKind() (board.PieceKind, bool) {
	return p.heldKind, p.hasHeld
}

// GetNextQueue returns the next n upcoming piece kinds without consuming
// them.
func (p *Playfield) GetNextQueue(n int, rng *rand.Rand) []board.PieceKind {
	return p.bag.Peek(n, rng)
}

// Grid exposes the underlying grid for rendering and test assertions.
func (p *Playfield) Grid() *board.Grid { return p.grid }

// ActivePiece returns the active piece and whether one exists.
func (p *Playfield) ActivePiece() (board.Piece, bool) { return p.active, p.hasActive }

// RenderCell is a single visible-area cell snapshot for a read-only render
// consumer.
type RenderCell struct {
	Col, Row int
	Cell     board.Cell
}

// RenderableState is a read-only snapshot of the visible 20x10 grid, the
// active piece's occupied cells, the held kind, and the score/combo/B2B
// counters, for a demo renderer to draw without reaching into engine
// internals. It does not carry the next queue; GetNextQueue returns that.
type RenderableState struct {
	Cells       []RenderCell
	ActiveCells []RenderCell
	HeldKind    board.PieceKind
	HasHeld     bool
	Score       int
	Combo       int
	B2BChain    int
	GameOver    bool
}

// RenderableState builds the snapshot described above.
func (p *Playfield) RenderableState() RenderableState {
	var cells []RenderCell
	for row := 0; row < board.VisibleRows; row++ {
		for col := 0; col < board.Cols; col++ {
			if c := p.grid.At(col, row); !c.IsEmpty() {
				cells = append(cells, RenderCell{Col: col, Row: row, Cell: c})
			}
		}
	}

	var active []RenderCell
	if p.hasActive {
		mask := p.active.Mask()
		for i := 0; i < 16; i++ {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			col := p.active.Pos.X + i%4
			row := p.active.Pos.Y + i/4
			if row < board.VisibleRows {
				active = append(active, RenderCell{Col: col, Row: row, Cell: board.CellForKind(p.active.Kind)})
			}
		}
	}

	heldKind, hasHeld := p.GetHeldKind()
	return RenderableState{
		Cells:       cells,
		ActiveCells: active,
		HeldKind:    heldKind,
		HasHeld:     hasHeld,
		Score:       p.score,
		Combo:       p.combo,
		B2BChain:    p.b2bChain,
		GameOver:    p.gameOver,
	}
}
