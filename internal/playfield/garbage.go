package playfield

import (
	"math/rand"

	"github.com/blockforge/puzzlecore/internal/board"
)

// garbageCapPerLock is the default cap on how many garbage rows a single
// non-clearing lock can insert; the rest stays queued for later locks. A
// Playfield's cfg.GarbageCapPerLock overrides it.
const garbageCapPerLock = 8

// receiveGarbage appends a chunk of pending garbage lines to the reception
// queue. Called by the Match when the GarbageRouter releases an attack
// against this playfield.
func (p *Playfield) receiveGarbage(lines int) {
	if lines <= 0 {
		return
	}
	p.receptionQueue = append(p.receptionQueue, lines)
}

// insertPendingGarbage drains the reception queue into the grid, up to
// cfg.GarbageCapPerLock rows, reusing a single hole column for the entirety
// of a chunk that fits whole, and preserving the in-progress hole column
// across a chunk that got split by the cap.
func (p *Playfield) insertPendingGarbage(rng *rand.Rand) {
	limit := p.cfg.GarbageCapPerLock
	inserted := 0
	for inserted < limit && len(p.receptionQueue) > 0 {
		if p.activeHoleCol == -1 {
			p.activeHoleCol = rng.Intn(board.Cols)
		}

		k := p.receptionQueue[0]
		broken := false
		if inserted+k > limit {
			k = limit - inserted
			p.receptionQueue[0] -= k
			broken = true
		} else {
			p.receptionQueue = p.receptionQueue[1:]
		}

		p.grid.ShiftUp(k)
		for row := 0; row < k; row++ {
			p.grid.FillGarbageRow(row, p.activeHoleCol)
		}
		inserted += k

		if !broken {
			p.activeHoleCol = -1
		}
	}
}

// queuedGarbageLines reports the total lines still waiting in the
// reception queue, for HUDs and get_garbage_queued().
func (p *Playfield) queuedGarbageLines() int {
	total := 0
	for _, k := range p.receptionQueue {
		total += k
	}
	return total
}
