package match

// TargetPolicy selects which alive opponent receives a forwarded attack.
// The default is round-robin; pluggable so an N>2 match can swap in
// lowest-board-first, random, or any other strategy without touching
// Playfield or Match internals.
type TargetPolicy interface {
	SelectTarget(senderID int, alive []int) int
}

// roundRobinPolicy targets the next alive player id after the sender,
// wrapping around; in a 2-player match this always picks "the other one".
type roundRobinPolicy struct{}

func (roundRobinPolicy) SelectTarget(senderID int, alive []int) int {
	if len(alive) == 0 {
		return senderID
	}
	for i, id := range alive {
		if id == senderID {
			return alive[(i+1)%len(alive)]
		}
	}
	return alive[0]
}

// garbageChunk is one attack's worth of lines sitting in a pending queue,
// counting down the release delay.
type garbageChunk struct {
	lines      int
	framesLeft int
}

// receiver is the narrow interface the router needs from a Playfield to
// release garbage into its reception queue.
type receiver interface {
	ReceiveGarbage(lines int)
}

// GarbageRouter owns one pending queue per playfield. Transfer cancels an
// outgoing attack against the sender's own pending queue before forwarding
// the remainder to a target, and Update ages every pending entry, releasing
// the front of each queue into its owner's reception queue once its delay
// elapses.
type GarbageRouter struct {
	delayFrames int
	policy      TargetPolicy
	pending     map[int][]garbageChunk
	receivers   map[int]receiver
	order       []int
}

// NewGarbageRouter returns a router using the given per-chunk release delay
// and target policy. A nil policy defaults to round-robin.
func NewGarbageRouter(delayFrames int, policy TargetPolicy) *GarbageRouter {
	if policy == nil {
		policy = roundRobinPolicy{}
	}
	return &GarbageRouter{
		delayFrames: delayFrames,
		policy:      policy,
		pending:     make(map[int][]garbageChunk),
		receivers:   make(map[int]receiver),
	}
}

// Register wires a playfield's receiver into the router and establishes it
// as alive for target selection.
func (r *GarbageRouter) Register(id int, rcv receiver) {
	if _, ok := r.receivers[id]; !ok {
		r.order = append(r.order, id)
	}
	r.receivers[id] = rcv
	if _, ok := r.pending[id]; !ok {
		r.pending[id] = nil
	}
}

// Reset empties every pending queue without unregistering players.
func (r *GarbageRouter) Reset() {
	for id := range r.pending {
		r.pending[id] = nil
	}
}

// Transfer cancels lines against the sender's own pending queue, then
// forwards whatever remains to a target selected by the router's policy.
func (r *GarbageRouter) Transfer(senderID, lines int) {
	if lines <= 0 {
		return
	}
	queue := r.pending[senderID]
	for lines > 0 && len(queue) > 0 {
		front := &queue[0]
		if front.lines <= lines {
			lines -= front.lines
			queue = queue[1:]
		} else {
			front.lines -= lines
			lines = 0
		}
	}
	r.pending[senderID] = queue

	if lines <= 0 {
		return
	}
	target := r.policy.SelectTarget(senderID, r.aliveIDs())
	r.pending[target] = append(r.pending[target], garbageChunk{lines: lines, framesLeft: r.delayFrames})
}

func (r *GarbageRouter) aliveIDs() []int {
	ids := make([]int, 0, len(r.order))
	ids = append(ids, r.order...)
	return ids
}

// PendingLines reports the total queued (not yet released) attack lines
// aimed at a playfield.
func (r *GarbageRouter) PendingLines(id int) int {
	total := 0
	for _, c := range r.pending[id] {
		total += c.lines
	}
	return total
}

// Update ages every pending queue's front entry by one virtual frame,
// releasing it into the owner's reception queue once its delay elapses.
func (r *GarbageRouter) Update() {
	for _, id := range r.order {
		queue := r.pending[id]
		if len(queue) == 0 {
			continue
		}
		front := &queue[0]
		front.framesLeft--
		if front.framesLeft <= 0 {
			if rcv := r.receivers[id]; rcv != nil {
				rcv.ReceiveGarbage(front.lines)
			}
			queue = queue[1:]
		}
		r.pending[id] = queue
	}
}
