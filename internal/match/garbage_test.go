package match

import "testing"

type recordingReceiver struct {
	received []int
}

func (r *recordingReceiver) ReceiveGarbage(lines int) {
	r.received = append(r.received, lines)
}

func TestGarbageRouterForwardsToRoundRobinTarget(t *testing.T) {
	r := NewGarbageRouter(2, nil)
	a, b := &recordingReceiver{}, &recordingReceiver{}
	r.Register(0, a)
	r.Register(1, b)

	r.Transfer(0, 3)
	if got := r.PendingLines(1); got != 3 {
		t.Fatalf("PendingLines(1) = %d, want 3 after player 0 sends 3 with no pending counter-attack", got)
	}
	if got := r.PendingLines(0); got != 0 {
		t.Fatalf("PendingLines(0) = %d, want 0: the sender's own queue is untouched by its own attack", got)
	}
}

func TestGarbageRouterTransferCancelsSendersOwnPendingFirst(t *testing.T) {
	r := NewGarbageRouter(2, nil)
	a, b := &recordingReceiver{}, &recordingReceiver{}
	r.Register(0, a)
	r.Register(1, b)

	// Player 1 already has 4 pending lines queued against it (e.g. from a
	// prior attack by player 0).
	r.Transfer(0, 4)
	if got := r.PendingLines(1); got != 4 {
		t.Fatalf("PendingLines(1) = %d, want 4", got)
	}

	// Player 1 counters with 3: it cancels against ITS OWN pending queue
	// first, leaving 1 remainder, which forwards nothing extra out since
	// the full 3 was absorbed by cancellation.
	r.Transfer(1, 3)
	if got := r.PendingLines(1); got != 1 {
		t.Fatalf("PendingLines(1) = %d, want 1 after a 3-line counter cancels 3 of the 4 pending", got)
	}
	if got := r.PendingLines(0); got != 0 {
		t.Fatalf("PendingLines(0) = %d, want 0: nothing should have forwarded to player 0", got)
	}
}

func TestGarbageRouterTransferForwardsRemainderAfterFullCancellation(t *testing.T) {
	r := NewGarbageRouter(2, nil)
	a, b := &recordingReceiver{}, &recordingReceiver{}
	r.Register(0, a)
	r.Register(1, b)

	r.Transfer(0, 2) // 2 pending against player 1
	r.Transfer(1, 5) // cancels the 2, forwards the remaining 3 to player 0

	if got := r.PendingLines(1); got != 0 {
		t.Fatalf("PendingLines(1) = %d, want 0 after full cancellation", got)
	}
	if got := r.PendingLines(0); got != 3 {
		t.Fatalf("PendingLines(0) = %d, want 3 forwarded remainder", got)
	}
}

func TestGarbageRouterUpdateReleasesAfterDelay(t *testing.T) {
	r := NewGarbageRouter(2, nil)
	a, b := &recordingReceiver{}, &recordingReceiver{}
	r.Register(0, a)
	r.Register(1, b)

	r.Transfer(0, 5)
	r.Update()
	if len(b.received) != 0 {
		t.Fatalf("garbage released before its delay elapsed")
	}
	r.Update()
	if len(b.received) != 1 || b.received[0] != 5 {
		t.Fatalf("received = %v, want a single release of 5 after delayFrames elapses", b.received)
	}
	if got := r.PendingLines(1); got != 0 {
		t.Fatalf("PendingLines(1) = %d, want 0 once released", got)
	}
}

func TestGarbageRouterResetClearsPendingNotRegistrations(t *testing.T) {
	r := NewGarbageRouter(2, nil)
	a, b := &recordingReceiver{}, &recordingReceiver{}
	r.Register(0, a)
	r.Register(1, b)
	r.Transfer(0, 4)

	r.Reset()

	if got := r.PendingLines(1); got != 0 {
		t.Fatalf("PendingLines(1) = %d, want 0 after Reset", got)
	}
	r.Transfer(0, 1)
	if got := r.PendingLines(1); got != 1 {
		t.Fatalf("router should still route normally after Reset: PendingLines(1) = %d, want 1", got)
	}
}
