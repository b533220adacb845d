package playfield

import "testing"

func TestLockDelayStartIsIdempotent(t *testing.T) {
	timer := NewLockDelayTimer(LockDelayDuration, LockDelayMaxResets)
	timer.Start()
	timer.Update(0.3)
	timer.Start() // must not refresh elapsed
	if timer.Update(0.19) {
		t.Fatalf("expected timer not yet expired after 0.49s total with a no-op Start")
	}
	if !timer.Update(0.02) {
		t.Fatalf("expected timer to expire once total elapsed reaches DELAY_DURATION")
	}
}

func TestLockDelayResetCap(t *testing.T) {
	timer := NewLockDelayTimer(LockDelayDuration, LockDelayMaxResets)
	timer.Start()

	for i := 0; i < LockDelayMaxResets; i++ {
		timer.Update(0.4)
		timer.Reset()
	}
	if timer.ResetsLeft() != 0 {
		t.Fatalf("ResetsLeft() = %d, want 0 after %d resets", timer.ResetsLeft(), LockDelayMaxResets)
	}

	// The 16th reset attempt must be a no-op: the timer keeps ticking.
	timer.Reset()
	if timer.ResetsLeft() != 0 {
		t.Fatalf("Reset() beyond cap changed ResetsLeft() to %d", timer.ResetsLeft())
	}
	if timer.Update(LockDelayDuration) != true {
		t.Fatalf("expected timer to expire on the next Update once resets are exhausted")
	}
}

func TestLockDelayCancel(t *testing.T) {
	timer := NewLockDelayTimer(LockDelayDuration, LockDelayMaxResets)
	timer.Start()
	timer.Update(0.4)
	timer.Cancel()
	if timer.Active() {
		t.Fatalf("timer still active after Cancel")
	}
	if timer.Update(LockDelayDuration) {
		t.Fatalf("cancelled timer should not expire")
	}
}

func TestLockDelayResetCounter(t *testing.T) {
	timer := NewLockDelayTimer(LockDelayDuration, LockDelayMaxResets)
	timer.Start()
	timer.Reset()
	timer.Reset()
	timer.ResetCounter()
	if timer.ResetsLeft() != LockDelayMaxResets {
		t.Fatalf("ResetsLeft() = %d after ResetCounter(), want %d", timer.ResetsLeft(), LockDelayMaxResets)
	}
}
