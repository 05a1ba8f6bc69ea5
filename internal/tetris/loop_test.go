package tetris

import (
	"testing"
	"time"
)

// nextFrame waits for the loop to publish a snapshot.
func nextFrame(t *testing.T, l *Loop) Snapshot {
	t.Helper()
	select {
	case snap, ok := <-l.Frames():
		if !ok {
			t.Fatal("frame channel closed unexpectedly")
		}
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a frame")
	}
	return Snapshot{}
}

func TestLoopPublishesFrames(t *testing.T) {
	l := NewLoop(NewSession(1), time.Hour) // Gravity effectively off
	l.Start()

	l.Push(ActionPlay)
	snap := nextFrame(t, l)
	if snap.State != StatePlaying {
		t.Fatalf("state %v after Play, expected Playing", snap.State)
	}

	l.Push(ActionQuit)
}

func TestLoopQuitClosesFrames(t *testing.T) {
	l := NewLoop(NewSession(2), time.Hour)
	l.Start()

	l.Push(ActionQuit)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-l.Frames():
			if !ok {
				return // Closed, as expected
			}
		case <-deadline:
			t.Fatal("frame channel not closed after Quit")
		}
	}
}

func TestLoopTickerSuppressedOutsidePlaying(t *testing.T) {
	// Fast gravity, but the session stays in Menu: the ticker must not
	// emit, so no frames appear at all.
	l := NewLoop(NewSession(3), 5*time.Millisecond)
	l.Start()

	select {
	case snap := <-l.Frames():
		t.Fatalf("unexpected frame (state %v) while in Menu", snap.State)
	case <-time.After(100 * time.Millisecond):
	}

	l.Push(ActionQuit)
}

func TestLoopGravityWhilePlaying(t *testing.T) {
	l := NewLoop(NewSession(4), 5*time.Millisecond)
	l.Start()

	l.Push(ActionPlay)
	first := nextFrame(t, l)

	// Gravity alone must eventually publish a frame with the block lower
	// than where it started.
	deadline := time.After(2 * time.Second)
	for {
		var snap Snapshot
		select {
		case s, ok := <-l.Frames():
			if !ok {
				t.Fatal("frame channel closed while waiting for gravity")
			}
			snap = s
		case <-deadline:
			t.Fatal("gravity never moved the block")
		}
		if snap.BlockCells[0].Row > first.BlockCells[0].Row {
			break
		}
		if snap.State == StateEnded {
			t.Fatal("game ended before gravity was observed")
		}
	}

	l.Push(ActionQuit)
}

func TestLoopEventsSerialized(t *testing.T) {
	// Push a burst of moves; every published frame must be a valid
	// stepwise successor (no torn or interleaved state).
	l := NewLoop(NewSession(5), time.Hour)
	l.Start()

	l.Push(ActionPlay)
	for i := 0; i < 5; i++ {
		l.Push(ActionRight)
	}

	// Give the consumer time to work through the queue, then inspect the
	// final frame: five Rights from spawn keep all four cells in step.
	time.Sleep(100 * time.Millisecond)
	snap := nextFrame(t, l)
	if snap.State != StatePlaying {
		t.Fatalf("state %v, expected Playing", snap.State)
	}
	for _, c := range snap.BlockCells {
		if c.Col >= Cols {
			t.Fatalf("cell %v pushed beyond the right wall", c)
		}
	}

	l.Push(ActionQuit)
}

func TestLoopPushAfterQuitDoesNotBlock(t *testing.T) {
	l := NewLoop(NewSession(6), time.Hour)
	l.Start()

	l.Push(ActionQuit)
	for range l.Frames() {
		// Drain until closed
	}

	done := make(chan struct{})
	go func() {
		l.Push(ActionDown)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Push blocked after the loop stopped")
	}
}
