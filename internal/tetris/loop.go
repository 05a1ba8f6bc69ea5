package tetris

import (
	"sync/atomic"
	"time"
)

// DefaultGravityInterval is the fixed delay between gravity ticks.
const DefaultGravityInterval = 1000 * time.Millisecond

// Loop wires the gravity ticker and the input source to a Session through a
// single ordered event queue. Producers (the ticker goroutine and whoever
// calls Push) share the queue; Run is the only consumer and therefore the
// only goroutine that ever mutates the session. The one value shared across
// goroutines is the state flag the ticker reads, held in an atomic written
// solely by the consumer.
type Loop struct {
	session *Session
	events  chan Event
	frames  chan Snapshot
	done    chan struct{}

	// state mirrors session.State() for the ticker goroutine, which must
	// suppress ticks outside Playing without the consumer having to
	// filter them.
	state atomic.Int32

	gravity time.Duration
}

// NewLoop creates a loop around the session. A non-positive gravity interval
// falls back to DefaultGravityInterval.
func NewLoop(session *Session, gravity time.Duration) *Loop {
	if gravity <= 0 {
		gravity = DefaultGravityInterval
	}
	l := &Loop{
		session: session,
		events:  make(chan Event, 16),
		frames:  make(chan Snapshot, 1),
		done:    make(chan struct{}),
		gravity: gravity,
	}
	l.state.Store(int32(session.State()))
	return l
}

// Frames returns the channel on which the loop publishes a snapshot after
// every processed event. It is closed when the loop stops.
func (l *Loop) Frames() <-chan Snapshot {
	return l.frames
}

// Push enqueues a decoded key action. It is safe to call from any goroutine
// and becomes a no-op once the loop has stopped; a late keypress racing a
// quit is dropped rather than crashing the producer.
func (l *Loop) Push(a Action) {
	select {
	case l.events <- KeyEvent(a):
	case <-l.done:
	}
}

// Start launches the gravity ticker and the consumer, then returns. The
// consumer runs until a Quit action arrives.
func (l *Loop) Start() {
	go l.tick()
	go l.run()
}

// tick emits gravity ticks at a fixed interval while the shared state flag
// reads Playing. There is no graceful shutdown handshake: the goroutine
// simply stops producing once the loop is done.
func (l *Loop) tick() {
	for {
		time.Sleep(l.gravity)
		select {
		case <-l.done:
			return
		default:
		}
		if State(l.state.Load()) != StatePlaying {
			continue
		}
		select {
		case l.events <- TickEvent():
		case <-l.done:
			return
		}
	}
}

// run is the single consumer: it receives events in arrival order, fully
// processes each one before reading the next, and publishes a snapshot after
// every event. Two events are never processed concurrently.
func (l *Loop) run() {
	defer close(l.frames)
	for ev := range l.events {
		if !l.session.HandleEvent(ev) {
			close(l.done)
			return
		}
		l.state.Store(int32(l.session.State()))
		l.publish(l.session.Snapshot())
	}
}

// publish hands the renderer the latest snapshot. If the renderer has not
// picked up the previous frame yet, the stale one is replaced: frames are
// whole-state snapshots, so only the newest matters.
func (l *Loop) publish(snap Snapshot) {
	for {
		select {
		case l.frames <- snap:
			return
		default:
		}
		select {
		case <-l.frames:
		default:
		}
	}
}
