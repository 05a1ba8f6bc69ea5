package tetris

import "math/rand"

// State is the game state machine's current state. Exactly one value holds
// at a time; HandleEvent transitions are the only way to change it.
type State int32

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Session is the sole root of mutable game state: the board, the current and
// next (preview) blocks, the score and the state tag. It is not safe for
// concurrent use; the event loop guarantees a single consumer (see Loop).
type Session struct {
	board   *Board
	current *Block
	next    *Block
	score   int
	state   State
	rng     *rand.Rand
}

// NewSession creates a session in the Menu state with a seeded RNG.
func NewSession(seed int64) *Session {
	s := &Session{rng: rand.New(rand.NewSource(seed))}
	s.reset()
	s.state = StateMenu
	return s
}

// reset replaces the board, score and block pair, leaving the state alone.
func (s *Session) reset() {
	s.board = NewBoard()
	s.score = 0
	s.current = SpawnBlock(s.rng)
	s.next = SpawnBlock(s.rng)
}

// State returns the current state tag.
func (s *Session) State() State {
	return s.state
}

// Score returns the current point counter. It never decreases within a game.
func (s *Session) Score() int {
	return s.score
}

// HandleEvent advances the state machine by one event and reports whether
// the session should keep running (false after a Quit). Gravity ticks and
// movement keys are no-ops outside Playing.
func (s *Session) HandleEvent(ev Event) bool {
	if ev.Tick {
		if s.state == StatePlaying {
			s.descend()
		}
		return true
	}

	if ev.Key == ActionQuit {
		return false
	}

	switch s.state {
	case StateMenu:
		if ev.Key == ActionPlay {
			s.state = StatePlaying
		}
	case StatePlaying:
		switch ev.Key {
		case ActionDown:
			// A blocked manual descent settles exactly like a gravity tick.
			s.descend()
		case ActionLeft:
			s.tryMove((*Block).Left)
		case ActionRight:
			s.tryMove((*Block).Right)
		case ActionRotate:
			s.tryMove((*Block).Rotate)
		case ActionPause:
			s.state = StatePaused
		}
	case StatePaused:
		if ev.Key == ActionPause {
			s.state = StatePlaying
		}
	case StateEnded:
		if ev.Key == ActionPlay {
			// Full restart: fresh board, score 0, new block pair.
			s.reset()
			s.state = StatePlaying
		}
	}
	return true
}

// tryMove applies a movement to a clone of the current block and commits it
// only if the result does not collide. A rejected move leaves everything
// unchanged; the failure never surfaces to the player.
func (s *Session) tryMove(move func(*Block)) {
	tentative := s.current.Clone()
	move(tentative)
	if !s.board.IsCollision(tentative) {
		s.current = tentative
	}
}

// descend moves the current block one row down. A blocked descent means the
// block settles: it is locked into the board, completed lines are cleared
// and scored, and the preview block is promoted. The game ends when the
// settled stack reaches the spawn buffer or the promoted block collides
// immediately at spawn.
func (s *Session) descend() {
	tentative := s.current.Clone()
	tentative.Down()
	if !s.board.IsCollision(tentative) {
		s.current = tentative
		return
	}

	s.board.Lock(s.current)
	s.score += s.board.ClearLines()
	if s.board.IsGameOver() {
		s.state = StateEnded
		return
	}

	s.current = s.next
	s.next = SpawnBlock(s.rng)
	if s.board.IsCollision(s.current) {
		s.state = StateEnded
	}
}
