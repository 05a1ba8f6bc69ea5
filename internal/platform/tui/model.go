// Package tui provides the Bubble Tea integration for termtris: key mapping,
// frame rendering and the SSH server. The terminal program is only a
// collaborator of the engine — it decodes raw keys into actions, pushes them
// onto the engine's event queue and draws the snapshots the engine publishes.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termtris/internal/config"
	"termtris/internal/tetris"
)

// frameMsg carries a fresh engine snapshot to the model.
type frameMsg tetris.Snapshot

// framesClosedMsg signals that the engine loop has stopped (Quit).
type framesClosedMsg struct{}

// Options configures a game model.
type Options struct {
	Config config.Config
	Seed   int64
	Width  int
	Height int
}

// Model is the Bubble Tea model for a single game session. All game state
// lives in the engine loop's consumer goroutine; the model only holds the
// latest snapshot for View.
type Model struct {
	loop     *tetris.Loop
	renderer *Renderer
	keys     KeyMap
	snap     tetris.Snapshot
	quitting bool
}

// NewModel creates a model with a fresh engine session.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	session := tetris.NewSession(opts.Seed)
	gravity := time.Duration(opts.Config.Game.GravityMS) * time.Millisecond
	keys := DefaultKeyMap()

	return Model{
		loop:     tetris.NewLoop(session, gravity),
		renderer: NewRenderer(opts.Width, opts.Height, keys, opts.Config.Game.ShowNext),
		keys:     keys,
		snap:     session.Snapshot(),
	}
}

// Init starts the engine loop and begins waiting for frames.
func (m Model) Init() tea.Cmd {
	m.loop.Start()
	return m.waitForFrame()
}

// waitForFrame returns a command that blocks on the engine's frame channel.
func (m Model) waitForFrame() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.loop.Frames()
		if !ok {
			return framesClosedMsg{}
		}
		return frameMsg(snap)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if action, ok := m.keys.Map(msg); ok {
			// Decoded on this goroutine, consumed on the loop's;
			// unrecognized keys never reach the queue.
			m.loop.Push(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.snap = tetris.Snapshot(msg)
		return m, m.waitForFrame()

	case framesClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the latest snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.snap)
}

// Run starts a local Bubble Tea program for one game session and blocks
// until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
