package tui

import (
	"strings"
	"testing"

	"termtris/internal/tetris"
)

func snapshotAt(t *testing.T, seed int64, state tetris.State) tetris.Snapshot {
	t.Helper()
	s := tetris.NewSession(seed)
	if state == tetris.StateMenu {
		return s.Snapshot()
	}
	if !s.HandleEvent(tetris.KeyEvent(tetris.ActionPlay)) {
		t.Fatal("play event ended the session")
	}
	if state == tetris.StatePaused {
		s.HandleEvent(tetris.KeyEvent(tetris.ActionPause))
	}
	return s.Snapshot()
}

func TestRenderMenu(t *testing.T) {
	r := NewRenderer(80, 24, DefaultKeyMap(), true)
	out := r.Render(snapshotAt(t, 1, tetris.StateMenu))

	for _, want := range []string{"TERMTRIS", "KEYS:", "move left", "rotate", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu frame missing %q", want)
		}
	}
	if strings.Contains(out, "Score:") {
		t.Error("menu frame should not show the score")
	}
}

func TestRenderPlaying(t *testing.T) {
	r := NewRenderer(80, 24, DefaultKeyMap(), true)
	out := r.Render(snapshotAt(t, 1, tetris.StatePlaying))

	if !strings.Contains(out, "Score: 0") {
		t.Error("playing frame missing the score")
	}
	if !strings.Contains(out, "Next:") {
		t.Error("playing frame missing the preview")
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "└") {
		t.Error("playing frame missing the board border")
	}
}

func TestRenderHidesPreviewWhenDisabled(t *testing.T) {
	r := NewRenderer(80, 24, DefaultKeyMap(), false)
	out := r.Render(snapshotAt(t, 1, tetris.StatePlaying))

	if strings.Contains(out, "Next:") {
		t.Error("preview rendered despite being disabled")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("score missing with preview disabled")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	r := NewRenderer(80, 24, DefaultKeyMap(), true)
	out := r.Render(snapshotAt(t, 1, tetris.StatePaused))

	if !strings.Contains(out, "GAME PAUSED") {
		t.Error("paused frame missing the overlay title")
	}
	if !strings.Contains(out, "Press space to resume") {
		t.Error("paused frame missing the resume hint")
	}
}

func TestRenderEndedOverlay(t *testing.T) {
	r := NewRenderer(80, 24, DefaultKeyMap(), true)
	snap := snapshotAt(t, 1, tetris.StatePlaying)
	snap.State = tetris.StateEnded
	out := r.Render(snap)

	if !strings.Contains(out, "YOU LOST!") {
		t.Error("ended frame missing the overlay title")
	}
	if !strings.Contains(out, "restart") {
		t.Error("ended frame missing the restart hint")
	}
}

func TestRenderHidesSpawnBuffer(t *testing.T) {
	r := NewRenderer(80, 30, DefaultKeyMap(), false)
	snap := snapshotAt(t, 1, tetris.StatePlaying)

	// Report the falling block entirely inside the hidden rows; the board
	// area must stay empty while the border still renders.
	for i := range snap.BlockCells {
		snap.BlockCells[i] = tetris.Cell{Row: i % tetris.SpawnBufferRows, Col: i}
	}
	snap.Grid = [tetris.Rows][tetris.Cols]tetris.Square{}

	out := r.Render(snap)
	if strings.ContainsRune(out, blockRune) {
		t.Error("cells in the spawn buffer must not be drawn")
	}
}

func TestRenderResize(t *testing.T) {
	r := NewRenderer(80, 24, DefaultKeyMap(), true)
	r.Resize(120, 40)
	out := r.Render(snapshotAt(t, 1, tetris.StateMenu))

	lines := strings.Split(out, "\n")
	if len(lines) != 40 {
		t.Errorf("frame has %d lines, expected 40", len(lines))
	}
}
