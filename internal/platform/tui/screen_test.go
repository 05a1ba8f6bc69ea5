package tui

import (
	"strings"
	"testing"

	"termtris/internal/tetris"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2).Rune; got != 'x' {
		t.Errorf("Get(3,2) = %q, expected 'x'", got)
	}
	if got := s.Get(3, 2).Color; got != colorNone {
		t.Errorf("Set must not color a cell, got color %v", got)
	}

	s.SetColored(4, 2, '█', tetris.ColorGreen)
	cell := s.Get(4, 2)
	if cell.Rune != '█' || cell.Color != tetris.ColorGreen {
		t.Errorf("Get(4,2) = %+v, expected colored block", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes outside the buffer are ignored, reads return empty cells.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(0, 5, 'x')

	for _, probe := range []struct{ x, y int }{{-1, 0}, {10, 0}, {0, -1}, {0, 5}} {
		cell := s.Get(probe.x, probe.y)
		if cell.Rune != ' ' {
			t.Errorf("Get(%d,%d) = %q, expected space", probe.x, probe.y, cell.Rune)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(1, 1, '█', tetris.ColorRed)

	s.Clear()
	cell := s.Get(1, 1)
	if cell.Rune != ' ' || cell.Color != colorNone {
		t.Errorf("cell after Clear = %+v, expected blank", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("size after Resize = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	// The new buffer must be writable across its full extent.
	s.Set(5, 2, 'x')
	if s.Get(5, 2).Rune != 'x' {
		t.Error("resized buffer not writable at its far corner")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1).Rune != 'h' || s.Get(3, 1).Rune != 'i' {
		t.Errorf("DrawText produced %q", s.Row(1))
	}

	// Clipped at the right edge without error.
	s.DrawText(8, 0, "long")
	if s.Get(9, 0).Rune != 'o' {
		t.Errorf("clipped DrawText row: %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")
	if !strings.Contains(s.Row(1), "abc") {
		t.Errorf("centered row = %q", s.Row(1))
	}
	if s.Get(4, 1).Rune != 'a' {
		t.Errorf("text not centered: row %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(1, 1, 5, 4)

	if s.Get(1, 1).Rune != '┌' || s.Get(5, 1).Rune != '┐' {
		t.Errorf("top border wrong: %q", s.Row(1))
	}
	if s.Get(1, 4).Rune != '└' || s.Get(5, 4).Rune != '┘' {
		t.Errorf("bottom border wrong: %q", s.Row(4))
	}
	if s.Get(3, 1).Rune != '─' || s.Get(1, 2).Rune != '│' {
		t.Error("box edges wrong")
	}
	if s.Get(3, 2).Rune != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
