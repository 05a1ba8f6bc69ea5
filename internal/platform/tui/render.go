package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termtris/internal/tetris"
)

// colorStyles maps engine colors to lipgloss styles (ANSI 256 codes).
var colorStyles = map[tetris.Color]lipgloss.Style{
	tetris.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	tetris.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	tetris.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	tetris.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	tetris.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	tetris.ColorViolet: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	tetris.ColorBrown:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
}

var plainStyle = lipgloss.NewStyle()

// Board geometry on screen. Each board cell is two characters wide so the
// field looks roughly square in a terminal.
const (
	cellWidth    = 2
	visibleRows  = tetris.Rows - tetris.SpawnBufferRows
	boardWidth   = tetris.Cols*cellWidth + 2 // Plus border columns
	previewWidth = 6*cellWidth + 2
)

// blockRune is the glyph for one half of a filled cell.
const blockRune = '█'

// Renderer draws engine snapshots into a screen buffer and styles the result.
// It owns every glyph, layout and color decision; the engine only supplies
// read-only snapshots.
type Renderer struct {
	screen   *Screen
	keys     KeyMap
	showNext bool
}

// NewRenderer creates a renderer for the given terminal size.
func NewRenderer(width, height int, keys KeyMap, showNext bool) *Renderer {
	return &Renderer{
		screen:   NewScreen(width, height),
		keys:     keys,
		showNext: showNext,
	}
}

// Resize adjusts the underlying screen buffer.
func (r *Renderer) Resize(width, height int) {
	r.screen.Resize(width, height)
}

// Render produces the styled frame for a snapshot.
func (r *Renderer) Render(snap tetris.Snapshot) string {
	r.screen.Clear()

	if snap.State == tetris.StateMenu {
		r.drawMenu()
		return styleScreen(r.screen)
	}

	r.drawBoard(snap)
	r.drawSidebar(snap)

	switch snap.State {
	case tetris.StatePaused:
		r.drawOverlay("GAME PAUSED", "Press space to resume")
	case tetris.StateEnded:
		r.drawOverlay("YOU LOST!", "Press p to restart or q to quit")
	}

	return styleScreen(r.screen)
}

// drawMenu renders the title and key legend.
func (r *Renderer) drawMenu() {
	s := r.screen
	lines := []string{
		"TERMTRIS",
		"",
		"KEYS:",
		"",
	}
	for _, b := range []struct{ keys, desc string }{
		{r.keys.Play.Help().Key, r.keys.Play.Help().Desc},
		{r.keys.Left.Help().Key, r.keys.Left.Help().Desc},
		{r.keys.Right.Help().Key, r.keys.Right.Help().Desc},
		{r.keys.Down.Help().Key, r.keys.Down.Help().Desc},
		{r.keys.Rotate.Help().Key, r.keys.Rotate.Help().Desc},
		{r.keys.Pause.Help().Key, r.keys.Pause.Help().Desc},
		{r.keys.Quit.Help().Key, r.keys.Quit.Help().Desc},
	} {
		lines = append(lines, fmt.Sprintf("%-8s %s", b.keys, b.desc))
	}

	top := (s.Height() - len(lines)) / 2
	if top < 0 {
		top = 0
	}
	for i, line := range lines {
		s.DrawTextCentered(top+i, line)
	}
}

// drawBoard renders the visible field (the spawn buffer rows stay hidden)
// with the falling block merged in.
func (r *Renderer) drawBoard(snap tetris.Snapshot) {
	s := r.screen
	originX, originY := r.boardOrigin()

	s.DrawBox(originX, originY, boardWidth, visibleRows+2)

	// Settled cells
	for row := tetris.SpawnBufferRows; row < tetris.Rows; row++ {
		for col := 0; col < tetris.Cols; col++ {
			sq := snap.Grid[row][col]
			if sq.Occupied {
				r.drawCell(row, col, sq.Color)
			}
		}
	}

	// Falling block (may poke into the hidden rows; those cells are
	// simply not drawn)
	for _, c := range snap.BlockCells {
		if c.Row >= tetris.SpawnBufferRows {
			r.drawCell(c.Row, c.Col, snap.BlockColor)
		}
	}
}

// drawCell fills one board cell (two screen columns) with the block glyph.
func (r *Renderer) drawCell(row, col int, color tetris.Color) {
	originX, originY := r.boardOrigin()
	x := originX + 1 + col*cellWidth
	y := originY + 1 + (row - tetris.SpawnBufferRows)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetColored(x+i, y, blockRune, color)
	}
}

// drawSidebar renders the score and, if enabled, the next-piece preview.
func (r *Renderer) drawSidebar(snap tetris.Snapshot) {
	s := r.screen
	originX, originY := r.boardOrigin()
	x := originX + boardWidth + 2

	s.DrawText(x, originY+1, fmt.Sprintf("Score: %d", snap.Score))

	if !r.showNext {
		return
	}

	// Inner area fits the tallest normalized shape (vertical I: 4 rows).
	boxY := originY + 3
	s.DrawText(x, boxY, "Next:")
	s.DrawBox(x, boxY+1, previewWidth, 6)
	for _, c := range snap.NextCells {
		px := x + 1 + c.Col*cellWidth
		py := boxY + 2 + c.Row
		for i := 0; i < cellWidth; i++ {
			s.SetColored(px+i, py, blockRune, snap.NextColor)
		}
	}
}

// drawOverlay renders a centered status box on top of the board.
func (r *Renderer) drawOverlay(line1, line2 string) {
	s := r.screen

	w := len(line2) + 4
	if len(line1)+4 > w {
		w = len(line1) + 4
	}
	h := 5
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			s.Set(i, j, ' ')
		}
	}
	s.DrawBox(x, y, w, h)
	s.DrawTextCentered(y+1, line1)
	s.DrawTextCentered(y+3, line2)
}

// boardOrigin returns the top-left corner of the board box, keeping the
// playfield centered when the terminal is large enough.
func (r *Renderer) boardOrigin() (int, int) {
	width := boardWidth
	if r.showNext {
		width += previewWidth + 2
	}
	x := (r.screen.Width() - width) / 2
	if x < 0 {
		x = 0
	}
	y := (r.screen.Height() - (visibleRows + 2)) / 2
	if y < 0 {
		y = 0
	}
	return x, y
}

// styleScreen converts the screen buffer to a styled string, grouping
// adjacent cells with the same color to minimize ANSI escape sequences.
func styleScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = plainStyle
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
