package tetris

// Snapshot is a read-only copy of everything a renderer needs: the settled
// grid, the falling block, the preview block, the score and the state. The
// engine exposes it without any opinion on glyphs, layout or styling.
type Snapshot struct {
	// Grid is the full board, including the hidden spawn buffer rows.
	// Renderers display rows SpawnBufferRows..Rows-1.
	Grid [Rows][Cols]Square

	BlockCells [4]Cell
	BlockColor Color

	NextKind  Kind
	NextColor Color
	// NextCells are the preview block's cells relative to its anchor's
	// bounding box origin, for drawing outside the board.
	NextCells [4]Cell

	Score int
	State State
}

// Snapshot captures the session's current state. The copy is deep: mutating
// the session afterwards never changes an already-taken snapshot.
func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			snap.Grid[r][c] = s.board.Square(Cell{Row: r, Col: c})
		}
	}

	snap.BlockCells = s.current.Cells
	snap.BlockColor = s.current.Color
	snap.Score = s.score
	snap.State = s.state

	snap.NextKind = s.next.Kind
	snap.NextColor = s.next.Color
	snap.NextCells = normalizeCells(s.next.Cells)
	return snap
}

// normalizeCells translates cells so the smallest row and column become 0,
// giving renderers a board-independent shape for the preview box.
func normalizeCells(cells [4]Cell) [4]Cell {
	minRow, minCol := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
	}

	var out [4]Cell
	for i, c := range cells {
		out[i] = Cell{Row: c.Row - minRow, Col: c.Col - minCol}
	}
	return out
}
