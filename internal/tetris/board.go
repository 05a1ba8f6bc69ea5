package tetris

// Square is one board cell: empty, or settled with the color of the block
// it came from.
type Square struct {
	Occupied bool
	Color    Color
}

// Board is the settled-cell grid, Rows x Cols. Rows 0..SpawnBufferRows-1 are
// the hidden spawn buffer. The board is owned by a single Session and is
// mutated only through Lock and ClearLines.
type Board struct {
	grid [][]Square
}

// NewBoard returns an all-empty board.
func NewBoard() *Board {
	grid := make([][]Square, Rows)
	for r := range grid {
		grid[r] = make([]Square, Cols)
	}
	return &Board{grid: grid}
}

// IsOccupied reports whether the cell holds a settled square. The coordinate
// must be in bounds; callers bounds-check first, the board does not clamp.
func (b *Board) IsOccupied(c Cell) bool {
	return b.grid[c.Row][c.Col].Occupied
}

// IsCollision reports whether any of the block's cells is outside the grid
// or on a settled square. It is evaluated against tentative positions and
// never mutates the board.
func (b *Board) IsCollision(block *Block) bool {
	for _, c := range block.Cells {
		if c.Col >= Cols || c.Row >= Rows || b.IsOccupied(c) {
			return true
		}
	}
	return false
}

// Lock settles the block's cells into the grid. The caller must already have
// verified the block collides with nothing; locking an out-of-range or
// occupied cell is a programming error, not a recoverable condition.
func (b *Board) Lock(block *Block) {
	for _, c := range block.Cells {
		b.grid[c.Row][c.Col] = Square{Occupied: true, Color: block.Color}
	}
}

// ClearLines removes every fully occupied row in one pass, inserts the same
// number of empty rows at the top, and returns how many rows were removed.
// The relative order of all surviving rows is preserved.
func (b *Board) ClearLines() int {
	kept := b.grid[:0]
	for _, row := range b.grid {
		full := true
		for _, sq := range row {
			if !sq.Occupied {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}

	removed := Rows - len(kept)
	if removed == 0 {
		return 0
	}

	grid := make([][]Square, 0, Rows)
	for i := 0; i < removed; i++ {
		grid = append(grid, make([]Square, Cols))
	}
	grid = append(grid, kept...)
	b.grid = grid
	return removed
}

// IsGameOver reports whether the settled stack has reached the spawn buffer.
// It checks rows 0 through 2 (all buffer rows except the lowest one) and is
// evaluated once per lock+clear cycle, not continuously.
func (b *Board) IsGameOver() bool {
	for r := 0; r < SpawnBufferRows-1; r++ {
		for _, sq := range b.grid[r] {
			if sq.Occupied {
				return true
			}
		}
	}
	return false
}

// Square returns the cell at the given coordinate. Used by snapshots; the
// coordinate must be in bounds.
func (b *Board) Square(c Cell) Square {
	return b.grid[c.Row][c.Col]
}
