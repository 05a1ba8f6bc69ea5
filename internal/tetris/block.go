package tetris

import "math/rand"

// Color is the cosmetic color of a block, assigned once at spawn.
type Color int

const (
	ColorRed Color = iota
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorViolet
	ColorBrown

	ColorCount = 7
)

// Block is a falling tetromino. Its four cells are always a valid rotation
// table output for (kind, rotation, anchor): movement operations either
// translate all four cells together or re-derive them through PieceCells,
// never edit them individually.
type Block struct {
	Cells    [4]Cell
	Color    Color
	Kind     Kind
	Rotation int
}

// spawnAnchor is the fixed spawn coordinate: the lowest hidden buffer row,
// horizontally centered. The anchor is itself a cell of every shape, so one
// cell always lands exactly on the top of the visible field.
var spawnAnchor = Cell{Row: SpawnBufferRows, Col: Cols / 2}

// SpawnBlock creates a new block with a uniformly random kind, color and
// initial rotation at the spawn anchor. It does not validate placement;
// the caller must collision-test the result against the board.
func SpawnBlock(rng *rand.Rand) *Block {
	kind := Kind(rng.Intn(KindCount))
	rotation := rng.Intn(4)

	cells, err := PieceCells(kind, rotation, spawnAnchor)
	if err != nil {
		// The spawn anchor sits below every rotation table offset; no
		// shape can underflow from it.
		panic("tetris: spawn geometry failed: " + err.Error())
	}

	return &Block{
		Cells:    cells,
		Color:    Color(rng.Intn(ColorCount)),
		Kind:     kind,
		Rotation: rotation,
	}
}

// Clone returns a copy of the block for tentative moves.
func (b *Block) Clone() *Block {
	clone := *b
	return &clone
}

// Down translates the block one row down. Bounds and collisions are the
// board's concern: callers apply Down to a clone, test, then commit.
func (b *Block) Down() {
	for i := range b.Cells {
		b.Cells[i].Row++
	}
}

// Right translates the block one column right, unconditionally (see Down).
func (b *Block) Right() {
	for i := range b.Cells {
		b.Cells[i].Col++
	}
}

// Left translates the block one column left, but only if no cell already
// sits at column 0. Unlike Down/Right this must check before mutating,
// because a column can never go negative.
func (b *Block) Left() {
	for _, c := range b.Cells {
		if c.Col == 0 {
			return
		}
	}
	for i := range b.Cells {
		b.Cells[i].Col--
	}
}

// Rotate advances the rotation index and re-derives the cells around the
// current anchor cell. If the new orientation would leave the grid at the
// top or left, the block is left unchanged: rotation silently does nothing
// rather than erroring upward.
func (b *Block) Rotate() {
	rotation := (b.Rotation + 1) % 4
	cells, err := PieceCells(b.Kind, rotation, b.Cells[0])
	if err != nil {
		return
	}
	b.Rotation = rotation
	b.Cells = cells
}
