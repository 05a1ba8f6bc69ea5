// Package tetris implements the falling-block game engine: piece geometry,
// the board, the session state machine and the event loop. It contains no
// terminal or Bubble Tea dependencies so the logic stays pure and testable;
// rendering consumes read-only snapshots (see snapshot.go).
package tetris

import "errors"

// Board dimensions. The top SpawnBufferRows rows are hidden from the player
// and exist so pieces can spawn (and game-over can be detected) above the
// visible field.
const (
	Cols            = 10
	Rows            = 23
	SpawnBufferRows = 4
)

// ErrOutOfBounds is returned by PieceCells when a rotation table entry would
// place a cell at a negative row or column. Callers recover locally by
// keeping their previous state; the error never reaches the player.
var ErrOutOfBounds = errors.New("tetris: piece cell out of bounds")

// Cell is a board coordinate. Row 0 is the top, rows increase downward.
// Any Cell produced by PieceCells has Row >= 0 and Col >= 0.
type Cell struct {
	Row, Col int
}

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	KindCount = 7
)

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// offset is a cell position relative to a piece's anchor.
type offset struct {
	dr, dc int
}

// shape is the four cells of one orientation. The first entry is always
// {0, 0}: the anchor is itself a cell of the piece, and rotation pivots
// around it.
type shape [4]offset

// Orientation tables. Every kind accepts all four rotation indices so that
// repeated rotation cycles correctly; I, S and Z only have two geometrically
// distinct orientations and repeat them on parity, O repeats one.
var (
	shapeIHorizontal = shape{{0, 0}, {0, 1}, {0, 2}, {0, -1}}
	shapeIVertical   = shape{{0, 0}, {-1, 0}, {-2, 0}, {1, 0}}
	shapeSFlat       = shape{{0, 0}, {0, -1}, {-1, 0}, {-1, 1}}
	shapeSUpright    = shape{{0, 0}, {-1, 0}, {0, 1}, {1, 1}}
	shapeZFlat       = shape{{0, 0}, {0, -1}, {1, 0}, {1, 1}}
	shapeZUpright    = shape{{0, 0}, {1, 0}, {0, 1}, {-1, 1}}
	shapeO           = shape{{0, 0}, {0, 1}, {-1, 0}, {-1, 1}}
)

var rotationTable = [KindCount][4]shape{
	KindI: {shapeIHorizontal, shapeIVertical, shapeIHorizontal, shapeIVertical},
	KindJ: {
		{{0, 0}, {0, -1}, {0, 1}, {1, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {1, -1}},
		{{0, 0}, {0, 1}, {0, -1}, {-1, -1}},
		{{0, 0}, {-1, 0}, {-1, 1}, {1, 0}},
	},
	KindL: {
		{{0, 0}, {0, 1}, {0, -1}, {-1, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {0, -1}, {1, -1}},
		{{0, 0}, {1, 0}, {-1, 0}, {-1, -1}},
	},
	KindO: {shapeO, shapeO, shapeO, shapeO},
	KindS: {shapeSFlat, shapeSUpright, shapeSFlat, shapeSUpright},
	KindT: {
		{{0, 0}, {0, -1}, {0, 1}, {1, 0}},
		{{0, 0}, {1, 0}, {-1, 0}, {0, -1}},
		{{0, 0}, {0, 1}, {0, -1}, {-1, 0}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
	},
	KindZ: {shapeZFlat, shapeZUpright, shapeZFlat, shapeZUpright},
}

// PieceCells derives the four absolute cells of a piece from its kind,
// rotation index and anchor. It is a pure function: the same inputs always
// yield the same cells, independent of any board state.
//
// It returns ErrOutOfBounds when any cell would land at a negative row or
// column. Rotation near the top or left boundary is rejected outright rather
// than wall-kicked; the caller must leave its block unchanged in that case.
func PieceCells(kind Kind, rotation int, anchor Cell) ([4]Cell, error) {
	var cells [4]Cell
	if kind < 0 || kind >= KindCount {
		return cells, ErrOutOfBounds
	}

	sh := rotationTable[kind][((rotation%4)+4)%4]
	for i, off := range sh {
		r := anchor.Row + off.dr
		c := anchor.Col + off.dc
		if r < 0 || c < 0 {
			return cells, ErrOutOfBounds
		}
		cells[i] = Cell{Row: r, Col: c}
	}
	return cells, nil
}
