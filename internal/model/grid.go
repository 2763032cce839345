package model

import (
	"errors"
	"fmt"
)

// MaxGridSize bounds the side length of a grid. The configurator ships with
// a 3x3 grid; larger grids are accepted up to this bound.
const MaxGridSize = 9

// DefaultGridSize is the side length of a new grid.
const DefaultGridSize = 3

var (
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrNoCube reports an operation that needs a cube on an empty cell.
	ErrNoCube = errors.New("no cube at cell")
	// ErrEdgeNotExposed reports a cladding change on an edge shared with a neighbor.
	ErrEdgeNotExposed = errors.New("edge is shared with a neighboring cube")
	// ErrMalformedGrid reports a grid that is not a well-formed square layout.
	ErrMalformedGrid = errors.New("malformed grid")
)

// Connections describes the irrigation flow through a cube: the edge the
// flow comes in through and the edge it leaves through.
type Connections struct {
	Entry Direction `json:"entry"`
	Exit  Direction `json:"exit"`
}

// Cell is a single grid position.
type Cell struct {
	HasCube   bool         `json:"cube"`
	Cladding  EdgeSet      `json:"cladding,omitempty"`
	Flow      *Connections `json:"flow,omitempty"`       // nil until the cube joins a flow path
	ExtraTall bool         `json:"extra_tall,omitempty"` // 700mm module instead of the regular 500mm
}

// Grid is a square matrix of cells, indexed [row][col] with row 0 at the top.
type Grid struct {
	Cells [][]Cell `json:"cells"`
}

// NewGrid creates an empty size x size grid.
func NewGrid(size int) (Grid, error) {
	if size < 1 || size > MaxGridSize {
		return Grid{}, fmt.Errorf("%w: size %d outside 1..%d", ErrMalformedGrid, size, MaxGridSize)
	}
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}
	return Grid{Cells: cells}, nil
}

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return len(g.Cells)
}

// InBounds reports whether (row, col) lies within the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.Cells) && col >= 0 && col < len(g.Cells[row])
}

// At returns the cell at (row, col).
func (g Grid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return g.Cells[row][col], nil
}

// HasCubeAt reports whether a cube occupies (row, col). Out-of-bounds
// positions never hold a cube.
func (g Grid) HasCubeAt(row, col int) bool {
	return g.InBounds(row, col) && g.Cells[row][col].HasCube
}

// Neighbor returns the coordinate one step from (row, col) in direction d.
func (g Grid) Neighbor(row, col int, d Direction) (int, int) {
	dr, dc := d.Offset()
	return row + dr, col + dc
}

// IsExposed reports whether the edge d of (row, col) faces no cube.
func (g Grid) IsExposed(row, col int, d Direction) bool {
	nr, nc := g.Neighbor(row, col, d)
	return !g.HasCubeAt(nr, nc)
}

// CubeCount returns the number of cubes on the grid.
func (g Grid) CubeCount() int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c.HasCube {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([][]Cell, len(g.Cells))
	for r, row := range g.Cells {
		cells[r] = make([]Cell, len(row))
		for c, cell := range row {
			if cell.Flow != nil {
				flow := *cell.Flow
				cell.Flow = &flow
			}
			cells[r][c] = cell
		}
	}
	return Grid{Cells: cells}
}

// Validate checks that the grid is a non-empty square no larger than
// MaxGridSize and that every cell respects the cube invariants: empty cells
// carry no cladding, flow or height marker, flow has both directions set to distinct
// valid values, and cladding only sits on exposed edges.
func (g Grid) Validate() error {
	n := len(g.Cells)
	if n == 0 {
		return fmt.Errorf("%w: grid has no rows", ErrMalformedGrid)
	}
	if n > MaxGridSize {
		return fmt.Errorf("%w: size %d exceeds %d", ErrMalformedGrid, n, MaxGridSize)
	}
	for r, row := range g.Cells {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), n)
		}
	}
	for r, row := range g.Cells {
		for c, cell := range row {
			if !cell.HasCube {
				if cell.Cladding != 0 || cell.Flow != nil || cell.ExtraTall {
					return fmt.Errorf("%w: empty cell (%d,%d) carries cladding, flow or height", ErrMalformedGrid, r, c)
				}
				continue
			}
			if f := cell.Flow; f != nil {
				if !f.Entry.Valid() || !f.Exit.Valid() {
					return fmt.Errorf("%w: cell (%d,%d) flow needs both entry and exit", ErrMalformedGrid, r, c)
				}
				if f.Entry == f.Exit {
					return fmt.Errorf("%w: cell (%d,%d) flow enters and exits through %s", ErrMalformedGrid, r, c, f.Entry)
				}
			}
			for _, d := range cell.Cladding.List() {
				if !g.IsExposed(r, c, d) {
					return fmt.Errorf("%w: cell (%d,%d) cladding on shared edge %s", ErrMalformedGrid, r, c, d)
				}
			}
		}
	}
	return nil
}
