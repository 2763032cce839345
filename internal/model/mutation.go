package model

import "fmt"

// ToggleCube adds or removes a cube at (row, col).
//
// Placing a cube removes cladding from the neighbors' edges that now face it.
// Removing a cube clears its own cladding, flow and height; the neighbors' edges that
// become exposed are eligible for cladding again but are not clad automatically.
func (g *Grid) ToggleCube(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	cell := &g.Cells[row][col]
	if cell.HasCube {
		*cell = Cell{}
		return nil
	}
	*cell = Cell{HasCube: true}
	for _, d := range AllDirections {
		nr, nc := g.Neighbor(row, col, d)
		if g.HasCubeAt(nr, nc) {
			n := &g.Cells[nr][nc]
			n.Cladding = n.Cladding.Remove(d.Opposite())
		}
	}
	return nil
}

// ToggleCladding flips the cladding marker on edge d of the cube at (row, col).
// Only exposed edges can carry cladding.
func (g *Grid) ToggleCladding(row, col int, d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	cell := &g.Cells[row][col]
	if !cell.HasCube {
		return fmt.Errorf("%w: (%d,%d)", ErrNoCube, row, col)
	}
	if !g.IsExposed(row, col, d) {
		return fmt.Errorf("%w: (%d,%d) %s", ErrEdgeNotExposed, row, col, d)
	}
	cell.Cladding = cell.Cladding.Toggle(d)
	return nil
}

// CladAllExposed marks every exposed edge of every cube as clad and clears
// any marker on a shared edge.
func (g *Grid) CladAllExposed() {
	for r := range g.Cells {
		for c := range g.Cells[r] {
			cell := &g.Cells[r][c]
			if !cell.HasCube {
				continue
			}
			var edges EdgeSet
			for _, d := range AllDirections {
				if g.IsExposed(r, c, d) {
					edges = edges.Add(d)
				}
			}
			cell.Cladding = edges
		}
	}
}

// ToggleExtraTall switches the cube at (row, col) between the regular and
// the extra-tall module.
func (g *Grid) ToggleExtraTall(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	cell := &g.Cells[row][col]
	if !cell.HasCube {
		return fmt.Errorf("%w: (%d,%d)", ErrNoCube, row, col)
	}
	cell.ExtraTall = !cell.ExtraTall
	return nil
}

// SetFlow assigns the flow through the cube at (row, col).
func (g *Grid) SetFlow(row, col int, entry, exit Direction) error {
	if !entry.Valid() || !exit.Valid() {
		return fmt.Errorf("%w: flow %s->%s", ErrInvalidDirection, entry, exit)
	}
	if entry == exit {
		return fmt.Errorf("%w: flow enters and exits through %s", ErrInvalidDirection, entry)
	}
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	cell := &g.Cells[row][col]
	if !cell.HasCube {
		return fmt.Errorf("%w: (%d,%d)", ErrNoCube, row, col)
	}
	cell.Flow = &Connections{Entry: entry, Exit: exit}
	return nil
}

// ClearFlow removes the flow role of the cube at (row, col).
func (g *Grid) ClearFlow(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	g.Cells[row][col].Flow = nil
	return nil
}

// ApplyPreset replaces the grid with a copy of p. A malformed preset is
// rejected and the grid keeps its previous contents.
func (g *Grid) ApplyPreset(p Grid) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("failed to apply preset: %w", err)
	}
	*g = p.Clone()
	return nil
}
