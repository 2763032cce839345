// Package engine turns a grid snapshot into a bill of materials: exposure
// analysis, flow path validation, panel classification and packing.
// Every function is a pure function of its inputs.
package engine

import (
	"fmt"

	"github.com/piwi3910/CubeClad/internal/model"
)

// Exposure reports, per compass direction, whether a cube's edge faces no
// neighboring cube. Index with model.Direction.
type Exposure [5]bool

// Has reports whether the edge in direction d is exposed.
func (e Exposure) Has(d model.Direction) bool {
	return d.Valid() && e[d]
}

// Edges returns the exposed directions in clockwise order from North.
func (e Exposure) Edges() []model.Direction {
	var out []model.Direction
	for _, d := range model.AllDirections {
		if e[d] {
			out = append(out, d)
		}
	}
	return out
}

// Count returns the number of exposed edges.
func (e Exposure) Count() int {
	return len(e.Edges())
}

// HasAdjacentCube reports whether a cube occupies the neighbor of (row, col)
// in direction d.
func HasAdjacentCube(g model.Grid, row, col int, d model.Direction) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("%w: %d", model.ErrInvalidDirection, int(d))
	}
	if !g.InBounds(row, col) {
		return false, fmt.Errorf("%w: (%d,%d)", model.ErrOutOfBounds, row, col)
	}
	nr, nc := g.Neighbor(row, col, d)
	return g.HasCubeAt(nr, nc), nil
}

// ExposedEdges reports which edges of (row, col) face no cube. Neighbors
// outside the grid count as absent.
func ExposedEdges(g model.Grid, row, col int) (Exposure, error) {
	if !g.InBounds(row, col) {
		return Exposure{}, fmt.Errorf("%w: (%d,%d)", model.ErrOutOfBounds, row, col)
	}
	return exposureOf(g, row, col), nil
}

// exposureOf is ExposedEdges for coordinates already known to be in bounds.
func exposureOf(g model.Grid, row, col int) Exposure {
	var e Exposure
	for _, d := range model.AllDirections {
		e[d] = g.IsExposed(row, col, d)
	}
	return e
}
