package importer

import (
	"fmt"
	"math"

	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// square is a cube outline found in a drawing.
type square struct {
	cx, cy float64
	side   float64
}

// cellPos is a grid coordinate recovered from drawing coordinates.
type cellPos struct {
	row, col int
}

// ImportDXF imports a layout drawn in CAD. Each closed four-vertex
// LWPOLYLINE square is a cube; a TEXT entity inside a square holding a flow
// token ("W>E", "W>E+" or "X+" for extra tall) sets that cube's flow and
// height; a LINE lying on a cube edge marks the
// edge as clad. The smallest square sets the grid pitch. An optional square
// spanning a whole number of pitches is read as the grid frame; without one
// the layout is anchored at its top-left cube.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var squares []square
	var texts []*entity.Text
	var lines []*entity.Line
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if sq, ok := polylineSquare(e); ok {
				squares = append(squares, sq)
			}
		case *entity.Text:
			texts = append(texts, e)
		case *entity.Line:
			lines = append(lines, e)
		}
	}
	if len(squares) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no cube outlines")
		return result
	}

	pitch := squares[0].side
	for _, sq := range squares {
		pitch = math.Min(pitch, sq.side)
	}
	tol := pitch * 0.05

	// A square spanning several pitches is the grid frame drawn around the
	// layout; it fixes the origin and size so empty border rows survive.
	var frame *square
	var cubes []square
	for i, sq := range squares {
		k := math.Round(sq.side / pitch)
		if k >= 2 && math.Abs(sq.side-k*pitch) <= tol {
			if frame == nil {
				frame = &squares[i]
			}
			continue
		}
		if math.Abs(sq.side-pitch) > tol {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Cube outline at (%.0f, %.0f) is %.0f wide, expected %.0f", sq.cx, sq.cy, sq.side, pitch))
		}
		cubes = append(cubes, sq)
	}

	var originX, originY float64
	size := 0
	if frame != nil {
		originX = frame.cx - frame.side/2
		originY = frame.cy + frame.side/2
		size = int(math.Round(frame.side / pitch))
	} else {
		originX, originY = cubes[0].cx, cubes[0].cy
		for _, sq := range cubes {
			originX = math.Min(originX, sq.cx)
			originY = math.Max(originY, sq.cy)
		}
		originX -= pitch / 2
		originY += pitch / 2
	}

	cells := make(map[cellPos]square, len(cubes))
	for _, sq := range cubes {
		pos := cellPos{
			row: int(math.Round((originY - sq.cy - pitch/2) / pitch)),
			col: int(math.Round((sq.cx - originX - pitch/2) / pitch)),
		}
		if pos.row < 0 || pos.col < 0 || (frame != nil && (pos.row >= size || pos.col >= size)) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Cube outline at (%.0f, %.0f) lies outside the grid frame", sq.cx, sq.cy))
			continue
		}
		if _, dup := cells[pos]; dup {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Duplicate cube outline at row %d, column %d", pos.row+1, pos.col+1))
			continue
		}
		cells[pos] = sq
		if pos.row+1 > size {
			size = pos.row + 1
		}
		if pos.col+1 > size {
			size = pos.col + 1
		}
	}
	if size > model.MaxGridSize {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Layout is %d cells across, the limit is %d", size, model.MaxGridSize))
		return result
	}

	g, err := model.NewGrid(size)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	for pos := range cells {
		g.Cells[pos.row][pos.col].HasCube = true
	}

	for _, t := range texts {
		if len(t.Coord1) < 2 {
			continue
		}
		pos, ok := containing(cells, t.Coord1[0], t.Coord1[1])
		if !ok {
			continue
		}
		tok, err := model.ParseLayoutToken(t.Value)
		if err != nil || (tok.Flow == nil && !tok.ExtraTall) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Ignored text %q in cube at row %d, column %d", t.Value, pos.row+1, pos.col+1))
			continue
		}
		cell := &g.Cells[pos.row][pos.col]
		if tok.Flow != nil {
			cell.Flow = tok.Flow
		}
		cell.ExtraTall = cell.ExtraTall || tok.ExtraTall
	}

	for _, l := range lines {
		if len(l.Start) < 2 || len(l.End) < 2 {
			continue
		}
		pos, d, ok := edgeOf(cells, l.Start, l.End, tol)
		if !ok {
			continue
		}
		if !g.IsExposed(pos.row, pos.col, d) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Ignored cladding on shared edge %s of cube at row %d, column %d", d, pos.row+1, pos.col+1))
			continue
		}
		c := &g.Cells[pos.row][pos.col]
		c.Cladding = c.Cladding.Add(d)
	}

	if err := g.Validate(); err != nil {
		result.Errors = append(result.Errors, err.Error())
	}
	result.Grid = g
	return result
}

// polylineSquare reports whether a polyline is an axis-aligned square,
// optionally with a repeated closing vertex.
func polylineSquare(lw *entity.LwPolyline) (square, bool) {
	verts := lw.Vertices
	if len(verts) == 5 && pointsClose(verts[0], verts[4], 1e-6) {
		verts = verts[:4]
	}
	if len(verts) != 4 {
		return square{}, false
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range verts {
		if len(v) < 2 {
			return square{}, false
		}
		minX, maxX = math.Min(minX, v[0]), math.Max(maxX, v[0])
		minY, maxY = math.Min(minY, v[1]), math.Max(maxY, v[1])
	}
	w, h := maxX-minX, maxY-minY
	if w <= 0 || math.Abs(w-h) > w*0.05 {
		return square{}, false
	}
	for _, v := range verts {
		onX := pointsNear(v[0], minX, w) || pointsNear(v[0], maxX, w)
		onY := pointsNear(v[1], minY, w) || pointsNear(v[1], maxY, w)
		if !onX || !onY {
			return square{}, false
		}
	}
	return square{cx: (minX + maxX) / 2, cy: (minY + maxY) / 2, side: w}, true
}

func pointsNear(a, b, scale float64) bool {
	return math.Abs(a-b) <= scale*0.01
}

// pointsClose reports whether two points lie within tolerance of each other.
func pointsClose(a, b []float64, tolerance float64) bool {
	if len(a) < 2 || len(b) < 2 {
		return false
	}
	return math.Hypot(a[0]-b[0], a[1]-b[1]) <= tolerance
}

// containing returns the cube whose outline contains (x, y).
func containing(cells map[cellPos]square, x, y float64) (cellPos, bool) {
	for pos, sq := range cells {
		half := sq.side / 2
		if math.Abs(x-sq.cx) < half && math.Abs(y-sq.cy) < half {
			return pos, true
		}
	}
	return cellPos{}, false
}

// edgeOf matches a line segment to the edge of a cube outline it covers.
func edgeOf(cells map[cellPos]square, a, b []float64, tol float64) (cellPos, model.Direction, bool) {
	for pos, sq := range cells {
		h := sq.side / 2
		x0, x1 := sq.cx-h, sq.cx+h
		y0, y1 := sq.cy-h, sq.cy+h
		edges := []struct {
			d      model.Direction
			p1, p2 []float64
		}{
			{model.North, []float64{x0, y1}, []float64{x1, y1}},
			{model.East, []float64{x1, y0}, []float64{x1, y1}},
			{model.South, []float64{x0, y0}, []float64{x1, y0}},
			{model.West, []float64{x0, y0}, []float64{x0, y1}},
		}
		for _, e := range edges {
			if (pointsClose(a, e.p1, tol) && pointsClose(b, e.p2, tol)) ||
				(pointsClose(a, e.p2, tol) && pointsClose(b, e.p1, tol)) {
				return pos, e.d, true
			}
		}
	}
	return cellPos{}, model.NoDirection, false
}
