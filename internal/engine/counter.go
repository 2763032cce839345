package engine

import "github.com/piwi3910/CubeClad/internal/model"

// Shape tags the configurations whose bill of materials is fixed rather
// than derived edge by edge.
type Shape int

const (
	ShapeGeneric Shape = iota
	ShapeSingleCube
	ShapeStraightLine // Three cubes, no turns
	ShapeLShape       // Three cubes, one turn
	ShapeCanonicalU   // Five cubes, two turns, both ends facing the same way
)

func (s Shape) String() string {
	switch s {
	case ShapeSingleCube:
		return "single cube"
	case ShapeStraightLine:
		return "straight line"
	case ShapeLShape:
		return "L-shape"
	case ShapeCanonicalU:
		return "U-shape"
	default:
		return "generic"
	}
}

// MarshalText encodes the shape by name.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var (
	singleCubeCounts = model.PanelCounts{Side: 2, Left: 1, Right: 1}
	canonicalUCounts = model.PanelCounts{Side: 8, Left: 2, Right: 2}
)

// ClassifyShape matches a walked path against the recognized configurations.
// Invalid paths and paths mixing cube heights are always generic.
func ClassifyShape(g model.Grid, p Path) Shape {
	if !p.Valid || p.Len() == 0 {
		return ShapeGeneric
	}
	if _, mixed := pathHeight(g, p); mixed {
		return ShapeGeneric
	}
	edges := 0
	for _, c := range p.Cubes {
		edges += exposureOf(g, c.Row, c.Col).Count()
	}

	corners := p.Corners()
	switch {
	case p.Len() == 1:
		return ShapeSingleCube
	case p.Len() == 3 && edges == 8 && corners == 0:
		return ShapeStraightLine
	case p.Len() == 3 && edges == 8 && corners == 1:
		return ShapeLShape
	case p.Len() == 5 && edges == 12 && corners == 2 &&
		p.Cubes[0].Entry == p.Cubes[len(p.Cubes)-1].Exit:
		return ShapeCanonicalU
	}
	return ShapeGeneric
}

// pathHeight reports whether the cubes of p are extra tall. mixed is set
// when the path holds both heights.
func pathHeight(g model.Grid, p Path) (tall, mixed bool) {
	for i, c := range p.Cubes {
		t := g.Cells[c.Row][c.Col].ExtraTall
		if i == 0 {
			tall = t
		} else if t != tall {
			return false, true
		}
	}
	return tall, false
}

// CountPathPanels assigns every exposed edge of a valid path to a panel
// category. Invalid paths count nothing.
//
// The first cube's exposed entry face is a left panel and the last cube's
// exposed exit face is a right panel. A corner's outside face is right on a
// clockwise turn and left on a counter-clockwise one. Every other exposed
// face is a side panel. Single cubes and the canonical U use fixed counts.
func CountPathPanels(g model.Grid, p Path) model.PanelCounts {
	regular, tall := CountPathPanelsByHeight(g, p)
	return regular.Add(tall)
}

// CountPathPanelsByHeight is CountPathPanels split by the height of the
// cube each panel clads.
func CountPathPanelsByHeight(g model.Grid, p Path) (regular, tall model.PanelCounts) {
	if !p.Valid {
		return model.PanelCounts{}, model.PanelCounts{}
	}
	var fixed model.PanelCounts
	switch ClassifyShape(g, p) {
	case ShapeSingleCube:
		fixed = singleCubeCounts
	case ShapeCanonicalU:
		fixed = canonicalUCounts
	}
	if fixed.Total() > 0 {
		if isTall, _ := pathHeight(g, p); isTall {
			return model.PanelCounts{}, fixed
		}
		return fixed, model.PanelCounts{}
	}

	last := p.Len() - 1
	for i, c := range p.Cubes {
		counts := &regular
		if g.Cells[c.Row][c.Col].ExtraTall {
			counts = &tall
		}
		outside, corner := OutsideOfTurn(c.Entry, c.Exit)
		for _, d := range exposureOf(g, c.Row, c.Col).Edges() {
			switch {
			case i == 0 && d == c.Entry:
				counts.Left++
			case i == last && d == c.Exit:
				counts.Right++
			case corner && d == outside && c.Turn == TurnClockwise:
				counts.Right++
			case corner && d == outside:
				counts.Left++
			default:
				counts.Side++
			}
		}
	}
	return regular, tall
}

// CountPanels sums panel counts over every path. If any path is invalid the
// whole result is zero.
func CountPanels(g model.Grid, paths []Path) model.PanelCounts {
	regular, tall := CountPanelsByHeight(g, paths)
	return regular.Add(tall)
}

// CountPanelsByHeight is CountPanels split into regular and extra-tall panels.
func CountPanelsByHeight(g model.Grid, paths []Path) (regular, tall model.PanelCounts) {
	for _, p := range paths {
		if !p.Valid {
			return model.PanelCounts{}, model.PanelCounts{}
		}
		r, t := CountPathPanelsByHeight(g, p)
		regular = regular.Add(r)
		tall = tall.Add(t)
	}
	return regular, tall
}
