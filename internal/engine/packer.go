package engine

import "github.com/piwi3910/CubeClad/internal/model"

// Four-pack composition.
const (
	fourPackSide  = 2
	fourPackLeft  = 1
	fourPackRight = 1
	twoPackSide   = 2
)

// shapePacks are the literal panel SKU combinations for the recognized
// single-path configurations.
var shapePacks = map[Shape]model.Requirements{
	ShapeSingleCube:   {FourPackRegular: 1},
	ShapeStraightLine: {FourPackRegular: 1, TwoPackRegular: 2},
	ShapeLShape:       {FourPackRegular: 1, TwoPackRegular: 2},
	ShapeCanonicalU:   {FourPackRegular: 1, TwoPackRegular: 2},
}

// PackPanels turns raw panel counts into panel SKUs. Recognized shapes map
// to a fixed combination. Otherwise at most one four-pack is taken, the
// remaining side panels go into two-packs and anything left over is loose.
// Coupling fields of the result are zero.
func PackPanels(counts model.PanelCounts, shape Shape) model.Requirements {
	if req, ok := shapePacks[shape]; ok {
		if shape == ShapeLShape {
			// An L has a second end panel of the corner's hand beyond the
			// four-pack: left on a counter-clockwise turn, right on a clockwise one.
			req.LeftPanels = max(0, counts.Left-fourPackLeft)
			req.RightPanels = max(0, counts.Right-fourPackRight)
		}
		return req
	}

	var req model.Requirements
	side, left, right := counts.Side, counts.Left, counts.Right
	if side >= fourPackSide && left >= fourPackLeft && right >= fourPackRight {
		req.FourPackRegular = 1
		side -= fourPackSide
		left -= fourPackLeft
		right -= fourPackRight
	}
	req.TwoPackRegular = side / twoPackSide
	req.SidePanels = side % twoPackSide
	req.LeftPanels = left
	req.RightPanels = right
	return req
}

// Couplings holds the plumbing hardware for a set of paths. Corner is the
// number of corner connectors; CornerLeft and CornerRight split it by the
// way the flow turns.
type Couplings struct {
	Straight    int `json:"straight_couplings"`
	Corner      int `json:"corner_connectors"`
	CornerLeft  int `json:"corner_left"`  // Counter-clockwise turns
	CornerRight int `json:"corner_right"` // Clockwise turns
}

// CountCouplings returns the hardware joining the cubes of one valid path:
// a corner connector per turning cube and a straight coupling for every
// other junction between consecutive cubes.
func CountCouplings(p Path) Couplings {
	if !p.Valid || p.Len() < 2 {
		return Couplings{}
	}
	var c Couplings
	for _, cube := range p.Cubes {
		switch cube.Turn {
		case TurnClockwise:
			c.CornerRight++
		case TurnCounterClockwise:
			c.CornerLeft++
		}
	}
	c.Corner = c.CornerLeft + c.CornerRight
	c.Straight = max(0, p.Len()-1-c.Corner)
	return c
}

// CountAllCouplings sums CountCouplings over every path, returning zero if
// any path is invalid.
func CountAllCouplings(paths []Path) Couplings {
	var total Couplings
	for _, p := range paths {
		if !p.Valid {
			return Couplings{}
		}
		c := CountCouplings(p)
		total.Straight += c.Straight
		total.Corner += c.Corner
		total.CornerLeft += c.CornerLeft
		total.CornerRight += c.CornerRight
	}
	return total
}
