package engine

import (
	"github.com/piwi3910/CubeClad/internal/model"
)

// Logf is a printf-style logger. A nil Logf discards output.
type Logf func(format string, v ...interface{})

func nopLogf(string, ...interface{}) {}

// Plan is the full breakdown behind a grid's Requirements.
type Plan struct {
	Paths        []Path             `json:"paths"`
	Shape        Shape              `json:"shape"`
	Counts       model.PanelCounts  `json:"counts"`
	TallCounts   model.PanelCounts  `json:"extra_tall_counts"` // Share of Counts on extra-tall cubes
	Couplings    Couplings          `json:"couplings"`
	Requirements model.Requirements `json:"requirements"`
	Valid        bool               `json:"valid"`
	Reason       string             `json:"reason,omitempty"` // Why the grid produced no requirements
}

// Planner runs the requirements pipeline. The zero value is ready to use.
type Planner struct {
	Logf Logf
}

// NewPlanner creates a planner that reports its decisions to logf.
func NewPlanner(logf Logf) *Planner {
	return &Planner{Logf: logf}
}

func (p *Planner) logf() Logf {
	if p == nil || p.Logf == nil {
		return nopLogf
	}
	return p.Logf
}

// Plan computes the bill of materials for a grid snapshot. The grid is not
// modified. Malformed grids and grids with any invalid flow path yield a
// plan with zero requirements and Valid set to false.
func (p *Planner) Plan(g model.Grid) Plan {
	logf := p.logf()

	if err := g.Validate(); err != nil {
		logf("grid rejected: %v", err)
		return Plan{Reason: err.Error()}
	}

	paths := validatePaths(g, logf)
	plan := Plan{Paths: paths, Valid: true}
	for _, path := range paths {
		if !path.Valid {
			plan.Valid = false
			plan.Reason = path.Reason
			logf("requirements zeroed: %s", path.Reason)
			return plan
		}
	}
	if len(paths) == 0 {
		return plan
	}

	if len(paths) == 1 {
		plan.Shape = ClassifyShape(g, paths[0])
	}
	regular, tall := CountPanelsByHeight(g, paths)
	plan.Counts = regular.Add(tall)
	plan.TallCounts = tall
	plan.Couplings = CountAllCouplings(paths)

	// Each height class packs on its own. A recognized shape is a single
	// path of one height, so its literal combination goes to that class.
	regularShape, tallShape := plan.Shape, ShapeGeneric
	if tall.Total() > 0 {
		regularShape, tallShape = ShapeGeneric, plan.Shape
	}
	req := PackPanels(regular, regularShape).WithExtraTall(PackPanels(tall, tallShape))
	req.StraightCouplings = plan.Couplings.Straight
	req.CornerConnectors = plan.Couplings.Corner
	plan.Requirements = req

	logf("%d path(s), shape %s, panels side=%d left=%d right=%d (extra tall side=%d left=%d right=%d)",
		len(paths), plan.Shape, plan.Counts.Side, plan.Counts.Left, plan.Counts.Right,
		tall.Side, tall.Left, tall.Right)
	return plan
}

// ComputeRequirements returns the bill of materials for a grid snapshot.
func ComputeRequirements(g model.Grid) model.Requirements {
	var p Planner
	return p.Plan(g).Requirements
}
