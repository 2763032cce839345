package engine

import (
	"github.com/piwi3910/CubeClad/internal/model"
)

// PresetComparison holds the plan and derived statistics for one layout.
type PresetComparison struct {
	Preset      model.Preset
	Plan        Plan
	Cubes       int
	Panels      int // Individual panels shipped, counting pack contents
	Hardware    int // Couplings and connectors
	Estimate    model.PurchaseEstimate
	Unbuildable bool
}

// ComparePresets plans every layout and returns the results in input order.
// This enables side-by-side comparison of what each layout costs to clad.
func (p *Planner) ComparePresets(presets []model.Preset, catalog model.Catalog) []PresetComparison {
	results := make([]PresetComparison, 0, len(presets))

	for _, preset := range presets {
		plan := p.Plan(preset.Grid)
		req := plan.Requirements

		results = append(results, PresetComparison{
			Preset:      preset,
			Plan:        plan,
			Cubes:       preset.Grid.CubeCount(),
			Panels:      req.PanelTotal(),
			Hardware:    req.StraightCouplings + req.CornerConnectors,
			Estimate:    model.CalculatePurchaseEstimate(req, catalog),
			Unbuildable: !plan.Valid,
		})
	}

	return results
}

// ComparePresets compares layouts with a silent planner.
func ComparePresets(presets []model.Preset, catalog model.Catalog) []PresetComparison {
	var p Planner
	return p.ComparePresets(presets, catalog)
}
