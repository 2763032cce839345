// Package export writes planned layouts to PDF reports, QR-coded order
// cards, Excel workbooks and DXF drawings.
package export

import (
	"fmt"
	"time"

	"github.com/piwi3910/CubeClad/internal/engine"
	"github.com/piwi3910/CubeClad/internal/model"
)

// BOM bundles a layout with its plan and priced order for the exporters.
type BOM struct {
	Title       string
	Grid        model.Grid
	Plan        engine.Plan
	Estimate    model.PurchaseEstimate
	GeneratedAt time.Time
}

// NewBOM plans g and prices the result against catalog.
func NewBOM(title string, g model.Grid, planner *engine.Planner, catalog model.Catalog) BOM {
	plan := planner.Plan(g)
	return BOM{
		Title:       title,
		Grid:        g,
		Plan:        plan,
		Estimate:    catalog.Estimate(plan.Requirements),
		GeneratedAt: time.Now(),
	}
}

// check rejects a BOM with nothing to draw.
func (b BOM) check() error {
	if len(b.Grid.Cells) == 0 {
		return fmt.Errorf("no layout to export")
	}
	return nil
}

// requirementRow is one labelled requirement quantity.
type requirementRow struct {
	kind  model.SKUKind
	label string
	qty   int
}

// requirementRows lists every requirement field in bill-of-materials order,
// zero quantities included.
func requirementRows(r model.Requirements) []requirementRow {
	rows := make([]requirementRow, len(model.AllKinds))
	for i, kind := range model.AllKinds {
		rows[i] = requirementRow{kind: kind, label: kind.Label(), qty: kind.Quantity(r)}
	}
	return rows
}

// status describes whether the plan is buildable.
func (b BOM) status() string {
	if b.Plan.Valid {
		return "Buildable"
	}
	if b.Plan.Reason != "" {
		return "Not buildable: " + b.Plan.Reason
	}
	return "Not buildable"
}
