package export

import (
	"fmt"

	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// CellPitch is the drawn size of one grid cell in drawing units (mm),
// matching the 500mm panel modules.
const CellPitch = 500.0

// DXF layer names.
const (
	layerGrid     = "GRID"
	layerCubes    = "CUBES"
	layerCladding = "CLADDING"
	layerFlow     = "FLOW"
	layerText     = "NOTES"
)

// ExportDXF writes the layout as a CAD drawing that ImportDXF reads back.
// Row 0 is drawn at the top. Each cube is a closed square polyline with its
// flow and height token as text inside; clad edges are lines on the square's edges;
// flow arrows run from the entry edge through the centre to the exit edge.
func ExportDXF(path string, bom BOM) error {
	if err := bom.check(); err != nil {
		return err
	}

	g := bom.Grid
	size := g.Size()
	d := dxf.NewDrawing()

	layers := []struct {
		name string
		cl   color.ColorNumber
	}{
		{layerGrid, color.Cyan},
		{layerCubes, color.White},
		{layerCladding, color.Red},
		{layerFlow, color.Blue},
		{layerText, color.White},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.cl, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	full := CellPitch * float64(size)
	if size > 1 {
		d.ChangeLayer(layerGrid)
		if _, err := d.LwPolyline(true, []float64{0, 0, 0}, []float64{full, 0, 0}, []float64{full, full, 0}, []float64{0, full, 0}); err != nil {
			return fmt.Errorf("failed to draw grid frame: %w", err)
		}
	}

	for r, row := range g.Cells {
		for c, cell := range row {
			if !cell.HasCube {
				continue
			}
			x0 := float64(c) * CellPitch
			y0 := float64(size-1-r) * CellPitch
			if err := drawCubeDXF(d, cell, x0, y0); err != nil {
				return fmt.Errorf("failed to draw cube at row %d, column %d: %w", r+1, c+1, err)
			}
		}
	}

	d.ChangeLayer(layerText)
	if _, err := d.Text(bom.Title, 0, full+CellPitch*0.2, 0, CellPitch*0.15); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	req := bom.Plan.Requirements
	summary := fmt.Sprintf("4-pack %d, 2-pack %d, side %d, left %d, right %d, straight %d, corner %d",
		req.FourPackRegular, req.TwoPackRegular, req.SidePanels, req.LeftPanels, req.RightPanels,
		req.StraightCouplings, req.CornerConnectors)
	if tall := req.FourPackExtraTall + req.TwoPackExtraTall + req.SidePanelsExtraTall +
		req.LeftPanelsExtraTall + req.RightPanelsExtraTall; tall > 0 {
		summary += fmt.Sprintf("; extra tall 4-pack %d, 2-pack %d, side %d, left %d, right %d",
			req.FourPackExtraTall, req.TwoPackExtraTall, req.SidePanelsExtraTall,
			req.LeftPanelsExtraTall, req.RightPanelsExtraTall)
	}
	if _, err := d.Text(summary, 0, -CellPitch*0.3, 0, CellPitch*0.08); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF file: %w", err)
	}
	return nil
}

// drawCubeDXF draws one cube with its lower-left corner at (x0, y0).
func drawCubeDXF(d *drawing.Drawing, cell model.Cell, x0, y0 float64) error {
	x1, y1 := x0+CellPitch, y0+CellPitch

	d.ChangeLayer(layerCubes)
	if _, err := d.LwPolyline(true, []float64{x0, y0, 0}, []float64{x1, y0, 0}, []float64{x1, y1, 0}, []float64{x0, y1, 0}); err != nil {
		return err
	}

	d.ChangeLayer(layerCladding)
	for _, dir := range cell.Cladding.List() {
		ax, ay, bx, by := dxfEdge(dir, x0, y0)
		if _, err := d.Line(ax, ay, 0, bx, by, 0); err != nil {
			return err
		}
	}

	if cell.Flow == nil && !cell.ExtraTall {
		return nil
	}
	if cell.Flow != nil {
		cx, cy := x0+CellPitch/2, y0+CellPitch/2
		d.ChangeLayer(layerFlow)
		for _, dir := range []model.Direction{cell.Flow.Entry, cell.Flow.Exit} {
			ax, ay, bx, by := dxfEdge(dir, x0, y0)
			if _, err := d.Line((ax+bx)/2, (ay+by)/2, 0, cx, cy, 0); err != nil {
				return err
			}
		}
	}

	// Cladding travels as lines, so the token omits its "*".
	tok := model.FormatLayoutToken(model.Cell{HasCube: true, Flow: cell.Flow, ExtraTall: cell.ExtraTall})
	d.ChangeLayer(layerText)
	_, err := d.Text(tok, x0+CellPitch*0.2, y0+CellPitch*0.45, 0, CellPitch*0.1)
	return err
}

// dxfEdge returns the endpoints of a cube edge in drawing coordinates,
// where y grows upwards.
func dxfEdge(dir model.Direction, x0, y0 float64) (ax, ay, bx, by float64) {
	x1, y1 := x0+CellPitch, y0+CellPitch
	switch dir {
	case model.North:
		return x0, y1, x1, y1
	case model.East:
		return x1, y0, x1, y1
	case model.South:
		return x0, y0, x1, y0
	default:
		return x0, y0, x0, y1
	}
}
