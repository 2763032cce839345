package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/CubeClad/internal/model"
)

// pathColor represents an RGB color for the cubes of one flow path.
type pathColor struct {
	R, G, B int
}

// pathColors cycles per flow path so separate beds stay distinguishable.
var pathColors = []pathColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// stepRef locates a cube within the planned paths.
type stepRef struct {
	path, step int
}

// ExportPDF generates a bill-of-materials report: the layout drawing with
// cladding and flow on the first page, followed by the requirements, the
// priced order and the path breakdown.
func ExportPDF(path string, bom BOM) error {
	if err := bom.check(); err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(bom.Title, true)

	pdf.AddPage()
	renderLayoutPage(pdf, bom)

	pdf.AddPage()
	renderSummaryPage(pdf, bom)

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the grid on the current PDF page.
func renderLayoutPage(pdf *fpdf.Fpdf, bom BOM) {
	g := bom.Grid
	size := g.Size()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%dx%d grid)", bom.Title, size, size)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Cubes: %d | Paths: %d | Shape: %s | %s",
		g.CubeCount(), len(bom.Plan.Paths), bom.Plan.Shape, bom.status())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight
	cs := math.Min(drawWidth, drawHeight) / float64(size)
	canvas := cs * float64(size)

	offsetX := marginLeft + (drawWidth-canvas)/2
	offsetY := drawAreaTop

	// Empty grid positions
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{1, 1}, 0)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			pdf.Rect(offsetX+float64(c)*cs, offsetY+float64(r)*cs, cs, cs, "D")
		}
	}
	pdf.SetDashPattern([]float64{}, 0)

	steps := make(map[[2]int]stepRef)
	for i, p := range bom.Plan.Paths {
		for j, pc := range p.Cubes {
			steps[[2]int{pc.Row, pc.Col}] = stepRef{path: i, step: j + 1}
		}
	}

	for r, row := range g.Cells {
		for c, cell := range row {
			if !cell.HasCube {
				continue
			}
			x := offsetX + float64(c)*cs
			y := offsetY + float64(r)*cs

			col := pathColor{R: 210, G: 180, B: 140}
			ref, onPath := steps[[2]int{r, c}]
			if onPath {
				col = pathColors[ref.path%len(pathColors)]
			}
			pdf.SetFillColor(col.R, col.G, col.B)
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.3)
			pdf.Rect(x, y, cs, cs, "FD")

			drawCladding(pdf, cell.Cladding, x, y, cs)
			if cell.Flow != nil {
				drawFlow(pdf, *cell.Flow, x, y, cs)
			}
			if cell.ExtraTall {
				pdf.SetFillColor(240, 200, 40)
				pdf.Circle(x+cs-3, y+3, 1.5, "F")
			}
			if onPath && cs > 12 {
				pdf.SetFont("Helvetica", "B", 8)
				pdf.SetTextColor(0, 0, 0)
				pdf.SetXY(x+1.5, y+1.5)
				pdf.CellFormat(8, 4, fmt.Sprintf("%d", ref.step), "", 0, "L", false, 0, "")
			}
		}
	}

	drawLegend(pdf, offsetY+canvas+5)
}

// edgeSegment returns the page coordinates of one cube edge.
func edgeSegment(d model.Direction, x, y, cs float64) (x1, y1, x2, y2 float64) {
	switch d {
	case model.North:
		return x, y, x + cs, y
	case model.East:
		return x + cs, y, x + cs, y + cs
	case model.South:
		return x, y + cs, x + cs, y + cs
	default:
		return x, y, x, y + cs
	}
}

// edgeMidpoint returns the middle of a cube edge.
func edgeMidpoint(d model.Direction, x, y, cs float64) (float64, float64) {
	x1, y1, x2, y2 := edgeSegment(d, x, y, cs)
	return (x1 + x2) / 2, (y1 + y2) / 2
}

// drawCladding draws clad edges as heavy lines.
func drawCladding(pdf *fpdf.Fpdf, clad model.EdgeSet, x, y, cs float64) {
	pdf.SetDrawColor(90, 60, 30)
	pdf.SetLineWidth(math.Max(0.8, cs*0.04))
	pdf.SetLineCapStyle("square")
	for _, d := range clad.List() {
		x1, y1, x2, y2 := edgeSegment(d, x, y, cs)
		pdf.Line(x1, y1, x2, y2)
	}
	pdf.SetLineCapStyle("butt")
}

// drawFlow draws the flow through a cube from the entry edge through the
// centre to the exit edge, with a dot marking the entry.
func drawFlow(pdf *fpdf.Fpdf, f model.Connections, x, y, cs float64) {
	cx, cy := x+cs/2, y+cs/2
	ex, ey := edgeMidpoint(f.Entry, x, y, cs)
	xx, xy := edgeMidpoint(f.Exit, x, y, cs)

	pdf.SetDrawColor(0, 70, 160)
	pdf.SetFillColor(0, 70, 160)
	pdf.SetLineWidth(math.Max(0.4, cs*0.015))
	pdf.Line(ex, ey, cx, cy)
	pdf.Line(cx, cy, xx, xy)
	pdf.Circle(ex, ey, math.Max(0.6, cs*0.03), "F")

	// Arrowhead at the exit
	dx, dy := xx-cx, xy-cy
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	ux, uy := dx/l, dy/l
	head := cs * 0.08
	pdf.Polygon([]fpdf.PointType{
		{X: xx, Y: xy},
		{X: xx - ux*head - uy*head/2, Y: xy - uy*head + ux*head/2},
		{X: xx - ux*head + uy*head/2, Y: xy - uy*head - ux*head/2},
	}, "F")
}

// drawLegend explains the drawing symbols below the grid.
func drawLegend(pdf *fpdf.Fpdf, startY float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)

	x := marginLeft
	pdf.SetDrawColor(90, 60, 30)
	pdf.SetLineWidth(0.8)
	pdf.Line(x, startY+2, x+8, startY+2)
	pdf.SetXY(x+10, startY)
	pdf.CellFormat(40, 4, "Clad edge", "", 0, "L", false, 0, "")

	x += 45
	pdf.SetDrawColor(0, 70, 160)
	pdf.SetLineWidth(0.4)
	pdf.Line(x, startY+2, x+8, startY+2)
	pdf.SetXY(x+10, startY)
	pdf.CellFormat(60, 4, "Water flow (dot marks the entry)", "", 0, "L", false, 0, "")

	x += 75
	pdf.SetXY(x, startY)
	pdf.CellFormat(80, 4, "Numbers give the order along each path", "", 0, "L", false, 0, "")

	x += 85
	pdf.SetFillColor(240, 200, 40)
	pdf.Circle(x+2, startY+2, 1.5, "F")
	pdf.SetXY(x+6, startY)
	pdf.CellFormat(50, 4, "Extra tall (700mm)", "", 0, "L", false, 0, "")
}

// renderSummaryPage draws the requirements, the priced order and the paths.
func renderSummaryPage(pdf *fpdf.Fpdf, bom BOM) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Bill of Materials", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	if !bom.Plan.Valid {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 7, "WARNING: "+bom.status(), "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 10
	}

	est := bom.Estimate
	summaryItems := []struct {
		label string
		value string
	}{
		{"Cubes", fmt.Sprintf("%d", bom.Grid.CubeCount())},
		{"Panels (raw side/left/right)", fmt.Sprintf("%d / %d / %d", bom.Plan.Counts.Side, bom.Plan.Counts.Left, bom.Plan.Counts.Right)},
		{"Panels shipped", fmt.Sprintf("%d", est.PanelCount)},
		{"Couplings and connectors", fmt.Sprintf("%d", est.HardwareCount)},
		{"Corner turns (left/right)", fmt.Sprintf("%d / %d", bom.Plan.Couplings.CornerLeft, bom.Plan.Couplings.CornerRight)},
	}
	if t := bom.Plan.TallCounts; t.Total() > 0 {
		summaryItems = append(summaryItems, struct {
			label string
			value string
		}{"Extra tall panels (side/left/right)", fmt.Sprintf("%d / %d / %d", t.Side, t.Left, t.Right)})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Order", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{80, 45, 25, 35, 35}
	headers := []string{"Item", "Variant", "Qty", "Unit Price", "Line Total"}
	y = tableHeader(pdf, y, colWidths, headers)

	pdf.SetFont("Helvetica", "", 9)
	for i, line := range est.Lines {
		variant := line.SKU.VariantID
		unit := formatMoney(line.SKU.UnitPrice, est.Currency)
		total := formatMoney(line.LineTotal, est.Currency)
		if line.Unlisted {
			variant, unit, total = "not in catalog", "-", "-"
		}
		y = tableRow(pdf, y, i, colWidths, []string{
			line.SKU.Name,
			variant,
			fmt.Sprintf("%d", line.Quantity),
			unit,
			total,
		})
	}
	if len(est.Lines) == 0 {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 6, "Nothing to order.", "", 0, "L", false, 0, "")
		y += 6
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft+colWidths[0]+colWidths[1]+colWidths[2], y)
	pdf.CellFormat(colWidths[3], 6, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[4], 6, formatMoney(est.Subtotal, est.Currency), "1", 0, "C", false, 0, "")
	y += 12

	renderPathsTable(pdf, bom, y)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	footer := "Generated by CubeClad - Cube Cladding Planner"
	if !bom.GeneratedAt.IsZero() {
		footer += " on " + bom.GeneratedAt.Format("2006-01-02 15:04")
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, footer, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderPathsTable lists each flow path with its corners and couplings.
func renderPathsTable(pdf *fpdf.Fpdf, bom BOM, y float64) {
	if len(bom.Plan.Paths) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Flow Paths", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 30, 20, 20, 135}
	y = tableHeader(pdf, y, colWidths, []string{"Path", "Start", "Cubes", "Corners", "Status"})

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range bom.Plan.Paths {
		if y > pageHeight-marginBottom-10 {
			break
		}
		start := "-"
		if len(p.Cubes) > 0 {
			start = fmt.Sprintf("(%d, %d)", p.Cubes[0].Row+1, p.Cubes[0].Col+1)
		}
		status := "valid"
		if !p.Valid {
			status = p.Reason
		}
		y = tableRow(pdf, y, i, colWidths, []string{
			fmt.Sprintf("%d", i+1),
			start,
			fmt.Sprintf("%d/%d", p.Len(), p.Group),
			fmt.Sprintf("%d", p.Corners()),
			status,
		})
	}
}

// tableHeader draws a shaded header row and returns the next y.
func tableHeader(pdf *fpdf.Fpdf, y float64, widths []float64, headers []string) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(widths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += widths[i]
	}
	return y + 6
}

// tableRow draws one data row with alternating background and returns the next y.
func tableRow(pdf *fpdf.Fpdf, y float64, i int, widths []float64, cells []string) float64 {
	if i%2 == 0 {
		pdf.SetFillColor(245, 245, 245)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	xPos := marginLeft
	for j, cell := range cells {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(widths[j], 6, cell, "1", 0, "C", true, 0, "")
		xPos += widths[j]
	}
	return y + 6
}

// formatMoney renders an amount with its currency code.
func formatMoney(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}
