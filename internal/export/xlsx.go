package export

import (
	"fmt"

	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook. The layout comes first so the
// workbook can be imported again as a layout.
const (
	sheetLayout = "Layout"
	sheetBOM    = "Bill of Materials"
	sheetPaths  = "Paths"
)

// ExportExcel writes a workbook with the layout in token form, the bill of
// materials with prices, and the flow path breakdown.
func ExportExcel(path string, bom BOM) error {
	if err := bom.check(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetLayout); err != nil {
		return fmt.Errorf("failed to name layout sheet: %w", err)
	}
	for _, name := range []string{sheetBOM, sheetPaths} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("failed to create number style: %w", err)
	}

	if err := writeLayoutSheet(f, bom.Grid); err != nil {
		return err
	}
	if err := writeBOMSheet(f, bom, bold, money); err != nil {
		return err
	}
	if err := writePathsSheet(f, bom, bold); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeLayoutSheet writes one layout token per cell starting at A1.
func writeLayoutSheet(f *excelize.File, g model.Grid) error {
	for r, row := range g.LayoutRows() {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for i, tok := range row {
			values[i] = tok
		}
		if err := f.SetSheetRow(sheetLayout, cell, &values); err != nil {
			return fmt.Errorf("failed to write layout row %d: %w", r+1, err)
		}
	}
	return f.SetColWidth(sheetLayout, "A", columnName(g.Size()), 8)
}

// writeBOMSheet writes the requirements and priced order lines.
func writeBOMSheet(f *excelize.File, bom BOM, header, money int) error {
	est := bom.Estimate
	rows := [][]interface{}{
		{"Project", bom.Title},
		{"Status", bom.status()},
		{"Shape", bom.Plan.Shape.String()},
		{"Cubes", bom.Grid.CubeCount()},
		{},
		{"Item", "Kind", "Variant", "Quantity", "Unit Price", "Line Total"},
	}
	headerRow := len(rows)

	for _, req := range requirementRows(bom.Plan.Requirements) {
		if req.qty == 0 {
			continue
		}
		row := []interface{}{req.label, string(req.kind), "", req.qty, nil, nil}
		for _, line := range est.Lines {
			if line.SKU.Kind != req.kind || line.Unlisted {
				continue
			}
			row[0] = line.SKU.Name
			row[2] = line.SKU.VariantID
			row[4] = line.SKU.UnitPrice
			row[5] = line.LineTotal
		}
		rows = append(rows, row)
	}
	lastLine := len(rows)
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Subtotal", est.Currency, "", est.ItemCount, nil, est.Subtotal},
		[]interface{}{"Panels shipped", "", "", est.PanelCount},
		[]interface{}{"Couplings and connectors", "", "", est.HardwareCount},
		[]interface{}{"Corner turns left", "", "", bom.Plan.Couplings.CornerLeft},
		[]interface{}{"Corner turns right", "", "", bom.Plan.Couplings.CornerRight},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetBOM, cell, &row); err != nil {
			return fmt.Errorf("failed to write bill of materials row %d: %w", i+1, err)
		}
	}

	hdr := fmt.Sprintf("A%d", headerRow)
	if err := f.SetCellStyle(sheetBOM, hdr, fmt.Sprintf("F%d", headerRow), header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetBOM, fmt.Sprintf("E%d", headerRow+1), fmt.Sprintf("F%d", lastLine+2), money); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetBOM, "A", "A", 30); err != nil {
		return err
	}
	return f.SetColWidth(sheetBOM, "B", "F", 16)
}

// writePathsSheet writes one row per walked cube, grouped by path.
func writePathsSheet(f *excelize.File, bom BOM, header int) error {
	rows := [][]interface{}{
		{"Path", "Step", "Row", "Column", "Entry", "Exit", "Turn", "Status"},
	}
	for i, p := range bom.Plan.Paths {
		status := "valid"
		if !p.Valid {
			status = p.Reason
		}
		if len(p.Cubes) == 0 {
			rows = append(rows, []interface{}{i + 1, nil, nil, nil, nil, nil, nil, status})
			continue
		}
		for j, pc := range p.Cubes {
			rows = append(rows, []interface{}{
				i + 1, j + 1, pc.Row + 1, pc.Col + 1,
				pc.Entry.String(), pc.Exit.String(), pc.Turn.String(), status,
			})
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetPaths, cell, &row); err != nil {
			return fmt.Errorf("failed to write path row %d: %w", i+1, err)
		}
	}
	if err := f.SetCellStyle(sheetPaths, "A1", "H1", header); err != nil {
		return err
	}
	return f.SetColWidth(sheetPaths, "H", "H", 50)
}

// columnName returns the spreadsheet column letter for a 1-based index.
func columnName(n int) string {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return "A"
	}
	return name
}
