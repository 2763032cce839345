// Package importer reads grid layouts from CSV, Excel and DXF files.
// Spreadsheet layouts hold one grid cell per spreadsheet cell; the CSV
// delimiter is detected automatically and comment lines are skipped.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation. Grid is only
// meaningful when Errors is empty.
type ImportResult struct {
	Grid     model.Grid
	Errors   []string
	Warnings []string
}

// OK reports whether the import produced a usable grid.
func (r ImportResult) OK() bool {
	return len(r.Errors) == 0 && len(r.Grid.Cells) > 0
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.Comment = '#'
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// trimRows drops blank rows at the end of the sheet and blank cells at the
// end of each row so trailing spreadsheet padding does not widen the grid.
func trimRows(rows [][]string) [][]string {
	for len(rows) > 0 && isEmptyRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		end := len(row)
		for end > 0 && strings.TrimSpace(row[end-1]) == "" {
			end--
		}
		out[i] = row[:end]
	}
	return out
}

// ImportCSV imports a layout from a CSV file.
// It automatically detects the delimiter. Lines starting with '#' are comments.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	result = ImportCSVFromReader(bytes.NewReader(data), delimiter)
	result.Warnings = append(warnings, result.Warnings...)
	return result
}

// ImportCSVFromReader imports a layout from a CSV reader with a specific delimiter.
// This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.Comment = '#'
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line")
}

// ImportExcel imports a layout from an Excel (.xlsx) file.
// Reads the first sheet, starting at cell A1.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row")
}

// importFromRows is the shared import logic for both CSV and Excel data.
// Each row is a grid row; ragged or rectangular layouts are padded to a
// square with empty cells.
func importFromRows(rows [][]string, rowPrefix string) ImportResult {
	result := ImportResult{}

	rows = trimRows(rows)
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No layout rows found")
		return result
	}

	size := len(rows)
	for _, row := range rows {
		if len(row) > size {
			size = len(row)
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

	padded := false
	var clad [][2]int
	for r, row := range rows {
		if len(row) != size {
			padded = true
		}
		for c, raw := range row {
			tok, err := model.ParseLayoutToken(raw)
			if err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("%s %d, column %d: %v", rowPrefix, r+1, c+1, err))
				continue
			}
			if !tok.HasCube {
				continue
			}
			g.Cells[r][c] = model.Cell{HasCube: true, Flow: tok.Flow, ExtraTall: tok.ExtraTall}
			if tok.Clad {
				clad = append(clad, [2]int{r, c})
			}
		}
	}
	if len(rows) != size {
		padded = true
	}
	if padded {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Padded layout to %dx%d", size, size))
	}

	cladExposed(&g, clad)

	if err := g.Validate(); err != nil {
		result.Errors = append(result.Errors, err.Error())
	}
	if g.CubeCount() == 0 {
		result.Warnings = append(result.Warnings, "Layout contains no cubes")
	}

	result.Grid = g
	return result
}

// cladExposed marks every exposed edge of the listed cubes.
func cladExposed(g *model.Grid, cells [][2]int) {
	for _, rc := range cells {
		for _, d := range model.AllDirections {
			if g.IsExposed(rc[0], rc[1], d) {
				g.Cells[rc[0]][rc[1]].Cladding = g.Cells[rc[0]][rc[1]].Cladding.Add(d)
			}
		}
	}
}

// Import picks the importer by file extension.
func Import(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ImportExcel(path)
	case ".dxf":
		return ImportDXF(path)
	default:
		return ImportCSV(path)
	}
}
