package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/CubeClad/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportLayout layoutFlags
	exportOutput string
)

// exporter writes one output format.
type exporter struct {
	ext   string
	write func(path string, bom export.BOM) error
}

var exporters = map[string]exporter{
	"pdf":   {ext: ".pdf", write: export.ExportPDF},
	"xlsx":  {ext: ".xlsx", write: export.ExportExcel},
	"dxf":   {ext: ".dxf", write: export.ExportDXF},
	"cards": {ext: "_cards.pdf", write: export.ExportOrderCards},
}

var exportCmd = &cobra.Command{
	Use:   "export {pdf|xlsx|dxf|cards}",
	Short: "Export a layout's bill of materials",
	Long: `Export writes the planned layout in one of four formats:

  pdf    bill-of-materials report with the layout drawing
  xlsx   workbook with the layout, the priced order and the flow paths
  dxf    CAD drawing of the layout that can be imported again
  cards  QR-coded order cards, one per order line`,
	Example: `  cubeclad export pdf --preset U -o u-shape.pdf
  cubeclad export cards --import garden.xlsx`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"pdf", "xlsx", "dxf", "cards"},
	RunE: func(cmd *cobra.Command, args []string) error {
		exp, ok := exporters[args[0]]
		if !ok {
			return fmt.Errorf("unknown export format %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		title, g, err := exportLayout.load(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		path := exportOutput
		if path == "" {
			path = filepath.Join(cfg.DefaultExportDir, exportFileName(title)+exp.ext)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		bom := export.NewBOM(title, g, newPlanner(cmd), catalog)
		if err := exp.write(path, bom); err != nil {
			return fmt.Errorf("failed to export %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		if !bom.Plan.Valid {
			PrintWarning(out, "Layout is not buildable: "+bom.Plan.Reason)
		}
		PrintSuccess(out, fmt.Sprintf("Exported %s to %s", args[0], path))
		return nil
	},
}

// exportFileName turns a layout title into a file name stem.
func exportFileName(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return ' '
		}
	}, title)
	name := strings.Join(strings.Fields(cleaned), "_")
	if name == "" {
		return "layout"
	}
	return name
}

func init() {
	exportLayout.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: <layout name> in the export directory)")
}
