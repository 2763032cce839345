package cli

import (
	"fmt"

	"github.com/piwi3910/CubeClad/internal/engine"
	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in layouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		presets := model.Presets()
		if jsonOutput {
			return outputJSON(out, presets)
		}
		for _, p := range presets {
			PrintSection(out, fmt.Sprintf("%s: %s", p.Name, p.Label))
			PrintInfo(out, "  "+p.Description)
			fmt.Fprintln(out)
			PrintGrid(out, p.Grid)
		}
		return nil
	},
}

var compareTemplates bool

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare what each built-in layout costs to build",
	Long: `Compare plans every built-in layout side by side and prices each against
the catalog. With --templates, saved layout templates are included.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		presets := model.Presets()
		if compareTemplates {
			store, err := loadTemplates(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, t := range store.Templates {
				presets = append(presets, t.AsPreset())
			}
		}

		results := newPlanner(cmd).ComparePresets(presets, catalog)
		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, comparisonRows(results, catalog.Currency))
		}

		rows := make([][]string, 0, len(results))
		for _, r := range comparisonRows(results, catalog.Currency) {
			rows = append(rows, []string{
				r.Name, fmt.Sprintf("%d", r.Cubes), r.Shape,
				fmt.Sprintf("%d", r.Panels), fmt.Sprintf("%d", r.Hardware),
				fmt.Sprintf("%d", r.Items), r.Subtotal, r.Status,
			})
		}
		PrintTable(out, []string{"Layout", "Cubes", "Shape", "Panels", "Hardware", "Items", "Subtotal", "Status"}, rows)
		return nil
	},
}

// comparisonRow is one line of the compare output.
type comparisonRow struct {
	Name     string `json:"name"`
	Cubes    int    `json:"cubes"`
	Shape    string `json:"shape"`
	Panels   int    `json:"panels"`
	Hardware int    `json:"hardware"`
	Items    int    `json:"items"`
	Subtotal string `json:"subtotal"`
	Status   string `json:"status"`
}

func comparisonRows(results []engine.PresetComparison, currency string) []comparisonRow {
	rows := make([]comparisonRow, len(results))
	for i, r := range results {
		status := "buildable"
		if r.Unbuildable {
			status = "not buildable"
		}
		rows[i] = comparisonRow{
			Name:     r.Preset.Name,
			Cubes:    r.Cubes,
			Shape:    r.Plan.Shape.String(),
			Panels:   r.Panels,
			Hardware: r.Hardware,
			Items:    r.Estimate.ItemCount,
			Subtotal: formatMoney(r.Estimate.Subtotal, currency),
			Status:   status,
		}
	}
	return rows
}

func init() {
	presetsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	compareCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	compareCmd.Flags().BoolVar(&compareTemplates, "templates", false, "Include saved layout templates")
}
