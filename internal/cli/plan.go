package cli

import (
	"fmt"
	"io"

	"github.com/piwi3910/CubeClad/internal/engine"
	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/spf13/cobra"
)

var planLayout layoutFlags

// planReport is the --json form of the plan command.
type planReport struct {
	Title    string                 `json:"title"`
	Layout   [][]string             `json:"layout"`
	Plan     engine.Plan            `json:"plan"`
	Estimate model.PurchaseEstimate `json:"estimate"`
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the bill of materials for a layout",
	Long: `Plan walks the flow path of a layout, counts the exposed panels,
packs them into SKUs and prices the order against the catalog.

An unbuildable layout (a loop, a branch, a break in the flow or a cube with
no flow set) needs nothing; the reason is reported instead.`,
	Example: `  cubeclad plan --preset U
  cubeclad plan --import garden.csv --json
  cubeclad plan --file ~/.cubeclad/projects/front_bed.cubeclad -v`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		title, g, err := planLayout.load(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		plan := newPlanner(cmd).Plan(g)
		est := catalog.Estimate(plan.Requirements)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, planReport{
				Title:    title,
				Layout:   g.LayoutRows(),
				Plan:     plan,
				Estimate: est,
			})
		}
		printPlan(out, title, g, plan, est)
		return nil
	},
}

func init() {
	planLayout.register(planCmd)
	planCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// printPlan writes the human-readable plan.
func printPlan(w io.Writer, title string, g model.Grid, plan engine.Plan, est model.PurchaseEstimate) {
	PrintSection(w, fmt.Sprintf("%s (%dx%d grid, %s)", title, g.Size(), g.Size(),
		PrintCount(g.CubeCount(), "cube", "cubes")))
	PrintGrid(w, g)

	PrintSection(w, "Flow paths")
	if len(plan.Paths) == 0 {
		PrintEmptyState(w, "No cubes placed")
	}
	for i, p := range plan.Paths {
		if !p.Valid {
			PrintError(w, fmt.Sprintf("Path %d: %s", i+1, p.Reason))
			continue
		}
		start := p.Cubes[0]
		PrintSuccess(w, fmt.Sprintf("Path %d: %s from (%d,%d), %s",
			i+1, PrintCount(p.Len(), "cube", "cubes"), start.Row, start.Col,
			PrintCount(p.Corners(), "corner", "corners")))
	}
	if plan.Reason != "" && len(plan.Paths) == 0 {
		PrintError(w, plan.Reason)
	}

	if !plan.Valid {
		fmt.Fprintln(w)
		PrintWarning(w, "Layout is not buildable; nothing is required until the flow is fixed")
		return
	}
	if len(plan.Paths) == 0 {
		return
	}

	PrintSection(w, "Panels")
	if len(plan.Paths) == 1 {
		PrintLabelValue(w, "Shape", plan.Shape.String())
	}
	PrintLabelValue(w, "Side", fmt.Sprintf("%d", plan.Counts.Side))
	PrintLabelValue(w, "Left", fmt.Sprintf("%d", plan.Counts.Left))
	PrintLabelValue(w, "Right", fmt.Sprintf("%d", plan.Counts.Right))
	if t := plan.TallCounts; t.Total() > 0 {
		PrintLabelValue(w, "Extra tall", fmt.Sprintf("%d side, %d left, %d right", t.Side, t.Left, t.Right))
	}
	if c := plan.Couplings; c.Corner > 0 {
		PrintLabelValue(w, "Corners", fmt.Sprintf("%d left, %d right", c.CornerLeft, c.CornerRight))
	}

	PrintSection(w, "Order")
	printEstimate(w, est)
}

// printEstimate writes the order lines and totals.
func printEstimate(w io.Writer, est model.PurchaseEstimate) {
	if len(est.Lines) == 0 {
		PrintEmptyState(w, "Nothing to order")
		return
	}
	rows := make([][]string, 0, len(est.Lines))
	for _, l := range est.Lines {
		variant, unit, total := l.SKU.VariantID, formatMoney(l.SKU.UnitPrice, est.Currency), formatMoney(l.LineTotal, est.Currency)
		if l.Unlisted {
			variant, unit, total = "not in catalog", "-", "-"
		}
		if variant == "" {
			variant = "-"
		}
		rows = append(rows, []string{l.SKU.Name, fmt.Sprintf("%d", l.Quantity), variant, unit, total})
	}
	PrintTable(w, []string{"Item", "Qty", "Variant", "Unit", "Total"}, rows)
	fmt.Fprintln(w)
	PrintLabelValue(w, "Panels shipped", fmt.Sprintf("%d", est.PanelCount))
	PrintLabelValue(w, "Couplings and connectors", fmt.Sprintf("%d", est.HardwareCount))
	PrintLabelValue(w, "Subtotal", formatMoney(est.Subtotal, est.Currency))
	if est.UnlistedCount > 0 {
		PrintWarning(w, fmt.Sprintf("%s missing from the catalog", PrintCount(est.UnlistedCount, "item is", "items are")))
	}
}
