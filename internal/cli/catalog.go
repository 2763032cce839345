package cli

import (
	"fmt"
	"strconv"

	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/piwi3910/CubeClad/internal/project"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show and edit the SKU catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, catalog)
		}
		if len(catalog.SKUs) == 0 {
			PrintEmptyState(out, "Catalog is empty")
			return nil
		}
		rows := make([][]string, len(catalog.SKUs))
		for i, s := range catalog.SKUs {
			variant := s.VariantID
			if variant == "" {
				variant = "-"
			}
			rows[i] = []string{s.ID, string(s.Kind), s.Name, variant, formatMoney(s.UnitPrice, catalog.Currency)}
		}
		PrintTable(out, []string{"ID", "Kind", "Name", "Variant", "Price"}, rows)
		return nil
	},
}

var catalogPriceCmd = &cobra.Command{
	Use:   "price KIND AMOUNT",
	Short: "Set the unit price of a SKU kind",
	Example: `  cubeclad catalog price four_pack_regular 119.95
  cubeclad catalog price corner_connector 6.50`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		kind := model.SKUKind(args[0])
		sku := catalog.FindByKind(kind)
		if sku == nil {
			return fmt.Errorf("no catalog entry of kind %q", args[0])
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil || price < 0 {
			return fmt.Errorf("invalid price %q", args[1])
		}
		sku.UnitPrice = price

		if err := project.SaveCatalog(project.CatalogPath(cfg), catalog); err != nil {
			return fmt.Errorf("failed to save catalog: %w", err)
		}
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s now costs %s", sku.Name, formatMoney(price, catalog.Currency)))
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import PATH",
	Short: "Merge SKUs from another catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		before := len(catalog.SKUs)

		merged, err := project.ImportCatalog(args[0], catalog)
		if err != nil {
			return err
		}
		if err := project.SaveCatalog(project.CatalogPath(cfg), merged); err != nil {
			return fmt.Errorf("failed to save catalog: %w", err)
		}
		added := len(merged.SKUs) - before
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Imported %s", PrintCount(added, "SKU", "SKUs")))
		return nil
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	catalogCmd.AddCommand(catalogPriceCmd)
	catalogCmd.AddCommand(catalogImportCmd)
}
