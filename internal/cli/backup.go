package cli

import (
	"fmt"

	"github.com/piwi3910/CubeClad/internal/project"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up or restore config, catalog and templates",
}

var backupExportCmd = &cobra.Command{
	Use:   "export PATH",
	Short: "Write config, catalog and templates to one file",
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
		store, err := loadTemplates(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if err := project.ExportAllData(args[0], cfg, catalog, store); err != nil {
			return err
		}
		PrintSuccess(cmd.OutOrStdout(), "Backup written to "+args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import PATH",
	Short: "Restore config, catalog and templates from a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}
		if err := project.SaveAppConfig(appConfigPath(), backup.Config); err != nil {
			return fmt.Errorf("failed to restore config: %w", err)
		}
		if err := project.SaveCatalog(project.CatalogPath(backup.Config), backup.Catalog); err != nil {
			return fmt.Errorf("failed to restore catalog: %w", err)
		}
		if err := project.SaveTemplates(templatesPath(), backup.Templates); err != nil {
			return fmt.Errorf("failed to restore templates: %w", err)
		}
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Restored %s and %s from %s (created %s)",
			PrintCount(len(backup.Catalog.SKUs), "SKU", "SKUs"),
			PrintCount(len(backup.Templates.Templates), "template", "templates"),
			args[0], backup.CreatedAt))
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}
