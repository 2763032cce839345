package cli

import (
	"fmt"

	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/piwi3910/CubeClad/internal/project"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage saved layout templates",
}

var (
	templateSaveLayout layoutFlags
	templateSaveDesc   string
)

var templateSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save a layout as a reusable template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, g, err := templateSaveLayout.load(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if err := g.Validate(); err != nil {
			return err
		}

		store, err := loadTemplates(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if existing := store.FindByName(args[0]); existing != nil {
			store.Remove(existing.ID)
		}
		t := model.NewLayoutTemplate(args[0], templateSaveDesc, g)
		store.Add(t)

		if err := project.SaveTemplates(templatesPath(), store); err != nil {
			return fmt.Errorf("failed to save templates: %w", err)
		}
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Saved template %q (%s)", t.Name, t.ID))
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layout templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadTemplates(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(store.Templates) == 0 {
			PrintEmptyState(out, "No templates saved")
			return nil
		}
		rows := make([][]string, len(store.Templates))
		for i, t := range store.Templates {
			rows[i] = []string{t.ID, t.Name, fmt.Sprintf("%d", t.Grid.CubeCount()), t.Description}
		}
		PrintTable(out, []string{"ID", "Name", "Cubes", "Description"}, rows)
		return nil
	},
}

var templateRemoveCmd = &cobra.Command{
	Use:   "rm NAME",
	Short: "Remove a layout template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadTemplates(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		t := store.FindByName(args[0])
		if t == nil {
			return fmt.Errorf("no template named %q", args[0])
		}
		store.Remove(t.ID)
		if err := project.SaveTemplates(templatesPath(), store); err != nil {
			return fmt.Errorf("failed to save templates: %w", err)
		}
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Removed template %q", args[0]))
		return nil
	},
}

func init() {
	templateSaveLayout.register(templateSaveCmd)
	templateSaveCmd.Flags().StringVarP(&templateSaveDesc, "description", "d", "", "Template description")

	templateCmd.AddCommand(templateSaveCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateRemoveCmd)
}
