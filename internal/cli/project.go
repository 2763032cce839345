package cli

import (
	"fmt"
	"path/filepath"

	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/piwi3910/CubeClad/internal/project"
	"github.com/spf13/cobra"
)

// maxRecentProjects bounds the recent project list in the config.
const maxRecentProjects = 10

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Create, inspect and list saved projects",
}

var (
	projectNewSize   int
	projectNewDir    string
	projectNewLayout layoutFlags
)

var projectNewCmd = &cobra.Command{
	Use:   "new NAME",
	Short: "Create a project, optionally starting from a layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		size := projectNewSize
		if size == 0 {
			size = cfg.EffectiveGridSize()
		}
		p := model.NewProject(args[0], size)

		if projectNewLayout != (layoutFlags{}) {
			_, g, err := projectNewLayout.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := p.Grid.ApplyPreset(g); err != nil {
				return fmt.Errorf("failed to apply layout: %w", err)
			}
		}

		dir := projectNewDir
		if dir == "" {
			dir = project.DefaultProjectsDir()
		}
		path := filepath.Join(dir, project.ProjectFileName(p))
		if err := project.SaveProject(path, p); err != nil {
			return err
		}

		cfg.AddRecentProject(path, maxRecentProjects)
		if err := project.SaveAppConfig(appConfigPath(), cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created project %q (%s) at %s", p.Name, p.ID, path))
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show PATH",
	Short: "Show a saved project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := project.LoadProject(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, p)
		}
		PrintSection(out, p.Name)
		PrintLabelValue(out, "ID", p.ID)
		PrintLabelValue(out, "Created", p.CreatedAt)
		PrintLabelValue(out, "Grid", fmt.Sprintf("%dx%d, %s", p.Grid.Size(), p.Grid.Size(),
			PrintCount(p.Grid.CubeCount(), "cube", "cubes")))
		fmt.Fprintln(out)
		PrintGrid(out, p.Grid)
		return nil
	},
}

var projectListDir string

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := projectListDir
		if dir == "" {
			dir = project.DefaultProjectsDir()
		}
		paths, err := project.ListProjects(dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(paths) == 0 {
			PrintEmptyState(out, "No projects found in "+dir)
			return nil
		}
		PrintList(out, paths, 0)
		return nil
	},
}

func init() {
	projectNewCmd.Flags().IntVar(&projectNewSize, "size", 0, fmt.Sprintf("Grid size, 1..%d (default from config)", model.MaxGridSize))
	projectNewCmd.Flags().StringVar(&projectNewDir, "dir", "", "Directory to save into (default ~/.cubeclad/projects)")
	projectNewLayout.register(projectNewCmd)

	projectShowCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	projectListCmd.Flags().StringVar(&projectListDir, "dir", "", "Directory to list (default ~/.cubeclad/projects)")

	projectCmd.AddCommand(projectNewCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectListCmd)
}
