// Package cli implements the cubeclad command tree.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
	noColor    bool
	jsonOutput bool
)

// rootCmd is the root command for cubeclad.
var rootCmd = &cobra.Command{
	Use:     "cubeclad",
	Version: "dev",
	Short:   "Bill-of-materials planner for modular garden cubes",
	Long: `cubeclad plans cladding and plumbing for modular cubes laid out on a grid.

It walks the water flow through each group of cubes, counts the exposed
edges that need panels, packs them into purchasable SKUs and adds the
couplings and corner connectors the path needs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if noColor || !cfg.Color {
			color.NoColor = true
		}
		return nil
	},
}

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.cubeclad/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log planning decisions to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddGroup(&cobra.Group{ID: "planning", Title: "Planning:"})
	rootCmd.AddGroup(&cobra.Group{ID: "data", Title: "Projects & Data:"})
	rootCmd.AddGroup(&cobra.Group{ID: "cli-tooling", Title: "CLI & Tooling:"})

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the cubeclad version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	planCmd.GroupID = "planning"
	presetsCmd.GroupID = "planning"
	compareCmd.GroupID = "planning"
	exportCmd.GroupID = "planning"
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exportCmd)

	projectCmd.GroupID = "data"
	templateCmd.GroupID = "data"
	catalogCmd.GroupID = "data"
	backupCmd.GroupID = "data"
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(backupCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
