package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/piwi3910/CubeClad/internal/engine"
	"github.com/piwi3910/CubeClad/internal/importer"
	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/piwi3910/CubeClad/internal/project"
	"github.com/spf13/cobra"
)

// appConfigPath returns the --config path or the default location.
func appConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return project.DefaultConfigPath()
}

func loadConfig() (model.AppConfig, error) {
	cfg, err := project.LoadAppConfig(appConfigPath())
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadCatalog loads the configured catalog, creating the default one on
// first use.
func loadCatalog(cfg model.AppConfig) (model.Catalog, error) {
	catalog, err := project.LoadCatalog(project.CatalogPath(cfg))
	if err != nil {
		return catalog, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog, nil
}

// newPlanner returns a planner that logs to stderr when --verbose is set.
func newPlanner(cmd *cobra.Command) *engine.Planner {
	if !verbose {
		return engine.NewPlanner(nil)
	}
	return engine.NewPlanner(log.New(cmd.ErrOrStderr(), "cubeclad: ", 0).Printf)
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// layoutFlags selects the grid a command works on.
type layoutFlags struct {
	preset     string
	file       string
	importPath string
	template   string
}

func (lf *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&lf.preset, "preset", "p", "", "Built-in layout ("+strings.Join(model.PresetNames(), ", ")+")")
	cmd.Flags().StringVarP(&lf.file, "file", "f", "", "Project file ("+project.ProjectExt+")")
	cmd.Flags().StringVarP(&lf.importPath, "import", "i", "", "Layout to import (.csv, .xlsx, .dxf)")
	cmd.Flags().StringVarP(&lf.template, "template", "t", "", "Saved layout template name")
	cmd.MarkFlagsMutuallyExclusive("preset", "file", "import", "template")
}

func (lf *layoutFlags) reset() {
	*lf = layoutFlags{}
}

// load resolves the selected layout to a title and grid. Import warnings
// are written to warn.
func (lf layoutFlags) load(warn io.Writer) (string, model.Grid, error) {
	switch {
	case lf.preset != "":
		p, err := model.PresetByName(lf.preset)
		if err != nil {
			return "", model.Grid{}, err
		}
		return p.Label, p.Grid, nil

	case lf.file != "":
		p, err := project.LoadProject(lf.file)
		if err != nil {
			return "", model.Grid{}, err
		}
		return p.Name, p.Grid, nil

	case lf.importPath != "":
		result := importer.Import(lf.importPath)
		for _, w := range result.Warnings {
			PrintWarning(warn, w)
		}
		if len(result.Errors) > 0 {
			return "", model.Grid{}, fmt.Errorf("failed to import %s: %s", lf.importPath, strings.Join(result.Errors, "; "))
		}
		name := strings.TrimSuffix(filepath.Base(lf.importPath), filepath.Ext(lf.importPath))
		return name, result.Grid, nil

	case lf.template != "":
		store, err := loadTemplates(warn)
		if err != nil {
			return "", model.Grid{}, err
		}
		t := store.FindByName(lf.template)
		if t == nil {
			return "", model.Grid{}, fmt.Errorf("no template named %q", lf.template)
		}
		return t.Name, t.Grid, nil
	}
	return "", model.Grid{}, fmt.Errorf("choose a layout with --preset, --file, --import or --template")
}

// loadTemplates reads the template store. Malformed templates are skipped
// with a warning; only an unreadable store is an error.
func loadTemplates(warn io.Writer) (model.TemplateStore, error) {
	store, err := project.LoadTemplates(templatesPath())
	if err != nil {
		if store.Templates == nil {
			return store, err
		}
		PrintWarning(warn, err.Error())
	}
	return store, nil
}

// templatesPath returns the template store beside the config file.
func templatesPath() string {
	return filepath.Join(filepath.Dir(appConfigPath()), "templates.json")
}
