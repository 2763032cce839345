package model

// AppConfig holds application-wide preferences.
type AppConfig struct {
	GridSize         int      `json:"grid_size"`          // Side length of new project grids
	Currency         string   `json:"currency"`           // Used when no catalog file is present
	CatalogPath      string   `json:"catalog_path"`       // Empty = ~/.cubeclad/catalog.json
	DefaultExportDir string   `json:"default_export_dir"` // Empty = current directory
	Color            bool     `json:"color"`              // Colored terminal output
	RecentProjects   []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		GridSize:         DefaultGridSize,
		Currency:         DefaultCatalog().Currency,
		CatalogPath:      "",
		DefaultExportDir: "",
		Color:            true,
		RecentProjects:   []string{},
	}
}

// EffectiveGridSize returns GridSize clamped to the supported range.
func (c AppConfig) EffectiveGridSize() int {
	if c.GridSize < 1 || c.GridSize > MaxGridSize {
		return DefaultGridSize
	}
	return c.GridSize
}

// AddRecentProject records path as the most recently used project,
// keeping at most max entries without duplicates.
func (c *AppConfig) AddRecentProject(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if max > 0 && len(recent) > max {
		recent = recent[:max]
	}
	c.RecentProjects = recent
}
