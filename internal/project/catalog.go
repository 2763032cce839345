package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/CubeClad/internal/model"
)

// DefaultCatalogPath returns the default file path for the SKU catalog.
// This is located at ~/.cubeclad/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// CatalogPath returns the catalog location configured in cfg, falling back
// to DefaultCatalogPath.
func CatalogPath(cfg model.AppConfig) string {
	if cfg.CatalogPath != "" {
		return cfg.CatalogPath
	}
	return DefaultCatalogPath()
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, catalog model.Catalog) error {
	return writeJSON(path, catalog)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			catalog := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, catalog); saveErr != nil {
				return catalog, saveErr
			}
			return catalog, nil
		}
		return model.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	var catalog model.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if catalog.SKUs == nil {
		catalog.SKUs = []model.SKU{}
	}
	return catalog, nil
}

// ImportCatalog merges the SKUs of the catalog file at path into existing.
// Entries whose ID or kind is already present are skipped.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, fmt.Errorf("failed to read catalog: %w", err)
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, fmt.Errorf("failed to parse catalog: %w", err)
	}

	ids := make(map[string]bool, len(existing.SKUs))
	kinds := make(map[model.SKUKind]bool, len(existing.SKUs))
	for _, s := range existing.SKUs {
		ids[s.ID] = true
		kinds[s.Kind] = true
	}

	for _, s := range imported.SKUs {
		if ids[s.ID] || kinds[s.Kind] {
			continue
		}
		existing.SKUs = append(existing.SKUs, s)
		ids[s.ID] = true
		kinds[s.Kind] = true
	}
	if existing.Currency == "" {
		existing.Currency = imported.Currency
	}
	return existing, nil
}
