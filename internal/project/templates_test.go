package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CubeClad/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	preset, err := model.PresetByName("U")
	if err != nil {
		t.Fatal(err)
	}
	store := model.NewTemplateStore()
	store.Add(model.NewLayoutTemplate("Planter U", "Three sides of the patio", preset.Grid))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}

	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if loaded.Templates[0].Name != "Planter U" {
		t.Errorf("expected 'Planter U', got %q", loaded.Templates[0].Name)
	}
	if loaded.Templates[0].Grid.CubeCount() != 5 {
		t.Errorf("expected 5 cubes, got %d", loaded.Templates[0].Grid.CubeCount())
	}
}

func TestLoadTemplates_NotFound(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.json")

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestSaveAndLoadTemplates_Multiple(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	g, _ := model.NewGrid(3)
	store := model.NewTemplateStore()
	store.Add(model.NewLayoutTemplate("T1", "First", g))
	store.Add(model.NewLayoutTemplate("T2", "Second", g))
	store.Add(model.NewLayoutTemplate("T3", "Third", g))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if len(loaded.Templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(loaded.Templates))
	}
}

func TestLoadTemplates_SkipsMalformedGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	data := []byte(`{"templates":[
		{"id":"good","name":"Good","grid":{"cells":[[{"cube":false}]]}},
		{"id":"bad","name":"Bad","grid":{"cells":[]}}
	]}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadTemplates(path)
	if err == nil {
		t.Error("expected an error naming the skipped template")
	}
	if len(store.Templates) != 1 || store.Templates[0].ID != "good" {
		t.Errorf("expected only the good template, got %+v", store.Templates)
	}
}
