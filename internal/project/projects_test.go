package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CubeClad/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	dir := t.TempDir()
	preset, err := model.PresetByName("L")
	if err != nil {
		t.Fatal(err)
	}
	p := model.NewProject("Back garden", 3)
	if err := p.Grid.ApplyPreset(preset.Grid); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, ProjectFileName(p))
	if err := SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if loaded.ID != p.ID || loaded.Name != "Back garden" {
		t.Errorf("unexpected project identity %q/%q", loaded.ID, loaded.Name)
	}
	if loaded.Grid.CubeCount() != 3 {
		t.Errorf("expected 3 cubes, got %d", loaded.Grid.CubeCount())
	}
	flow := loaded.Grid.Cells[1][1].Flow
	if flow == nil || flow.Entry != model.West || flow.Exit != model.South {
		t.Errorf("expected W->S flow at (1,1), got %+v", flow)
	}
	if !loaded.Grid.Cells[1][1].Cladding.Has(model.North) {
		t.Error("expected cladding on the north edge of (1,1)")
	}
}

func TestSaveProjectRejectsMalformedGrid(t *testing.T) {
	p := model.NewProject("Broken", 3)
	p.Grid.Cells[0][0].Flow = &model.Connections{Entry: model.North, Exit: model.South}

	err := SaveProject(filepath.Join(t.TempDir(), "broken.cubeclad"), p)
	if !errors.Is(err, model.ErrMalformedGrid) {
		t.Fatalf("expected ErrMalformedGrid, got %v", err)
	}
}

func TestLoadProjectRejectsMalformedGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.cubeclad")
	data := []byte(`{"id":"abc","name":"Ragged","grid":{"cells":[[{"cube":true}],[]]}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadProject(path)
	if !errors.Is(err, model.ErrMalformedGrid) {
		t.Fatalf("expected ErrMalformedGrid, got %v", err)
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	if _, err := LoadProject(filepath.Join(t.TempDir(), "nope.cubeclad")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestProjectFileName(t *testing.T) {
	p := model.Project{ID: "a1b2c3d4", Name: "Front yard / north"}
	if got := ProjectFileName(p); got != "Front_yard__north.cubeclad" {
		t.Errorf("unexpected file name %q", got)
	}

	p.Name = "///"
	if got := ProjectFileName(p); got != "a1b2c3d4.cubeclad" {
		t.Errorf("expected ID fallback, got %q", got)
	}
}

func TestListProjects(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b", "a"} {
		p := model.NewProject(name, 3)
		if err := SaveProject(filepath.Join(dir, ProjectFileName(p)), p); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := ListProjects(dir)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 project files, got %d", len(files))
	}
	if filepath.Base(files[0]) != "a.cubeclad" {
		t.Errorf("expected sorted results, got %v", files)
	}

	missing, err := ListProjects(filepath.Join(dir, "missing"))
	if err != nil || len(missing) != 0 {
		t.Errorf("expected empty list for missing dir, got %v, %v", missing, err)
	}
}
