package model

import (
	"strings"
	"testing"
)

func TestPresetsAreValid(t *testing.T) {
	for _, p := range Presets() {
		if err := p.Grid.Validate(); err != nil {
			t.Errorf("preset %s is malformed: %v", p.Name, err)
		}
		if p.Grid.Size() != DefaultGridSize {
			t.Errorf("preset %s: expected %dx%d grid", p.Name, DefaultGridSize, DefaultGridSize)
		}
		for r, row := range p.Grid.Cells {
			for c, cell := range row {
				if !cell.HasCube {
					continue
				}
				if cell.Flow == nil {
					t.Errorf("preset %s: cube (%d,%d) has no flow", p.Name, r, c)
				}
				for _, d := range AllDirections {
					if p.Grid.IsExposed(r, c, d) != cell.Cladding.Has(d) {
						t.Errorf("preset %s: cube (%d,%d) edge %s cladding mismatch", p.Name, r, c, d)
					}
				}
			}
		}
	}
}

func TestPresetCubeCounts(t *testing.T) {
	want := map[string]int{"straight": 3, "L": 3, "U": 5}
	for _, p := range Presets() {
		if got := p.Grid.CubeCount(); got != want[p.Name] {
			t.Errorf("preset %s: expected %d cubes, got %d", p.Name, want[p.Name], got)
		}
	}
}

func TestPresetsReturnFreshCopies(t *testing.T) {
	a := Presets()
	a[0].Grid.Cells[1][0].HasCube = false

	b := Presets()
	if !b[0].Grid.Cells[1][0].HasCube {
		t.Error("modifying a returned preset should not affect later calls")
	}
}

func TestPresetByName(t *testing.T) {
	p, err := PresetByName("u")
	if err != nil {
		t.Fatalf("expected case-insensitive lookup: %v", err)
	}
	if p.Name != "U" {
		t.Errorf("expected U, got %s", p.Name)
	}

	_, err = PresetByName("zigzag")
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), "straight, L, U") {
		t.Errorf("error should list available presets: %v", err)
	}
}
