package model

import (
	"fmt"
	"strings"
)

// Preset is a named canonical layout that replaces the whole grid.
type Preset struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Grid        Grid   `json:"grid"`
}

// presetCube places a cube with flow on a preset grid.
type presetCube struct {
	row, col    int
	entry, exit Direction
}

// buildPreset lays the cubes out on an empty 3x3 grid and clads every exposed edge.
func buildPreset(cubes []presetCube) Grid {
	g, _ := NewGrid(DefaultGridSize)
	for _, c := range cubes {
		g.Cells[c.row][c.col] = Cell{
			HasCube: true,
			Flow:    &Connections{Entry: c.entry, Exit: c.exit},
		}
	}
	g.CladAllExposed()
	return g
}

// Presets returns fresh copies of the built-in layouts.
func Presets() []Preset {
	return []Preset{
		{
			Name:        "straight",
			Label:       "Straight (3x1)",
			Description: "Three cubes in a row, flow west to east",
			Grid: buildPreset([]presetCube{
				{1, 0, West, East},
				{1, 1, West, East},
				{1, 2, West, East},
			}),
		},
		{
			Name:        "L",
			Label:       "L-Shape",
			Description: "Two cubes west to east, turning south into a third",
			Grid: buildPreset([]presetCube{
				{1, 0, West, East},
				{1, 1, West, South},
				{2, 1, North, South},
			}),
		},
		{
			Name:        "U",
			Label:       "U-Shape",
			Description: "Five cubes down, across and back up",
			Grid: buildPreset([]presetCube{
				{1, 0, North, South},
				{2, 0, North, East},
				{2, 1, West, East},
				{2, 2, West, North},
				{1, 2, South, North},
			}),
		},
	}
}

// PresetNames returns the names of the built-in layouts.
func PresetNames() []string {
	presets := Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// PresetByName looks a built-in layout up case-insensitively.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
}
