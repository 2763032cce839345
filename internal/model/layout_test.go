package model

import (
	"errors"
	"testing"
)

func TestParseLayoutToken(t *testing.T) {
	tests := []struct {
		in    string
		cube  bool
		entry Direction
		exit  Direction
		clad  bool
	}{
		{"", false, NoDirection, NoDirection, false},
		{".", false, NoDirection, NoDirection, false},
		{" 0 ", false, NoDirection, NoDirection, false},
		{"x", true, NoDirection, NoDirection, false},
		{"1*", true, NoDirection, NoDirection, true},
		{"WE", true, West, East, false},
		{"w>s", true, West, South, false},
		{"N-S*", true, North, South, true},
		{"left>bottom", true, West, South, false},
		{"north > east", true, North, East, false},
	}
	for _, tt := range tests {
		got, err := ParseLayoutToken(tt.in)
		if err != nil {
			t.Errorf("ParseLayoutToken(%q) error: %v", tt.in, err)
			continue
		}
		if got.HasCube != tt.cube || got.Clad != tt.clad {
			t.Errorf("ParseLayoutToken(%q) = %+v", tt.in, got)
		}
		if tt.entry == NoDirection {
			if got.Flow != nil {
				t.Errorf("ParseLayoutToken(%q): expected no flow, got %+v", tt.in, got.Flow)
			}
			continue
		}
		if got.Flow == nil || got.Flow.Entry != tt.entry || got.Flow.Exit != tt.exit {
			t.Errorf("ParseLayoutToken(%q): expected %s>%s, got %+v", tt.in, tt.entry, tt.exit, got.Flow)
		}
	}
}

func TestParseLayoutTokenExtraTall(t *testing.T) {
	for _, in := range []string{"X+", "W>E+", "W>E+*", "W>E*+", " n-s + "} {
		got, err := ParseLayoutToken(in)
		if err != nil {
			t.Errorf("ParseLayoutToken(%q) error: %v", in, err)
			continue
		}
		if !got.HasCube || !got.ExtraTall {
			t.Errorf("ParseLayoutToken(%q) = %+v, expected an extra-tall cube", in, got)
		}
	}
	if got, _ := ParseLayoutToken("W>E*"); got.ExtraTall {
		t.Error("regular token parsed as extra tall")
	}
	for _, in := range []string{".+", "+", "X++"} {
		if _, err := ParseLayoutToken(in); err == nil {
			t.Errorf("ParseLayoutToken(%q): expected error", in)
		}
	}

	cell := Cell{HasCube: true, ExtraTall: true, Cladding: NewEdgeSet(North), Flow: &Connections{Entry: West, Exit: East}}
	if got := FormatLayoutToken(cell); got != "W>E+*" {
		t.Errorf("expected W>E+*, got %q", got)
	}
	if got := FormatLayoutToken(Cell{HasCube: true, ExtraTall: true}); got != "X+" {
		t.Errorf("expected X+, got %q", got)
	}
}

func TestParseLayoutTokenErrors(t *testing.T) {
	for _, in := range []string{"Q", "WW", "W>W", "up>down", ".*", "XYZ"} {
		if _, err := ParseLayoutToken(in); err == nil {
			t.Errorf("ParseLayoutToken(%q): expected error", in)
		}
	}
	if _, err := ParseLayoutToken("E>E"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection for entry == exit, got %v", err)
	}
}

func TestFormatLayoutTokenRoundTrip(t *testing.T) {
	p, err := PresetByName("L")
	if err != nil {
		t.Fatal(err)
	}
	rows := p.Grid.LayoutRows()

	want := [][]string{
		{".", ".", "."},
		{"W>E*", "W>S*", "."},
		{".", "N>S*", "."},
	}
	for r := range want {
		for c := range want[r] {
			if rows[r][c] != want[r][c] {
				t.Errorf("(%d,%d): expected %q, got %q", r, c, want[r][c], rows[r][c])
			}
			tok, err := ParseLayoutToken(rows[r][c])
			if err != nil {
				t.Errorf("(%d,%d): %v", r, c, err)
				continue
			}
			if tok.HasCube != p.Grid.Cells[r][c].HasCube {
				t.Errorf("(%d,%d): cube presence lost", r, c)
			}
		}
	}

	if FormatLayoutToken(Cell{HasCube: true}) != "X" {
		t.Error("cube without flow should format as X")
	}
}
