package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.GridSize != DefaultGridSize {
		t.Errorf("expected GridSize=%d, got %d", DefaultGridSize, cfg.GridSize)
	}
	if cfg.Currency != DefaultCatalog().Currency {
		t.Errorf("expected currency to match the default catalog, got %s", cfg.Currency)
	}
	if !cfg.Color {
		t.Error("expected color output by default")
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should not be nil")
	}
}

func TestEffectiveGridSize(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{0, DefaultGridSize},
		{-2, DefaultGridSize},
		{1, 1},
		{5, 5},
		{MaxGridSize, MaxGridSize},
		{MaxGridSize + 1, DefaultGridSize},
	}
	for _, tt := range tests {
		cfg := AppConfig{GridSize: tt.size}
		if got := cfg.EffectiveGridSize(); got != tt.want {
			t.Errorf("EffectiveGridSize(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestAddRecentProject(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentProject("a", 3)
	cfg.AddRecentProject("b", 3)
	cfg.AddRecentProject("c", 3)
	cfg.AddRecentProject("a", 3)

	want := []string{"a", "c", "b"}
	if len(cfg.RecentProjects) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.RecentProjects)
	}
	for i := range want {
		if cfg.RecentProjects[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], cfg.RecentProjects[i])
		}
	}

	cfg.AddRecentProject("d", 3)
	if len(cfg.RecentProjects) != 3 || cfg.RecentProjects[2] != "c" {
		t.Errorf("expected oldest entry dropped, got %v", cfg.RecentProjects)
	}
}
