package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singlePath(t *testing.T, g model.Grid) Path {
	t.Helper()
	paths := ValidatePaths(g)
	require.Len(t, paths, 1)
	require.True(t, paths[0].Valid, paths[0].Reason)
	return paths[0]
}

func TestClassifyShape(t *testing.T) {
	tests := []struct {
		name string
		grid model.Grid
		want Shape
	}{
		{"single", buildGrid(t, 3, cube{1, 1, w, e}), ShapeSingleCube},
		{"line", lineGrid(t), ShapeStraightLine},
		{"straight preset", presetGrid(t, "straight"), ShapeStraightLine},
		{"L preset", presetGrid(t, "L"), ShapeLShape},
		{"U preset", presetGrid(t, "U"), ShapeCanonicalU},
		{"two in a row", buildGrid(t, 3, cube{0, 0, w, e}, cube{0, 1, w, e}), ShapeGeneric},
		{"column of three", buildGrid(t, 3, cube{0, 1, n, s}, cube{1, 1, n, s}, cube{2, 1, n, s}), ShapeStraightLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyShape(tt.grid, singlePath(t, tt.grid)))
		})
	}
}

func TestClassifyShape_FiveCubesOpeningDifferentWays(t *testing.T) {
	// Two corners like a U, but the ends face opposite ways.
	g := buildGrid(t, 3,
		cube{0, 0, w, e},
		cube{0, 1, w, s},
		cube{1, 1, n, s},
		cube{2, 1, n, e},
		cube{2, 2, w, e},
	)
	assert.Equal(t, ShapeGeneric, ClassifyShape(g, singlePath(t, g)))
}

func TestClassifyShape_InvalidPath(t *testing.T) {
	g := buildGrid(t, 3, cube{row: 1, col: 1})
	paths := ValidatePaths(g)
	require.Len(t, paths, 1)
	assert.Equal(t, ShapeGeneric, ClassifyShape(g, paths[0]))
}

func TestCountPathPanels(t *testing.T) {
	tests := []struct {
		name string
		grid model.Grid
		want model.PanelCounts
	}{
		{"single cube", buildGrid(t, 3, cube{1, 1, w, e}), model.PanelCounts{Side: 2, Left: 1, Right: 1}},
		{"line", lineGrid(t), model.PanelCounts{Side: 6, Left: 1, Right: 1}},
		{"L", presetGrid(t, "L"), model.PanelCounts{Side: 5, Left: 2, Right: 1}},
		{"U", presetGrid(t, "U"), model.PanelCounts{Side: 8, Left: 2, Right: 2}},
		{"two in a row", buildGrid(t, 3, cube{0, 0, w, e}, cube{0, 1, w, e}), model.PanelCounts{Side: 4, Left: 1, Right: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountPathPanels(tt.grid, singlePath(t, tt.grid))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CountPathPanels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCountPathPanels_ClockwiseCornerOutsideIsRight(t *testing.T) {
	g := clockwiseLGrid(t)
	p := singlePath(t, g)
	require.Equal(t, TurnClockwise, p.Cubes[1].Turn)

	got := CountPathPanels(g, p)

	// (0,0): N entry left, E and W side. (1,0): outside S right, W side.
	// (1,1): E exit right, N and S side.
	want := model.PanelCounts{Side: 5, Left: 1, Right: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CountPathPanels mismatch (-want +got):\n%s", diff)
	}
}

func TestCountPathPanels_SumEqualsExposedEdges(t *testing.T) {
	g := buildGrid(t, 4,
		cube{0, 0, w, e},
		cube{0, 1, w, e},
		cube{0, 2, w, s},
		cube{1, 2, n, s},
		cube{2, 2, n, w},
		cube{2, 1, e, w},
	)
	p := singlePath(t, g)
	require.Equal(t, ShapeGeneric, ClassifyShape(g, p))

	edges := 0
	for _, c := range p.Cubes {
		exp, err := ExposedEdges(g, c.Row, c.Col)
		require.NoError(t, err)
		edges += exp.Count()
	}
	assert.Equal(t, edges, CountPathPanels(g, p).Total())
}

func TestCountPathPanels_InvalidPathCountsNothing(t *testing.T) {
	assert.Equal(t, model.PanelCounts{}, CountPathPanels(lineGrid(t), Path{Valid: false}))
}

func TestClassifyShape_MixedHeightsAreGeneric(t *testing.T) {
	g := makeTall(t, lineGrid(t), [2]int{1, 1})
	assert.Equal(t, ShapeGeneric, ClassifyShape(g, singlePath(t, g)))

	all := makeTall(t, lineGrid(t), [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
	assert.Equal(t, ShapeStraightLine, ClassifyShape(all, singlePath(t, all)))
}

func TestCountPathPanelsByHeight(t *testing.T) {
	tests := []struct {
		name        string
		grid        model.Grid
		wantRegular model.PanelCounts
		wantTall    model.PanelCounts
	}{
		{"all regular", presetGrid(t, "U"), model.PanelCounts{Side: 8, Left: 2, Right: 2}, model.PanelCounts{}},
		{"tall single cube", makeTall(t, buildGrid(t, 3, cube{1, 1, w, e}), [2]int{1, 1}),
			model.PanelCounts{}, model.PanelCounts{Side: 2, Left: 1, Right: 1}},
		// (1,0): W left, N and S side. (1,1): N and S side. (1,2): E right, N and S side.
		{"tall middle of a line", makeTall(t, lineGrid(t), [2]int{1, 1}),
			model.PanelCounts{Side: 4, Left: 1, Right: 1}, model.PanelCounts{Side: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := singlePath(t, tt.grid)
			regular, tall := CountPathPanelsByHeight(tt.grid, p)
			if diff := cmp.Diff(tt.wantRegular, regular); diff != "" {
				t.Errorf("regular mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantTall, tall); diff != "" {
				t.Errorf("extra tall mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, CountPathPanels(tt.grid, p), regular.Add(tall))
		})
	}
}

func TestCountPanels_AnyInvalidPathZeroesTotal(t *testing.T) {
	g := buildGrid(t, 3,
		cube{0, 0, w, e},
		cube{2, 2, w, e},
	)
	paths := ValidatePaths(g)
	require.Len(t, paths, 2)
	assert.Equal(t, model.PanelCounts{Side: 4, Left: 2, Right: 2}, CountPanels(g, paths))

	paths[1].Valid = false
	assert.Equal(t, model.PanelCounts{}, CountPanels(g, paths))
}
