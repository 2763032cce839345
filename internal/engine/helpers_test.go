package engine

import (
	"testing"

	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/stretchr/testify/require"
)

const (
	n = model.North
	e = model.East
	s = model.South
	w = model.West
)

// cube places a cube in a test grid. A zero entry leaves the cube without flow.
type cube struct {
	row, col    int
	entry, exit model.Direction
}

func buildGrid(t *testing.T, size int, cubes ...cube) model.Grid {
	t.Helper()
	g, err := model.NewGrid(size)
	require.NoError(t, err)
	for _, c := range cubes {
		require.NoError(t, g.ToggleCube(c.row, c.col))
	}
	for _, c := range cubes {
		if c.entry != model.NoDirection {
			require.NoError(t, g.SetFlow(c.row, c.col, c.entry, c.exit))
		}
	}
	g.CladAllExposed()
	return g
}

func presetGrid(t *testing.T, name string) model.Grid {
	t.Helper()
	p, err := model.PresetByName(name)
	require.NoError(t, err)
	return p.Grid
}

// clockwiseLGrid is an L whose flow turns clockwise at the corner.
func clockwiseLGrid(t *testing.T) model.Grid {
	return buildGrid(t, 3,
		cube{0, 0, n, s},
		cube{1, 0, n, e},
		cube{1, 1, w, e},
	)
}

// makeTall marks the cubes at the given coordinates extra tall.
func makeTall(t *testing.T, g model.Grid, cells ...[2]int) model.Grid {
	t.Helper()
	for _, rc := range cells {
		require.NoError(t, g.ToggleExtraTall(rc[0], rc[1]))
	}
	return g
}

func lineGrid(t *testing.T) model.Grid {
	return buildGrid(t, 3,
		cube{1, 0, w, e},
		cube{1, 1, w, e},
		cube{1, 2, w, e},
	)
}
