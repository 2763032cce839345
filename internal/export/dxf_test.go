package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CubeClad/internal/importer"
	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDXF_RoundTrip(t *testing.T) {
	for _, name := range model.PresetNames() {
		t.Run(name, func(t *testing.T) {
			bom := presetBOM(t, name)
			path := filepath.Join(t.TempDir(), "layout.dxf")
			require.NoError(t, ExportDXF(path, bom))

			result := importer.ImportDXF(path)
			require.Empty(t, result.Errors)
			assert.Empty(t, result.Warnings)
			assert.Equal(t, bom.Grid, result.Grid)
		})
	}
}

func TestExportDXF_PartialCladding(t *testing.T) {
	g, err := model.NewGrid(2)
	require.NoError(t, err)
	require.NoError(t, g.ToggleCube(1, 1))
	require.NoError(t, g.SetFlow(1, 1, model.West, model.East))
	require.NoError(t, g.ToggleCladding(1, 1, model.South))

	path := filepath.Join(t.TempDir(), "single.dxf")
	require.NoError(t, ExportDXF(path, NewBOM("single", g, nil, model.DefaultCatalog())))

	result := importer.ImportDXF(path)
	require.Empty(t, result.Errors)
	assert.Equal(t, g, result.Grid)
}

func TestExportDXF_ExtraTallRoundTrip(t *testing.T) {
	g, err := model.NewGrid(3)
	require.NoError(t, err)
	require.NoError(t, g.ToggleCube(1, 0))
	require.NoError(t, g.ToggleCube(1, 1))
	require.NoError(t, g.ToggleCube(2, 2))
	require.NoError(t, g.SetFlow(1, 0, model.West, model.East))
	require.NoError(t, g.SetFlow(1, 1, model.West, model.East))
	require.NoError(t, g.ToggleExtraTall(1, 1))
	require.NoError(t, g.ToggleExtraTall(2, 2))
	g.CladAllExposed()

	path := filepath.Join(t.TempDir(), "tall.dxf")
	require.NoError(t, ExportDXF(path, NewBOM("tall", g, nil, model.DefaultCatalog())))

	result := importer.ImportDXF(path)
	require.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, g, result.Grid)
}

func TestExportDXF_SingleCell(t *testing.T) {
	g, err := model.NewGrid(1)
	require.NoError(t, err)
	require.NoError(t, g.ToggleCube(0, 0))
	require.NoError(t, g.SetFlow(0, 0, model.North, model.South))
	g.CladAllExposed()

	path := filepath.Join(t.TempDir(), "one.dxf")
	require.NoError(t, ExportDXF(path, NewBOM("one", g, nil, model.DefaultCatalog())))

	result := importer.ImportDXF(path)
	require.Empty(t, result.Errors)
	assert.Equal(t, g, result.Grid)
}

func TestExportDXF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.dxf")
	require.NoError(t, ExportDXF(path, loopBOM(t)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportDXF_NoLayout(t *testing.T) {
	assert.Error(t, ExportDXF(filepath.Join(t.TempDir(), "x.dxf"), BOM{}))
}
