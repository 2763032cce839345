package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/CubeClad/internal/model"
	"github.com/piwi3910/CubeClad/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planJSON mirrors the parts of the plan --json output the tests inspect.
type planJSON struct {
	Title  string     `json:"title"`
	Layout [][]string `json:"layout"`
	Plan   struct {
		Shape        string             `json:"shape"`
		Valid        bool               `json:"valid"`
		Reason       string             `json:"reason"`
		Requirements model.Requirements `json:"requirements"`
	} `json:"plan"`
	Estimate struct {
		Subtotal float64 `json:"subtotal"`
		Currency string  `json:"currency"`
	} `json:"estimate"`
}

func decodePlan(t *testing.T, out string) planJSON {
	t.Helper()
	var report planJSON
	require.NoError(t, json.Unmarshal([]byte(out), &report), out)
	return report
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPlanCommand_Preset(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "plan", "--preset", "U")
	require.NoError(t, err)

	assert.Contains(t, out, "U-Shape (3x3 grid, 5 cubes)")
	assert.Contains(t, out, "Path 1: 5 cubes from (1,0), 2 corners")
	assert.Contains(t, out, "U-shape")
	assert.Contains(t, out, model.KindFourPack.Label())
	assert.Contains(t, out, "44592702292276")
}

func TestPlanCommand_JSON(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "plan", "--preset", "L", "--json")
	require.NoError(t, err)

	report := decodePlan(t, out)
	assert.Equal(t, "L-Shape", report.Title)
	assert.Equal(t, "L-shape", report.Plan.Shape)
	assert.True(t, report.Plan.Valid)
	assert.Equal(t, model.Requirements{
		FourPackRegular:   1,
		TwoPackRegular:    2,
		LeftPanels:        1,
		StraightCouplings: 1,
		CornerConnectors:  1,
	}, report.Plan.Requirements)
	assert.Equal(t, []string{"W>E*", "W>S*", "."}, report.Layout[1])
	assert.Equal(t, "AUD", report.Estimate.Currency)
}

func TestPlanCommand_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := runCLI(t, t.TempDir(), "plan", "--preset", "straight", "-v")
	require.NoError(t, err)

	assert.Contains(t, errOut, "cubeclad: 1 path(s), shape straight line")
	assert.NotContains(t, out, "path(s)")
}

func TestPlanCommand_ImportCSV(t *testing.T) {
	home := t.TempDir()
	path := writeFile(t, home, "garden.csv", "WE*,WE*\n.,.\n")

	out, _, err := runCLI(t, home, "plan", "--import", path, "--json")
	require.NoError(t, err)

	report := decodePlan(t, out)
	assert.Equal(t, "garden", report.Title)
	assert.True(t, report.Plan.Valid)
	assert.Equal(t, 1, report.Plan.Requirements.StraightCouplings)
}

func TestPlanCommand_ExtraTallCubes(t *testing.T) {
	home := t.TempDir()
	path := writeFile(t, home, "tall.csv", "W>E+*,W>E+*\n.,.\n")

	out, _, err := runCLI(t, home, "plan", "--import", path, "--json")
	require.NoError(t, err)
	assert.Equal(t, model.Requirements{
		FourPackExtraTall: 1,
		TwoPackExtraTall:  1,
		StraightCouplings: 1,
	}, decodePlan(t, out).Plan.Requirements)

	out, _, err = runCLI(t, home, "plan", "--import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "W>E+*")
	assert.Contains(t, out, "Extra tall")
	assert.Contains(t, out, model.KindFourPackExtraTall.Label())
	assert.Contains(t, out, "44592702390580")
}

func TestPlanCommand_CornerHands(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "plan", "--preset", "L")
	require.NoError(t, err)
	assert.Contains(t, out, "1 left, 0 right")
}

func TestPlanCommand_ImportErrors(t *testing.T) {
	home := t.TempDir()
	path := writeFile(t, home, "bad.csv", "WE,sideways\n")

	_, _, err := runCLI(t, home, "plan", "--import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Line 1, column 2")
}

func TestPlanCommand_Unbuildable(t *testing.T) {
	home := t.TempDir()
	path := writeFile(t, home, "ring.csv", "S>E,W>S\nE>N,N>W\n")

	out, _, err := runCLI(t, home, "plan", "--import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "flow loops back")
	assert.Contains(t, out, "not buildable")

	out, _, err = runCLI(t, home, "plan", "--import", path, "--json")
	require.NoError(t, err)
	report := decodePlan(t, out)
	assert.False(t, report.Plan.Valid)
	assert.True(t, report.Plan.Requirements.IsZero())
}

func TestPlanCommand_NoLayout(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "choose a layout")
}

func TestPlanCommand_ConflictingLayouts(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "plan", "--preset", "U", "--import", "x.csv")
	assert.Error(t, err)
}

func TestPlanCommand_UnknownPreset(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "plan", "--preset", "Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestPresetsCommand(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "presets")
	require.NoError(t, err)
	for _, name := range model.PresetNames() {
		assert.Contains(t, out, name+":")
	}
}

func TestCompareCommand_JSON(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "compare", "--json")
	require.NoError(t, err)

	var rows []comparisonRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "straight", rows[0].Name)
	assert.Equal(t, "straight line", rows[0].Shape)
	assert.Equal(t, 5, rows[2].Cubes)
	assert.Equal(t, "buildable", rows[2].Status)
}

func TestExportCommand_AllFormats(t *testing.T) {
	home := t.TempDir()
	for _, format := range []string{"pdf", "xlsx", "dxf", "cards"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(home, "out", "u."+format)
			out, _, err := runCLI(t, home, "export", format, "--preset", "U", "-o", path)
			require.NoError(t, err)
			assert.Contains(t, out, "Exported "+format)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}
}

func TestExportCommand_DefaultFileName(t *testing.T) {
	home := t.TempDir()
	exportDir := filepath.Join(home, "exports")
	cfg := model.DefaultAppConfig()
	cfg.DefaultExportDir = exportDir
	require.NoError(t, project.SaveAppConfig(filepath.Join(home, ".cubeclad", "config.json"), cfg))

	_, _, err := runCLI(t, home, "export", "dxf", "--preset", "straight")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(exportDir, "Straight_3x1.dxf"))
	assert.NoError(t, err)
}

func TestExportCommand_InvalidFormat(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "export", "svg", "--preset", "U")
	assert.Error(t, err)
}

func TestProjectCommands(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, "projects")

	out, _, err := runCLI(t, home, "project", "new", "Front Bed", "--preset", "L", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `Created project "Front Bed"`)

	path := filepath.Join(dir, "Front_Bed"+project.ProjectExt)
	p, err := project.LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Grid.CubeCount())

	cfg, err := project.LoadAppConfig(filepath.Join(home, ".cubeclad", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{path}, cfg.RecentProjects)

	out, _, err = runCLI(t, home, "project", "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Front Bed")
	assert.Contains(t, out, "W>S*")

	out, _, err = runCLI(t, home, "project", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, _, err = runCLI(t, home, "plan", "--file", path, "--json")
	require.NoError(t, err)
	assert.Equal(t, 1, decodePlan(t, out).Plan.Requirements.LeftPanels)
}

func TestProjectNew_EmptyGrid(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, "projects")

	_, _, err := runCLI(t, home, "project", "new", "blank", "--size", "5", "--dir", dir)
	require.NoError(t, err)

	p, err := project.LoadProject(filepath.Join(dir, "blank"+project.ProjectExt))
	require.NoError(t, err)
	assert.Equal(t, 5, p.Grid.Size())
	assert.Zero(t, p.Grid.CubeCount())
}

func TestProjectList_Empty(t *testing.T) {
	home := t.TempDir()
	out, _, err := runCLI(t, home, "project", "list", "--dir", filepath.Join(home, "none"))
	require.NoError(t, err)
	assert.Contains(t, out, "No projects found")
}

func TestTemplateCommands(t *testing.T) {
	home := t.TempDir()

	out, _, err := runCLI(t, home, "template", "save", "corner", "--preset", "L", "-d", "by the shed")
	require.NoError(t, err)
	assert.Contains(t, out, `Saved template "corner"`)

	out, _, err = runCLI(t, home, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "by the shed")

	out, _, err = runCLI(t, home, "plan", "--template", "corner", "--json")
	require.NoError(t, err)
	assert.Equal(t, "L-shape", decodePlan(t, out).Plan.Shape)

	out, _, err = runCLI(t, home, "compare", "--templates", "--json")
	require.NoError(t, err)
	var rows []comparisonRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "corner", rows[3].Name)

	_, _, err = runCLI(t, home, "template", "rm", "corner")
	require.NoError(t, err)
	_, _, err = runCLI(t, home, "plan", "--template", "corner")
	require.Error(t, err)
}

func TestCatalogCommands(t *testing.T) {
	home := t.TempDir()

	out, _, err := runCLI(t, home, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, string(model.KindCornerConnector))

	_, _, err = runCLI(t, home, "catalog", "price", string(model.KindFourPack), "120")
	require.NoError(t, err)
	_, _, err = runCLI(t, home, "catalog", "price", string(model.KindTwoPack), "65.50")
	require.NoError(t, err)

	out, _, err = runCLI(t, home, "plan", "--preset", "straight", "--json")
	require.NoError(t, err)
	assert.InDelta(t, 120+2*65.5, decodePlan(t, out).Estimate.Subtotal, 1e-9)

	_, _, err = runCLI(t, home, "catalog", "price", "gizmo", "1")
	assert.Error(t, err)
	_, _, err = runCLI(t, home, "catalog", "price", string(model.KindTwoPack), "-3")
	assert.Error(t, err)
}

func TestCatalogImport(t *testing.T) {
	home := t.TempDir()
	extra := model.Catalog{Currency: "AUD", SKUs: []model.SKU{
		model.NewSKU("drip_kit", "Drip Kit", "999", 12),
	}}
	path := filepath.Join(home, "extra.json")
	require.NoError(t, project.SaveCatalog(path, extra))

	out, _, err := runCLI(t, home, "catalog", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 SKU")
}

func TestBackupCommands(t *testing.T) {
	home := t.TempDir()
	_, _, err := runCLI(t, home, "template", "save", "ushape", "--preset", "U")
	require.NoError(t, err)

	backup := filepath.Join(home, "backup.json")
	_, _, err = runCLI(t, home, "backup", "export", backup)
	require.NoError(t, err)

	restored := t.TempDir()
	out, _, err := runCLI(t, restored, "backup", "import", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "1 template")

	out, _, err = runCLI(t, restored, "template", "list")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "ushape"))
}
