package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomic-data/orbital.report/internal/hydrogen"
)

func testCurves(t *testing.T) []Curve {
	t.Helper()
	grid, err := hydrogen.Uniform(0, 20, 400)
	if err != nil {
		t.Fatal(err)
	}
	states := []hydrogen.State{
		{N: 1, L: 0, Z: 1},
		{N: 2, L: 0, Z: 1},
		{N: 2, L: 1, Z: 1},
	}
	curves, err := EvaluateCurves(states, grid)
	if err != nil {
		t.Fatal(err)
	}
	return curves
}

func TestEvaluateCurves(t *testing.T) {
	curves := testCurves(t)
	if len(curves) != 3 {
		t.Fatalf("got %d curves, want 3", len(curves))
	}
	for _, c := range curves {
		if len(c.Density) != len(c.Grid) {
			t.Errorf("%s: density length %d != grid length %d", c.State, len(c.Density), len(c.Grid))
		}
	}
}

func TestEvaluateCurvesRejectsInvalidState(t *testing.T) {
	grid, err := hydrogen.Uniform(0, 10, 50)
	if err != nil {
		t.Fatal(err)
	}
	_, err = EvaluateCurves([]hydrogen.State{{N: 2, L: 2, Z: 1}}, grid)
	if err == nil {
		t.Fatal("expected domain error for l=n")
	}
	if !strings.Contains(err.Error(), "l") {
		t.Errorf("error should name the offending parameter: %v", err)
	}
}

func TestRadialPlotWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "radial_density.png")
	if err := RadialPlot(testCurves(t), out, 10, 6, ""); err != nil {
		t.Fatalf("RadialPlot: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output PNG is empty")
	}
}

func TestRadialPlotAngstromAxis(t *testing.T) {
	out := filepath.Join(t.TempDir(), "radial_density_angstrom.png")
	if err := RadialPlot(testCurves(t), out, 10, 6, "angstrom"); err != nil {
		t.Fatalf("RadialPlot: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestRadialPlotRejections(t *testing.T) {
	if err := RadialPlot(nil, "unused.png", 10, 6, ""); err == nil {
		t.Error("expected error for empty curve set")
	}
	if err := RadialPlot(testCurves(t), "unused.png", 10, 6, "furlongs"); err == nil {
		t.Error("expected error for unknown display unit")
	}
}

func TestSliceHeatmapWritesPNG(t *testing.T) {
	orb, err := hydrogen.NewOrbital(hydrogen.State{N: 2, L: 1, Z: 1})
	if err != nil {
		t.Fatal(err)
	}
	slice, err := orb.PlaneSlice(hydrogen.PlaneXZ, 12, 80)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "3d_density.png")
	if err := SliceHeatmap(slice, out, 7); err != nil {
		t.Fatalf("SliceHeatmap: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output PNG is empty")
	}
}

func TestHTMLReport(t *testing.T) {
	orb, err := hydrogen.NewOrbital(hydrogen.State{N: 1, L: 0, Z: 1})
	if err != nil {
		t.Fatal(err)
	}
	slice, err := orb.PlaneSlice(hydrogen.PlaneXY, 6, 50)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "report.html")
	if err := HTMLReport(testCurves(t), slice, out); err != nil {
		t.Fatalf("HTMLReport: %v", err)
	}
	body, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	html := string(body)
	if !strings.Contains(html, "echarts") {
		t.Error("report does not embed echarts")
	}
	if !strings.Contains(html, "1s") {
		t.Error("report missing series label")
	}
}

func TestGenerateColors(t *testing.T) {
	if got := generateColors(0); got != nil {
		t.Errorf("generateColors(0) = %v, want nil", got)
	}
	colors := generateColors(5)
	if len(colors) != 5 {
		t.Fatalf("got %d colors, want 5", len(colors))
	}
	seen := map[[3]uint32]bool{}
	for _, c := range colors {
		r, g, b, _ := c.RGBA()
		key := [3]uint32{r, g, b}
		if seen[key] {
			t.Error("palette colors are not distinct")
		}
		seen[key] = true
	}
}
