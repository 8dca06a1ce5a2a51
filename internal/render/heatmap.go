package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/atomic-data/orbital.report/internal/hydrogen"
)

// sliceGrid adapts a hydrogen.Slice to plotter.GridXYZ.
type sliceGrid struct {
	slice *hydrogen.Slice
}

func (g sliceGrid) Dims() (c, r int) {
	return len(g.slice.Coords), len(g.slice.Coords)
}

func (g sliceGrid) Z(c, r int) float64 { return g.slice.Values[r][c] }
func (g sliceGrid) X(c int) float64    { return g.slice.Coords[c] }
func (g sliceGrid) Y(r int) float64    { return g.slice.Coords[r] }

// axisLabels returns the in-plane axis names for a slice.
func axisLabels(p hydrogen.Plane) (x, y string) {
	switch p {
	case hydrogen.PlaneXY:
		return "x (a0)", "y (a0)"
	case hydrogen.PlaneXZ:
		return "x (a0)", "z (a0)"
	default:
		return "y (a0)", "z (a0)"
	}
}

// SliceHeatmap writes a PNG heatmap of a plane slice through |psi|^2.
// The slice is already peak-normalized, so the color range is [0, 1].
func SliceHeatmap(slice *hydrogen.Slice, file string, size float64) error {
	if slice == nil || len(slice.Values) == 0 {
		return fmt.Errorf("empty slice")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("|psi|^2 for %s, %s section", slice.State, slice.Plane)
	p.X.Label.Text, p.Y.Label.Text = axisLabels(slice.Plane)

	pal := moreland.ExtendedBlackBody().Palette(255)
	hm := plotter.NewHeatMap(sliceGrid{slice: slice}, pal)
	p.Add(hm)

	if err := p.Save(vg.Length(size)*vg.Inch, vg.Length(size)*vg.Inch, file); err != nil {
		return fmt.Errorf("save slice heatmap: %w", err)
	}
	return nil
}
