// Package render turns evaluated densities into figures: PNG line plots and
// heatmaps via gonum/plot, and a static HTML report via go-echarts.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/atomic-data/orbital.report/internal/hydrogen"
	"github.com/atomic-data/orbital.report/internal/units"
)

// Curve pairs one state's density with the grid it was evaluated on.
type Curve struct {
	State   hydrogen.State
	Grid    hydrogen.Grid
	Density []float64
}

// EvaluateCurves runs the evaluator for each state over the grid.
func EvaluateCurves(states []hydrogen.State, grid hydrogen.Grid) ([]Curve, error) {
	curves := make([]Curve, 0, len(states))
	for _, s := range states {
		density, err := hydrogen.RadialDensity(s, grid)
		if err != nil {
			return nil, fmt.Errorf("state %s: %w", s, err)
		}
		curves = append(curves, Curve{State: s, Grid: grid, Density: density})
	}
	return curves, nil
}

// RadialPlot writes a PNG line plot of the radial probability densities,
// one curve per state with spectroscopic legend labels. The displayUnit
// only rescales the r axis; densities stay in atomic units.
func RadialPlot(curves []Curve, file string, width, height float64, displayUnit string) error {
	if len(curves) == 0 {
		return fmt.Errorf("no curves to plot")
	}
	if displayUnit == "" {
		displayUnit = units.AU
	}
	if !units.IsValid(displayUnit) {
		return fmt.Errorf("invalid display unit %q: valid units are %s", displayUnit, units.GetValidUnitsString())
	}

	p := plot.New()
	p.Title.Text = "Radial probability density"
	p.X.Label.Text = units.AxisLabel(displayUnit)
	p.Y.Label.Text = "P(r)"

	colors := generateColors(len(curves))

	for i, c := range curves {
		if len(c.Grid) != len(c.Density) {
			return fmt.Errorf("curve %s: grid and density lengths differ (%d vs %d)", c.State, len(c.Grid), len(c.Density))
		}
		pts := make(plotter.XYs, len(c.Grid))
		for j, r := range c.Grid {
			pts[j] = plotter.XY{X: units.ConvertLength(r, displayUnit), Y: c.Density[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("curve %s: %w", c.State, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(c.State.String(), line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	p.Add(plotter.NewGrid())

	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, file); err != nil {
		return fmt.Errorf("save radial plot: %w", err)
	}
	return nil
}

// generateColors creates a palette of distinct colors for the density curves.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.45)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
