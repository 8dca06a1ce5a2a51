package render

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/atomic-data/orbital.report/internal/hydrogen"
)

// viridisRamp matches the colormap used across the PNG figures.
var viridisRamp = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// maxReportPoints caps per-series payload size; larger inputs are strided.
const maxReportPoints = 600

// HTMLReport writes a static HTML page with a line chart of the radial
// densities and, when a slice is given, a scatter section of |psi|^2.
func HTMLReport(curves []Curve, slice *hydrogen.Slice, file string) error {
	if len(curves) == 0 {
		return fmt.Errorf("no curves to report")
	}

	page := components.NewPage()
	page.AddCharts(densityLineChart(curves))
	if slice != nil {
		page.AddCharts(sliceScatterChart(slice))
	}

	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func densityLineChart(curves []Curve) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Radial probability density", Theme: "dark", Width: "1000px", Height: "560px"}),
		charts.WithTitleOpts(opts.Title{Title: "Radial probability density", Subtitle: fmt.Sprintf("states=%d", len(curves))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "r (a0)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "P(r)", NameLocation: "middle", NameGap: 40}),
	)

	grid := curves[0].Grid
	stride := 1
	if len(grid) > maxReportPoints {
		stride = int(math.Ceil(float64(len(grid)) / float64(maxReportPoints)))
	}

	x := make([]string, 0, len(grid)/stride+1)
	for i := 0; i < len(grid); i += stride {
		x = append(x, fmt.Sprintf("%.3g", grid[i]))
	}
	line.SetXAxis(x)

	for _, c := range curves {
		data := make([]opts.LineData, 0, len(c.Density)/stride+1)
		for i := 0; i < len(c.Density); i += stride {
			data = append(data, opts.LineData{Value: c.Density[i]})
		}
		line.AddSeries(c.State.String(), data, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}
	return line
}

func sliceScatterChart(slice *hydrogen.Slice) *charts.Scatter {
	n := len(slice.Coords)
	stride := 1
	if n*n > 8000 {
		stride = int(math.Ceil(math.Sqrt(float64(n*n) / 8000)))
	}

	data := make([]opts.ScatterData, 0, (n/stride+1)*(n/stride+1))
	for i := 0; i < n; i += stride {
		for j := 0; j < n; j += stride {
			data = append(data, opts.ScatterData{Value: []interface{}{slice.Coords[j], slice.Coords[i], slice.Values[i][j]}})
		}
	}

	pad := slice.Coords[n-1] * 1.05

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Orbital density section", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("|psi|^2 for %s", slice.State), Subtitle: fmt.Sprintf("%s section, points=%d stride=%d", slice.Plane, len(data), stride)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "a0", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "a0", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridisRamp},
		}),
	)
	scatter.AddSeries("density", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	return scatter
}
