// Command radial plots radial probability densities P_nl(r) for a set of
// hydrogen-like states.
//
// Usage:
//
//	radial -states 1s,2s,2p -out radial_density.png
//	radial -states 3s,3p,3d -z 2 -rmax 30 -html report.html
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atomic-data/orbital.report/internal/config"
	"github.com/atomic-data/orbital.report/internal/hydrogen"
	"github.com/atomic-data/orbital.report/internal/render"
	"github.com/atomic-data/orbital.report/internal/units"
	"github.com/atomic-data/orbital.report/internal/version"
)

var (
	statesFlag  = flag.String("states", "1s,2s,2p", "comma-separated spectroscopic labels to plot")
	zFlag       = flag.Float64("z", 0, "effective nuclear charge (0 = config default)")
	rmaxFlag    = flag.Float64("rmax", 0, "grid extent in a0 (0 = auto from the highest shell)")
	pointsFlag  = flag.Int("points", 0, "radial grid points (0 = config default)")
	logGrid     = flag.Bool("log-grid", false, "use logarithmic radial spacing")
	unitsFlag   = flag.String("units", "au", "r-axis display units: "+units.GetValidUnitsString())
	configFlag  = flag.String("config", "", "optional JSON config file")
	outFlag     = flag.String("out", "radial_density.png", "output PNG file")
	htmlFlag    = flag.String("html", "", "also write an HTML chart report to this file")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}

	cfg := config.EmptyConfig()
	if *configFlag != "" {
		var err error
		cfg, err = config.LoadConfig(*configFlag)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	z := *zFlag
	if z == 0 {
		z = cfg.GetDefaultZ()
	}

	states, err := hydrogen.ParseStates(*statesFlag, z)
	if err != nil {
		log.Fatalf("parse states: %v", err)
	}

	rmax := *rmaxFlag
	if rmax == 0 {
		rmax = autoRMax(states, cfg.GetRMaxFactor())
	}

	points := *pointsFlag
	if points == 0 {
		points = cfg.GetGridPoints()
	}

	var grid hydrogen.Grid
	if *logGrid {
		grid, err = hydrogen.Logarithmic(rmax/1e4, rmax, points)
	} else {
		grid, err = hydrogen.Uniform(0, rmax, points)
	}
	if err != nil {
		log.Fatalf("build grid: %v", err)
	}

	curves, err := render.EvaluateCurves(states, grid)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	if err := render.RadialPlot(curves, *outFlag, cfg.GetPlotWidthInches(), cfg.GetPlotHeightInches(), *unitsFlag); err != nil {
		log.Fatalf("plot: %v", err)
	}
	log.Printf("wrote %s (%d states, %d grid points, rmax=%.1f a0)", *outFlag, len(states), points, rmax)

	if *htmlFlag != "" {
		if err := render.HTMLReport(curves, nil, *htmlFlag); err != nil {
			log.Fatalf("html report: %v", err)
		}
		log.Printf("wrote %s", *htmlFlag)
	}
}

// autoRMax picks a plot range wide enough for the most diffuse state.
func autoRMax(states []hydrogen.State, factor float64) float64 {
	var rmax float64
	for _, s := range states {
		if m := hydrogen.DefaultMax(s.N, s.Z, factor); m > rmax {
			rmax = m
		}
	}
	return rmax
}
