// Command slices renders plane sections of the full orbital density
// |psi_nl0|^2 as heatmap PNGs, one per requested plane.
//
// Usage:
//
//	slices -state 2p -planes xy,xz,yz -extent 12 -out-dir plots
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomic-data/orbital.report/internal/config"
	"github.com/atomic-data/orbital.report/internal/hydrogen"
	"github.com/atomic-data/orbital.report/internal/render"
	"github.com/atomic-data/orbital.report/internal/version"
)

var (
	stateFlag   = flag.String("state", "1s", "spectroscopic label of the orbital")
	zFlag       = flag.Float64("z", 0, "effective nuclear charge (0 = config default)")
	planesFlag  = flag.String("planes", "xz", "comma-separated planes to section: xy, xz, yz")
	extentFlag  = flag.Float64("extent", 0, "half-width of the section in a0 (0 = auto)")
	pointsFlag  = flag.Int("points", 0, "section points per axis (0 = config default)")
	configFlag  = flag.String("config", "", "optional JSON config file")
	outDirFlag  = flag.String("out-dir", ".", "directory for output PNGs")
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

	state, err := hydrogen.ParseState(*stateFlag, z)
	if err != nil {
		log.Fatalf("parse state: %v", err)
	}

	orb, err := hydrogen.NewOrbital(state)
	if err != nil {
		log.Fatalf("orbital: %v", err)
	}

	extent := *extentFlag
	if extent == 0 {
		// Half of the radial default spans the visible lobes of the slice.
		extent = hydrogen.DefaultMax(state.N, state.Z, cfg.GetRMaxFactor()) / 2
	}

	points := *pointsFlag
	if points == 0 {
		points = cfg.GetSlicePoints()
	}

	if err := os.MkdirAll(*outDirFlag, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	var lastSlice *hydrogen.Slice
	for _, name := range strings.Split(*planesFlag, ",") {
		plane, err := hydrogen.ParsePlane(name)
		if err != nil {
			log.Fatalf("parse plane: %v", err)
		}

		slice, err := orb.PlaneSlice(plane, extent, points)
		if err != nil {
			log.Fatalf("slice %s: %v", plane, err)
		}
		lastSlice = slice

		file := filepath.Join(*outDirFlag, fmt.Sprintf("3d_density_%s_%s.png", state.Label(), plane))
		if err := render.SliceHeatmap(slice, file, cfg.GetSliceSizeInches()); err != nil {
			log.Fatalf("render %s: %v", plane, err)
		}
		log.Printf("wrote %s (%dx%d points, extent %.1f a0)", file, points, points, extent)
	}

	if *htmlFlag != "" && lastSlice != nil {
		grid, err := hydrogen.Uniform(0, hydrogen.DefaultMax(state.N, state.Z, cfg.GetRMaxFactor()), cfg.GetGridPoints())
		if err != nil {
			log.Fatalf("build grid: %v", err)
		}
		curves, err := render.EvaluateCurves([]hydrogen.State{state}, grid)
		if err != nil {
			log.Fatalf("evaluate: %v", err)
		}
		if err := render.HTMLReport(curves, lastSlice, *htmlFlag); err != nil {
			log.Fatalf("html report: %v", err)
		}
		log.Printf("wrote %s", *htmlFlag)
	}
}
