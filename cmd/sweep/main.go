// Command sweep evaluates every (n, l) orbital up to a maximum shell and
// records per-orbital statistics (outer density peak, <r>, norm check,
// radial node count) to sqlite and optionally CSV.
//
// Usage:
//
//	sweep -n-max 10 -db orbitals.db -migrations migrations
//	sweep -n-max 5 -z 2 -csv orbitals.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/atomic-data/orbital.report/internal/config"
	"github.com/atomic-data/orbital.report/internal/hydrogen"
	"github.com/atomic-data/orbital.report/internal/orbitaldb"
	"github.com/atomic-data/orbital.report/internal/version"
)

var (
	versionFlag    = flag.Bool("version", false, "print version and exit")
	nMaxFlag       = flag.Int("n-max", 5, "sweep shells 1..n-max")
	zFlag          = flag.Float64("z", 0, "effective nuclear charge (0 = config default)")
	pointsFlag     = flag.Int("points", 0, "radial grid points per orbital (0 = config default)")
	configFlag     = flag.String("config", "", "optional JSON config file")
	dbFlag         = flag.String("db", "", "sqlite database to record results in")
	migrationsFlag = flag.String("migrations", "migrations", "path to the migrations directory")
	csvFlag        = flag.String("csv", "", "optional CSV output file")
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

	if *nMaxFlag < 1 {
		log.Fatalf("n-max must be >= 1, got %d", *nMaxFlag)
	}

	z := *zFlag
	if z == 0 {
		z = cfg.GetDefaultZ()
	}
	points := *pointsFlag
	if points == 0 {
		points = cfg.GetGridPoints()
	}

	run := orbitaldb.Run{
		ID:         uuid.NewString(),
		StartedAt:  time.Now(),
		NMax:       *nMaxFlag,
		Z:          z,
		GridPoints: points,
		RMaxFactor: cfg.GetRMaxFactor(),
	}

	var db *orbitaldb.DB
	if *dbFlag != "" {
		var err error
		db, err = orbitaldb.NewDB(*dbFlag)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()
		if err := db.MigrateUp(*migrationsFlag); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		if err := db.RecordRun(run); err != nil {
			log.Fatalf("record run: %v", err)
		}
	}

	var csvW *csv.Writer
	if *csvFlag != "" {
		f, err := os.Create(*csvFlag)
		if err != nil {
			log.Fatalf("create csv: %v", err)
		}
		defer f.Close()
		csvW = csv.NewWriter(f)
		defer csvW.Flush()
		if err := csvW.Write([]string{"label", "n", "l", "z", "peak_radius", "mean_radius", "norm", "nodes"}); err != nil {
			log.Fatalf("write csv header: %v", err)
		}
	}

	total := 0
	for n := 1; n <= *nMaxFlag; n++ {
		grid, err := hydrogen.Uniform(0, hydrogen.IntegrationMax(n, z), points)
		if err != nil {
			log.Fatalf("build grid for n=%d: %v", n, err)
		}
		for l := 0; l < n; l++ {
			s := hydrogen.State{N: n, L: l, Z: z}
			stats, err := hydrogen.Summarise(s, grid)
			if err != nil {
				log.Fatalf("summarise %s: %v", s, err)
			}

			log.Printf("%-4s peak=%8.3f  <r>=%8.3f  norm=%.8f  nodes=%d",
				stats.Label, stats.PeakRadius, stats.MeanRadius, stats.Norm, stats.Nodes)

			if db != nil {
				err := db.RecordOrbital(orbitaldb.Orbital{
					RunID:      run.ID,
					N:          n,
					L:          l,
					Z:          z,
					Label:      stats.Label,
					PeakRadius: stats.PeakRadius,
					MeanRadius: stats.MeanRadius,
					Norm:       stats.Norm,
					Nodes:      stats.Nodes,
				})
				if err != nil {
					log.Fatalf("record orbital: %v", err)
				}
			}
			if csvW != nil {
				row := []string{
					stats.Label,
					strconv.Itoa(n),
					strconv.Itoa(l),
					formatFloat(z),
					formatFloat(stats.PeakRadius),
					formatFloat(stats.MeanRadius),
					formatFloat(stats.Norm),
					strconv.Itoa(stats.Nodes),
				}
				if err := csvW.Write(row); err != nil {
					log.Fatalf("write csv row: %v", err)
				}
			}
			total++
		}
	}

	if db != nil {
		log.Printf("recorded %d orbitals under run %s in %s", total, run.ID, *dbFlag)
	} else {
		log.Printf("evaluated %d orbitals (run %s, not persisted)", total, run.ID)
	}
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.10g", v)
}
