// Package orbitaldb stores sweep runs and per-orbital statistics in sqlite,
// so tabulated values referenced by the preprint can be regenerated and
// queried after a sweep.
package orbitaldb

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// NewDB opens (or creates) the sqlite database at path. Run MigrateUp before
// first use.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	return &DB{db}, nil
}

// Run describes one sweep invocation.
type Run struct {
	ID         string
	StartedAt  time.Time
	NMax       int
	Z          float64
	GridPoints int
	RMaxFactor float64
}

// Orbital is one row of sweep output.
type Orbital struct {
	RunID      string
	N          int
	L          int
	Z          float64
	Label      string
	PeakRadius float64
	MeanRadius float64
	Norm       float64
	Nodes      int
}

func (o Orbital) String() string {
	return fmt.Sprintf("%s: peak=%.4f <r>=%.4f norm=%.8f nodes=%d", o.Label, o.PeakRadius, o.MeanRadius, o.Norm, o.Nodes)
}

// RecordRun inserts a sweep run header.
func (db *DB) RecordRun(r Run) error {
	_, err := db.Exec(
		"INSERT INTO sweep_runs (run_id, started_at, n_max, z, grid_points, rmax_factor) VALUES (?, ?, ?, ?, ?, ?)",
		r.ID, r.StartedAt.UTC().Format(time.RFC3339Nano), r.NMax, r.Z, r.GridPoints, r.RMaxFactor,
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", r.ID, err)
	}
	return nil
}

// RecordOrbital inserts one orbital's statistics for a run.
func (db *DB) RecordOrbital(o Orbital) error {
	_, err := db.Exec(
		`INSERT INTO orbitals (run_id, n, l, z, label, peak_radius, mean_radius, norm, nodes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.RunID, o.N, o.L, o.Z, o.Label, o.PeakRadius, o.MeanRadius, o.Norm, o.Nodes,
	)
	if err != nil {
		return fmt.Errorf("record orbital %s for run %s: %w", o.Label, o.RunID, err)
	}
	return nil
}

// OrbitalsForRun returns a run's orbitals ordered by (n, l).
func (db *DB) OrbitalsForRun(runID string) ([]Orbital, error) {
	rows, err := db.Query(
		"SELECT run_id, n, l, z, label, peak_radius, mean_radius, norm, nodes FROM orbitals WHERE run_id = ? ORDER BY n, l",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query orbitals for run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []Orbital
	for rows.Next() {
		var o Orbital
		if err := rows.Scan(&o.RunID, &o.N, &o.L, &o.Z, &o.Label, &o.PeakRadius, &o.MeanRadius, &o.Norm, &o.Nodes); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Runs returns recorded sweep runs, newest first.
func (db *DB) Runs() ([]Run, error) {
	rows, err := db.Query("SELECT run_id, started_at, n_max, z, grid_points, rmax_factor FROM sweep_runs ORDER BY started_at DESC")
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &started, &r.NMax, &r.Z, &r.GridPoints, &r.RMaxFactor); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, started); err == nil {
			r.StartedAt = t
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
