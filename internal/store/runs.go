package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/tsp2opt/tsp"
)

// Run is one archived solve.
type Run struct {
	ID            int64
	CreatedAt     time.Time
	Label         string
	Points        []tsp.Point
	Tour          tsp.Tour
	Length        float64
	InitialLength float64
	Passes        int
	Moves         int
	Converged     bool
}

// NewRun captures a solver result for archiving.
func NewRun(label string, points []tsp.Point, res tsp.Result) Run {
	return Run{
		CreatedAt:     time.Now().UTC(),
		Label:         label,
		Points:        points,
		Tour:          res.Tour.Clone(),
		Length:        res.Length,
		InitialLength: res.InitialLength,
		Passes:        res.Passes,
		Moves:         res.Moves,
		Converged:     res.Converged,
	}
}

// Result rebuilds the solver result of an archived run.
func (r Run) Result() tsp.Result {
	return tsp.Result{
		Tour:          r.Tour,
		Length:        r.Length,
		InitialLength: r.InitialLength,
		TwoOptStats: tsp.TwoOptStats{
			Passes:    r.Passes,
			Moves:     r.Moves,
			Converged: r.Converged,
		},
	}
}

// SaveRun inserts run and returns its id.
func (s *Store) SaveRun(ctx context.Context, run Run) (int64, error) {
	points, err := json.Marshal(run.Points)
	if err != nil {
		return 0, fmt.Errorf("failed to encode points: %w", err)
	}
	tour, err := json.Marshal(run.Tour)
	if err != nil {
		return 0, fmt.Errorf("failed to encode tour: %w", err)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (created_at, label, cities, points, tour, length, initial_length, passes, moves, converged)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.UnixMilli(), run.Label, len(run.Points), string(points), string(tour),
		run.Length, run.InitialLength, run.Passes, run.Moves, run.Converged,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	return res.LastInsertId()
}

const selectRun = `
	SELECT id, created_at, label, points, tour, length, initial_length, passes, moves, converged
	FROM runs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run          Run
		createdAt    int64
		points, tour string
		converged    bool
	)
	if err := row.Scan(&run.ID, &createdAt, &run.Label, &points, &tour,
		&run.Length, &run.InitialLength, &run.Passes, &run.Moves, &converged); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(points), &run.Points); err != nil {
		return nil, fmt.Errorf("run %d: failed to decode points: %w", run.ID, err)
	}
	if err := json.Unmarshal([]byte(tour), &run.Tour); err != nil {
		return nil, fmt.Errorf("run %d: failed to decode tour: %w", run.ID, err)
	}
	run.CreatedAt = time.UnixMilli(createdAt).UTC()
	run.Converged = converged

	return &run, nil
}

// GetRun loads one run by id.
func (s *Store) GetRun(ctx context.Context, id int64) (*Run, error) {
	row := s.db.QueryRowContext(ctx, selectRun+" WHERE id = ?", id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", id, err)
	}

	return run, nil
}

// ListRuns returns the newest runs first; limit ≤ 0 means no limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := selectRun + " ORDER BY created_at DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// DeleteRun removes a run; a missing id yields ErrNotFound.
func (s *Store) DeleteRun(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete run %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete run %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("run %d: %w", id, ErrNotFound)
	}

	return nil
}
