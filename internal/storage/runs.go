package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run represents one benchmark run in the database.
type Run struct {
	RunID          string
	CreatedAt      time.Time
	Seed           int64
	ScrambleLength int
	CubeCount      int
	Workers        int
	ElapsedUs      int64
	Notes          *string
}

// RunRepository provides CRUD operations for benchmark runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a run record and returns its generated ID.
func (r *RunRepository) Create(run Run) (string, error) {
	return r.create(r.db, run)
}

// CreateTx inserts a run record inside an existing transaction.
func (r *RunRepository) CreateTx(tx *sql.Tx, run Run) (string, error) {
	return r.create(tx, run)
}

func (r *RunRepository) create(e execer, run Run) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := e.Exec(`
		INSERT INTO runs (run_id, created_at, seed, scramble_length, cube_count, workers, elapsed_us, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), run.Seed, run.ScrambleLength,
		run.CubeCount, run.Workers, run.ElapsedUs, run.Notes)

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

func scanRun(row interface{ Scan(...any) error }) (Run, error) {
	var run Run
	var createdAt string
	err := row.Scan(&run.RunID, &createdAt, &run.Seed, &run.ScrambleLength,
		&run.CubeCount, &run.Workers, &run.ElapsedUs, &run.Notes)
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("failed to parse run timestamp: %w", err)
	}
	return run, nil
}

// Get retrieves a run by ID.
func (r *RunRepository) Get(runID string) (*Run, error) {
	row := r.db.QueryRow(`
		SELECT run_id, created_at, seed, scramble_length, cube_count, workers, elapsed_us, notes
		FROM runs WHERE run_id = ?
	`, runID)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRecent retrieves the most recent runs, newest first.
func (r *RunRepository) ListRecent(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, created_at, seed, scramble_length, cube_count, workers, elapsed_us, notes
		FROM runs ORDER BY created_at DESC, run_id LIMIT ?
	`, limit)
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
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
