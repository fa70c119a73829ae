package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents one solved cube in the database.
type Solve struct {
	SolveID        string
	RunID          *string
	CreatedAt      time.Time
	ScrambleText   *string
	Facelets       string
	SolutionText   string
	SolutionLength int
	Phase1Probes   int64
	Phase1Cuts     int64
	Phase2Probes   int64
	Phase2Cuts     int64
	CornerProbes   int64
	CornerCuts     int64
	NoTwistCuts    int64
	ElapsedUs      int64
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create inserts a solve record and returns its generated ID.
func (r *SolveRepository) Create(s Solve) (string, error) {
	return r.create(r.db, s)
}

// CreateTx inserts a solve record inside an existing transaction.
func (r *SolveRepository) CreateTx(tx *sql.Tx, s Solve) (string, error) {
	return r.create(tx, s)
}

func (r *SolveRepository) create(e execer, s Solve) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := e.Exec(`
		INSERT INTO solves (
			solve_id, run_id, created_at, scramble_text, facelets,
			solution_text, solution_length,
			phase1_probes, phase1_cuts, phase2_probes, phase2_cuts,
			corner_probes, corner_cuts, no_twist_cuts, elapsed_us)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, s.RunID, createdAt.Format(time.RFC3339), s.ScrambleText, s.Facelets,
		s.SolutionText, s.SolutionLength,
		s.Phase1Probes, s.Phase1Cuts, s.Phase2Probes, s.Phase2Cuts,
		s.CornerProbes, s.CornerCuts, s.NoTwistCuts, s.ElapsedUs)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

const solveColumns = `
	solve_id, run_id, created_at, scramble_text, facelets,
	solution_text, solution_length,
	phase1_probes, phase1_cuts, phase2_probes, phase2_cuts,
	corner_probes, corner_cuts, no_twist_cuts, elapsed_us`

func scanSolve(row interface{ Scan(...any) error }) (Solve, error) {
	var s Solve
	var createdAt string
	err := row.Scan(&s.SolveID, &s.RunID, &createdAt, &s.ScrambleText, &s.Facelets,
		&s.SolutionText, &s.SolutionLength,
		&s.Phase1Probes, &s.Phase1Cuts, &s.Phase2Probes, &s.Phase2Cuts,
		&s.CornerProbes, &s.CornerCuts, &s.NoTwistCuts, &s.ElapsedUs)
	if err != nil {
		return Solve{}, err
	}
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Solve{}, fmt.Errorf("failed to parse solve timestamp: %w", err)
	}
	return s, nil
}

// Get retrieves a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(
		"SELECT"+solveColumns+" FROM solves WHERE solve_id = ?", solveID)
	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return &s, nil
}

// ListRecent retrieves the most recent solves, newest first.
func (r *SolveRepository) ListRecent(limit int) ([]Solve, error) {
	rows, err := r.db.Query(
		"SELECT"+solveColumns+" FROM solves ORDER BY created_at DESC, solve_id LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// ListByRun retrieves all solves of a benchmark run, oldest first.
func (r *SolveRepository) ListByRun(runID string) ([]Solve, error) {
	rows, err := r.db.Query(
		"SELECT"+solveColumns+" FROM solves WHERE run_id = ? ORDER BY created_at, solve_id", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list run solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Count returns the total number of stored solves.
func (r *SolveRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return count, nil
}

// LengthHistogram returns how many stored solutions have each length.
func (r *SolveRepository) LengthHistogram() (map[int]int, error) {
	rows, err := r.db.Query(`
		SELECT solution_length, COUNT(*)
		FROM solves
		GROUP BY solution_length
		ORDER BY solution_length
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query length histogram: %w", err)
	}
	defer rows.Close()

	hist := make(map[int]int)
	for rows.Next() {
		var length, count int
		if err := rows.Scan(&length, &count); err != nil {
			return nil, fmt.Errorf("failed to scan histogram row: %w", err)
		}
		hist[length] = count
	}

	return hist, rows.Err()
}
