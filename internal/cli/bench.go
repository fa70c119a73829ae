package cli

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	cubesolver "github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var (
	benchCount   int
	benchLength  int
	benchSeed    int64
	benchWorkers int
	benchTarget  int
	benchMax     int
	benchSave    bool
	benchNotes   string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a batch solving benchmark",
	Long: `Generate a batch of scrambles from a fixed seed, solve them all over
the shared tables, and report throughput together with the aggregated
search counters.

With --save, the run and its individual solves are stored in the history
database for later comparison.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVarP(&benchCount, "count", "n", 100, "Number of cubes to solve")
	benchCmd.Flags().IntVarP(&benchLength, "length", "l", 25, "Moves per scramble")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "Random seed for the scramble batch")
	benchCmd.Flags().IntVarP(&benchWorkers, "workers", "w", 0, "Concurrent solvers (0 = one per CPU)")
	benchCmd.Flags().IntVar(&benchTarget, "target", cubesolver.DefaultTargetLength, "Stop each solve once a solution this short is found")
	benchCmd.Flags().IntVar(&benchMax, "max", cubesolver.DefaultMaxLength, "Reject solutions longer than this")
	benchCmd.Flags().BoolVar(&benchSave, "save", false, "Store the run in the history database")
	benchCmd.Flags().StringVar(&benchNotes, "notes", "", "Free-form note stored with the run")
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchCount < 1 || benchLength < 1 {
		return fmt.Errorf("count and length must be positive")
	}

	tables, err := loadTables()
	if err != nil {
		return fmt.Errorf("failed to load tables: %w", err)
	}

	gen := cubesolver.NewScrambleGen(benchSeed)
	scrambles := make([][]cubesolver.Move, benchCount)
	cubes := make([]cubesolver.Cube, benchCount)
	for i := range cubes {
		scrambles[i], cubes[i] = gen.GenerateCube(benchLength)
	}

	solver := cubesolver.NewSolver(tables,
		cubesolver.WithTargetLength(benchTarget),
		cubesolver.WithMaxLength(benchMax))

	workers := benchWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	fmt.Printf("%s %d cubes, %d-move scrambles, seed %d, %d workers\n",
		titleStyle.Render("bench:"), benchCount, benchLength, benchSeed, workers)

	start := time.Now()
	solutions, err := solver.SolveBatch(context.Background(), cubes, workers)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}
	elapsed := time.Since(start)

	var total cubesolver.Stats
	lengthSum := 0
	maxLength := 0
	for _, sol := range solutions {
		total.Add(sol.Stats)
		lengthSum += len(sol.Moves)
		if len(sol.Moves) > maxLength {
			maxLength = len(sol.Moves)
		}
	}

	perSecond := float64(benchCount) / elapsed.Seconds()
	fmt.Printf("%s %s wall, %.1f solves/s\n",
		labelStyle.Render("time:"), elapsed.Round(time.Millisecond), perSecond)
	fmt.Printf("%s %.2f avg, %d max\n",
		labelStyle.Render("length:"), float64(lengthSum)/float64(benchCount), maxLength)
	fmt.Println(statStyle.Render(total.String()))

	if benchSave {
		return saveBench(scrambles, cubes, solutions, workers, elapsed)
	}
	return nil
}

func saveBench(scrambles [][]cubesolver.Move, cubes []cubesolver.Cube, solutions []cubesolver.Solution, workers int, elapsed time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var notesPtr *string
	if benchNotes != "" {
		notesPtr = &benchNotes
	}

	runs := storage.NewRunRepository(db)
	solves := storage.NewSolveRepository(db)

	// One transaction for the run row and all its solves, so a failure
	// partway leaves no partial run in the history.
	var runID string
	err = db.Transaction(func(tx *sql.Tx) error {
		var err error
		runID, err = runs.CreateTx(tx, storage.Run{
			Seed:           benchSeed,
			ScrambleLength: benchLength,
			CubeCount:      len(cubes),
			Workers:        workers,
			ElapsedUs:      elapsed.Microseconds(),
			Notes:          notesPtr,
		})
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		for i := range cubes {
			rec := solveRecord(&runID, cubesolver.FormatMoves(scrambles[i]), cubes[i], solutions[i])
			if _, err := solves.CreateTx(tx, rec); err != nil {
				return fmt.Errorf("failed to save solve %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", labelStyle.Render("saved run:"), runID)
	return nil
}
