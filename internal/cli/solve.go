package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cubesolver "github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var (
	solveFacelets string
	solveTarget   int
	solveMax      int
	solveSave     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a cube given either a scramble in face-turn notation or a
54-character facelet string.

Examples:
  cubesolver solve "R U R' U' F2 D B'"
  cubesolver solve --facelets WWWOWWWOW...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveFacelets, "facelets", "", "Cube state as a 54-character facelet string")
	solveCmd.Flags().IntVar(&solveTarget, "target", cubesolver.DefaultTargetLength, "Stop once a solution this short is found")
	solveCmd.Flags().IntVar(&solveMax, "max", cubesolver.DefaultMaxLength, "Reject solutions longer than this")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Store the solve in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	var cube cubesolver.Cube
	var scramble string
	var err error

	switch {
	case solveFacelets != "" && len(args) > 0:
		return fmt.Errorf("give either a scramble or --facelets, not both")
	case solveFacelets != "":
		cube, err = cubesolver.ParseFacelets(strings.ToUpper(solveFacelets))
		if err != nil {
			return fmt.Errorf("invalid facelets: %w", err)
		}
	case len(args) == 1:
		scramble = args[0]
		cube, err = cubesolver.CubeFromScramble(scramble)
		if err != nil {
			return fmt.Errorf("invalid scramble: %w", err)
		}
	default:
		return fmt.Errorf("a scramble argument or --facelets is required")
	}

	tables, err := loadTables()
	if err != nil {
		return fmt.Errorf("failed to load tables: %w", err)
	}

	solver := cubesolver.NewSolver(tables,
		cubesolver.WithTargetLength(solveTarget),
		cubesolver.WithMaxLength(solveMax))

	solution, err := solver.Solve(cube)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	fmt.Println(titleStyle.Render("Solution"))
	if len(solution.Moves) == 0 {
		fmt.Println(labelStyle.Render("already solved"))
	} else {
		fmt.Println(moveStyle.Render(cubesolver.FormatMoves(solution.Moves)))
	}
	fmt.Printf("%s %d moves in %s\n",
		labelStyle.Render("length:"), len(solution.Moves), solution.Stats.Elapsed)
	if verbose {
		printStats(solution.Stats)
	}

	if solveSave {
		if err := saveSolve(nil, scramble, cube, solution); err != nil {
			return err
		}
	}

	return nil
}

func printStats(stats cubesolver.Stats) {
	fmt.Println(statStyle.Render(stats.String()))
}

// saveSolve records one solve in the history database, attached to a
// benchmark run when runID is non-nil.
func saveSolve(runID *string, scramble string, cube cubesolver.Cube, sol cubesolver.Solution) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	_, err = repo.Create(solveRecord(runID, scramble, cube, sol))
	if err != nil {
		return fmt.Errorf("failed to save solve: %w", err)
	}
	return nil
}

func solveRecord(runID *string, scramble string, cube cubesolver.Cube, sol cubesolver.Solution) storage.Solve {
	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	return storage.Solve{
		RunID:          runID,
		ScrambleText:   scramblePtr,
		Facelets:       cube.FaceletString(),
		SolutionText:   cubesolver.FormatMoves(sol.Moves),
		SolutionLength: len(sol.Moves),
		Phase1Probes:   int64(sol.Stats.Phase1Probes),
		Phase1Cuts:     int64(sol.Stats.Phase1Cuts),
		Phase2Probes:   int64(sol.Stats.Phase2Probes),
		Phase2Cuts:     int64(sol.Stats.Phase2Cuts),
		CornerProbes:   int64(sol.Stats.CornerProbes),
		CornerCuts:     int64(sol.Stats.CornerCuts),
		NoTwistCuts:    int64(sol.Stats.NoTwistCuts),
		ElapsedUs:      sol.Stats.Elapsed.Microseconds(),
	}
}

// openDB opens the history database at the configured path.
func openDB() (*storage.DB, error) {
	if path := getDBPath(); path != "" {
		return storage.Open(path)
	}
	return storage.OpenDefault()
}
