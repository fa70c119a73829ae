package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show stored solves and benchmark runs",
	RunE:  runHistory,
}

var historyRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show stored benchmark runs",
	RunE:  runHistoryRuns,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyRunsCmd)

	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	count, err := repo.Count()
	if err != nil {
		return err
	}
	fmt.Printf("%s %d solves stored\n", titleStyle.Render("history:"), count)
	if count == 0 {
		return nil
	}

	solves, err := repo.ListRecent(historyLimit)
	if err != nil {
		return err
	}
	for _, s := range solves {
		scramble := "-"
		if s.ScrambleText != nil {
			scramble = *s.ScrambleText
		}
		fmt.Printf("%s %2d moves %8s  %s\n",
			labelStyle.Render(s.CreatedAt.Format("2006-01-02 15:04:05")),
			s.SolutionLength,
			time.Duration(s.ElapsedUs)*time.Microsecond,
			scramble)
	}

	hist, err := repo.LengthHistogram()
	if err != nil {
		return err
	}
	lengths := make([]int, 0, len(hist))
	for l := range hist {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	fmt.Println(titleStyle.Render("solution lengths"))
	for _, l := range lengths {
		fmt.Printf("%s %d\n", labelStyle.Render(fmt.Sprintf("%2d:", l)), hist[l])
	}
	return nil
}

func runHistoryRuns(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := storage.NewRunRepository(db).ListRecent(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no benchmark runs stored")
		return nil
	}

	for _, r := range runs {
		elapsed := time.Duration(r.ElapsedUs) * time.Microsecond
		perSecond := float64(r.CubeCount) / elapsed.Seconds()
		notes := ""
		if r.Notes != nil {
			notes = "  " + *r.Notes
		}
		fmt.Printf("%s %5d cubes, seed %d, %d workers, %s (%.1f/s)%s\n",
			labelStyle.Render(r.CreatedAt.Format("2006-01-02 15:04:05")),
			r.CubeCount, r.Seed, r.Workers,
			elapsed.Round(time.Millisecond), perSecond, notes)
	}
	return nil
}
