package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	cubesolver "github.com/SeamusWaldron/cubesolver"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the pruning table cache",
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build all pruning tables and persist them",
	Long: `Build every pruning table and write it to the cache directory.

Solving works without this step, but the first solve then pays the build
cost. The large corners table takes most of the time.`,
	RunE: runTablesBuild,
}

var tablesInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cached table files",
	RunE:  runTablesInfo,
}

var tablesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached table files",
	RunE:  runTablesClear,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.AddCommand(tablesBuildCmd)
	tablesCmd.AddCommand(tablesInfoCmd)
	tablesCmd.AddCommand(tablesClearCmd)
}

// tableNames lists every cached table in build order.
var tableNames = []string{
	"corners",
	"corner-ori-slice",
	"edge-ori-slice",
	"corner-perm-slice",
	"edge-perm-slice",
}

func runTablesBuild(cmd *cobra.Command, args []string) error {
	c, err := newCache()
	if err != nil {
		return err
	}
	if c.Logf == nil {
		c.Logf = func(format string, a ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	start := time.Now()
	tables, err := cubesolver.BuildTables(c)
	if err != nil {
		return err
	}
	fmt.Printf("%s built in %s\n",
		titleStyle.Render("tables:"), time.Since(start).Round(time.Millisecond))

	if verbose {
		pt := tables.Pruning
		for _, t := range []*cubesolver.DistanceTable{
			pt.Corners, pt.CornerOriSlice, pt.EdgeOriSlice,
			pt.CornerPermSlice, pt.EdgePermSlice,
		} {
			counts := t.LevelCounts()
			fmt.Printf("%s %d entries, max depth %d\n",
				labelStyle.Render(t.Name()+":"), t.Len(), len(counts)-1)
		}
	}
	return nil
}

func runTablesInfo(cmd *cobra.Command, args []string) error {
	c, err := newCache()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", labelStyle.Render("cache dir:"), c.Dir)
	for _, name := range tableNames {
		info, err := os.Stat(c.Path(name))
		if err != nil {
			fmt.Printf("%s missing\n", labelStyle.Render(name+":"))
			continue
		}
		fmt.Printf("%s %.1f MiB, %s\n",
			labelStyle.Render(name+":"),
			float64(info.Size())/(1<<20),
			info.ModTime().Format(time.RFC3339))
	}
	return nil
}

func runTablesClear(cmd *cobra.Command, args []string) error {
	c, err := newCache()
	if err != nil {
		return err
	}
	if err := c.Clear(); err != nil {
		return err
	}
	fmt.Println("cache cleared")
	return nil
}
