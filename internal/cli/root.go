// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cubesolver "github.com/SeamusWaldron/cubesolver"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath   string
	cacheDir string
	verbose  bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Two-phase Rubik's cube solver",
	Long: `cubesolver - A benchmarking-oriented two-phase solver for the 3x3x3
Rubik's cube.

Solve individual scrambles, generate reproducible scramble batches, and run
throughput benchmarks over the shared pruning tables. Solve and benchmark
history is stored in a local SQLite database.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesolver/cubesolver.db)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "Pruning table cache directory (default: user cache dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("cache-dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
}

// initConfig reads an optional config file and environment variables.
// Flags take precedence over both.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".cubesolver"))
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("CUBESOLVER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "using config file %s\n", viper.ConfigFileUsed())
	}
}

// getDBPath returns the database path from flag, config, or default.
func getDBPath() string {
	return viper.GetString("db")
}

// getCacheDir resolves the table cache directory.
func getCacheDir() (string, error) {
	if dir := viper.GetString("cache-dir"); dir != "" {
		return dir, nil
	}
	return cubesolver.DefaultCacheDir()
}

// newCache builds the table cache, logging progress when verbose.
func newCache() (*cubesolver.Cache, error) {
	dir, err := getCacheDir()
	if err != nil {
		return nil, err
	}

	c := &cubesolver.Cache{Dir: dir}
	if verbose {
		c.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return c, nil
}

// loadTables builds or loads the solver tables.
func loadTables() (*cubesolver.Tables, error) {
	c, err := newCache()
	if err != nil {
		return nil, err
	}
	return cubesolver.BuildTables(c)
}
