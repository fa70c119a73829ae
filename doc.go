// Package cubesolver implements a two-phase solver for the 3x3x3 Rubik's
// cube, intended for benchmarking workloads that solve large batches of
// scrambled cubes and measure throughput.
//
// # Features
//
//   - Cubie-level cube model with coordinate projections
//   - Precomputed move tables for every search coordinate
//   - BFS pruning tables (corners, phase-1 coset, phase-2 subset bounds)
//   - Table cache with integrity-checked, compressed on-disk files
//   - Two-phase iterative-deepening search with probe/cut statistics
//   - Parallel batch solving over shared read-only tables
//
// # Quick Start
//
// Build (or load) the tables once, then solve any number of cubes:
//
//	dir, err := cubesolver.DefaultCacheDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tables, err := cubesolver.LoadTables(dir)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube, err := cubesolver.CubeFromScramble("R U R' F2 D B'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	solver := cubesolver.NewSolver(tables)
//	solution, err := solver.Solve(cube)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cubesolver.FormatMoves(solution.Moves))
//	fmt.Println(solution.Stats)
//
// The first call to LoadTables builds the pruning tables (several seconds)
// and persists them; later calls load from the cache near-instantly.
//
// # Two-Phase Search
//
// Phase 1 brings the cube into the subgroup generated by
// {U, U2, U', D, D2, D', L2, R2, F2, B2}: all edges and corners oriented
// and the four equator-slice edges back in their slice. Phase 2 solves the
// remaining permutation using only subgroup moves. The solver enumerates
// phase-1 prefixes of increasing length and keeps the best total found
// until the target length is met or no shorter solution is possible.
//
// A Solver is safe for concurrent use: the tables are built once and read
// only afterwards, and all per-solve state lives on the search stack.
package cubesolver
