package cubesolver

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// Search depth limits. Every cube can be brought into the subgroup in at
// most 12 moves and solved within it in at most 18, so together they cover
// the whole group.
const (
	maxPhase1Depth = 12
	maxPhase2Depth = 18
)

// Defaults for NewSolver.
const (
	DefaultTargetLength = 20
	DefaultMaxLength    = 30
)

// Tables bundle everything a Solver needs. They are read-only after
// construction and may be shared by any number of solvers.
type Tables struct {
	Moves   *MoveTables
	Pruning *PruningTables
}

// BuildTables constructs the move and pruning tables, loading distance
// tables through the given cache when one is provided. The corners table
// is validated against its known distance distribution whether loaded or
// built.
func BuildTables(c *Cache) (*Tables, error) {
	mt := NewMoveTables()
	pt := &PruningTables{}

	load := func(name string, size int, build func(*MoveTables) *DistanceTable, verify func(*DistanceTable) bool, dst **DistanceTable) error {
		t, err := c.loadOrBuild(name, size, func() *DistanceTable { return build(mt) }, verify)
		if err != nil {
			return err
		}
		*dst = t
		return nil
	}
	if err := load("corners", CornersIndexSize, buildCornersTable, validCornersTable, &pt.Corners); err != nil {
		return nil, err
	}
	if err := load("corner-ori-slice", CornerOriSize*SliceLocSize, buildCornerOriSliceTable, nil, &pt.CornerOriSlice); err != nil {
		return nil, err
	}
	if err := load("edge-ori-slice", EdgeOriSize*SliceLocSize, buildEdgeOriSliceTable, nil, &pt.EdgeOriSlice); err != nil {
		return nil, err
	}
	if err := load("corner-perm-slice", CornerPermSize*SlicePermSize, buildCornerPermSliceTable, nil, &pt.CornerPermSlice); err != nil {
		return nil, err
	}
	if err := load("edge-perm-slice", EdgePermSize*SlicePermSize, buildEdgePermSliceTable, nil, &pt.EdgePermSlice); err != nil {
		return nil, err
	}

	return &Tables{Moves: mt, Pruning: pt}, nil
}

// LoadTables builds the tables using a cache rooted at dir. An empty dir
// disables persistence.
func LoadTables(dir string) (*Tables, error) {
	return BuildTables(&Cache{Dir: dir})
}

// Stats counts the work one solve performed.
type Stats struct {
	Phase1Probes uint64 // phase-1 states visited
	Phase1Cuts   uint64 // phase-1 states pruned by the orientation bounds
	Phase2Probes uint64 // phase-2 states visited
	Phase2Cuts   uint64 // phase-2 states pruned by the permutation bounds
	CornerProbes uint64 // corners-table lookups
	CornerCuts   uint64 // states pruned by the corners length bound
	NoTwistCuts  uint64 // successor moves skipped by the redundancy rules
	Elapsed      time.Duration
}

// Add accumulates another solve's counters, summing elapsed time.
func (s *Stats) Add(o Stats) {
	s.Phase1Probes += o.Phase1Probes
	s.Phase1Cuts += o.Phase1Cuts
	s.Phase2Probes += o.Phase2Probes
	s.Phase2Cuts += o.Phase2Cuts
	s.CornerProbes += o.CornerProbes
	s.CornerCuts += o.CornerCuts
	s.NoTwistCuts += o.NoTwistCuts
	s.Elapsed += o.Elapsed
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"phase1 %d probes / %d cuts, phase2 %d probes / %d cuts, corners %d probes / %d cuts, %d twist cuts, %s",
		s.Phase1Probes, s.Phase1Cuts, s.Phase2Probes, s.Phase2Cuts,
		s.CornerProbes, s.CornerCuts, s.NoTwistCuts, s.Elapsed)
}

// Solution is a move sequence solving a cube, with the search counters
// that produced it.
type Solution struct {
	Moves []Move
	Stats Stats
}

// Option configures a Solver.
type Option func(*Solver)

// WithTargetLength sets the solution length the solver is satisfied with.
// The search stops as soon as it finds a solution no longer than n.
func WithTargetLength(n int) Option {
	return func(s *Solver) { s.target = n }
}

// WithMaxLength caps accepted solution lengths. Solve fails when no
// solution within the cap exists in the searched depth range.
func WithMaxLength(n int) Option {
	return func(s *Solver) { s.maxLen = n }
}

// Solver finds near-optimal solutions using the two-phase search. It is
// safe for concurrent use.
type Solver struct {
	tables *Tables
	target int
	maxLen int
}

// NewSolver returns a solver over the given tables.
func NewSolver(t *Tables, opts ...Option) *Solver {
	s := &Solver{tables: t, target: DefaultTargetLength, maxLen: DefaultMaxLength}
	for _, o := range opts {
		o(s)
	}
	if s.maxLen > maxPhase1Depth+maxPhase2Depth {
		s.maxLen = maxPhase1Depth + maxPhase2Depth
	}
	if s.target > s.maxLen {
		s.target = s.maxLen
	}
	return s
}

// Solve returns a solution for the cube. It enumerates subgroup prefixes
// of increasing length and keeps the best completed solution until one
// meets the target length or no shorter one can exist.
func (s *Solver) Solve(cube Cube) (Solution, error) {
	start := time.Now()
	sr := &search{
		tables:  s.tables,
		start:   cube,
		bestLen: s.maxLen + 1,
	}

	cOri := cube.Corners.OriIndex()
	cPrm := cube.Corners.PermIndex()
	eOri := cube.Edges.OriIndex()
	loc := cube.Edges.SliceLocIndex()

	for d1 := 0; d1 <= maxPhase1Depth; d1++ {
		if sr.best != nil && sr.bestLen <= s.target {
			break
		}
		if d1 >= sr.bestLen {
			break
		}
		sr.phase1(cOri, eOri, loc, cPrm, d1, 0, noFace)
	}

	sr.stats.Elapsed = time.Since(start)
	if sr.best == nil {
		if s.maxLen >= maxPhase1Depth+maxPhase2Depth {
			// Every reachable state solves within the depth ceiling, so
			// getting here means a table or search bug.
			return Solution{Stats: sr.stats}, ErrDepthExceeded
		}
		return Solution{Stats: sr.stats}, ErrNoSolution
	}
	return Solution{Moves: sr.best, Stats: sr.stats}, nil
}

// SolveBatch solves cubes concurrently over the shared tables, preserving
// input order in the result. A non-positive worker count uses one worker
// per CPU.
func (s *Solver) SolveBatch(ctx context.Context, cubes []Cube, workers int) ([]Solution, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(cubes) {
		workers = len(cubes)
	}
	solutions := make([]Solution, len(cubes))
	errs := make([]error, len(cubes))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				solutions[i], errs[i] = s.Solve(cubes[i])
			}
		}()
	}
feed:
	for i := range cubes {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return solutions, err
	}
	for _, err := range errs {
		if err != nil {
			return solutions, err
		}
	}
	return solutions, nil
}

// noFace marks "no previous move" for the redundancy rules.
const noFace = Face(6)

// phase2Moves is the subgroup generator list, hoisted out of the phase-2
// inner loop.
var phase2Moves = SubgroupMoves().Moves()

type search struct {
	tables  *Tables
	start   Cube
	moves   [maxPhase1Depth + maxPhase2Depth]Move
	best    []Move
	bestLen int
	stats   Stats
}

// allowed applies the successor redundancy rules: never turn the same face
// twice in a row, and order commuting moves on one axis by face so each
// pair appears once.
func allowed(f, prev Face) bool {
	if prev == noFace {
		return true
	}
	if f == prev {
		return false
	}
	if f.Axis() == prev.Axis() && f < prev {
		return false
	}
	return true
}

func (sr *search) phase1(cOri, eOri, loc, cPrm, togo, depth int, prev Face) {
	sr.stats.Phase1Probes++

	pt := sr.tables.Pruning
	h := pt.CornerOriSlice.Dist(cOri*SliceLocSize + loc)
	if eh := pt.EdgeOriSlice.Dist(eOri*SliceLocSize + loc); eh > h {
		h = eh
	}
	if h > togo {
		sr.stats.Phase1Cuts++
		return
	}

	sr.stats.CornerProbes++
	if depth+pt.Corners.Dist(cPrm*CornerOriSize+cOri) >= sr.bestLen {
		sr.stats.CornerCuts++
		return
	}

	if togo == 0 {
		// Only accept prefixes whose last move leaves the subgroup's
		// generators, otherwise a shorter prefix already covered this
		// entry point.
		if depth > 0 && SubgroupMoves().Contains(sr.moves[depth-1]) {
			return
		}
		sr.onPrefix(depth)
		return
	}

	mt := sr.tables.Moves
	for m := Move(0); m < NumMoves; m++ {
		if !allowed(m.Face(), prev) {
			sr.stats.NoTwistCuts++
			continue
		}
		sr.moves[depth] = m
		sr.phase1(
			mt.CornerOri(cOri, m),
			mt.EdgeOri(eOri, m),
			mt.SliceLoc(loc, m),
			mt.CornerPerm(cPrm, m),
			togo-1, depth+1, m.Face())
	}
}

// onPrefix runs phase 2 from a subgroup state reached after depth moves.
// The permutation coordinates are recomputed from the cubie model here;
// tracking them through phase 1 would need slice-location-dependent
// tables far larger than everything else combined.
func (sr *search) onPrefix(depth int) {
	cube := sr.start.ApplyAll(sr.moves[:depth])
	cPrm := cube.Corners.PermIndex()
	nonSlice := cube.Edges.NonSlicePermIndex()
	slicePrm := cube.Edges.SlicePermIndex()

	pt := sr.tables.Pruning
	h := pt.CornerPermSlice.Dist(cPrm*SlicePermSize + slicePrm)
	if eh := pt.EdgePermSlice.Dist(nonSlice*SlicePermSize + slicePrm); eh > h {
		h = eh
	}

	maxTogo := sr.bestLen - 1 - depth
	if maxTogo > maxPhase2Depth {
		maxTogo = maxPhase2Depth
	}
	prev := noFace
	if depth > 0 {
		prev = sr.moves[depth-1].Face()
	}
	for togo := h; togo <= maxTogo; togo++ {
		if sr.phase2(cPrm, nonSlice, slicePrm, togo, depth, prev) {
			sr.bestLen = depth + togo
			sr.best = append(make([]Move, 0, sr.bestLen), sr.moves[:sr.bestLen]...)
			return
		}
	}
}

func (sr *search) phase2(cPrm, nonSlice, slicePrm, togo, depth int, prev Face) bool {
	sr.stats.Phase2Probes++

	pt := sr.tables.Pruning
	h := pt.CornerPermSlice.Dist(cPrm*SlicePermSize + slicePrm)
	if eh := pt.EdgePermSlice.Dist(nonSlice*SlicePermSize + slicePrm); eh > h {
		h = eh
	}
	if h > togo {
		sr.stats.Phase2Cuts++
		return false
	}
	if togo == 0 {
		return h == 0
	}

	mt := sr.tables.Moves
	for _, m := range phase2Moves {
		if !allowed(m.Face(), prev) {
			sr.stats.NoTwistCuts++
			continue
		}
		sr.moves[depth] = m
		if sr.phase2(
			mt.CornerPerm(cPrm, m),
			mt.NonSlicePerm(nonSlice, m),
			mt.SlicePerm(slicePrm, m),
			togo-1, depth+1, m.Face()) {
			return true
		}
	}
	return false
}
