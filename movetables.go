package cubesolver

import (
	"sync"
)

// MoveTables hold the per-coordinate transition tables: for each coordinate
// value and move, the coordinate after that move. All of them are small
// enough to rebuild at startup, so they are never cached to disk.
//
// The two permutation tables for edges are built with the slice edges at
// home and are only valid for moves that keep them there (the phase-2
// subgroup moves).
type MoveTables struct {
	cornerOri    []uint16 // CornerOriSize * NumMoves
	cornerPerm   []uint16 // CornerPermSize * NumMoves
	edgeOri      []uint16 // EdgeOriSize * NumMoves
	sliceLoc     []uint16 // SliceLocSize * NumMoves
	slicePerm    []uint8  // SlicePermSize * NumMoves
	nonSlicePerm []uint16 // EdgePermSize * NumMoves
}

// NewMoveTables builds all transition tables, one goroutine per table.
func NewMoveTables() *MoveTables {
	t := &MoveTables{
		cornerOri:    make([]uint16, CornerOriSize*NumMoves),
		cornerPerm:   make([]uint16, CornerPermSize*NumMoves),
		edgeOri:      make([]uint16, EdgeOriSize*NumMoves),
		sliceLoc:     make([]uint16, SliceLocSize*NumMoves),
		slicePerm:    make([]uint8, SlicePermSize*NumMoves),
		nonSlicePerm: make([]uint16, EdgePermSize*NumMoves),
	}

	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	run(func() {
		for i := 0; i < CornerOriSize; i++ {
			c := CornersFromIndices(0, i)
			for m := Move(0); m < NumMoves; m++ {
				t.cornerOri[i*NumMoves+int(m)] = uint16(c.Apply(m).OriIndex())
			}
		}
	})
	run(func() {
		for i := 0; i < CornerPermSize; i++ {
			c := CornersFromIndices(i, 0)
			for m := Move(0); m < NumMoves; m++ {
				t.cornerPerm[i*NumMoves+int(m)] = uint16(c.Apply(m).PermIndex())
			}
		}
	})
	run(func() {
		for i := 0; i < EdgeOriSize; i++ {
			e := EdgesFromIndices(0, 0, HomeSliceLoc, i)
			for m := Move(0); m < NumMoves; m++ {
				t.edgeOri[i*NumMoves+int(m)] = uint16(e.Apply(m).OriIndex())
			}
		}
	})
	run(func() {
		for i := 0; i < SliceLocSize; i++ {
			e := EdgesFromIndices(0, 0, i, 0)
			for m := Move(0); m < NumMoves; m++ {
				t.sliceLoc[i*NumMoves+int(m)] = uint16(e.Apply(m).SliceLocIndex())
			}
		}
	})
	run(func() {
		for i := 0; i < SlicePermSize; i++ {
			e := EdgesFromIndices(i, 0, HomeSliceLoc, 0)
			for m := Move(0); m < NumMoves; m++ {
				t.slicePerm[i*NumMoves+int(m)] = uint8(e.Apply(m).SlicePermIndex())
			}
		}
	})
	run(func() {
		for i := 0; i < EdgePermSize; i++ {
			e := EdgesFromIndices(0, i, HomeSliceLoc, 0)
			for m := Move(0); m < NumMoves; m++ {
				t.nonSlicePerm[i*NumMoves+int(m)] = uint16(e.Apply(m).NonSlicePermIndex())
			}
		}
	})
	wg.Wait()
	return t
}

// CornerOri returns the corner orientation coordinate after a move.
func (t *MoveTables) CornerOri(i int, m Move) int {
	return int(t.cornerOri[i*NumMoves+int(m)])
}

// CornerPerm returns the corner permutation coordinate after a move.
func (t *MoveTables) CornerPerm(i int, m Move) int {
	return int(t.cornerPerm[i*NumMoves+int(m)])
}

// EdgeOri returns the edge orientation coordinate after a move.
func (t *MoveTables) EdgeOri(i int, m Move) int {
	return int(t.edgeOri[i*NumMoves+int(m)])
}

// SliceLoc returns the slice location coordinate after a move.
func (t *MoveTables) SliceLoc(i int, m Move) int {
	return int(t.sliceLoc[i*NumMoves+int(m)])
}

// SlicePerm returns the slice permutation coordinate after a subgroup move.
func (t *MoveTables) SlicePerm(i int, m Move) int {
	return int(t.slicePerm[i*NumMoves+int(m)])
}

// NonSlicePerm returns the non-slice edge permutation coordinate after a
// subgroup move.
func (t *MoveTables) NonSlicePerm(i int, m Move) int {
	return int(t.nonSlicePerm[i*NumMoves+int(m)])
}

// Corners returns the joint corner coordinate after a move. The joint
// coordinate combines permutation and orientation as perm*CornerOriSize+ori.
func (t *MoveTables) Corners(i int, m Move) int {
	return t.CornerPerm(i/CornerOriSize, m)*CornerOriSize + t.CornerOri(i%CornerOriSize, m)
}
