package cubesolver

// Cube is a full cubie-level cube state.
type Cube struct {
	Corners Corners
	Edges   Edges
}

// SolvedCube returns a solved cube.
func SolvedCube() Cube {
	return Cube{Corners: SolvedCorners(), Edges: SolvedEdges()}
}

// CubeFromScramble parses a scramble in face-turn notation and returns the
// cube it produces when applied to a solved cube.
func CubeFromScramble(scramble string) (Cube, error) {
	moves, err := ParseMoves(scramble)
	if err != nil {
		return Cube{}, err
	}
	return SolvedCube().ApplyAll(moves), nil
}

// Apply returns the cube after one face turn.
func (c Cube) Apply(m Move) Cube {
	return Cube{Corners: c.Corners.Apply(m), Edges: c.Edges.Apply(m)}
}

// ApplyAll returns the cube after a sequence of face turns.
func (c Cube) ApplyAll(moves []Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// IsSolved reports whether the cube is in the solved state.
func (c Cube) IsSolved() bool {
	return c == SolvedCube()
}

// InSubgroup reports whether the cube lies in the phase-2 subgroup: all
// pieces oriented and the four slice edges inside their slice.
func (c Cube) InSubgroup() bool {
	return c.Corners.OriIndex() == 0 &&
		c.Edges.OriIndex() == 0 &&
		c.Edges.SliceLocIndex() == HomeSliceLoc
}

func (c Cube) String() string {
	return c.Corners.String() + "\n" + c.Edges.String()
}
