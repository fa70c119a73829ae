package cubesolver

import "strings"

// Face identifies one of the six cube faces.
type Face uint8

const (
	FaceL Face = 0 // Left
	FaceR Face = 1 // Right
	FaceU Face = 2 // Up
	FaceD Face = 3 // Down
	FaceF Face = 4 // Front
	FaceB Face = 5 // Back
)

func (f Face) String() string {
	switch f {
	case FaceL:
		return "L"
	case FaceR:
		return "R"
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Axis returns the turn axis of the face: L/R share axis 0, U/D axis 1,
// F/B axis 2. Opposite faces commute; faces on the same axis never need
// to be tried twice in a row in a canonical move sequence.
func (f Face) Axis() uint8 {
	return uint8(f) >> 1
}

// Opposite returns the face on the other side of the same axis.
func (f Face) Opposite() Face {
	return Face(uint8(f) ^ 1)
}

// Turn represents the direction and magnitude of a face turn.
type Turn uint8

const (
	TurnCW     Turn = 0 // Clockwise (90 degrees)
	TurnDouble Turn = 1 // Half turn (180 degrees)
	TurnCCW    Turn = 2 // Counter-clockwise (90 degrees)
)

// Move is one of the 18 canonical face turns, encoded as face*3 + turn so
// it can index move tables directly.
type Move uint8

const (
	MoveL Move = iota
	MoveL2
	MoveLPrime
	MoveR
	MoveR2
	MoveRPrime
	MoveU
	MoveU2
	MoveUPrime
	MoveD
	MoveD2
	MoveDPrime
	MoveF
	MoveF2
	MoveFPrime
	MoveB
	MoveB2
	MoveBPrime

	// NumMoves is the size of the full move set.
	NumMoves = 18
)

// Face returns the face this move turns.
func (m Move) Face() Face {
	return Face(m / 3)
}

// Turn returns the direction and magnitude of this move.
func (m Move) Turn() Turn {
	return Turn(m % 3)
}

// Inverse returns the move that undoes this move.
// L becomes L', L' becomes L, L2 stays L2.
func (m Move) Inverse() Move {
	switch m.Turn() {
	case TurnCW:
		return m + 2
	case TurnCCW:
		return m - 2
	default:
		return m
	}
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn() {
	case TurnCCW:
		suffix = "'"
	case TurnDouble:
		suffix = "2"
	}
	return m.Face().String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'L', 'l':
		face = FaceL
	case 'R', 'r':
		face = FaceR
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return 0, ErrInvalidNotation
	}

	turn := TurnCW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = TurnCCW
		case "2":
			turn = TurnDouble
		case "2'", "2`":
			turn = TurnDouble // Same as 180
		default:
			return 0, ErrInvalidNotation
		}
	}

	return Move(uint8(face)*3 + uint8(turn)), nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves: the reversed
// sequence of inverses.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
