package cubesolver

import "errors"

// Sentinel errors for the cubesolver package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesolver: invalid move notation")
	ErrInvalidFacelets = errors.New("cubesolver: invalid facelet string")

	// State validation errors
	ErrBadPieceSet    = errors.New("cubesolver: facelets do not form a full piece set")
	ErrBadCornerTwist = errors.New("cubesolver: corner twist sum is not a multiple of three")
	ErrBadEdgeFlip    = errors.New("cubesolver: edge flip sum is odd")
	ErrBadParity      = errors.New("cubesolver: corner and edge permutation parity differ")

	// Search errors
	ErrNoSolution    = errors.New("cubesolver: no solution within the configured maximum length")
	ErrDepthExceeded = errors.New("cubesolver: search exceeded the safety depth ceiling")

	// Table cache errors
	ErrCacheCorrupt = errors.New("cubesolver: table cache file is corrupt")
	ErrCacheVersion = errors.New("cubesolver: table cache file has an unsupported version")
)
