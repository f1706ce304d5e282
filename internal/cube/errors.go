package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// Turn errors
	ErrTurnInProgress = errors.New("cube: face turn already in progress")
	ErrInvalidNormal  = errors.New("cube: face normal must have exactly one component of +1 or -1")
	ErrNotQuarterTurn = errors.New("cube: turn angle is not a quarter turn")

	// State errors
	ErrNotAligned = errors.New("cube: cubies are not aligned to the lattice")

	// Parsing errors
	ErrInvalidMove = errors.New("cube: invalid move notation")
)
