package idtree

import "errors"

// Handle errors
var (
	// ErrHandleInvalid indicates that a NodeID does not resolve to a live node.
	// The slot is out of range, currently free, or was reused by a later insert.
	ErrHandleInvalid = errors.New("node id does not resolve to a node in this tree")
)

// Structural errors
var (
	// ErrInvalidOperation indicates that a structural change would break the
	// tree shape (a cycle, or a second root).
	ErrInvalidOperation = errors.New("invalid tree operation")

	// ErrCorrupt indicates that CheckInvariants found the links inconsistent.
	ErrCorrupt = errors.New("tree invariant violated")
)

// Configuration errors
var (
	// ErrInvalidOptions indicates that decoded tree options are out of range.
	ErrInvalidOptions = errors.New("invalid tree options")
)
