package dynamo

import "errors"

// Domain errors for chain construction and simulation runs.
var (
	// ErrInvalidConfiguration indicates a chain with zero or negative joints.
	ErrInvalidConfiguration = errors.New("dynamo: invalid configuration (need at least one joint)")

	// ErrDimensionMismatch indicates caller-supplied arrays whose lengths
	// disagree with the joint count.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch")

	// ErrNonPositiveParameter indicates a mass, length, gravity, time step
	// or step count that must be strictly positive.
	ErrNonPositiveParameter = errors.New("dynamo: parameter must be positive")

	// ErrInvalidState indicates a state vector containing NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrSolveFailed indicates the least-squares factorization itself failed.
	// A merely singular matrix is not an error; the minimum-norm solution is
	// returned instead.
	ErrSolveFailed = errors.New("dynamo: least-squares factorization failed")
)
