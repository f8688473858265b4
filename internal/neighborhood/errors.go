package neighborhood

import "errors"

var (
	// ErrInvalidArgument is returned for unusable parameters such as a
	// non-positive thread count. No search work is started.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNilScorer is returned by New when no scoring provider is given.
	ErrNilScorer = errors.New("scoring provider required")
)
