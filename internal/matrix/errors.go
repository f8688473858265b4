package matrix

import "errors"

var (
	// ErrLookupMiss is returned when a symbol pair has no defined score.
	ErrLookupMiss = errors.New("no score defined for symbol pair")

	// ErrEmptyAlphabet is returned when a matrix or alphabet has no symbols.
	ErrEmptyAlphabet = errors.New("empty alphabet")

	// ErrDuplicateSymbol is returned when a symbol occurs twice in a header or alphabet.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrMalformedMatrix is returned for unparsable matrix text.
	ErrMalformedMatrix = errors.New("malformed scoring matrix")

	// ErrUnknownMatrix is returned by Builtin for names it does not know.
	ErrUnknownMatrix = errors.New("unknown builtin matrix")
)
