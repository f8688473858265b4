package seedindex

import "errors"

var (
	// ErrWordSizeMismatch is returned when a neighbor word does not have the
	// index word size.
	ErrWordSizeMismatch = errors.New("word size mismatch")

	// ErrIndexNotFound is returned by Load when the directory holds no index.
	ErrIndexNotFound = errors.New("seed index not found")
)
