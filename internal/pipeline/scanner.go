package pipeline

import "blastnh/internal/seedindex"

// Scanner is the minimal capability the pipeline needs.
// Any index (including fakes in tests) can satisfy this.
type Scanner interface {
	Scan(subject []byte, fn func(seedindex.SeedHit) error) error
}
