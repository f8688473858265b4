// Package pipeline streams subject FASTA records through a seed Scanner on
// a set of worker goroutines and calls a visit callback per seed hit.
//
// The only contract to implement is Scanner (satisfied by *seedindex.Index).
// Hits are delivered in input order (file, record, subject position)
// whatever the thread count.
package pipeline
