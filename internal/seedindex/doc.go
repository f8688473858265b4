// Package seedindex turns query neighborhoods into a lookup structure for
// database scanning: every neighbor word maps to the query positions whose
// neighborhood contains it. Scanning a subject sequence with the index
// yields the word hits that seed BLAST extensions.
//
// Indexes can be persisted to a badger directory with Save and reopened with
// Load.
package seedindex
