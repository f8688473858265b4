// Package neighborhood computes BLAST word neighborhoods.
//
// A query is cut into overlapping infixes of a fixed word size (Decompose).
// For each infix, Search enumerates every word over the scoring alphabet
// whose position-wise substitution score reaches a threshold, using a
// depth-first branch-and-bound: a branch is cut as soon as its partial score
// plus the best achievable score of the remaining positions falls below the
// threshold. Generator runs Search once per distinct infix on a worker pool
// and returns results in query order.
//
// Neighbor lists are sorted lexicographically by word. The search visits
// symbols in ascending byte order, so no sort pass is needed.
package neighborhood
