package neighborhood

// Scorer is the scoring provider consumed by the search. Implementations
// must be safe for concurrent reads; *matrix.Matrix is one.
type Scorer interface {
	// Alphabet returns the symbols candidate words are built from.
	Alphabet() []byte
	// Score returns the substitution score of a against b.
	Score(a, b byte) (int, error)
}

// Infix is the substring of the query of length word size starting at Pos.
type Infix struct {
	Pos int
	Seq string
}

// Neighbor is a word scoring at least the threshold against an infix.
type Neighbor struct {
	Word  string
	Score int
}

// Result is the neighborhood of a single infix.
type Result struct {
	Pos       int
	Infix     string
	Neighbors []Neighbor // sorted by Word
}

// CountNeighbors sums the neighbor list lengths of results.
func CountNeighbors(results []Result) int {
	n := 0
	for _, r := range results {
		n += len(r.Neighbors)
	}
	return n
}
