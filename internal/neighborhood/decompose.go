package neighborhood

// Decompose returns every infix of query of length wordSize, in ascending
// position order. It returns an empty slice when wordSize is not positive or
// exceeds the query length.
func Decompose(query string, wordSize int) []Infix {
	if wordSize <= 0 || wordSize > len(query) {
		return []Infix{}
	}
	out := make([]Infix, 0, len(query)-wordSize+1)
	for i := 0; i+wordSize <= len(query); i++ {
		out = append(out, Infix{Pos: i, Seq: query[i : i+wordSize]})
	}
	return out
}
