package output

import "blastnh/internal/neighborhood"

// Block is the neighborhood of one query position, tagged with the query it
// was decomposed from.
type Block struct {
	QueryID string
	neighborhood.Result
}

// Blocks tags every result with queryID.
func Blocks(queryID string, results []neighborhood.Result) []Block {
	out := make([]Block, len(results))
	for i, r := range results {
		out[i] = Block{QueryID: queryID, Result: r}
	}
	return out
}
