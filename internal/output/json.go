// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"blastnh/internal/pipeline"
	"blastnh/pkg/api"
)

// ToAPINeighborhood converts a Block to the stable wire schema (v1).
func ToAPINeighborhood(b Block) api.NeighborhoodV1 {
	v := api.NeighborhoodV1{
		QueryID:   b.QueryID,
		Position:  b.Pos,
		Infix:     b.Infix,
		Neighbors: make([]api.NeighborV1, len(b.Neighbors)),
	}
	for i, n := range b.Neighbors {
		v.Neighbors[i] = api.NeighborV1{Word: n.Word, Score: n.Score}
	}
	return v
}

// ToAPISeedHit converts a pipeline hit to the stable wire schema (v1).
func ToAPISeedHit(h pipeline.Hit) api.SeedHitV1 {
	return api.SeedHitV1{
		SubjectID:  h.SubjectID,
		SourceFile: h.SourceFile,
		SubjectPos: h.SubjectPos,
		QueryPos:   h.QueryPos,
		Word:       h.Word,
		Score:      h.Score,
		Diagonal:   h.Diagonal(),
	}
}

// WriteNeighborhoodsJSON writes a single JSON array of v1 neighborhoods (pretty-indented).
func WriteNeighborhoodsJSON(w io.Writer, list []Block) error {
	out := make([]api.NeighborhoodV1, 0, len(list))
	for _, b := range list {
		out = append(out, ToAPINeighborhood(b))
	}
	return encodePretty(w, out)
}

// WriteSeedHitsJSON writes a single JSON array of v1 seed hits (pretty-indented).
func WriteSeedHitsJSON(w io.Writer, list []pipeline.Hit) error {
	out := make([]api.SeedHitV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPISeedHit(h))
	}
	return encodePretty(w, out)
}

// encodePretty writes v as indented JSON to w.
func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
