// pkg/api/neighborhood_v1.go
package api

// NeighborV1 is one word of a neighborhood with its score against the infix.
type NeighborV1 struct {
	Word  string `json:"word" msgpack:"word"`
	Score int    `json:"score" msgpack:"score"`
}

// NeighborhoodV1 is the stable JSON/JSONL/msgpack schema for one query position.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type NeighborhoodV1 struct {
	QueryID   string       `json:"query_id,omitempty" msgpack:"query_id,omitempty"`
	Position  int          `json:"position" msgpack:"position"`
	Infix     string       `json:"infix" msgpack:"infix"`
	Neighbors []NeighborV1 `json:"neighbors" msgpack:"neighbors"`
}
