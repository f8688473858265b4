// pkg/api/seedhit_v1.go
package api

// SeedHitV1 is the stable schema for a neighborhood word found in a subject.
type SeedHitV1 struct {
	SubjectID  string `json:"subject_id" msgpack:"subject_id"`
	SourceFile string `json:"source_file,omitempty" msgpack:"source_file,omitempty"`
	SubjectPos int    `json:"subject_pos" msgpack:"subject_pos"`
	QueryPos   int    `json:"query_pos" msgpack:"query_pos"`
	Word       string `json:"word" msgpack:"word"`
	Score      int    `json:"score" msgpack:"score"`
	Diagonal   int    `json:"diagonal" msgpack:"diagonal"`
}
