package output

// Canonical header rows for text/TSV outputs.
// Keep these as the single source of truth; all writers should use them.
const (
	NeighborhoodTSVHeader = "query_id\tposition\tinfix\tcount\tneighbors"
	SeedHitTSVHeader      = "source_file\tsubject_id\tsubject_pos\tquery_pos\tword\tscore\tdiagonal"
)
