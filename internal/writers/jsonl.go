// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"blastnh/internal/jsonlutil"
	"blastnh/internal/output"
	"blastnh/internal/pipeline"
)

func init() {
	RegisterNeighborhood(output.FormatJSONL, StartNeighborhoodJSONLWriter)
	RegisterSeedHit(output.FormatJSONL, StartSeedHitJSONLWriter)
}

// StartNeighborhoodJSONLWriter streams each block as one JSON line (v1).
func StartNeighborhoodJSONLWriter(out io.Writer, _ bool, bufSize int) (chan<- output.Block, <-chan error) {
	return jsonlutil.Start[output.Block](out, bufSize,
		func(enc *json.Encoder, b output.Block) error {
			return enc.Encode(output.ToAPINeighborhood(b))
		},
		IsBrokenPipe,
	)
}

// StartSeedHitJSONLWriter streams each seed hit as one JSON line (v1).
func StartSeedHitJSONLWriter(out io.Writer, _ bool, bufSize int) (chan<- pipeline.Hit, <-chan error) {
	return jsonlutil.Start[pipeline.Hit](out, bufSize,
		func(enc *json.Encoder, h pipeline.Hit) error {
			return enc.Encode(output.ToAPISeedHit(h))
		},
		IsBrokenPipe,
	)
}
