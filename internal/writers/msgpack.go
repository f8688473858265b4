package writers

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"blastnh/internal/jsonlutil"
	"blastnh/internal/output"
	"blastnh/internal/pipeline"
)

func init() {
	RegisterNeighborhood(output.FormatMsgpack, StartNeighborhoodMsgpackWriter)
	RegisterSeedHit(output.FormatMsgpack, StartSeedHitMsgpackWriter)
}

// StartNeighborhoodMsgpackWriter streams each block as one msgpack object (v1).
func StartNeighborhoodMsgpackWriter(out io.Writer, _ bool, bufSize int) (chan<- output.Block, <-chan error) {
	return jsonlutil.StartMsgpack[output.Block](out, bufSize,
		func(enc *msgpack.Encoder, b output.Block) error {
			return enc.Encode(output.ToAPINeighborhood(b))
		},
		IsBrokenPipe,
	)
}

// StartSeedHitMsgpackWriter streams each seed hit as one msgpack object (v1).
func StartSeedHitMsgpackWriter(out io.Writer, _ bool, bufSize int) (chan<- pipeline.Hit, <-chan error) {
	return jsonlutil.StartMsgpack[pipeline.Hit](out, bufSize,
		func(enc *msgpack.Encoder, h pipeline.Hit) error {
			return enc.Encode(output.ToAPISeedHit(h))
		},
		IsBrokenPipe,
	)
}
