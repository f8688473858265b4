package writers

import (
	"io"

	"blastnh/internal/output"
)

func init() {
	RegisterNeighborhood(output.FormatText, startNeighborhoodText)
	RegisterNeighborhood(output.FormatJSON, startNeighborhoodJSON)
}

func startNeighborhoodText(out io.Writer, header bool, bufSize int) (chan<- output.Block, <-chan error) {
	in, errCh := channels[output.Block](bufSize)
	go func() {
		errCh <- output.StreamNeighborhoodsTSV(out, in, header)
	}()
	return in, errCh
}

// JSON is a single array, so the writer buffers until the input closes.
func startNeighborhoodJSON(out io.Writer, _ bool, bufSize int) (chan<- output.Block, <-chan error) {
	in, errCh := channels[output.Block](bufSize)
	go func() {
		var buf []output.Block
		for b := range in {
			buf = append(buf, b)
		}
		errCh <- output.WriteNeighborhoodsJSON(out, buf)
	}()
	return in, errCh
}

func channels[T any](bufSize int) (chan T, chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	return make(chan T, bufSize), make(chan error, 1)
}
