package writers

import (
	"io"

	"blastnh/internal/output"
	"blastnh/internal/pipeline"
)

func init() {
	RegisterSeedHit(output.FormatText, startSeedHitText)
	RegisterSeedHit(output.FormatJSON, startSeedHitJSON)
}

func startSeedHitText(out io.Writer, header bool, bufSize int) (chan<- pipeline.Hit, <-chan error) {
	in, errCh := channels[pipeline.Hit](bufSize)
	go func() {
		errCh <- output.StreamSeedHitsTSV(out, in, header)
	}()
	return in, errCh
}

func startSeedHitJSON(out io.Writer, _ bool, bufSize int) (chan<- pipeline.Hit, <-chan error) {
	in, errCh := channels[pipeline.Hit](bufSize)
	go func() {
		var buf []pipeline.Hit
		for h := range in {
			buf = append(buf, h)
		}
		errCh <- output.WriteSeedHitsJSON(out, buf)
	}()
	return in, errCh
}
