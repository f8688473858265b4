// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"blastnh/internal/pipeline"
)

// StreamNeighborhoodsTSV writes one TSV row per block as blocks arrive.
func StreamNeighborhoodsTSV(w io.Writer, in <-chan Block, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, NeighborhoodTSVHeader); err != nil {
			drain(in)
			return err
		}
	}
	for b := range in {
		if _, err := fmt.Fprintln(w, FormatBlockRowTSV(b)); err != nil {
			drain(in)
			return err
		}
	}
	return nil
}

// StreamSeedHitsTSV writes one TSV row per hit as hits arrive.
func StreamSeedHitsTSV(w io.Writer, in <-chan pipeline.Hit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SeedHitTSVHeader); err != nil {
			drain(in)
			return err
		}
	}
	for h := range in {
		if _, err := fmt.Fprintln(w, FormatHitRowTSV(h)); err != nil {
			drain(in)
			return err
		}
	}
	return nil
}

// drain keeps producers from blocking after a write failure.
func drain[T any](in <-chan T) {
	for range in {
	}
}
