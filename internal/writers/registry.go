// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"blastnh/internal/output"
	"blastnh/internal/pipeline"
)

// StartFunc launches a writer goroutine fed by the returned channel.
type StartFunc[T any] func(out io.Writer, header bool, bufSize int) (chan<- T, <-chan error)

// Writer registries (format → start function). Register in init() blocks.
var (
	NeighborhoodWriters = map[string]StartFunc[output.Block]{}
	SeedHitWriters      = map[string]StartFunc[pipeline.Hit]{}
)

// Register helpers (idempotent last-wins)
func RegisterNeighborhood(format string, fn StartFunc[output.Block]) { NeighborhoodWriters[format] = fn }
func RegisterSeedHit(format string, fn StartFunc[pipeline.Hit])     { SeedHitWriters[format] = fn }

// StartNeighborhoodWriter dispatches to the writer registered for format.
// An unknown format yields a writer that drains its input and reports the error.
func StartNeighborhoodWriter(out io.Writer, format string, header bool, bufSize int) (chan<- output.Block, <-chan error) {
	fn, ok := NeighborhoodWriters[format]
	if !ok {
		return unknown[output.Block]("neighborhood", format, bufSize)
	}
	return fn(out, header, bufSize)
}

// StartSeedHitWriter dispatches to the writer registered for format.
func StartSeedHitWriter(out io.Writer, format string, header bool, bufSize int) (chan<- pipeline.Hit, <-chan error) {
	fn, ok := SeedHitWriters[format]
	if !ok {
		return unknown[pipeline.Hit]("seed hit", format, bufSize)
	}
	return fn(out, header, bufSize)
}

// Registered returns the sorted format names of a registry.
func Registered[T any](m map[string]StartFunc[T]) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func unknown[T any](kind, format string, bufSize int) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unknown %s format %q (no writer registered)", kind, format)
	}()
	return in, errCh
}
