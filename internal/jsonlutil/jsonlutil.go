// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Reuse a 64 KiB buffered writer across stream writers to avoid per-writer mallocs.
// Encoders are tiny and tied to an io.Writer, so we (re)create them per goroutine.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a JSONL encoder goroutine for values of type T.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	return start(out, bufSize, func(w io.Writer) func(T) error {
		enc := json.NewEncoder(w)
		return func(v T) error { return encode(enc, v) }
	}, isBroken)
}

// StartMsgpack is Start for a stream of concatenated msgpack objects.
func StartMsgpack[T any](out io.Writer, bufSize int, encode func(*msgpack.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	return start(out, bufSize, func(w io.Writer) func(T) error {
		enc := msgpack.NewEncoder(w)
		return func(v T) error { return encode(enc, v) }
	}, isBroken)
}

func start[T any](out io.Writer, bufSize int, newEncode func(io.Writer) func(T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		// Rebind to the actual output while keeping the pooled buffer.
		bw.Reset(out)
		// Always put back to pool and drop references to 'out'.
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		encode := newEncode(bw)

		for v := range in {
			if err := encode(v); err != nil {
				// Keep senders unblocked until they close.
				for range in {
				}
				if isBroken(err) {
					err = nil
				}
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !isBroken(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}
