// Package fasta reads FASTA records for queries and subject sequences.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record represents a parsed FASTA sequence. Seq is uppercased.
type Record struct {
	ID  string
	Seq []byte
}

// Parse reads FASTA from r and calls emit once per record. Sequence lines
// before the first header form a record with an empty ID. Parse returns
// promptly when ctx is done.
func Parse(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id      string
		started bool
		seq     = make([]byte, 0, 1<<16)
	)
	flush := func() error {
		if !started && len(seq) == 0 {
			return nil
		}
		return emit(Record{ID: id, Seq: bytes.Clone(seq)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			started = true
			seq = seq[:0]
			continue
		}
		seq = append(seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// Stream opens path (see Open) and parses it.
func Stream(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := Parse(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadAll returns every record of path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := Stream(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
