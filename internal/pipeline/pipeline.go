package pipeline

import (
	"context"
	"fmt"
	"sync"

	"blastnh/internal/fasta"
	"blastnh/internal/seedindex"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Hit is a seed hit located in a subject record.
type Hit struct {
	seedindex.SeedHit
	SubjectID  string
	SourceFile string
}

// ForEachHit reads records from subjectFiles, scans each with sc on
// cfg.Threads workers, and calls visit for every hit in input order.
// It returns the first error encountered (including context cancellation).
func ForEachHit(
	ctx context.Context,
	cfg Config,
	subjectFiles []string,
	sc Scanner,
	visit func(Hit) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		seq        int
		rec        fasta.Record
		sourceFile string
	}
	type batch struct {
		seq  int
		hits []Hit
		err  error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan batch, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					var hits []Hit
					err := sc.Scan(j.rec.Seq, func(h seedindex.SeedHit) error {
						hits = append(hits, Hit{SeedHit: h, SubjectID: j.rec.ID, SourceFile: j.sourceFile})
						return nil
					})
					if err != nil {
						err = fmt.Errorf("%s: scan %s: %w", j.sourceFile, j.rec.ID, err)
					}
					select {
					case results <- batch{seq: j.seq, hits: hits, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: batches arrive in any order and are released in job order.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]batch)
		next := 0
		for b := range results {
			pending[b.seq] = b
			for {
				pb, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cerr != nil {
					continue
				}
				if pb.err != nil {
					cerr = pb.err
					cancel()
					continue
				}
				for _, h := range pb.hits {
					if err := visit(h); err != nil {
						cerr = err
						cancel()
						break
					}
				}
			}
		}
	}()

	// Feed work
	var ferr error
	seq := 0
feed:
	for _, path := range subjectFiles {
		err := fasta.Stream(ctx, path, func(rec fasta.Record) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{seq: seq, rec: rec, sourceFile: path}:
				seq++
				return nil
			}
		})
		if err != nil {
			// Keep scanning other files; first error will be returned.
			if ctx.Err() != nil {
				break feed
			}
			if ferr == nil {
				ferr = err
			}
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return ferr
}
