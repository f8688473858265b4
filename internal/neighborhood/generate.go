package neighborhood

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/panjf2000/ants/v2"
)

// Config holds neighborhood parameters.
type Config struct {
	WordSize  int
	Threshold int
	Threads   int         // worker count, must be >= 1; 1 runs sequentially
	Logger    *log.Logger // nil uses log.Default()
}

// Generator computes neighborhoods of whole queries.
type Generator struct {
	s       *searcher
	threads int
	logger  *log.Logger
}

// New validates cfg and returns a Generator. A Threads value below 1 fails
// with ErrInvalidArgument.
func New(sc Scorer, cfg Config) (*Generator, error) {
	if sc == nil {
		return nil, ErrNilScorer
	}
	if cfg.Threads < 1 {
		return nil, fmt.Errorf("%w: threads must be >= 1, got %d", ErrInvalidArgument, cfg.Threads)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		s:       newSearcher(sc, cfg.WordSize, cfg.Threshold),
		threads: cfg.Threads,
		logger:  logger,
	}, nil
}

// GenerateNeighborhood returns one Result per infix of query, in query order,
// each holding the alphabetically sorted neighbors of that infix.
func GenerateNeighborhood(query string, sc Scorer, wordSize, threshold, threads int) ([]Result, error) {
	g, err := New(sc, Config{WordSize: wordSize, Threshold: threshold, Threads: threads})
	if err != nil {
		return nil, err
	}
	return g.Generate(context.Background(), query)
}

// Generate computes the neighborhood of every infix of query. Identical
// infixes are searched once. A failing infix fails the whole call and no
// results are returned; ctx is checked between infix searches.
func (g *Generator) Generate(ctx context.Context, query string) ([]Result, error) {
	start := time.Now()
	infixes := Decompose(query, g.s.wordSize)
	results := make([]Result, len(infixes))

	// owner[i] is the index of the first infix with the same sequence as i.
	owner := make([]int, len(infixes))
	first := make(map[string]int, len(infixes))
	var tasks []int
	for i, inf := range infixes {
		results[i].Pos, results[i].Infix = inf.Pos, inf.Seq
		if j, ok := first[inf.Seq]; ok {
			owner[i] = j
			continue
		}
		first[inf.Seq] = i
		owner[i] = i
		tasks = append(tasks, i)
	}

	var err error
	if g.threads == 1 || len(tasks) < 2 {
		err = g.runSequential(ctx, infixes, tasks, results)
	} else {
		err = g.runPool(ctx, infixes, tasks, results)
	}
	if err != nil {
		return nil, err
	}

	for i, o := range owner {
		if o != i {
			results[i].Neighbors = slices.Clone(results[o].Neighbors)
		}
	}
	g.logger.Debug("neighborhood generated",
		"infixes", len(infixes), "distinct", len(tasks),
		"neighbors", CountNeighbors(results), "threads", g.threads,
		"elapsed", time.Since(start))
	return results, nil
}

func (g *Generator) runSequential(ctx context.Context, infixes []Infix, tasks []int, results []Result) error {
	for _, i := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		nb, err := g.searchInfix(infixes[i].Seq)
		if err != nil {
			return err
		}
		results[i].Neighbors = nb
	}
	return nil
}

// searchInfix runs one infix search and turns a scorer panic into an error.
func (g *Generator) searchInfix(seq string) (nb []Neighbor, err error) {
	defer func() {
		if r := recover(); r != nil {
			nb, err = nil, fmt.Errorf("infix %q: search panicked: %v", seq, r)
		}
	}()
	return g.s.search(seq)
}

// runPool fans tasks out to an ants pool. Each task writes only its own
// result slot and error slot, so collection needs no lock.
func (g *Generator) runPool(ctx context.Context, infixes []Infix, tasks []int, results []Result) error {
	pool, err := ants.NewPool(min(g.threads, len(tasks)))
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg     sync.WaitGroup
		failed atomic.Bool
		errs   = make([]error, len(tasks))
	)
	for ti, i := range tasks {
		if failed.Load() || ctx.Err() != nil {
			break
		}
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if failed.Load() {
				return
			}
			nb, err := g.searchInfix(infixes[i].Seq)
			if err != nil {
				errs[ti] = err
				failed.Store(true)
				return
			}
			results[i].Neighbors = nb
		})
		if submitErr != nil {
			wg.Done()
			errs[ti] = submitErr
			failed.Store(true)
			break
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return ctx.Err()
}
