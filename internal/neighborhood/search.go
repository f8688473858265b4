package neighborhood

import (
	"fmt"
	"slices"
)

// Search returns the neighbors of infix: every word of length wordSize over
// the scorer's alphabet whose summed score against infix is at least
// threshold, sorted by word. An unreachable threshold or a non-positive
// wordSize yields an empty list. Scoring errors are returned unchanged in
// meaning (wrapped), and no partial list is returned with them.
func Search(infix string, sc Scorer, wordSize, threshold int) ([]Neighbor, error) {
	if sc == nil {
		return nil, ErrNilScorer
	}
	return newSearcher(sc, wordSize, threshold).search(infix)
}

// searcher holds what is shared read-only by all infix searches of a call.
type searcher struct {
	sc        Scorer
	alphabet  []byte // ascending, no duplicates
	wordSize  int
	threshold int
}

func newSearcher(sc Scorer, wordSize, threshold int) *searcher {
	alpha := slices.Clone(sc.Alphabet())
	slices.Sort(alpha)
	alpha = slices.Compact(alpha)
	return &searcher{sc: sc, alphabet: alpha, wordSize: wordSize, threshold: threshold}
}

// walk is the per-infix DFS state.
//
//	row[d*n+k]  score of alphabet[k] against the infix symbol at d
//	suffix[d]   best achievable score over positions d..wordSize-1
type walk struct {
	alphabet  []byte
	threshold int
	row       []int
	suffix    []int
	word      []byte
	out       []Neighbor
}

func (s *searcher) search(infix string) ([]Neighbor, error) {
	if s.wordSize <= 0 || len(s.alphabet) == 0 {
		return []Neighbor{}, nil
	}
	if len(infix) != s.wordSize {
		return nil, fmt.Errorf("%w: infix %q has length %d, word size is %d", ErrInvalidArgument, infix, len(infix), s.wordSize)
	}

	n := len(s.alphabet)
	w := &walk{
		alphabet:  s.alphabet,
		threshold: s.threshold,
		row:       make([]int, s.wordSize*n),
		suffix:    make([]int, s.wordSize+1),
		word:      make([]byte, s.wordSize),
		out:       []Neighbor{},
	}
	best := make([]int, s.wordSize)
	for d := 0; d < s.wordSize; d++ {
		for k, a := range s.alphabet {
			v, err := s.sc.Score(a, infix[d])
			if err != nil {
				return nil, fmt.Errorf("infix %q position %d: %w", infix, d, err)
			}
			w.row[d*n+k] = v
			if k == 0 || v > best[d] {
				best[d] = v
			}
		}
	}
	for d := s.wordSize - 1; d >= 0; d-- {
		w.suffix[d] = w.suffix[d+1] + best[d]
	}
	if w.suffix[0] < s.threshold {
		return w.out, nil
	}
	w.descend(0, 0)
	return w.out, nil
}

func (w *walk) descend(d, score int) {
	if d == len(w.word) {
		if score >= w.threshold {
			w.out = append(w.out, Neighbor{Word: string(w.word), Score: score})
		}
		return
	}
	n := len(w.alphabet)
	row := w.row[d*n : (d+1)*n]
	rest := w.suffix[d+1]
	for k, sym := range w.alphabet {
		next := score + row[k]
		if next+rest < w.threshold {
			continue
		}
		w.word[d] = sym
		w.descend(d+1, next)
	}
}
