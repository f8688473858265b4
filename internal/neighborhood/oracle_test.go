package neighborhood

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// bruteForce enumerates all |alphabet|^len(infix) words odometer-style and
// keeps those reaching threshold. Output is sorted by word.
func bruteForce(t *testing.T, sc Scorer, infix string, threshold int) []Neighbor {
	t.Helper()
	alpha := slices.Clone(sc.Alphabet())
	slices.Sort(alpha)
	k := len(infix)
	if k == 0 || len(alpha) == 0 {
		return []Neighbor{}
	}
	idx := make([]int, k)
	word := make([]byte, k)
	out := []Neighbor{}
	for {
		score := 0
		for i, j := range idx {
			word[i] = alpha[j]
			s, err := sc.Score(alpha[j], infix[i])
			require.NoError(t, err)
			score += s
		}
		if score >= threshold {
			out = append(out, Neighbor{Word: string(word), Score: score})
		}
		pos := k - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(alpha) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}

// funcScorer adapts a function to Scorer.
type funcScorer struct {
	alphabet string
	fn       func(a, b byte) (int, error)
}

func (f funcScorer) Alphabet() []byte             { return []byte(f.alphabet) }
func (f funcScorer) Score(a, b byte) (int, error) { return f.fn(a, b) }
