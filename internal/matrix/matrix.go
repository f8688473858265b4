// Package matrix provides substitution scoring matrices for neighborhood search.
//
// A Matrix distinguishes the symbols it can score (every row/column of the
// table) from the alphabet it enumerates. BLOSUM62, for instance, scores the
// ambiguity codes B, Z, X and the stop symbol but only enumerates the twenty
// standard residues.
package matrix

import (
	"bufio"
	"fmt"
	"io"
)

// Matrix is an immutable dense substitution matrix. It is safe for
// concurrent use.
type Matrix struct {
	name     string
	symbols  []byte
	alphabet []byte
	index    [256]int16
	scores   []int
}

// newMatrix takes ownership of symbols and scores (row-major, len(symbols)^2).
func newMatrix(name string, symbols []byte, scores []int) (*Matrix, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if len(scores) != len(symbols)*len(symbols) {
		return nil, fmt.Errorf("%w: %d scores for %d symbols", ErrMalformedMatrix, len(scores), len(symbols))
	}
	m := &Matrix{name: name, symbols: symbols, alphabet: symbols, scores: scores}
	for i := range m.index {
		m.index[i] = -1
	}
	for i, s := range symbols {
		if m.index[s] >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
		}
		m.index[s] = int16(i)
	}
	// Lowercase letters resolve to their uppercase rows unless defined themselves.
	for i, s := range symbols {
		if s >= 'A' && s <= 'Z' && m.index[s+'a'-'A'] < 0 {
			m.index[s+'a'-'A'] = int16(i)
		}
	}
	return m, nil
}

// Identity builds a matrix over alphabet scoring match on the diagonal and
// mismatch elsewhere.
func Identity(name, alphabet string, match, mismatch int) (*Matrix, error) {
	syms := []byte(alphabet)
	n := len(syms)
	scores := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				scores[i*n+j] = match
			} else {
				scores[i*n+j] = mismatch
			}
		}
	}
	return newMatrix(name, syms, scores)
}

// Name is the builtin name or source path of the matrix.
func (m *Matrix) Name() string { return m.name }

// Alphabet returns the enumeration alphabet in matrix order.
func (m *Matrix) Alphabet() []byte { return append([]byte(nil), m.alphabet...) }

// Symbols returns every scoreable symbol in header order.
func (m *Matrix) Symbols() []byte { return append([]byte(nil), m.symbols...) }

// Score returns the substitution score of a against b.
func (m *Matrix) Score(a, b byte) (int, error) {
	i, j := m.index[a], m.index[b]
	if i < 0 || j < 0 {
		return 0, fmt.Errorf("%w: %q/%q in %s", ErrLookupMiss, a, b, m.name)
	}
	return m.scores[int(i)*len(m.symbols)+int(j)], nil
}

// MaxScore returns the best score any alphabet symbol achieves against b.
func (m *Matrix) MaxScore(b byte) (int, error) {
	best := 0
	for k, a := range m.alphabet {
		s, err := m.Score(a, b)
		if err != nil {
			return 0, err
		}
		if k == 0 || s > best {
			best = s
		}
	}
	return best, nil
}

// WithAlphabet returns a copy of m that enumerates only the given symbols.
// Every symbol must be scoreable by m.
func (m *Matrix) WithAlphabet(alphabet string) (*Matrix, error) {
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}
	var seen [256]bool
	syms := make([]byte, 0, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		s := alphabet[i]
		if m.index[s] < 0 {
			return nil, fmt.Errorf("%w: %q is not scored by %s", ErrLookupMiss, s, m.name)
		}
		// Store the canonical (header) byte so lowercase input maps to the row symbol.
		s = m.symbols[m.index[s]]
		if seen[s] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
		}
		seen[s] = true
		syms = append(syms, s)
	}
	cp := *m
	cp.alphabet = syms
	return &cp, nil
}

// Format writes m in NCBI text format.
func (m *Matrix) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", m.name)
	fmt.Fprintf(bw, "# alphabet: %s\n", m.alphabet)
	bw.WriteString(" ")
	for _, s := range m.symbols {
		fmt.Fprintf(bw, "  %c", s)
	}
	bw.WriteByte('\n')
	n := len(m.symbols)
	for i, s := range m.symbols {
		bw.WriteByte(s)
		for j := 0; j < n; j++ {
			fmt.Fprintf(bw, " %2d", m.scores[i*n+j])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
