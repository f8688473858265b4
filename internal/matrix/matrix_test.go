package matrix

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tiny = `# two-letter test matrix
   A  B
A  2 -1
B -1  3
`

func TestParseTiny(t *testing.T) {
	m, err := Parse("tiny", strings.NewReader(tiny))
	require.NoError(t, err)

	assert.Equal(t, []byte("AB"), m.Alphabet())
	s, err := m.Score('A', 'B')
	require.NoError(t, err)
	assert.Equal(t, -1, s)
	s, err = m.Score('B', 'B')
	require.NoError(t, err)
	assert.Equal(t, 3, s)
}

func TestParseRowsOutOfOrder(t *testing.T) {
	m, err := Parse("swapped", strings.NewReader("  A B\nB 0 5\nA 1 0\n"))
	require.NoError(t, err)
	s, err := m.Score('B', 'B')
	require.NoError(t, err)
	assert.Equal(t, 5, s)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "# only comments\n", ErrEmptyAlphabet},
		{"dup header", "  A A\nA 1 1\n", ErrDuplicateSymbol},
		{"short row", "  A B\nA 1\nB 1 1\n", ErrMalformedMatrix},
		{"bad score", "  A B\nA 1 x\nB 1 1\n", ErrMalformedMatrix},
		{"missing row", "  A B\nA 1 0\n", ErrMalformedMatrix},
		{"unknown row", "  A B\nA 1 0\nC 1 0\n", ErrMalformedMatrix},
		{"dup row", "  A B\nA 1 0\nA 1 0\n", ErrDuplicateSymbol},
		{"long symbol", "  AB C\n", ErrMalformedMatrix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.name, strings.NewReader(tt.text))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScoreLookupMiss(t *testing.T) {
	m := BLOSUM62()
	_, err := m.Score('A', 'J')
	assert.ErrorIs(t, err, ErrLookupMiss)
	_, err = m.Score('#', 'A')
	assert.ErrorIs(t, err, ErrLookupMiss)
}

func TestScoreLowercase(t *testing.T) {
	m := BLOSUM62()
	upper, err := m.Score('W', 'W')
	require.NoError(t, err)
	lower, err := m.Score('w', 'w')
	require.NoError(t, err)
	assert.Equal(t, 11, upper)
	assert.Equal(t, upper, lower)
}

func TestBLOSUM62(t *testing.T) {
	m := BLOSUM62()
	assert.Equal(t, []byte(StandardAminoAcids), m.Alphabet())
	assert.Len(t, m.Symbols(), 24)

	syms := m.Symbols()
	for _, a := range syms {
		for _, b := range syms {
			ab, err := m.Score(a, b)
			require.NoError(t, err)
			ba, err := m.Score(b, a)
			require.NoError(t, err)
			require.Equalf(t, ab, ba, "asymmetric at %c/%c", a, b)
		}
	}

	for _, c := range []struct {
		a, b byte
		want int
	}{
		{'A', 'A', 4}, {'H', 'H', 8}, {'I', 'I', 4}, {'L', 'I', 2}, {'V', 'I', 3},
		{'M', 'I', 1}, {'C', 'C', 9}, {'X', 'X', -1}, {'*', '*', 1},
	} {
		got, err := m.Score(c.a, c.b)
		require.NoError(t, err)
		assert.Equalf(t, c.want, got, "%c/%c", c.a, c.b)
	}
}

func TestMaxScore(t *testing.T) {
	m := BLOSUM62()
	got, err := m.MaxScore('I')
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	// X is scored but not enumerated; the best standard residue against X scores 0.
	got, err = m.MaxScore('X')
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestIdentity(t *testing.T) {
	m, err := Identity("dna", "ACGT", 1, -1)
	require.NoError(t, err)
	s, _ := m.Score('A', 'A')
	assert.Equal(t, 1, s)
	s, _ = m.Score('A', 'T')
	assert.Equal(t, -1, s)

	_, err = Identity("dup", "AA", 1, -1)
	assert.ErrorIs(t, err, ErrDuplicateSymbol)
	_, err = Identity("none", "", 1, -1)
	assert.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestWithAlphabet(t *testing.T) {
	m := BLOSUM62()
	r, err := m.WithAlphabet("lia")
	require.NoError(t, err)
	assert.Equal(t, []byte("LIA"), r.Alphabet())
	assert.Equal(t, []byte(StandardAminoAcids), m.Alphabet(), "original untouched")

	_, err = m.WithAlphabet("AJ")
	assert.ErrorIs(t, err, ErrLookupMiss)
	_, err = m.WithAlphabet("AA")
	assert.ErrorIs(t, err, ErrDuplicateSymbol)
	_, err = m.WithAlphabet("")
	assert.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestFormatRoundTrip(t *testing.T) {
	m := BLOSUM62()
	var buf bytes.Buffer
	require.NoError(t, m.Format(&buf))

	back, err := Parse("roundtrip", &buf)
	require.NoError(t, err)
	assert.Equal(t, m.Symbols(), back.Symbols())
	for _, a := range m.Symbols() {
		for _, b := range m.Symbols() {
			want, _ := m.Score(a, b)
			got, err := back.Score(a, b)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestBuiltinAndResolve(t *testing.T) {
	assert.Equal(t, []string{"blosum62", "dna"}, Names())

	m, err := Builtin("BLOSUM62")
	require.NoError(t, err)
	assert.Equal(t, "blosum62", m.Name())

	_, err = Builtin("pam250")
	assert.ErrorIs(t, err, ErrUnknownMatrix)

	m, err = Resolve("dna", "AC")
	require.NoError(t, err)
	assert.Equal(t, []byte("AC"), m.Alphabet())

	_, err = Resolve("/nonexistent/matrix.txt", "")
	assert.Error(t, err)
}
