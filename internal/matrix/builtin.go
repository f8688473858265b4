package matrix

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// StandardAminoAcids is the enumeration alphabet of the protein builtins.
const StandardAminoAcids = "ARNDCQEGHILKMFPSTWYV"

//go:embed data/blosum62.txt
var blosum62Text string

var blosum62 = sync.OnceValues(func() (*Matrix, error) {
	m, err := Parse("blosum62", strings.NewReader(blosum62Text))
	if err != nil {
		return nil, err
	}
	return m.WithAlphabet(StandardAminoAcids)
})

var builtins = map[string]func() (*Matrix, error){
	"blosum62": blosum62,
	"dna":      func() (*Matrix, error) { return Identity("dna", "ACGT", 1, -1) },
}

// Names lists the builtin matrix names.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for k := range builtins {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Builtin returns a named builtin matrix.
func Builtin(name string) (*Matrix, error) {
	fn, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownMatrix, name, strings.Join(Names(), ", "))
	}
	return fn()
}

// BLOSUM62 returns the builtin BLOSUM62 matrix.
func BLOSUM62() *Matrix {
	m, err := blosum62()
	if err != nil {
		panic(err) // embedded data is fixed
	}
	return m
}

// Resolve returns the builtin called spec, or loads spec as a file path.
// A non-empty alphabet restricts the enumeration alphabet.
func Resolve(spec, alphabet string) (*Matrix, error) {
	var (
		m   *Matrix
		err error
	)
	if _, ok := builtins[strings.ToLower(spec)]; ok {
		m, err = Builtin(spec)
	} else {
		m, err = Load(spec)
	}
	if err != nil {
		return nil, err
	}
	if alphabet != "" {
		return m.WithAlphabet(alphabet)
	}
	return m, nil
}
