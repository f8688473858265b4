package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a matrix in NCBI text format: '#' comment lines, a header row
// of single-character symbols, then one row per symbol starting with that
// symbol. Rows may appear in any order but every header symbol needs one.
func Parse(name string, r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	var (
		header []byte
		col    map[byte]int
		scores []int
		filled []bool
		ln     int
	)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if header == nil {
			col = make(map[byte]int, len(f))
			for _, tok := range f {
				if len(tok) != 1 {
					return nil, fmt.Errorf("%w: %s:%d header symbol %q is not one character", ErrMalformedMatrix, name, ln, tok)
				}
				s := strings.ToUpper(tok)[0]
				if _, dup := col[s]; dup {
					return nil, fmt.Errorf("%w: %s:%d header symbol %q", ErrDuplicateSymbol, name, ln, tok)
				}
				col[s] = len(header)
				header = append(header, s)
			}
			scores = make([]int, len(header)*len(header))
			filled = make([]bool, len(header))
			continue
		}
		if len(f[0]) != 1 {
			return nil, fmt.Errorf("%w: %s:%d row symbol %q is not one character", ErrMalformedMatrix, name, ln, f[0])
		}
		row, ok := col[strings.ToUpper(f[0])[0]]
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d row symbol %q not in header", ErrMalformedMatrix, name, ln, f[0])
		}
		if filled[row] {
			return nil, fmt.Errorf("%w: %s:%d row %q", ErrDuplicateSymbol, name, ln, f[0])
		}
		if len(f)-1 != len(header) {
			return nil, fmt.Errorf("%w: %s:%d row %q has %d scores, want %d", ErrMalformedMatrix, name, ln, f[0], len(f)-1, len(header))
		}
		for j, tok := range f[1:] {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %s:%d bad score %q", ErrMalformedMatrix, name, ln, tok)
			}
			scores[row*len(header)+j] = v
		}
		filled[row] = true
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptyAlphabet, name)
	}
	for i, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("%w: %s: missing row for %q", ErrMalformedMatrix, name, header[i])
		}
	}
	return newMatrix(name, header, scores)
}

// Load parses the matrix file at path.
func Load(path string) (*Matrix, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Parse(path, fh)
}
