package neighborhood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wordSize int
		want     []Infix
	}{
		{"overlapping", "ACGT", 2, []Infix{{0, "AC"}, {1, "CG"}, {2, "GT"}}},
		{"whole query", "ACGT", 4, []Infix{{0, "ACGT"}}},
		{"single symbols", "AC", 1, []Infix{{0, "A"}, {1, "C"}}},
		{"word longer than query", "ACG", 4, []Infix{}},
		{"zero word size", "ACG", 0, []Infix{}},
		{"negative word size", "ACG", -2, []Infix{}},
		{"empty query", "", 1, []Infix{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.query, tt.wordSize)
			assert.Equal(t, tt.want, got)
			for _, inf := range got {
				assert.Equal(t, tt.query[inf.Pos:inf.Pos+tt.wordSize], inf.Seq)
			}
		})
	}
}
