// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"blastnh/internal/neighborhood"
	"blastnh/internal/pipeline"
)

// NeighborsCSV renders neighbors as "word:score,word:score".
func NeighborsCSV(ns []neighborhood.Neighbor) string {
	if len(ns) == 0 {
		return ""
	}
	var b strings.Builder
	for i, n := range ns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(n.Word)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(n.Score))
	}
	return b.String()
}

// FormatBlockRowTSV returns the neighborhood columns (no trailing newline).
func FormatBlockRowTSV(b Block) string {
	return fmt.Sprintf("%s\t%d\t%s\t%d\t%s",
		b.QueryID, b.Pos, b.Infix, len(b.Neighbors), NeighborsCSV(b.Neighbors))
}

// FormatHitRowTSV returns the seed hit columns (no trailing newline).
func FormatHitRowTSV(h pipeline.Hit) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%s\t%d\t%d",
		h.SourceFile, h.SubjectID, h.SubjectPos, h.QueryPos, h.Word, h.Score, h.Diagonal())
}
