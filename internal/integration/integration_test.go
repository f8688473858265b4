// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blastnh/internal/app"
	"blastnh/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestNeighborsEndToEnd(t *testing.T) {
	code, out, stderr := run(t, "neighbors", "--matrix", "dna", "--query", "acgt", "-w", "3", "-T", "1", "-t", "1")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "query_id\tposition\tinfix\tcount\tneighbors", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "query\t0\tACG\t10\t"), lines[1])
	assert.Contains(t, lines[1], "ACG:3")
	assert.True(t, strings.HasPrefix(lines[2], "query\t1\tCGT\t10\t"), lines[2])
}

func TestNeighborsBLOSUM62JSON(t *testing.T) {
	code, out, stderr := run(t, "neighbors", "--query", "AHI", "-T", "14", "-o", "json")
	require.Equal(t, 0, code, stderr)

	var got []api.NeighborhoodV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, []api.NeighborV1{{Word: "AHI", Score: 16}, {Word: "AHL", Score: 14}, {Word: "AHV", Score: 15}}, got[0].Neighbors)
}

func TestNeighborsParallelMatchesSerial(t *testing.T) {
	fa := write(t, "q.fa", ">q1 first\nMKVLAAGIVGLLLAHIWCW\n>q2\nAHIAHIAHI\n")
	runThreads := func(threads int) string {
		code, out, stderr := run(t, "neighbors", "--query-fasta", fa, "-T", "11", "-o", "jsonl", "--threads", fmt.Sprint(threads))
		require.Equal(t, 0, code, stderr)
		return out
	}
	serial := runThreads(1)
	require.NotEmpty(t, serial)
	for _, threads := range []int{2, 4, 16} {
		assert.Equal(t, serial, runThreads(threads), "threads=%d", threads)
	}
	assert.Contains(t, serial, `"query_id":"q2"`)
}

func TestNeighborsInvalidThreads(t *testing.T) {
	for _, thr := range []string{"0", "-3"} {
		code, _, stderr := run(t, "neighbors", "--query", "AHI", "--threads", thr)
		assert.Equal(t, 2, code, thr)
		assert.Contains(t, stderr, "threads", thr)
	}
}

func TestNeighborsUnknownSymbolIsUsageError(t *testing.T) {
	code, out, stderr := run(t, "neighbors", "--matrix", "dna", "--query", "ACGN")
	assert.Equal(t, 2, code)
	assert.Empty(t, strings.TrimPrefix(out, "query_id\tposition\tinfix\tcount\tneighbors\n"))
	assert.Contains(t, stderr, "no score defined")
}

func TestNeighborsQueryShorterThanWord(t *testing.T) {
	code, out, stderr := run(t, "neighbors", "--query", "AH", "--no-header")
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, out)
}

func TestConfigFile(t *testing.T) {
	cfg := write(t, "blastnh.toml", "[search]\nmatrix = \"dna\"\nword_size = 2\nthreshold = 2\n\n[output]\nheader = false\n")
	code, out, stderr := run(t, "--config", cfg, "neighbors", "--query", "ACG")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "query\t0\tAC\t1\tAC:2\nquery\t1\tCG\t1\tCG:2\n", out)
}

func TestScanEndToEnd(t *testing.T) {
	subj := write(t, "subj.fa", ">s1\nTTTACGTTT\n>s2\nGGGG\n")
	code, out, stderr := run(t, "scan", "--matrix", "dna", "--query", "ACGT", "-w", "4", "-T", "4", "--subjects", subj)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "source_file\tsubject_id\tsubject_pos\tquery_pos\tword\tscore\tdiagonal\n"+
		subj+"\ts1\t3\t0\tACGT\t4\t3\n", out)
}

func TestScanNoMatchExitCode(t *testing.T) {
	subj := write(t, "subj.fa", ">s1\nGGGGGG\n")
	code, _, _ := run(t, "scan", "--matrix", "dna", "--query", "ACGT", "-w", "4", "-T", "4", subj)
	assert.Equal(t, 1, code)

	code, _, _ = run(t, "scan", "--matrix", "dna", "--query", "ACGT", "-w", "4", "-T", "4", "--no-match-exit-code", "0", subj)
	assert.Equal(t, 0, code)
}

func TestScanRequiresSubjects(t *testing.T) {
	code, _, stderr := run(t, "scan", "--query", "AHI")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "subject")
}

func TestIndexThenScan(t *testing.T) {
	db := filepath.Join(t.TempDir(), "q.idx")
	code, out, stderr := run(t, "index", "--matrix", "dna", "--query", "ACGTAC", "-w", "3", "-T", "3", "--db", db)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "4 words")

	subj := write(t, "s.fa", ">chr\nCGTA\n")
	direct := func(argv ...string) string {
		code, out, stderr := run(t, argv...)
		require.Equal(t, 0, code, stderr)
		return out
	}
	fromDB := direct("scan", "--db", db, "-o", "jsonl", subj)
	onTheFly := direct("scan", "--matrix", "dna", "--query", "ACGTAC", "-w", "3", "-T", "3", "-o", "jsonl", subj)
	assert.Equal(t, onTheFly, fromDB)

	var first api.SeedHitV1
	require.NoError(t, json.Unmarshal([]byte(strings.SplitN(fromDB, "\n", 2)[0]), &first))
	assert.Equal(t, api.SeedHitV1{SubjectID: "chr", SourceFile: subj, SubjectPos: 0, QueryPos: 1, Word: "CGT", Score: 3, Diagonal: -1}, first)
}

func TestScanMissingIndex(t *testing.T) {
	subj := write(t, "s.fa", ">chr\nCGTA\n")
	code, _, _ := run(t, "scan", "--db", filepath.Join(t.TempDir(), "nope"), subj)
	assert.Equal(t, 2, code)
}

func TestScanParallelMatchesSerial(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&b, ">s%d\n%s\n", i, strings.Repeat("ACGGTCA", i%7+1))
	}
	subj := write(t, "many.fa", b.String())
	runThreads := func(threads int) string {
		code, out, stderr := run(t, "scan", "--matrix", "dna", "--query", "ACGGTCAT", "-w", "3", "-T", "1",
			"-o", "jsonl", "-t", fmt.Sprint(threads), subj)
		require.Equal(t, 0, code, stderr)
		return out
	}
	serial := runThreads(1)
	require.NotEmpty(t, serial)
	assert.Equal(t, serial, runThreads(8))
}

func TestMatrixCommand(t *testing.T) {
	code, out, stderr := run(t, "matrix", "--matrix", "dna")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "# alphabet: ACGT")
	assert.Contains(t, out, "A  1 -1 -1 -1")

	code, out, _ = run(t, "matrix", "--list")
	require.Equal(t, 0, code)
	assert.Equal(t, "blosum62\ndna\n", out)

	code, _, _ = run(t, "matrix", "--matrix", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 2, code)
}

func TestUsageErrors(t *testing.T) {
	code, _, _ := run(t, "neighbors", "--bogus")
	assert.Equal(t, 2, code)

	code, _, _ = run(t, "neighbors", "--query", "AHI", "-o", "fasta")
	assert.Equal(t, 2, code)

	code, _, _ = run(t, "index", "--query", "AHI")
	assert.Equal(t, 2, code, "--db is required")
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := run(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "neighbors")

	code, out, _ = run(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "blastnh version")
}

func TestNeighborsQueryConflictReportedOnce(t *testing.T) {
	fa := write(t, "q.fa", ">q\nAHI\n")
	code, out, stderr := run(t, "neighbors", "--query", "AHI", "--query-fasta", fa)
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Equal(t, 1, strings.Count(stderr, "conflicts"), stderr)
}
