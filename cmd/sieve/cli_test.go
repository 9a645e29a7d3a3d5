package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree and returns stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func decodeReport(t *testing.T, s string) report {
	t.Helper()
	var r report
	require.NoError(t, json.Unmarshal([]byte(s), &r), s)

	return r
}

func TestParseCmd_JSON(t *testing.T) {
	out, _, err := run(t, "", "parse", "3@2|5@3", "-o", "json")
	require.NoError(t, err)

	r := decodeReport(t, out)
	assert.Equal(t, "3@2|5@3", r.Text)
	assert.Equal(t, "text", r.Source)
	assert.Equal(t, 15, r.Period)
	assert.Equal(t, "001101001001011", r.Bits)
	assert.Equal(t, []int{2, 3, 5, 8, 11, 13, 14}, r.Segment)
	assert.Equal(t, []int{1, 2, 3, 3, 2, 1}, r.Intervals)
	assert.Equal(t, 0, r.Min)
	assert.Equal(t, 15, r.Max)
	assert.Equal(t, "3@2|5@3", r.Compressed)
}

func TestParseCmd_RangeAndText(t *testing.T) {
	out, _, err := run(t, "", "parse", "5@4", "--min", "0", "--max", "20", "--shift", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "text:       5@4\n")
	assert.Contains(t, out, "range:      [0, 20]\n")
	assert.Contains(t, out, "segment:    [5 10 15 20]\n")
	assert.Contains(t, out, "intervals:  [5 5 5]\n")

	_, _, err = run(t, "", "parse", "5@4", "--min", "9", "--max", "3")
	assert.ErrorContains(t, err, "empty range")
}

func TestParseCmd_Recompress(t *testing.T) {
	out, _, err := run(t, "", "parse", "5@3|3@2", "--recompress", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "3@2|5@3", decodeReport(t, out).Text)
}

func TestParseCmd_Malformed(t *testing.T) {
	_, _, err := run(t, "", "parse", "((3@2))")
	assert.ErrorContains(t, err, "nested parentheses")
}

func TestCompressCmd(t *testing.T) {
	out, _, err := run(t, "", "compress", "2,3,5", "8", "11,13,14", "-o", "json")
	require.NoError(t, err)
	r := decodeReport(t, out)
	assert.Equal(t, "3@2|5@3", r.Text)
	assert.Equal(t, "points", r.Source)
	assert.Equal(t, 2, r.Min)
	assert.Equal(t, 14, r.Max)
	assert.Equal(t, []int{2, 3, 5, 8, 11, 13, 14}, r.Segment)

	_, _, err = run(t, "", "compress", "1")
	assert.ErrorContains(t, err, "at least two distinct points")

	_, _, err = run(t, "", "compress", "1,x")
	assert.ErrorContains(t, err, `not an integer: "x"`)

	_, _, err = run(t, "", "compress", "0,5", "--max-modulus", "2")
	assert.ErrorContains(t, err, "exhausted")
}

// TestCompressCmd_LargePeriod compresses an irregular rhythm whose formula
// has a period of about 2.4e11 and still lists the exact onsets.
func TestCompressCmd_LargePeriod(t *testing.T) {
	out, _, err := run(t, "", "compress", "0,1,3,7,12,20,30,44,65,80", "-o", "json")
	require.NoError(t, err)
	r := decodeReport(t, out)
	assert.Equal(t, []int{0, 1, 3, 7, 12, 20, 30, 44, 65, 80}, r.Segment)
	assert.Equal(t, 239586939900, r.Period)
	assert.Empty(t, r.Bits, "the period is not materialized")
	assert.Empty(t, r.Compressed)
}

func TestParseCmd_LargePeriod(t *testing.T) {
	formula := "44@0|43@1|41@3|37@7|53@12|45@20|35@30|50@80"
	_, _, err := run(t, "", "parse", formula)
	assert.ErrorContains(t, err, "too long to list")

	out, _, err := run(t, "", "parse", formula, "--min", "0", "--max", "30", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 7, 12, 20, 30}, decodeReport(t, out).Segment)
}

func TestBinaryCmd(t *testing.T) {
	for _, args := range [][]string{
		{"binary", "001101001001011"},
		{"binary", "0,0,1,1,0,1,0,0,1,0,0,1,0,1,1"},
		{"binary", "0", "0", "1", "1", "0", "1", "0", "0", "1", "0", "0", "1", "0", "1", "1"},
	} {
		out, _, err := run(t, "", append(args, "-o", "json")...)
		require.NoError(t, err, args)
		r := decodeReport(t, out)
		assert.Equal(t, "3@2|5@3", r.Text)
		assert.Equal(t, "binary", r.Source)
	}

	_, _, err := run(t, "", "binary", "0120")
	assert.ErrorContains(t, err, "only 0 and 1")
}

func TestBatchCmd_Stdin(t *testing.T) {
	input := strings.Join([]string{
		"# reference sieves",
		"3@2|5@3",
		"",
		"2 3 5 8 11 13 14",
		"5@4|6@1|(3@2&13@7)",
		"4,4",
	}, "\n")

	out, errOut, err := run(t, input, "batch", "--concurrency", "3", "-o", "json", "--log-level", "warn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 4 lines failed")
	assert.Contains(t, errOut, "batch line failed")

	var reports []report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 4)

	assert.Equal(t, []int{2, 4, 5, 6}, []int{reports[0].Line, reports[1].Line, reports[2].Line, reports[3].Line},
		"input order is kept regardless of concurrency")
	assert.Equal(t, "3@2|5@3", reports[0].Text)
	assert.Equal(t, "3@2|5@3", reports[1].Text)
	assert.Equal(t, 390, reports[2].Period)
	assert.Contains(t, reports[3].Error, "at least two distinct points")
}

func TestBatchCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sieves.txt")
	require.NoError(t, os.WriteFile(path, []byte("3@2|5@3\n5@4\n"), 0o600))

	out, _, err := run(t, "", "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# line 1\ntext:       3@2|5@3\n")
	assert.Contains(t, out, "# line 2\ntext:       5@4\n")

	_, _, err = run(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestBatchCmd_BadConcurrency(t *testing.T) {
	_, _, err := run(t, "3@2\n", "batch", "--concurrency", "0")
	assert.ErrorContains(t, err, "invalid config")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sieve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\nmax_modulus: 2\n"), 0o600))

	_, _, err := run(t, "", "--config", path, "compress", "0,5")
	assert.ErrorContains(t, err, "exhausted", "max_modulus from file applies")

	out, _, err := run(t, "", "--config", path, "compress", "0,5", "--max-modulus", "0")
	require.NoError(t, err, "flag overrides file")
	assert.Equal(t, "5@0", decodeReport(t, out).Text, "output: json from file applies")
}
