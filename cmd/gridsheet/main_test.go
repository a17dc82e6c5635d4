package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javajack/gridsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	c, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, gridsheet.DefaultRows, c.rows)
	assert.Equal(t, gridsheet.DefaultCols, c.cols)
	assert.False(t, c.tui)
	assert.Empty(t, c.script)
}

func TestParseFlags_Values(t *testing.T) {
	c, err := parseFlags([]string{"-script", "a.txt", "-out", "b.xlsx", "-sheet", "Data", "-rows", "5", "-cols", "3", "-v", "2"})
	require.NoError(t, err)
	assert.Equal(t, config{
		script:    "a.txt",
		out:       "b.xlsx",
		sheet:     "Data",
		rows:      5,
		cols:      3,
		verbosity: 2,
	}, c)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"-tui", "-script", "-"})
	assert.Error(t, err)
	_, err = parseFlags([]string{"-check"})
	assert.Error(t, err)
	_, err = parseFlags([]string{"-rows", "many"})
	assert.Error(t, err)
}

func TestRun_PrintsEmptyGrid(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(config{rows: 4, cols: 2}, nil, &out))
	assert.Contains(t, out.String(), "Grid: 4 rows x 2 columns")
	assert.Contains(t, out.String(), "(empty)")
}

func TestRun_ScriptFromStdinToWorkbook(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.xlsx")
	script := strings.Join([]string{
		`setCell("A1", "2")`,
		`setCell("A2", "5")`,
		`setCell("B1", "=SUM(A1:A2)")`,
		`show()`,
	}, "\n")

	var stdout bytes.Buffer
	c := config{script: "-", out: out, sheet: "Data", rows: 3, cols: 3}
	require.NoError(t, run(c, strings.NewReader(script), &stdout))
	assert.Contains(t, stdout.String(), "7")

	g, err := gridsheet.OpenXLSX(out, "Data", gridsheet.WithSize(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "7", g.Get(0, 1))
	assert.Equal(t, "5", g.Get(1, 0))
}

func TestRun_LoadsWorkbookAndRunsScriptFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.xlsx")
	require.NoError(t, gridsheet.SaveXLSX(in, gridsheet.NewGridFromRows([][]string{{"3", "4"}}), ""))

	path := filepath.Join(dir, "actions.txt")
	require.NoError(t, os.WriteFile(path, []byte("setCell(\"C1\", \"=MULTIPLY(A1,B1)\")\nshow()\n"), 0o644))

	var stdout bytes.Buffer
	require.NoError(t, run(config{in: in, script: path, rows: 1, cols: 3}, nil, &stdout))
	assert.Contains(t, stdout.String(), "12")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	err := run(config{script: filepath.Join(dir, "missing.txt"), rows: 1, cols: 1}, nil, &stdout)
	assert.ErrorContains(t, err, "open script")

	err = run(config{in: filepath.Join(dir, "missing.xlsx")}, nil, &stdout)
	assert.Error(t, err)

	err = run(config{script: "-", rows: 1, cols: 1}, strings.NewReader(`setCell("Z9", "1")`), &stdout)
	assert.ErrorContains(t, err, "line 1")
}

func TestRun_Check(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.xlsx")
	require.NoError(t, gridsheet.SaveXLSX(good, gridsheet.NewGridFromRows([][]string{{"1", "=FOO()"}}), ""))
	var stdout bytes.Buffer
	require.NoError(t, run(config{in: good, check: true}, nil, &stdout))
	assert.Contains(t, stdout.String(), "[WARN] B1")

	bad := filepath.Join(dir, "bad.xlsx")
	require.NoError(t, gridsheet.SaveXLSX(bad, gridsheet.NewGridFromRows([][]string{{"#VALUE!"}}), ""))
	stdout.Reset()
	err := run(config{in: bad, check: true}, nil, &stdout)
	assert.ErrorContains(t, err, "1 formula error(s)")
	assert.Contains(t, stdout.String(), "[ERROR] A1")
}

func TestReportFlagError(t *testing.T) {
	_, err := parseFlags([]string{"-check"})
	var stderr bytes.Buffer
	reportFlagError(&stderr, err)
	assert.Equal(t, "Error: invalid flags: -check needs -in\n", stderr.String())

	_, err = parseFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
	stderr.Reset()
	reportFlagError(&stderr, err)
	assert.Empty(t, stderr.String())
}
