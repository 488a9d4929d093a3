package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ehrlens/errs"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := run(args, &out, zerolog.Nop())

	return out.String(), err
}

func TestRunLookup(t *testing.T) {
	ref := writeFile(t, t.TempDir(), "ref.csv", "file_name,SYSTOLIC,HBA1C\nvitals,1,\nlabs,,1\nmixed,1,1\n")

	out, err := runCmd(t, "lookup", "-ref", ref, "SYSTOLIC")
	require.NoError(t, err)
	require.Equal(t, "mixed\nvitals\n", out)

	out, err = runCmd(t, "lookup", "-ref", ref, "SYSTOLIC", "HBA1C")
	require.NoError(t, err)
	require.Equal(t, "mixed\n", out)

	_, err = runCmd(t, "lookup", "-ref", ref)
	require.ErrorIs(t, err, errs.ErrEmptyColumns)

	_, err = runCmd(t, "lookup", "SYSTOLIC")
	require.ErrorIs(t, err, errUsage)
}

func TestRunHist(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "obs.csv", "IDEHR,HR\n01,60\n01,61\n02,\n03,70\n")
	chart := filepath.Join(dir, "hr.svg")

	out, err := runCmd(t, "hist", "-data", data, "-column", "HR", "-out", chart, "-bins", "4")
	require.NoError(t, err)
	require.Equal(t, "No. of unique IDEHR: 2\n", out)

	svg, err := os.ReadFile(chart)
	require.NoError(t, err)
	require.Contains(t, string(svg), "<svg")

	_, err = runCmd(t, "hist", "-data", data, "-column", "HR", "-out", filepath.Join(dir, "hr.bmp"))
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = runCmd(t, "hist", "-data", data, "-out", chart)
	require.ErrorIs(t, err, errUsage)
}

func TestRunScale(t *testing.T) {
	out, err := runCmd(t, "scale", "-min", "0", "-max", "10", "3", "1", "2")
	require.NoError(t, err)
	require.Equal(t, "10\n0\n5\n", out)

	_, err = runCmd(t, "scale", "4", "4")
	require.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = runCmd(t, "scale", "x")
	require.ErrorIs(t, err, errUsage)
}

func TestRunTrend(t *testing.T) {
	data := writeFile(t, t.TempDir(), "heatmap.csv", "IDEHR,0,1,2\n001,3,5,7\n002,1,,4\n")

	out, err := runCmd(t, "trend", "-data", data, "-n", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"IDEHR,0,1,2,deg1_m,deg2_x2,deg2_x1",
		"001,3,5,7,2,0,2",
		"002,1,,4,,,",
	}, lines)

	_, err = runCmd(t, "trend", "-data", data, "-n", "1")
	require.ErrorIs(t, err, errs.ErrInsufficientPoints)

	_, err = runCmd(t, "trend", "-data", data, "-n", "2", "-precision", "99")
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestRunUsage(t *testing.T) {
	_, err := runCmd(t)
	require.ErrorIs(t, err, errUsage)

	_, err = runCmd(t, "plot")
	require.ErrorIs(t, err, errUsage)

	out, err := runCmd(t, "help")
	require.NoError(t, err)
	require.Equal(t, usage, out)
}
