package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCICommand_JSONOutput(t *testing.T) {
	path := writeSample(t, t.TempDir(), "data.txt", "0.1 0.2 0.3 0.4 0.5 0.6 0.7 0.8 0.9 1.0")

	out, err := runCLI(t, "ci", path, "--format", "json", "--seed", "42")
	require.NoError(t, err)

	var report ciReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "mean", report.Statistic)
	assert.InDelta(t, 0.55, report.Estimate, 1e-9)
	assert.LessOrEqual(t, report.Interval.Low, report.Interval.High)
	assert.Equal(t, 95.0, report.Interval.ConfidenceLevel)
	assert.Equal(t, 1024, report.Interval.Iterations)
}

func TestCICommand_SeedIsDeterministic(t *testing.T) {
	path := writeSample(t, t.TempDir(), "data.txt", "1 2 3 4 5 6 7 8")

	first, err := runCLI(t, "ci", path, "--format", "json", "--seed", "7")
	require.NoError(t, err)
	second, err := runCLI(t, "ci", path, "--format", "json", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCICommand_MedianStatistic(t *testing.T) {
	path := writeSample(t, t.TempDir(), "data.txt", "1 2 3 4 5 6 7 8 9")

	out, err := runCLI(t, "ci", path, "--stat", "median", "--format", "json", "--seed", "42", "--iterations", "500")
	require.NoError(t, err)

	var report ciReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "median", report.Statistic)
	assert.InDelta(t, 5.0, report.Estimate, 1e-9)
	assert.Equal(t, 500, report.Interval.Iterations)
}

func TestCICommand_TwoSampleDifference(t *testing.T) {
	dir := t.TempDir()
	a := writeSample(t, dir, "a.txt", "0.2 0.4 0.6 0.8 1.0 0.3 0.5 0.7")
	b := writeSample(t, dir, "b.txt", "0.2 0.4 0.6 0.8 1.0 0.3 0.5 0.7")

	out, err := runCLI(t, "ci", a, b, "--format", "json", "--seed", "42", "--iterations", "2000")
	require.NoError(t, err)

	var report ciReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	require.Len(t, report.Files, 2)
	assert.InDelta(t, 0.0, report.Estimate, 1e-9)
	assert.LessOrEqual(t, report.Interval.Low, 0.0)
	assert.GreaterOrEqual(t, report.Interval.High, 0.0)
}

func TestCICommand_TableOutput(t *testing.T) {
	path := writeSample(t, t.TempDir(), "data.txt", "1 2 3 4 5")

	out, err := runCLI(t, "ci", path, "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "BOOTSTRAP CI")
	assert.Contains(t, out, "95% interval")
	assert.Contains(t, out, "Iterations")
}

func TestCICommand_LevelOutOfRange(t *testing.T) {
	path := writeSample(t, t.TempDir(), "data.txt", "1 2 3")

	for _, level := range []string{"0", "100", "150"} {
		_, err := runCLI(t, "ci", path, "--level", level)
		require.Error(t, err, "level %s", level)
		assert.Contains(t, err.Error(), "confidence level")
	}
}

func TestCICommand_UnsupportedStatistic(t *testing.T) {
	path := writeSample(t, t.TempDir(), "data.txt", "1 2 3")

	_, err := runCLI(t, "ci", path, "--stat", "mode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported statistic "mode"`)
}
