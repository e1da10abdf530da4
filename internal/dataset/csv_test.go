package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadCSVColumn(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		column  string
		want    []float64
		wantErr string
	}{
		{
			name:   "named column",
			csv:    "run,latency_ms\n1,12.5\n2,14.0\n3,9.75\n",
			column: "latency_ms",
			want:   []float64{12.5, 14.0, 9.75},
		},
		{
			name: "empty column name selects first",
			csv:  "value\n1\n2\n3\n",
			want: []float64{1, 2, 3},
		},
		{
			name:   "headers only yields empty sample",
			csv:    "run,latency_ms\n",
			column: "latency_ms",
			want:   []float64{},
		},
		{
			name:    "unknown column",
			csv:     "run,latency_ms\n1,12.5\n",
			column:  "throughput",
			wantErr: `has no column "throughput"`,
		},
		{
			name:    "non-numeric cell",
			csv:     "run,latency_ms\n1,fast\n",
			column:  "latency_ms",
			wantErr: `"fast" is not a number`,
		},
		{
			name:    "mismatched column count",
			csv:     "run,latency_ms\n1,12.5\n2\n",
			column:  "latency_ms",
			wantErr: "wrong number of fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "data.csv", tt.csv)

			values, err := LoadCSVColumn(path, tt.column)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestLoadCSVColumn_MissingFile(t *testing.T) {
	_, err := LoadCSVColumn("/nonexistent/path/data.csv", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv: open")
}

func TestLoadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []float64
		wantErr string
	}{
		{
			name:    "one per line",
			content: "1\n2.5\n-3\n",
			want:    []float64{1, 2.5, -3},
		},
		{
			name:    "mixed whitespace",
			content: "1 2\t3\n4",
			want:    []float64{1, 2, 3, 4},
		},
		{
			name:    "empty file",
			content: "",
			want:    []float64{},
		},
		{
			name:    "non-numeric entry",
			content: "1 2 banana",
			wantErr: `entry 3 ("banana") is not a number`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "data.txt", tt.content)

			values, err := LoadValues(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestLoadValues_MissingFile(t *testing.T) {
	_, err := LoadValues("/nonexistent/path/data.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "values: read")
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := writeFile(t, dir, "data.csv", "score\n0.5\n0.75\n")
	txtPath := writeFile(t, dir, "data.txt", "0.5 0.75 1.0")

	fromCSV, err := Load(csvPath, "score")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.75}, fromCSV)

	fromTxt, err := Load(txtPath, "")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.75, 1.0}, fromTxt)
}
