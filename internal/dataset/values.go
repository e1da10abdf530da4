// Package dataset loads numeric samples from files for the basicstats CLI.
package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadValues reads whitespace-separated numbers from the file at path, or
// from stdin when path is "-". A file with no numbers yields an empty
// sample.
func LoadValues(path string) ([]float64, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("values: read %s: %w", path, err)
	}

	fields := strings.Fields(string(data))
	values := make([]float64, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("values: %s: entry %d (%q) is not a number", path, i+1, field)
		}
		values = append(values, v)
	}

	return values, nil
}

// Load reads a numeric sample from path. Files with a .csv extension go
// through LoadCSVColumn (column selects the header; empty means the first
// column); everything else is parsed as whitespace-separated numbers and
// column is ignored.
func Load(path, column string) ([]float64, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSVColumn(path, column)
	}
	return LoadValues(path)
}
