package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSVColumn reads a CSV file with a header row and parses the named
// column as float64 values. An empty column name selects the first column.
func LoadCSVColumn(path, column string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := records[0]
	col := 0
	if column != "" {
		col = -1
		for j, h := range headers {
			if h == column {
				col = j
				break
			}
		}
		if col < 0 {
			return nil, fmt.Errorf("csv: %s has no column %q", path, column)
		}
	}

	values := make([]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(headers) {
			return nil, fmt.Errorf("csv: row %d has %d columns, expected %d", i+2, len(record), len(headers))
		}
		v, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			return nil, fmt.Errorf("csv: row %d column %q: %q is not a number", i+2, headers[col], record[col])
		}
		values = append(values, v)
	}

	return values, nil
}
