// Package results loads raw load-test measurement records and prepares
// per-workload data series for charting.
package results

import (
	"encoding/json"
	"fmt"
	"io"
)

// Record is a single raw measurement as found in the results file. No shape is
// enforced at load time beyond it being a JSON object; field coercion happens
// when the series are built.
type Record map[string]interface{}

// NotArrayError is returned when the top level of the input is not a JSON array.
type NotArrayError struct {
	Source string
}

func (e *NotArrayError) Error() string {
	return fmt.Sprintf("expected a list in %s", e.Source)
}

// Load parses a stream of measurement results. source is the identifier of the
// stream (normally the file path) and is only used in error messages.
func Load(r io.Reader, source string) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	var top interface{}
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	rows, ok := top.([]interface{})
	if !ok {
		return nil, &NotArrayError{Source: source}
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		obj, ok := row.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: element %d is not an object", source, i)
		}
		records = append(records, Record(obj))
	}
	return records, nil
}
