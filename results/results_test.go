package results

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	in := `[{"workload_type":"A","threads":1,"throughput":10.5}]`
	records, err := Load(strings.NewReader(in), "results.json")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0]["workload_type"])
	assert.Equal(t, 10.5, records[0]["throughput"])
}

func TestLoadEmptyArray(t *testing.T) {
	records, err := Load(strings.NewReader(`[]`), "results.json")
	require.NoError(t, err)
	assert.Len(t, records, 0)
}

func TestLoadNotArray(t *testing.T) {
	_, err := Load(strings.NewReader(`{"workload_type":"A"}`), "build/results.json")
	var notArray *NotArrayError
	require.ErrorAs(t, err, &notArray)
	assert.Equal(t, "build/results.json", notArray.Source)
	assert.Contains(t, err.Error(), "build/results.json")
}

func TestLoadScalarTopLevel(t *testing.T) {
	_, err := Load(strings.NewReader(`42`), "results.json")
	var notArray *NotArrayError
	assert.ErrorAs(t, err, &notArray)
}

func TestLoadNonObjectElement(t *testing.T) {
	_, err := Load(strings.NewReader(`[{"workload_type":"A"}, 7]`), "results.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`[{"workload_type":`), "results.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "results.json")
}
