package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchkit/loadplot/charts"
	"github.com/benchkit/loadplot/results"
)

func sweep() []results.SeriesPoint {
	return []results.SeriesPoint{
		{Threads: 1, Throughput: 95, AvgResponseMs: 3.8, AvgCPUPercent: 12, AvgDiskWriteKBps: 256},
		{Threads: 2, Throughput: 170, AvgResponseMs: 4.4, AvgCPUPercent: 25, AvgDiskWriteKBps: 410},
		{Threads: 4, Throughput: 280, AvgResponseMs: 5.9, AvgCPUPercent: 48, AvgDiskWriteKBps: 700},
	}
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

func TestRenderWorkloadPopularGetsThreePanelChart(t *testing.T) {
	r := &charts.Renderer{OutDir: t.TempDir(), DPI: 72}
	paths, err := renderWorkload(r, "Popular Items", sweep())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"throughput_Popular_Items.png",
		"response_time_Popular_Items.png",
		"combined_Popular_Items.png",
		"combined_three_Popular_Items.png",
	}, baseNames(paths))
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestRenderWorkloadRegular(t *testing.T) {
	r := &charts.Renderer{OutDir: t.TempDir(), DPI: 72}
	paths, err := renderWorkload(r, "Bulk Upload", sweep())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"throughput_Bulk_Upload.png",
		"response_time_Bulk_Upload.png",
		"combined_Bulk_Upload.png",
	}, baseNames(paths))
}

func TestRenderWorkloadPopularIsCaseInsensitive(t *testing.T) {
	r := &charts.Renderer{OutDir: t.TempDir(), DPI: 72}
	paths, err := renderWorkload(r, "POPULAR-reads", sweep())
	require.NoError(t, err)
	require.Len(t, paths, 4)
	assert.Equal(t, "combined_three_POPULAR-reads.png", filepath.Base(paths[3]))
}

func TestRenderOverlays(t *testing.T) {
	series, err := results.Build([]results.Record{
		{"workload_type": "A", "threads": 1.0, "throughput": 10.0},
		{"workload_type": "B", "threads": 1.0, "throughput": 20.0},
	})
	require.NoError(t, err)

	r := &charts.Renderer{OutDir: t.TempDir(), DPI: 72}
	paths, err := renderOverlays(r, series)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"throughput_vs_threads.png",
		"response_time_vs_threads.png",
	}, baseNames(paths))
}

func TestWriteSeriesCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := writeSeriesCSV(dir, "Bulk Upload", sweep())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "series_Bulk_Upload.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"1", "95.00", "3.80", "12.00", "256.00"}, rows[1])
	assert.Equal(t, []string{"4", "280.00", "5.90", "48.00", "700.00"}, rows[3])
}

func TestPrintSummary(t *testing.T) {
	series, err := results.Build([]results.Record{
		{"workload_type": "Bulk Upload", "threads": 1.0, "throughput": 30.0, "avg_response_ms": 12.0, "avg_disk_write_kbps": 2048.0},
		{"workload_type": "Bulk Upload", "threads": 2.0, "throughput": 55.0, "avg_response_ms": 14.5, "avg_disk_write_kbps": 3072.0},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, series))
	out := buf.String()
	assert.Contains(t, out, "Bulk Upload")
	assert.Contains(t, out, "55.00")
	assert.Contains(t, out, "3M/s")
}

func TestResponseQuantiles(t *testing.T) {
	q50, q95, q99 := responseQuantiles(sweep())
	assert.InDelta(t, 4.4, q50, 0.05)
	assert.InDelta(t, 5.9, q95, 0.05)
	assert.InDelta(t, 5.9, q99, 0.05)
}
