package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/benchkit/loadplot/charts"
	"github.com/benchkit/loadplot/results"
)

var csvHeader = []string{"threads", "throughput", "avg_response_ms", "avg_cpu_percent", "avg_disk_write_kbps"}

// writeSeriesCSV exports the prepared (deduplicated, sorted) series for one
// workload type as series_<safe>.csv in outDir and returns the path written.
func writeSeriesCSV(outDir, wt string, points []results.SeriesPoint) (string, error) {
	outPath := filepath.Join(outDir, "series_"+charts.SafeName(wt)+".csv")
	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	for _, p := range points {
		row := []string{
			strconv.Itoa(p.Threads),
			fmt.Sprintf("%.02f", p.Throughput),
			fmt.Sprintf("%.02f", p.AvgResponseMs),
			fmt.Sprintf("%.02f", p.AvgCPUPercent),
			fmt.Sprintf("%.02f", p.AvgDiskWriteKBps),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing %s: %w", outPath, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}
