package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"code.cloudfoundry.org/bytefmt"
	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/benchkit/loadplot/results"
)

// response times are recorded in microseconds so sub-millisecond averages keep
// resolution in the histogram
const usPerMs = 1000.0

func responseQuantiles(points []results.SeriesPoint) (q50, q95, q99 float64) {
	hist := hdrhistogram.New(1, 3600*1000*1000, 3)
	for _, p := range points {
		if v := int64(p.AvgResponseMs * usPerMs); v > 0 {
			hist.RecordValue(v)
		}
	}
	q50 = float64(hist.ValueAtQuantile(50.0)) / usPerMs
	q95 = float64(hist.ValueAtQuantile(95.0)) / usPerMs
	q99 = float64(hist.ValueAtQuantile(99.0)) / usPerMs
	return
}

// printSummary writes a per-workload overview of the prepared series: peak
// throughput, response time quantiles across the thread sweep and the peak
// disk write rate.
func printSummary(out io.Writer, series *results.WorkloadSeries) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "workload\tpoints\tmax rps\tp50 ms\tp95 ms\tp99 ms\tpeak disk write")
	for _, wt := range series.Types() {
		points := series.Points(wt)
		maxRps := 0.0
		maxDisk := 0.0
		for _, p := range points {
			if p.Throughput > maxRps {
				maxRps = p.Throughput
			}
			if p.AvgDiskWriteKBps > maxDisk {
				maxDisk = p.AvgDiskWriteKBps
			}
		}
		q50, q95, q99 := responseQuantiles(points)
		fmt.Fprintf(w, "%s\t%d\t%.02f\t%.02f\t%.02f\t%.02f\t%s/s\n",
			wt, len(points), maxRps, q50, q95, q99,
			bytefmt.ByteSize(uint64(maxDisk*bytefmt.KILOBYTE)))
	}
	return w.Flush()
}
