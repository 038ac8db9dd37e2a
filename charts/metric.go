package charts

import "github.com/benchkit/loadplot/results"

// Metric selects one numeric field from a series point and carries its axis
// labelling.
type Metric struct {
	Label string
	Value func(p results.SeriesPoint) float64
}

var (
	Throughput = Metric{
		Label: "Throughput (requests/sec)",
		Value: func(p results.SeriesPoint) float64 { return p.Throughput },
	}
	ResponseTime = Metric{
		Label: "Avg response time (ms)",
		Value: func(p results.SeriesPoint) float64 { return p.AvgResponseMs },
	}
	CPUPercent = Metric{
		Label: "Avg CPU %",
		Value: func(p results.SeriesPoint) float64 { return p.AvgCPUPercent },
	}
	DiskWrite = Metric{
		Label: "Avg disk write (KB/s)",
		Value: func(p results.SeriesPoint) float64 { return p.AvgDiskWriteKBps },
	}
)
