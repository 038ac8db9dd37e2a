package results

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SeriesPoint is one reading for one thread count under one workload type.
type SeriesPoint struct {
	Threads          int
	Throughput       float64
	AvgResponseMs    float64
	AvgCPUPercent    float64
	AvgDiskWriteKBps float64
}

// ByThreads implements sort.Interface based on the Threads field of the SeriesPoint.
type ByThreads []SeriesPoint

func (a ByThreads) Len() int           { return len(a) }
func (a ByThreads) Less(i, j int) bool { return a[i].Threads < a[j].Threads }
func (a ByThreads) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }

// ErrNoData is reported when no workload type yields a series.
var ErrNoData = errors.New("no data series found in input")

// CoercionError is returned when a field that is present in a record cannot be
// converted to the expected numeric type. The whole run aborts on this rather
// than dropping the record, so the charts never silently omit data.
type CoercionError struct {
	Record int
	Field  string
	Value  interface{}
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("record %d: field %q: cannot convert %v (%T) to a number", e.Record, e.Field, e.Value, e.Value)
}

// WorkloadSeries maps workload types to their prepared series. Workload types
// iterate in the order they first appeared in the input, so the artifact set
// produced from them is deterministic for a given input.
type WorkloadSeries struct {
	byType map[string][]SeriesPoint
	order  []string
}

// Types returns the workload type names in first-appearance order.
func (ws *WorkloadSeries) Types() []string { return ws.order }

// Points returns the prepared series for a workload type, sorted ascending by
// thread count with at most one point per thread count.
func (ws *WorkloadSeries) Points(workloadType string) []SeriesPoint {
	return ws.byType[workloadType]
}

// Len returns the number of workload types.
func (ws *WorkloadSeries) Len() int { return len(ws.order) }

// Build groups records by workload type, deduplicates on thread count and
// sorts each series ascending by threads. Records without a workload_type are
// skipped. When two records share a (workload_type, threads) pair the later
// one wins; this is overwrite-by-key, not aggregation.
func Build(records []Record) (*WorkloadSeries, error) {
	grouped := map[string]map[int]SeriesPoint{}
	var order []string

	for i, rec := range records {
		wt, ok := rec["workload_type"].(string)
		if !ok {
			continue
		}

		threads, err := intField(rec, i, "threads")
		if err != nil {
			return nil, err
		}
		throughput, err := floatField(rec, i, "throughput")
		if err != nil {
			return nil, err
		}
		avgMs, err := floatField(rec, i, "avg_response_ms")
		if err != nil {
			return nil, err
		}
		cpu, err := floatField(rec, i, "avg_cpu_percent")
		if err != nil {
			return nil, err
		}
		diskWrite, err := floatField(rec, i, "avg_disk_write_kbps")
		if err != nil {
			return nil, err
		}

		if _, seen := grouped[wt]; !seen {
			grouped[wt] = map[int]SeriesPoint{}
			order = append(order, wt)
		}
		grouped[wt][threads] = SeriesPoint{
			Threads:          threads,
			Throughput:       throughput,
			AvgResponseMs:    avgMs,
			AvgCPUPercent:    cpu,
			AvgDiskWriteKBps: diskWrite,
		}
	}

	ws := &WorkloadSeries{
		byType: make(map[string][]SeriesPoint, len(order)),
		order:  order,
	}
	for _, wt := range order {
		points := make([]SeriesPoint, 0, len(grouped[wt]))
		for _, p := range grouped[wt] {
			points = append(points, p)
		}
		sort.Sort(ByThreads(points))
		ws.byType[wt] = points
	}
	return ws, nil
}

// intField coerces an integer field. A missing key defaults to 0. JSON numbers
// truncate toward zero, numeric strings must parse as base-10 integers and
// booleans count as 1/0.
func intField(rec Record, record int, field string) (int, error) {
	v, ok := rec[field]
	if !ok {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, &CoercionError{Record: record, Field: field, Value: v}
		}
		return int(i), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	}
	return 0, &CoercionError{Record: record, Field: field, Value: v}
}

// floatField coerces a float field. A missing key defaults to 0.0.
func floatField(rec Record, record int, field string) (float64, error) {
	v, ok := rec[field]
	if !ok {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, &CoercionError{Record: record, Field: field, Value: v}
		}
		return f, nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	}
	return 0, &CoercionError{Record: record, Field: field, Value: v}
}
