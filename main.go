// loadplot reads load-test measurement records from a JSON results file,
// groups them into per-workload-type series ordered by thread count and
// renders PNG charts into an output directory.
//
// Usage:
//
//	loadplot -input build/results.json -outdir build/plots -dpi 150
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/benchkit/loadplot/charts"
	"github.com/benchkit/loadplot/results"
)

func main() {
	input := flag.String("input", "build/results.json", "path to the results JSON file")
	outDir := flag.String("outdir", "build/plots", "directory to save plots into")
	show := flag.Bool("show", false, "open the generated plots in the system image viewer")
	dpi := flag.Int("dpi", 150, "dpi for saved images")
	overlay := flag.Bool("overlay", false, "also render cross-workload comparison charts")
	csvOut := flag.Bool("csv", false, "also export the prepared series as CSV")
	summary := flag.Bool("summary", false, "print a per-workload summary table after rendering")
	flag.Parse()

	if _, err := os.Stat(*input); err != nil {
		log.Fatalf("input file not found: %s", *input)
	}

	fp, err := os.Open(*input)
	if err != nil {
		log.Fatalf("could not open %s: %s", *input, err)
	}
	records, err := results.Load(fp, *input)
	fp.Close()
	if err != nil {
		log.Fatal(err)
	}

	series, err := results.Build(records)
	if err != nil {
		log.Fatal(err)
	}
	if series.Len() == 0 {
		log.Fatal(results.ErrNoData)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("could not create %s: %s", *outDir, err)
	}

	r := &charts.Renderer{OutDir: *outDir, DPI: *dpi}

	var created []string
	for _, wt := range series.Types() {
		paths, err := renderWorkload(r, wt, series.Points(wt))
		if err != nil {
			log.Fatal(err)
		}
		if *csvOut {
			p, err := writeSeriesCSV(*outDir, wt, series.Points(wt))
			if err != nil {
				log.Fatal(err)
			}
			paths = append(paths, p)
		}
		created = append(created, paths...)
	}

	if *overlay {
		paths, err := renderOverlays(r, series)
		if err != nil {
			log.Fatal(err)
		}
		created = append(created, paths...)
	}

	for _, p := range created {
		fmt.Printf("Saved: %s\n", p)
	}

	if *summary {
		if err := printSummary(os.Stdout, series); err != nil {
			log.Fatal(err)
		}
	}

	if *show {
		showAll(created)
	}
}

// renderWorkload produces the chart artifacts for a single workload type, in
// reporting order: throughput, response time, the combined 2x2 panel and, for
// workload types whose label contains "popular", the 1x3 panel.
func renderWorkload(r *charts.Renderer, wt string, points []results.SeriesPoint) ([]string, error) {
	safe := charts.SafeName(wt)

	var created []string
	p, err := r.SingleMetric(points, charts.Throughput, "Throughput vs Threads - "+wt, "throughput_"+safe+".png")
	if err != nil {
		return nil, err
	}
	created = append(created, p)

	p, err = r.SingleMetric(points, charts.ResponseTime, "Avg Response Time vs Threads - "+wt, "response_time_"+safe+".png")
	if err != nil {
		return nil, err
	}
	created = append(created, p)

	p, err = r.MultiPanel(points, charts.Combined2x2, "Performance - "+wt, "combined_"+safe+".png")
	if err != nil {
		return nil, err
	}
	created = append(created, p)

	if strings.Contains(strings.ToLower(wt), "popular") {
		p, err = r.MultiPanel(points, charts.CombinedRow3, "Performance - "+wt, "combined_three_"+safe+".png")
		if err != nil {
			return nil, err
		}
		created = append(created, p)
	}
	return created, nil
}

// renderOverlays draws the cross-workload comparison charts: every workload
// type as one line on a shared figure, keyed by a legend.
func renderOverlays(r *charts.Renderer, series *results.WorkloadSeries) ([]string, error) {
	var created []string
	p, err := r.LegendOverlay(series, charts.Throughput, "Throughput vs Threads", "throughput_vs_threads.png")
	if err != nil {
		return nil, err
	}
	created = append(created, p)

	p, err = r.LegendOverlay(series, charts.ResponseTime, "Average Response Time vs Threads", "response_time_vs_threads.png")
	if err != nil {
		return nil, err
	}
	created = append(created, p)
	return created, nil
}
