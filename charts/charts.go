// Package charts rasterizes prepared workload series into PNG chart files.
package charts

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/benchkit/loadplot/results"
)

// Panel describes one subplot of a combined figure.
type Panel struct {
	Metric Metric
	Title  string
	Color  color.Color
}

// Layout is a fixed multi-panel figure arrangement.
type Layout struct {
	Rows, Cols    int
	Width, Height vg.Length
	Panels        []Panel
}

// panel palette, matching the matplotlib default cycle
var (
	blue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	orange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	green  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	red    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// Combined2x2 is the 2x2 grid rendered for every workload type.
var Combined2x2 = Layout{
	Rows: 2, Cols: 2,
	Width: 12 * vg.Inch, Height: 8 * vg.Inch,
	Panels: []Panel{
		{Metric: Throughput, Title: "Throughput", Color: blue},
		{Metric: ResponseTime, Title: "Avg Response Time", Color: orange},
		{Metric: CPUPercent, Title: "CPU Usage", Color: green},
		{Metric: DiskWrite, Title: "Disk Write", Color: red},
	},
}

// CombinedRow3 is the horizontal 1x3 grid rendered for "popular" workload types.
var CombinedRow3 = Layout{
	Rows: 1, Cols: 3,
	Width: 15 * vg.Inch, Height: 4 * vg.Inch,
	Panels: []Panel{
		{Metric: Throughput, Title: "Throughput", Color: blue},
		{Metric: ResponseTime, Title: "Avg Response Time", Color: orange},
		{Metric: CPUPercent, Title: "CPU Usage", Color: green},
	},
}

// Renderer writes chart PNGs under OutDir. Each render call writes exactly one
// file and returns the path it wrote; there is no state shared between calls.
type Renderer struct {
	OutDir string
	DPI    int
}

func (r *Renderer) dpi() int {
	if r.DPI <= 0 {
		return 150
	}
	return r.DPI
}

// SingleMetric draws one metric against thread count as a single line with
// point markers and writes it to filename inside OutDir.
func (r *Renderer) SingleMetric(points []results.SeriesPoint, m Metric, title, filename string) (string, error) {
	p, err := metricPlot(points, m, title, nil)
	if err != nil {
		return "", err
	}
	return r.save([][]*plot.Plot{{p}}, "", 8*vg.Inch, 5*vg.Inch, filename)
}

// MultiPanel draws one subplot per panel of the layout, shares a single figure
// title across the grid and writes the result as one image.
func (r *Renderer) MultiPanel(points []results.SeriesPoint, l Layout, figTitle, filename string) (string, error) {
	if len(l.Panels) > l.Rows*l.Cols {
		return "", fmt.Errorf("%d panels do not fit a %dx%d grid", len(l.Panels), l.Rows, l.Cols)
	}
	grid := make([][]*plot.Plot, l.Rows)
	for i := range grid {
		grid[i] = make([]*plot.Plot, l.Cols)
	}
	for k, panel := range l.Panels {
		p, err := metricPlot(points, panel.Metric, panel.Title, panel.Color)
		if err != nil {
			return "", err
		}
		grid[k/l.Cols][k%l.Cols] = p
	}
	return r.save(grid, figTitle, l.Width, l.Height, filename)
}

// LegendOverlay draws one line per workload type with a legend keyed by the
// workload label, for cross-workload comparison.
func (r *Renderer) LegendOverlay(series *results.WorkloadSeries, m Metric, title, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Threads"
	p.Y.Label.Text = m.Label
	p.BackgroundColor = color.White
	addGrid(p)

	for i, wt := range series.Types() {
		line, points, err := plotter.NewLinePoints(xys(series.Points(wt), m))
		if err != nil {
			return "", err
		}
		line.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		points.Color = line.Color
		p.Add(line, points)
		p.Legend.Add(wt, line, points)
	}
	return r.save([][]*plot.Plot{{p}}, "", 8*vg.Inch, 5*vg.Inch, filename)
}

func metricPlot(points []results.SeriesPoint, m Metric, title string, c color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Threads"
	p.Y.Label.Text = m.Label
	p.BackgroundColor = color.White
	addGrid(p)

	line, markers, err := plotter.NewLinePoints(xys(points, m))
	if err != nil {
		return nil, err
	}
	if c != nil {
		line.Color = c
		markers.Color = c
	}
	markers.Shape = draw.CircleGlyph{}
	p.Add(line, markers)
	return p, nil
}

func addGrid(p *plot.Plot) {
	g := plotter.NewGrid()
	g.Vertical.Color = color.Gray{Y: 0xc0}
	g.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	g.Horizontal.Color = color.Gray{Y: 0xc0}
	g.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(g)
}

func xys(points []results.SeriesPoint, m Metric) plotter.XYs {
	out := make(plotter.XYs, len(points))
	for i, p := range points {
		out[i].X = float64(p.Threads)
		out[i].Y = m.Value(p)
	}
	return out
}

// save rasterizes a grid of plots to OutDir/filename. An empty figTitle skips
// the shared title strip.
func (r *Renderer) save(grid [][]*plot.Plot, figTitle string, w, h vg.Length, filename string) (string, error) {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.dpi()))
	dc := draw.New(img)

	if figTitle != "" {
		style := draw.TextStyle{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, vg.Points(15)),
			XAlign:  draw.XCenter,
			YAlign:  draw.YTop,
			Handler: plot.DefaultTextHandler,
		}
		dc.FillText(style, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y}, figTitle)
		// shrink the drawing area so the tiles sit below the title strip
		dc = draw.Crop(dc, 0, 0, 0, -vg.Points(22))
	}

	tiles := draw.Tiles{
		Rows: len(grid), Cols: len(grid[0]),
		PadX: vg.Points(12), PadY: vg.Points(12),
		PadTop: vg.Points(4), PadBottom: vg.Points(4),
		PadLeft: vg.Points(4), PadRight: vg.Points(4),
	}
	canvases := plot.Align(grid, tiles, dc)
	for i := range grid {
		for j := range grid[i] {
			if grid[i][j] != nil {
				grid[i][j].Draw(canvases[i][j])
			}
		}
	}

	outPath := filepath.Join(r.OutDir, filename)
	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}
