package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"benchplot/internal/metrics"
	"benchplot/internal/results"
)

const (
	widthInches  = 10
	heightInches = 6
	pngDPI       = 200

	// vertical gap between a data point and its speedup label
	labelOffset = vg.Length(8)
)

// Build renders the comparison chart for one target: a line-with-markers
// series per tool over run number, annotated with per-run speedup when both
// tools have data.
func Build(sum metrics.TargetSummary, recs []results.Record) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Download benchmark: %s", sum.TargetID)
	p.X.Label.Text = "Run"
	p.Y.Label.Text = "Elapsed time (minutes)"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Padding = vg.Millimeter

	for i, tool := range []string{results.ToolEGAFetch, results.ToolPyEGA3} {
		pts := toolPoints(recs, tool)
		if len(pts) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", tool, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		points.Color = plotutil.Color(i)
		points.Radius = vg.Points(3)
		points.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(tool, line, points)
	}

	if sum.HaveBoth {
		added, err := annotate(p, sum.Rows)
		if err != nil {
			return nil, err
		}
		if added {
			// headroom so the topmost label stays inside the frame
			var yMax float64
			for _, rec := range recs {
				if rec.ElapsedMinutes > yMax {
					yMax = rec.ElapsedMinutes
				}
			}
			p.Y.Max = yMax * 1.12
		}
	}
	return p, nil
}

// annotate places "{speedup}× ({increase}%)" above the higher of the two
// points for every run holding data for both tools.
func annotate(p *plot.Plot, rows []metrics.RunMetrics) (bool, error) {
	var xys plotter.XYs
	var labels []string
	for _, row := range rows {
		if !row.HasBoth() {
			continue
		}
		top := math.Max(row.EGAFetchMinutes, row.PyEGA3Minutes)
		xys = append(xys, plotter.XY{X: float64(row.Run), Y: top})
		labels = append(labels, fmt.Sprintf("%.2f× (%.0f%%)", row.SpeedupX, row.SpeedIncreasePct))
	}
	if len(xys) == 0 {
		return false, nil
	}

	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return false, fmt.Errorf("annotations: %w", err)
	}
	for i := range lbls.TextStyle {
		lbls.TextStyle[i].XAlign = draw.XCenter
		lbls.TextStyle[i].YAlign = draw.YBottom
		lbls.TextStyle[i].Font.Size = vg.Points(9)
	}
	lbls.Offset = vg.Point{Y: labelOffset}
	p.Add(lbls)
	return true, nil
}

func toolPoints(recs []results.Record, tool string) plotter.XYs {
	var sub []results.Record
	for _, rec := range recs {
		if rec.Tool == tool {
			sub = append(sub, rec)
		}
	}
	sort.SliceStable(sub, func(i, j int) bool { return sub[i].Run < sub[j].Run })
	pts := make(plotter.XYs, len(sub))
	for i, rec := range sub {
		pts[i] = plotter.XY{X: float64(rec.Run), Y: rec.ElapsedMinutes}
	}
	return pts
}

// Save writes the chart to path. The image format follows the extension:
// .png rasterizes at 200 DPI, .svg and .pdf are vector.
func Save(p *plot.Plot, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".svg" && ext != ".pdf" {
		return fmt.Errorf("unsupported output format %q (use png, svg, or pdf)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w, h := widthInches*vg.Inch, heightInches*vg.Inch
	switch ext {
	case ".png":
		img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(pngDPI))
		p.Draw(draw.New(img))
		png := vgimg.PngCanvas{Canvas: img}
		_, err = png.WriteTo(f)
	case ".svg":
		c := vgsvg.New(w, h)
		p.Draw(draw.New(c))
		_, err = c.WriteTo(f)
	case ".pdf":
		c := vgpdf.New(w, h)
		p.Draw(draw.New(c))
		_, err = c.WriteTo(f)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// TargetPath inserts the target ID before the file extension when the run
// covers more than one target, so each target gets a distinct file.
func TargetPath(out, targetID string, multi bool) string {
	if !multi {
		return out
	}
	ext := filepath.Ext(out)
	stem := strings.TrimSuffix(filepath.Base(out), ext)
	return filepath.Join(filepath.Dir(out), fmt.Sprintf("%s_%s%s", stem, targetID, ext))
}
