// Package viz renders report figures (histograms, missingness matrix,
// correlation heatmap) as PNG files.
package viz

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"edastat/internal/dataset"
	"edastat/internal/stats"
	"edastat/internal/utils"
)

const histBins = 16

// Histograms writes hist_<column>.png for up to maxColumns numeric columns.
// It returns the paths written.
func Histograms(f *dataset.Frame, outDir string, maxColumns int) ([]string, error) {
	if maxColumns <= 0 {
		return nil, nil
	}
	sum := stats.Summarize(f)

	var written []string
	for j, c := range sum.Columns {
		if !c.IsNumeric {
			continue
		}
		if len(written) >= maxColumns {
			break
		}
		vals := numericValues(f, j)
		if len(vals) == 0 {
			continue
		}
		p := plot.New()
		p.Title.Text = c.Name
		p.X.Label.Text = c.Name
		p.Y.Label.Text = "count"
		h, err := plotter.NewHist(plotter.Values(vals), histBins)
		if err != nil {
			return written, fmt.Errorf("histogram %s: %w", c.Name, err)
		}
		p.Add(h)
		path := filepath.Join(outDir, "hist_"+utils.SanitizeBase(c.Name)+".png")
		if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return written, fmt.Errorf("save histogram %s: %w", c.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// MissingMatrix writes a binary missingness heatmap (rows vs columns).
func MissingMatrix(f *dataset.Frame, path string) error {
	g := &grid{
		cols: f.NumCols(),
		rows: f.NumRows(),
		z: func(c, r int) float64 {
			if dataset.IsMissing(f.Rows[r][c]) {
				return 1
			}
			return 0
		},
	}
	p := plot.New()
	p.Title.Text = "Missing values"
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.X.Tick.Marker = nameTicks{names: f.Columns}
	hm := plotter.NewHeatMap(g, palette.Heat(2, 1))
	p.Add(hm)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save missing matrix: %w", err)
	}
	return nil
}

// CorrelationHeatmap writes the correlation matrix as a heatmap. A matrix
// with fewer than two numeric columns produces no file.
func CorrelationHeatmap(m stats.CorrMatrix, path string) error {
	n := len(m.Columns)
	if n < 2 {
		return nil
	}
	g := &grid{
		cols: n,
		rows: n,
		z:    func(c, r int) float64 { return m.Values[r][c] },
	}
	p := plot.New()
	p.Title.Text = "Correlation"
	p.X.Tick.Marker = nameTicks{names: m.Columns}
	p.Y.Tick.Marker = nameTicks{names: m.Columns}
	hm := plotter.NewHeatMap(g, palette.Heat(255, 1))
	hm.Min = -1
	hm.Max = 1
	p.Add(hm)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save correlation heatmap: %w", err)
	}
	return nil
}

func numericValues(f *dataset.Frame, col int) []float64 {
	var out []float64
	for _, raw := range f.Column(col) {
		if dataset.IsMissing(raw) {
			continue
		}
		if x, ok := stats.ParseNumeric(raw); ok {
			out = append(out, x)
		}
	}
	return out
}

// grid adapts a function to plotter.GridXYZ.
type grid struct {
	cols, rows int
	z          func(c, r int) float64
}

func (g *grid) Dims() (int, int)   { return g.cols, g.rows }
func (g *grid) Z(c, r int) float64 { return g.z(c, r) }
func (g *grid) X(c int) float64    { return float64(c) }
func (g *grid) Y(r int) float64    { return float64(r) }

// nameTicks places one labeled tick per integer coordinate.
type nameTicks struct{ names []string }

func (t nameTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, name := range t.names {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: name})
	}
	return ticks
}
