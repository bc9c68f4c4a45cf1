package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"edastat/internal/dataset"
)

// CorrMatrix is a symmetric Pearson correlation matrix across the numeric
// columns of a frame. Values[i][j] is the correlation between Columns[i]
// and Columns[j]; the diagonal is 1.
type CorrMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// Correlations computes pairwise Pearson correlations over numeric columns
// using pairwise-complete observations. Pairs with fewer than two complete
// rows, or with zero variance, correlate as 0.
func Correlations(f *dataset.Frame) CorrMatrix {
	sum := Summarize(f)

	var names []string
	var vecs [][]float64 // NaN marks missing/non-numeric cells
	for j, c := range sum.Columns {
		if !c.IsNumeric {
			continue
		}
		vec := make([]float64, f.NumRows())
		for i, raw := range f.Column(j) {
			if x, ok := ParseNumeric(raw); ok && !dataset.IsMissing(raw) {
				vec[i] = x
			} else {
				vec[i] = math.NaN()
			}
		}
		names = append(names, c.Name)
		vecs = append(vecs, vec)
	}

	n := len(names)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		mat[i][i] = 1
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			r := pairwiseCorr(vecs[a], vecs[b])
			mat[a][b] = r
			mat[b][a] = r
		}
	}
	return CorrMatrix{Columns: names, Values: mat}
}

func pairwiseCorr(x, y []float64) float64 {
	var xs, ys []float64
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return 0
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	// Guard against floating point drift outside [-1, 1].
	return math.Max(-1, math.Min(1, r))
}
