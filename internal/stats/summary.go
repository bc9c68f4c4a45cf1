// Package stats computes descriptive statistics over in-memory frames:
// per-column summaries, missingness tables, correlation matrices and
// top-category extraction.
package stats

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"edastat/internal/dataset"
)

// Column kinds inferred from cell contents.
const (
	KindNumeric     = "numeric"
	KindDatetime    = "datetime"
	KindCategorical = "categorical"
	KindText        = "text"
	KindUnknown     = "unknown"
)

// maxCategoryLen is the longest cell still counted as a category value.
const maxCategoryLen = 64

// maxExampleValues caps the example values kept per column.
const maxExampleValues = 3

// ColumnSummary captures inferred type and statistics for one column.
type ColumnSummary struct {
	Name          string   `json:"name"`
	Kind          string   `json:"dtype"`
	NonNull       int      `json:"non_null"`
	Missing       int      `json:"missing"`
	MissingShare  float64  `json:"missing_share"`
	Unique        int      `json:"unique"`
	ExampleValues []string `json:"example_values"`
	IsNumeric     bool     `json:"is_numeric"`
	// Numeric moments; nil for non-numeric columns.
	Min  *float64 `json:"min"`
	Max  *float64 `json:"max"`
	Mean *float64 `json:"mean"`
	Std  *float64 `json:"std"`
}

// DatasetSummary aggregates column summaries plus frame dimensions.
type DatasetSummary struct {
	NRows   int             `json:"n_rows"`
	NCols   int             `json:"n_cols"`
	Columns []ColumnSummary `json:"columns"`
}

// Summarize builds per-column summaries for every column of the frame.
// NRows and NCols always equal the frame's dimensions.
func Summarize(f *dataset.Frame) DatasetSummary {
	out := DatasetSummary{
		NRows:   f.NumRows(),
		NCols:   f.NumCols(),
		Columns: make([]ColumnSummary, 0, f.NumCols()),
	}
	for j := range f.Columns {
		out.Columns = append(out.Columns, summarizeColumn(f.Columns[j], f.Column(j)))
	}
	return out
}

func summarizeColumn(name string, values []string) ColumnSummary {
	s := ColumnSummary{Name: name, Kind: KindUnknown}

	var nums []float64
	var numCnt, dtCnt, txtCnt int
	seen := make(map[string]struct{})
	for _, raw := range values {
		if dataset.IsMissing(raw) {
			s.Missing++
			continue
		}
		s.NonNull++
		v := strings.TrimSpace(raw)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			if len(s.ExampleValues) < maxExampleValues {
				s.ExampleValues = append(s.ExampleValues, v)
			}
		}
		if x, ok := ParseNumeric(v); ok {
			numCnt++
			nums = append(nums, x)
			continue
		}
		if parseTimeMaybe(v) {
			dtCnt++
			continue
		}
		txtCnt++
	}
	s.Unique = len(seen)
	if n := len(values); n > 0 {
		s.MissingShare = float64(s.Missing) / float64(n)
	}

	// Kind by predominant parsed type.
	switch {
	case numCnt > 0 && numCnt >= dtCnt && numCnt >= txtCnt:
		s.Kind = KindNumeric
		s.IsNumeric = true
		fillMoments(&s, nums)
	case dtCnt > 0 && dtCnt >= txtCnt:
		s.Kind = KindDatetime
	case txtCnt > 0:
		if looksCategorical(seen, s.NonNull) {
			s.Kind = KindCategorical
		} else {
			s.Kind = KindText
		}
	}
	return s
}

func fillMoments(s *ColumnSummary, nums []float64) {
	if len(nums) == 0 {
		return
	}
	mn, mx := nums[0], nums[0]
	for _, x := range nums[1:] {
		mn = math.Min(mn, x)
		mx = math.Max(mx, x)
	}
	mean, std := stat.MeanStdDev(nums, nil)
	if math.IsNaN(std) {
		std = 0
	}
	s.Min = &mn
	s.Max = &mx
	s.Mean = &mean
	s.Std = &std
}

// looksCategorical treats short, repeating tokens as categories.
func looksCategorical(seen map[string]struct{}, nonNull int) bool {
	if nonNull == 0 {
		return false
	}
	for v := range seen {
		if len(v) > maxCategoryLen {
			return false
		}
	}
	return true
}
