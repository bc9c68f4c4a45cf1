package stats

import (
	"sort"
	"strings"

	"edastat/internal/dataset"
)

// CategoryCount is one value/frequency pair of a categorical column.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnCategories holds the most frequent values of one column.
type ColumnCategories struct {
	Column string          `json:"column"`
	Top    []CategoryCount `json:"top"`
}

// TopCategories extracts the topK most frequent values for up to maxColumns
// categorical columns, in frame column order. Counts sort descending with
// ties broken by value.
func TopCategories(f *dataset.Frame, maxColumns, topK int) []ColumnCategories {
	if maxColumns <= 0 || topK <= 0 {
		return nil
	}
	sum := Summarize(f)

	var out []ColumnCategories
	for j, c := range sum.Columns {
		if c.Kind != KindCategorical {
			continue
		}
		if len(out) >= maxColumns {
			break
		}
		counts := make(map[string]int)
		for _, raw := range f.Column(j) {
			if dataset.IsMissing(raw) {
				continue
			}
			counts[strings.TrimSpace(raw)]++
		}
		tops := make([]CategoryCount, 0, len(counts))
		for v, n := range counts {
			tops = append(tops, CategoryCount{Value: v, Count: n})
		}
		sort.Slice(tops, func(i, j int) bool {
			if tops[i].Count == tops[j].Count {
				return tops[i].Value < tops[j].Value
			}
			return tops[i].Count > tops[j].Count
		})
		if len(tops) > topK {
			tops = tops[:topK]
		}
		out = append(out, ColumnCategories{Column: c.Name, Top: tops})
	}
	return out
}
