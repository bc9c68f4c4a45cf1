package stats

import (
	"sort"

	"edastat/internal/dataset"
)

// MissingRow is one entry of the missingness table.
type MissingRow struct {
	Column       string  `json:"column"`
	MissingCount int     `json:"missing_count"`
	MissingShare float64 `json:"missing_share"`
}

// MissingTable reports per-column missing counts and shares, sorted by
// share descending (ties broken by column name for stable output).
func MissingTable(f *dataset.Frame) []MissingRow {
	n := f.NumRows()
	rows := make([]MissingRow, 0, f.NumCols())
	for j, name := range f.Columns {
		cnt := 0
		for _, v := range f.Column(j) {
			if dataset.IsMissing(v) {
				cnt++
			}
		}
		r := MissingRow{Column: name, MissingCount: cnt}
		if n > 0 {
			r.MissingShare = float64(cnt) / float64(n)
		}
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MissingShare == rows[j].MissingShare {
			return rows[i].Column < rows[j].Column
		}
		return rows[i].MissingShare > rows[j].MissingShare
	})
	return rows
}

// MissingFromSummary rebuilds the missingness table from an existing
// dataset summary, for callers that no longer hold the raw frame.
func MissingFromSummary(sum DatasetSummary) []MissingRow {
	rows := make([]MissingRow, 0, len(sum.Columns))
	for _, c := range sum.Columns {
		rows = append(rows, MissingRow{
			Column:       c.Name,
			MissingCount: c.Missing,
			MissingShare: c.MissingShare,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MissingShare == rows[j].MissingShare {
			return rows[i].Column < rows[j].Column
		}
		return rows[i].MissingShare > rows[j].MissingShare
	})
	return rows
}
