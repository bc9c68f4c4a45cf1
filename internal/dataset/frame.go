package dataset

import "strings"

// Frame is an in-memory tabular dataset: a header plus string cells.
// Cells are kept as raw strings; typing is decided downstream.
type Frame struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// NumRows returns the number of data rows (header excluded).
func (f *Frame) NumRows() int { return len(f.Rows) }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.Columns) }

// Empty reports whether the frame has no data rows or no columns.
func (f *Frame) Empty() bool { return len(f.Columns) == 0 || len(f.Rows) == 0 }

// Column returns the cell values of column j, one per row.
// Rows shorter than the header contribute empty strings.
func (f *Frame) Column(j int) []string {
	out := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		if j < len(row) {
			out[i] = row[j]
		}
	}
	return out
}

// ColumnIndex returns the index of the named column (case-insensitive),
// or -1 if absent.
func (f *Frame) ColumnIndex(name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for j, c := range f.Columns {
		if strings.ToLower(c) == want {
			return j
		}
	}
	return -1
}

// IsMissing reports whether a cell value counts as missing.
// Empty and whitespace-only strings plus a few conventional markers
// ("NA", "N/A", "null", "NaN") are treated as missing.
func IsMissing(v string) bool {
	s := strings.TrimSpace(v)
	if s == "" {
		return true
	}
	switch strings.ToLower(s) {
	case "na", "n/a", "null", "nan", "none":
		return true
	}
	return false
}
