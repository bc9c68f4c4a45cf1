package stats

import (
	"sort"
	"testing"
)

func TestMissingTableSortedDescending(t *testing.T) {
	f := testFrame()
	rows := MissingTable(f)
	if len(rows) != f.NumCols() {
		t.Fatalf("len = %d, want %d", len(rows), f.NumCols())
	}
	if !sort.SliceIsSorted(rows, func(i, j int) bool {
		if rows[i].MissingShare == rows[j].MissingShare {
			return rows[i].Column < rows[j].Column
		}
		return rows[i].MissingShare > rows[j].MissingShare
	}) {
		t.Errorf("rows not sorted by share desc: %+v", rows)
	}
	if rows[0].Column != "blank" || rows[0].MissingShare != 1.0 {
		t.Errorf("worst column = %+v, want blank at 1.0", rows[0])
	}
}

func TestMissingTableBounds(t *testing.T) {
	f := testFrame()
	for _, r := range MissingTable(f) {
		if r.MissingShare < 0 || r.MissingShare > 1 {
			t.Errorf("%s share %g outside [0,1]", r.Column, r.MissingShare)
		}
		if r.MissingCount > f.NumRows() {
			t.Errorf("%s count %d exceeds rows %d", r.Column, r.MissingCount, f.NumRows())
		}
	}
}

func TestMissingFromSummaryMatchesFrameTable(t *testing.T) {
	f := testFrame()
	fromFrame := MissingTable(f)
	fromSummary := MissingFromSummary(Summarize(f))
	if len(fromFrame) != len(fromSummary) {
		t.Fatalf("length mismatch: %d vs %d", len(fromFrame), len(fromSummary))
	}
	for i := range fromFrame {
		if fromFrame[i] != fromSummary[i] {
			t.Errorf("row %d: %+v vs %+v", i, fromFrame[i], fromSummary[i])
		}
	}
}
