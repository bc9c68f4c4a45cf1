package stats

import (
	"math"
	"testing"

	"edastat/internal/dataset"
)

func corrFrame() *dataset.Frame {
	return &dataset.Frame{
		Columns: []string{"x", "y", "z", "label"},
		Rows: [][]string{
			{"1", "2", "5", "a"},
			{"2", "4", "4", "b"},
			{"3", "6", "3", "a"},
			{"4", "8", "2", "b"},
			{"5", "10", "1", "a"},
		},
	}
}

func TestCorrelationsPerfectPairs(t *testing.T) {
	m := Correlations(corrFrame())
	if len(m.Columns) != 3 {
		t.Fatalf("numeric columns = %v, want x y z", m.Columns)
	}
	idx := func(name string) int {
		for i, c := range m.Columns {
			if c == name {
				return i
			}
		}
		t.Fatalf("column %s missing", name)
		return -1
	}
	x, y, z := idx("x"), idx("y"), idx("z")
	if r := m.Values[x][y]; math.Abs(r-1) > 1e-9 {
		t.Errorf("corr(x,y) = %g, want 1", r)
	}
	if r := m.Values[x][z]; math.Abs(r+1) > 1e-9 {
		t.Errorf("corr(x,z) = %g, want -1", r)
	}
	for i := range m.Columns {
		if m.Values[i][i] != 1 {
			t.Errorf("diagonal [%d] = %g, want 1", i, m.Values[i][i])
		}
	}
}

func TestCorrelationsSymmetric(t *testing.T) {
	m := Correlations(corrFrame())
	for i := range m.Columns {
		for j := range m.Columns {
			if m.Values[i][j] != m.Values[j][i] {
				t.Errorf("asymmetry at [%d][%d]: %g vs %g", i, j, m.Values[i][j], m.Values[j][i])
			}
		}
	}
}

func TestCorrelationsPairwiseMissing(t *testing.T) {
	f := &dataset.Frame{
		Columns: []string{"a", "b"},
		Rows: [][]string{
			{"1", "1"},
			{"2", ""},
			{"3", "3"},
			{"", "4"},
			{"5", "5"},
		},
	}
	m := Correlations(f)
	r := m.Values[0][1]
	// complete pairs: (1,1) (3,3) (5,5)
	if math.Abs(r-1) > 1e-9 {
		t.Errorf("corr over complete pairs = %g, want 1", r)
	}
}

func TestCorrelationsConstantColumn(t *testing.T) {
	f := &dataset.Frame{
		Columns: []string{"a", "const"},
		Rows: [][]string{
			{"1", "7"},
			{"2", "7"},
			{"3", "7"},
		},
	}
	m := Correlations(f)
	if r := m.Values[0][1]; r != 0 {
		t.Errorf("corr with constant column = %g, want 0", r)
	}
}

func TestCorrelationsNoNumericColumns(t *testing.T) {
	f := &dataset.Frame{
		Columns: []string{"a"},
		Rows:    [][]string{{"foo"}, {"bar"}},
	}
	m := Correlations(f)
	if len(m.Columns) != 0 {
		t.Fatalf("columns = %v, want none", m.Columns)
	}
}
