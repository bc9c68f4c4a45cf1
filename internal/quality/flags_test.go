package quality

import (
	"reflect"
	"testing"

	"edastat/internal/stats"
)

func colSummary(name, kind string, nonNull, missing, unique, nRows int) stats.ColumnSummary {
	share := 0.0
	if nRows > 0 {
		share = float64(missing) / float64(nRows)
	}
	return stats.ColumnSummary{
		Name:         name,
		Kind:         kind,
		NonNull:      nonNull,
		Missing:      missing,
		MissingShare: share,
		Unique:       unique,
		IsNumeric:    kind == stats.KindNumeric,
	}
}

func cleanSummary() stats.DatasetSummary {
	n := 500
	return stats.DatasetSummary{
		NRows: n,
		NCols: 2,
		Columns: []stats.ColumnSummary{
			colSummary("x", stats.KindNumeric, n, 0, 400, n),
			colSummary("cat", stats.KindCategorical, n, 0, 4, n),
		},
	}
}

func evaluate(sum stats.DatasetSummary) Flags {
	return Evaluate(sum, stats.MissingFromSummary(sum), DefaultThresholds())
}

func TestEvaluateCleanDataset(t *testing.T) {
	f := evaluate(cleanSummary())
	if f.QualityScore != 1.0 {
		t.Errorf("score = %g, want 1.0", f.QualityScore)
	}
	if f.TooFewRows || f.TooManyColumns || f.TooManyMissing ||
		f.HasConstantColumns || f.HasHighCardinalityCategoricals || f.HasAllMissingColumns {
		t.Errorf("unexpected flags raised: %+v", f)
	}
	if !OKForModel(f) {
		t.Error("clean dataset not ok for model")
	}
}

func TestEvaluateTooFewRows(t *testing.T) {
	sum := cleanSummary()
	sum.NRows = 10
	for i := range sum.Columns {
		sum.Columns[i].NonNull = 10
		sum.Columns[i].Unique = 4
	}
	f := evaluate(sum)
	if !f.TooFewRows {
		t.Fatal("too_few_rows not raised for 10 rows")
	}
	if f.QualityScore != 0.8 {
		t.Errorf("score = %g, want 0.8", f.QualityScore)
	}
}

func TestEvaluateTooManyColumns(t *testing.T) {
	sum := cleanSummary()
	sum.NCols = 150
	f := evaluate(sum)
	if !f.TooManyColumns {
		t.Fatal("too_many_columns not raised for 150 columns")
	}
}

func TestEvaluateTooManyMissing(t *testing.T) {
	sum := cleanSummary()
	sum.Columns[0] = colSummary("x", stats.KindNumeric, 100, 400, 90, 500)
	f := evaluate(sum)
	if !f.TooManyMissing {
		t.Fatal("too_many_missing not raised at 80% missing")
	}
	if f.MaxMissingShare != 0.8 {
		t.Errorf("max_missing_share = %g, want 0.8", f.MaxMissingShare)
	}
	if OKForModel(f) {
		t.Error("dataset with excess missingness passes ok_for_model")
	}
}

func TestEvaluateConstantColumns(t *testing.T) {
	sum := cleanSummary()
	sum.Columns = append(sum.Columns, colSummary("const", stats.KindNumeric, 500, 0, 1, 500))
	sum.NCols = 3
	f := evaluate(sum)
	if !f.HasConstantColumns {
		t.Fatal("has_constant_columns not raised")
	}
	if !reflect.DeepEqual(f.ConstantColumns, []string{"const"}) {
		t.Errorf("constant columns = %v", f.ConstantColumns)
	}
}

func TestEvaluateHighCardinality(t *testing.T) {
	sum := cleanSummary()
	// unique above the absolute threshold
	sum.Columns[1] = colSummary("cat", stats.KindCategorical, 500, 0, 60, 500)
	f := evaluate(sum)
	if !f.HasHighCardinalityCategoricals {
		t.Fatal("high cardinality (unique) not raised")
	}
	if !reflect.DeepEqual(f.HighCardinalityColumns, []string{"cat"}) {
		t.Errorf("columns = %v", f.HighCardinalityColumns)
	}

	// unique share above the relative threshold, absolute below it
	sum2 := stats.DatasetSummary{
		NRows: 40,
		NCols: 1,
		Columns: []stats.ColumnSummary{
			colSummary("id", stats.KindText, 40, 0, 35, 40),
		},
	}
	f2 := evaluate(sum2)
	if !f2.HasHighCardinalityCategoricals {
		t.Fatal("high cardinality (share) not raised")
	}
}

func TestEvaluateNumericColumnsNotHighCardinality(t *testing.T) {
	sum := cleanSummary() // x has unique 400 of 500 but is numeric
	f := evaluate(sum)
	if f.HasHighCardinalityCategoricals {
		t.Errorf("numeric column flagged high-cardinality: %v", f.HighCardinalityColumns)
	}
}

func TestEvaluateAllMissingColumns(t *testing.T) {
	sum := cleanSummary()
	sum.Columns = append(sum.Columns, colSummary("void", stats.KindUnknown, 0, 500, 0, 500))
	sum.NCols = 3
	f := evaluate(sum)
	if !f.HasAllMissingColumns {
		t.Fatal("has_all_missing_columns not raised")
	}
	if !reflect.DeepEqual(f.AllMissingColumns, []string{"void"}) {
		t.Errorf("all-missing columns = %v", f.AllMissingColumns)
	}
	// the all-missing column also trips too_many_missing
	if !f.TooManyMissing {
		t.Error("too_many_missing not raised alongside all-missing column")
	}
}

func TestEvaluateScoreClampedAtZero(t *testing.T) {
	n := 10
	sum := stats.DatasetSummary{
		NRows: n,
		NCols: 200,
		Columns: []stats.ColumnSummary{
			colSummary("const", stats.KindNumeric, n, 0, 1, n),
			colSummary("void", stats.KindUnknown, 0, n, 0, n),
			colSummary("id", stats.KindText, n, 0, n, n),
		},
	}
	f := evaluate(sum)
	if f.QualityScore != 0 {
		t.Errorf("score = %g, want clamp at 0", f.QualityScore)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	sum := cleanSummary()
	sum.Columns = append(sum.Columns, colSummary("void", stats.KindUnknown, 0, 500, 0, 500))
	a := evaluate(sum)
	b := evaluate(sum)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("evaluation not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestThresholdsValidate(t *testing.T) {
	ok := DefaultThresholds()
	if err := ok.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	bad := DefaultThresholds()
	bad.HighCardinalityUnique = 0
	if err := bad.Validate(); err == nil {
		t.Error("unique=0 accepted")
	}

	bad = DefaultThresholds()
	bad.HighCardinalityShare = 1.5
	if err := bad.Validate(); err == nil {
		t.Error("share=1.5 accepted")
	}

	bad = DefaultThresholds()
	bad.MaxMissingShare = -0.1
	if err := bad.Validate(); err == nil {
		t.Error("negative max_missing_share accepted")
	}
}
