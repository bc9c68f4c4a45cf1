// Package quality scores dataset summaries with rule-based heuristics.
package quality

import (
	"fmt"

	"edastat/internal/stats"
)

// Thresholds parameterize the quality heuristics.
type Thresholds struct {
	// MinRows below which the dataset is flagged as too small.
	MinRows int
	// MaxColumns above which the dataset is flagged as too wide.
	MaxColumns int
	// MaxMissingShare above which the worst column flags the dataset.
	MaxMissingShare float64
	// HighCardinalityUnique: unique-count threshold for categoricals.
	HighCardinalityUnique int
	// HighCardinalityShare: unique/n_rows threshold for categoricals.
	HighCardinalityShare float64
}

// DefaultThresholds returns the stock heuristic thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinRows:               100,
		MaxColumns:            100,
		MaxMissingShare:       0.5,
		HighCardinalityUnique: 50,
		HighCardinalityShare:  0.5,
	}
}

// Validate rejects thresholds outside their documented ranges.
func (t Thresholds) Validate() error {
	if t.HighCardinalityUnique < 1 {
		return fmt.Errorf("high_cardinality_unique must be >= 1, got %d", t.HighCardinalityUnique)
	}
	if t.HighCardinalityShare < 0 || t.HighCardinalityShare > 1 {
		return fmt.Errorf("high_cardinality_share must be in [0..1], got %g", t.HighCardinalityShare)
	}
	if t.MaxMissingShare < 0 || t.MaxMissingShare > 1 {
		return fmt.Errorf("max_missing_share must be in [0..1], got %g", t.MaxMissingShare)
	}
	return nil
}

// Flags is the rule-based quality verdict over a dataset summary.
type Flags struct {
	QualityScore    float64 `json:"quality_score"`
	MaxMissingShare float64 `json:"max_missing_share"`

	TooFewRows     bool `json:"too_few_rows"`
	TooManyColumns bool `json:"too_many_columns"`
	TooManyMissing bool `json:"too_many_missing"`

	HasConstantColumns bool     `json:"has_constant_columns"`
	ConstantColumns    []string `json:"constant_columns"`

	HasHighCardinalityCategoricals bool     `json:"has_high_cardinality_categoricals"`
	HighCardinalityUnique          int      `json:"high_cardinality_unique"`
	HighCardinalityShare           float64  `json:"high_cardinality_share"`
	HighCardinalityColumns         []string `json:"high_cardinality_columns"`

	HasAllMissingColumns bool     `json:"has_all_missing_columns"`
	AllMissingColumns    []string `json:"all_missing_columns"`
}

// Score penalties per raised flag. The score starts at 1.0 and is clamped
// to [0, 1].
const (
	penaltyFewRows         = 0.2
	penaltyManyColumns     = 0.1
	penaltyManyMissing     = 0.3
	penaltyConstant        = 0.1
	penaltyHighCardinality = 0.1
	penaltyAllMissing      = 0.2
)

// Evaluate applies every heuristic to the summary and missingness table.
// The result is deterministic for identical inputs and thresholds.
func Evaluate(sum stats.DatasetSummary, missing []stats.MissingRow, t Thresholds) Flags {
	f := Flags{
		HighCardinalityUnique:  t.HighCardinalityUnique,
		HighCardinalityShare:   t.HighCardinalityShare,
		ConstantColumns:        []string{},
		HighCardinalityColumns: []string{},
		AllMissingColumns:      []string{},
	}

	for _, m := range missing {
		if m.MissingShare > f.MaxMissingShare {
			f.MaxMissingShare = m.MissingShare
		}
	}

	f.TooFewRows = sum.NRows < t.MinRows
	f.TooManyColumns = sum.NCols > t.MaxColumns
	f.TooManyMissing = f.MaxMissingShare > t.MaxMissingShare

	for _, c := range sum.Columns {
		if c.NonNull > 0 && c.Unique <= 1 {
			f.ConstantColumns = append(f.ConstantColumns, c.Name)
		}
		if sum.NRows > 0 && c.Missing >= sum.NRows {
			f.AllMissingColumns = append(f.AllMissingColumns, c.Name)
		}
		if !c.IsNumeric && c.NonNull > 0 {
			share := 0.0
			if sum.NRows > 0 {
				share = float64(c.Unique) / float64(sum.NRows)
			}
			if c.Unique > t.HighCardinalityUnique || share > t.HighCardinalityShare {
				f.HighCardinalityColumns = append(f.HighCardinalityColumns, c.Name)
			}
		}
	}
	f.HasConstantColumns = len(f.ConstantColumns) > 0
	f.HasHighCardinalityCategoricals = len(f.HighCardinalityColumns) > 0
	f.HasAllMissingColumns = len(f.AllMissingColumns) > 0

	score := 1.0
	if f.TooFewRows {
		score -= penaltyFewRows
	}
	if f.TooManyColumns {
		score -= penaltyManyColumns
	}
	if f.TooManyMissing {
		score -= penaltyManyMissing
	}
	if f.HasConstantColumns {
		score -= penaltyConstant
	}
	if f.HasHighCardinalityCategoricals {
		score -= penaltyHighCardinality
	}
	if f.HasAllMissingColumns {
		score -= penaltyAllMissing
	}
	if score < 0 {
		score = 0
	}
	f.QualityScore = score
	return f
}

// OKForModel reports whether the dataset passes the baseline modeling bar:
// score at least 0.5 and no excess missingness.
func OKForModel(f Flags) bool {
	return f.QualityScore >= 0.5 && !f.TooManyMissing
}
