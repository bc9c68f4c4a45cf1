package report

import (
	"fmt"
	"strings"

	"edastat/internal/quality"
)

// Settings captures the report options echoed into report.md.
type Settings struct {
	Title           string
	SourceFile      string
	MaxHistColumns  int
	MaxCatColumns   int
	TopKCategories  int
	MinMissingShare float64
	Thresholds      quality.Thresholds
}

// Markdown renders the main report.md body for a report run.
func Markdown(a Artifacts, s Settings) string {
	title := strings.TrimSpace(s.Title)
	if title == "" {
		title = "EDA report"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Source file: `%s`\n\n", s.SourceFile)
	fmt.Fprintf(&b, "Rows: **%d**, columns: **%d**\n\n", a.Summary.NRows, a.Summary.NCols)

	b.WriteString("## Report settings\n\n")
	fmt.Fprintf(&b, "- max_hist_columns: **%d**\n", s.MaxHistColumns)
	fmt.Fprintf(&b, "- max_cat_columns: **%d**\n", s.MaxCatColumns)
	fmt.Fprintf(&b, "- top_k_categories: **%d**\n", s.TopKCategories)
	fmt.Fprintf(&b, "- min_missing_share: **%.0f%%**\n", s.MinMissingShare*100)
	fmt.Fprintf(&b, "- high_cardinality_unique: **%d**\n", s.Thresholds.HighCardinalityUnique)
	fmt.Fprintf(&b, "- high_cardinality_share: **%.0f%%**\n\n", s.Thresholds.HighCardinalityShare*100)

	b.WriteString("## Data quality (heuristics)\n\n")
	fmt.Fprintf(&b, "- Quality score: **%.2f**\n", a.Flags.QualityScore)
	fmt.Fprintf(&b, "- Max missing share per column: **%.2f%%**\n", a.Flags.MaxMissingShare*100)
	fmt.Fprintf(&b, "- Too few rows: **%t**\n", a.Flags.TooFewRows)
	fmt.Fprintf(&b, "- Too many columns: **%t**\n", a.Flags.TooManyColumns)
	fmt.Fprintf(&b, "- Too many missing values: **%t**\n", a.Flags.TooManyMissing)
	fmt.Fprintf(&b, "- Constant columns: **%t**\n", a.Flags.HasConstantColumns)
	if a.Flags.HasConstantColumns {
		fmt.Fprintf(&b, "  - Columns: `%s`\n", strings.Join(a.Flags.ConstantColumns, ", "))
	}
	fmt.Fprintf(&b, "- High-cardinality categoricals: **%t**\n", a.Flags.HasHighCardinalityCategoricals)
	fmt.Fprintf(&b, "  - high_cardinality_unique: `%d`\n", a.Flags.HighCardinalityUnique)
	fmt.Fprintf(&b, "  - high_cardinality_share: `%g`\n", a.Flags.HighCardinalityShare)
	if a.Flags.HasHighCardinalityCategoricals {
		fmt.Fprintf(&b, "  - Columns: `%s`\n", strings.Join(a.Flags.HighCardinalityColumns, ", "))
	}
	fmt.Fprintf(&b, "- All-missing columns: **%t**\n", a.Flags.HasAllMissingColumns)
	if a.Flags.HasAllMissingColumns {
		fmt.Fprintf(&b, "  - Columns: `%s`\n", strings.Join(a.Flags.AllMissingColumns, ", "))
	}

	b.WriteString("\n## Columns\n\nSee `summary.csv`.\n\n")

	b.WriteString("## Missing values\n\n")
	if len(a.Missing) == 0 {
		b.WriteString("No missing values, or the dataset is empty.\n\n")
	} else {
		b.WriteString("See `missing.csv`.\n\n")
		var bad []string
		for _, m := range a.Missing {
			if m.MissingShare >= s.MinMissingShare {
				bad = append(bad, fmt.Sprintf("- `%s`: %.2f%%", m.Column, m.MissingShare*100))
			}
		}
		if len(bad) == 0 {
			fmt.Fprintf(&b, "No columns with missing share >= %.0f%%.\n\n", s.MinMissingShare*100)
		} else {
			fmt.Fprintf(&b, "Columns with missing share >= %.0f%%:\n\n", s.MinMissingShare*100)
			b.WriteString(strings.Join(bad, "\n"))
			b.WriteString("\n\n")
		}
	}

	b.WriteString("## Correlations\n\nSee `correlation.csv` and `correlation_heatmap.png`.\n\n")

	b.WriteString("## Top categories\n\n")
	if len(a.Categories) == 0 {
		b.WriteString("No categorical columns found.\n\n")
	} else {
		b.WriteString("See files under `top_categories/`.\n\n")
	}

	b.WriteString("## Histograms of numeric columns\n\nSee `hist_*.png`.\n")
	return b.String()
}
