// Package report serializes computed statistics into on-disk artifacts:
// CSV tables, a JSON summary and a markdown report.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"edastat/internal/quality"
	"edastat/internal/stats"
	"edastat/internal/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Artifacts bundles everything a report run computed over one dataset.
type Artifacts struct {
	Summary    stats.DatasetSummary
	Missing    []stats.MissingRow
	Corr       stats.CorrMatrix
	Categories []stats.ColumnCategories
	Flags      quality.Flags
}

// WriteTables writes summary.csv, missing.csv, correlation.csv,
// summary.json and top_categories/*.csv under outDir.
func WriteTables(outDir string, a Artifacts) error {
	if err := utils.EnsureDir(outDir); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeCSV(filepath.Join(outDir, "summary.csv"), summaryRecords(a.Summary)); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(outDir, "missing.csv"), missingRecords(a.Missing)); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(outDir, "correlation.csv"), corrRecords(a.Corr)); err != nil {
		return err
	}

	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary json: %w", err)
	}
	if err := utils.SafeWriteFile(filepath.Join(outDir, "summary.json"), b); err != nil {
		return err
	}

	topDir := filepath.Join(outDir, "top_categories")
	if err := utils.EnsureDir(topDir); err != nil {
		return fmt.Errorf("create top_categories dir: %w", err)
	}
	for _, cc := range a.Categories {
		recs := [][]string{{"value", "count"}}
		for _, kv := range cc.Top {
			recs = append(recs, []string{kv.Value, strconv.Itoa(kv.Count)})
		}
		name := utils.SanitizeBase(cc.Column) + ".csv"
		if err := writeCSV(filepath.Join(topDir, name), recs); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, records [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

func summaryRecords(sum stats.DatasetSummary) [][]string {
	recs := [][]string{{
		"name", "dtype", "non_null", "missing", "missing_share",
		"unique", "is_numeric", "min", "max", "mean", "std",
	}}
	for _, c := range sum.Columns {
		recs = append(recs, []string{
			c.Name,
			c.Kind,
			strconv.Itoa(c.NonNull),
			strconv.Itoa(c.Missing),
			formatFloat(c.MissingShare),
			strconv.Itoa(c.Unique),
			strconv.FormatBool(c.IsNumeric),
			formatOptFloat(c.Min),
			formatOptFloat(c.Max),
			formatOptFloat(c.Mean),
			formatOptFloat(c.Std),
		})
	}
	return recs
}

func missingRecords(rows []stats.MissingRow) [][]string {
	recs := [][]string{{"column", "missing_count", "missing_share"}}
	for _, r := range rows {
		recs = append(recs, []string{r.Column, strconv.Itoa(r.MissingCount), formatFloat(r.MissingShare)})
	}
	return recs
}

func corrRecords(m stats.CorrMatrix) [][]string {
	header := append([]string{"column"}, m.Columns...)
	recs := [][]string{header}
	for i, name := range m.Columns {
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, name)
		for j := range m.Columns {
			row = append(row, formatFloat(m.Values[i][j]))
		}
		recs = append(recs, row)
	}
	return recs
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func formatOptFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
