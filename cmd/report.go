package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"edastat/internal/dataset"
	"edastat/internal/quality"
	"edastat/internal/report"
	"edastat/internal/stats"
	"edastat/internal/utils"
	"edastat/internal/viz"
)

var (
	repOutDir    string
	repTitle     string
	repDelimiter string
	repEncoding  string
	repMaxRows   int
	repMaxHist   int
	repMinMiss   float64
	repTopK      int
	repMaxCat    int
	repHCUnique  int
	repHCShare   float64
	repNoPlots   bool
)

var reportCmd = &cobra.Command{
	Use:   "report <path>",
	Short: "Generate a full EDA report: tables, markdown and figures",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		if !cmd.Flags().Changed("out-dir") {
			repOutDir = c.OutDir
		}
		if !cmd.Flags().Changed("max-hist-columns") {
			repMaxHist = c.MaxHistColumns
		}
		if !cmd.Flags().Changed("min-missing-share") {
			repMinMiss = c.MinMissingShare
		}
		if !cmd.Flags().Changed("top-k-categories") {
			repTopK = c.TopKCategories
		}
		if !cmd.Flags().Changed("max-cat-columns") {
			repMaxCat = c.MaxCatColumns
		}
		if !cmd.Flags().Changed("high-cardinality-unique") {
			repHCUnique = c.HighCardinalityUnique
		}
		if !cmd.Flags().Changed("high-cardinality-share") {
			repHCShare = c.HighCardinalityShare
		}

		if repMinMiss < 0 || repMinMiss > 1 {
			return fmt.Errorf("--min-missing-share must be in [0..1]")
		}
		if repTopK < 1 {
			return fmt.Errorf("--top-k-categories must be >= 1")
		}
		if repMaxCat < 0 {
			return fmt.Errorf("--max-cat-columns must be >= 0")
		}
		thresholds := c.QualityThresholds()
		thresholds.HighCardinalityUnique = repHCUnique
		thresholds.HighCardinalityShare = repHCShare
		if err := thresholds.Validate(); err != nil {
			return err
		}

		opt, err := readOptions(repDelimiter, repEncoding, repMaxRows)
		if err != nil {
			return err
		}
		frame, err := dataset.Read(args[0], opt)
		if err != nil {
			return err
		}

		sum := stats.Summarize(frame)
		missing := stats.MissingTable(frame)
		corr := stats.Correlations(frame)
		cats := stats.TopCategories(frame, repMaxCat, repTopK)
		flags := quality.Evaluate(sum, missing, thresholds)

		a := report.Artifacts{
			Summary:    sum,
			Missing:    missing,
			Corr:       corr,
			Categories: cats,
			Flags:      flags,
		}
		if err := report.WriteTables(repOutDir, a); err != nil {
			return err
		}

		md := report.Markdown(a, report.Settings{
			Title:           repTitle,
			SourceFile:      frame.Name,
			MaxHistColumns:  repMaxHist,
			MaxCatColumns:   repMaxCat,
			TopKCategories:  repTopK,
			MinMissingShare: repMinMiss,
			Thresholds:      thresholds,
		})
		mdPath := filepath.Join(repOutDir, "report.md")
		if err := utils.SafeWriteFile(mdPath, []byte(md)); err != nil {
			return fmt.Errorf("write report.md: %w", err)
		}

		if !repNoPlots {
			if _, err := viz.Histograms(frame, repOutDir, repMaxHist); err != nil {
				return err
			}
			if err := viz.MissingMatrix(frame, filepath.Join(repOutDir, "missing_matrix.png")); err != nil {
				return err
			}
			if err := viz.CorrelationHeatmap(corr, filepath.Join(repOutDir, "correlation_heatmap.png")); err != nil {
				return err
			}
		}

		fmt.Printf("✓ Report generated in %s\n", repOutDir)
		fmt.Printf("- Main markdown: %s\n", mdPath)
		fmt.Println("- Tables: summary.csv, missing.csv, correlation.csv, summary.json, top_categories/*.csv")
		if !repNoPlots {
			fmt.Println("- Figures: hist_*.png, missing_matrix.png, correlation_heatmap.png")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repOutDir, "out-dir", "o", "reports", "output directory for the report")
	reportCmd.Flags().StringVar(&repTitle, "title", "", "report title (written into report.md)")
	reportCmd.Flags().StringVar(&repDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	reportCmd.Flags().StringVar(&repEncoding, "encoding", "utf-8", "file encoding: utf-8 | latin-1 | windows-1251")
	reportCmd.Flags().IntVar(&repMaxRows, "max-rows", 0, "maximum rows to load (0 = unlimited)")
	reportCmd.Flags().IntVar(&repMaxHist, "max-hist-columns", 6, "maximum numeric columns to plot histograms for")
	reportCmd.Flags().Float64Var(&repMinMiss, "min-missing-share", 0.2, "missing share above which a column is highlighted (0..1)")
	reportCmd.Flags().IntVar(&repTopK, "top-k-categories", 5, "top values kept per categorical column")
	reportCmd.Flags().IntVar(&repMaxCat, "max-cat-columns", 5, "categorical columns analyzed for top-k tables")
	reportCmd.Flags().IntVar(&repHCUnique, "high-cardinality-unique", 50, "unique-count threshold for high-cardinality categoricals")
	reportCmd.Flags().Float64Var(&repHCShare, "high-cardinality-share", 0.5, "unique/n_rows threshold for high-cardinality categoricals (0..1)")
	reportCmd.Flags().BoolVar(&repNoPlots, "no-plots", false, "skip PNG figure rendering")
}
