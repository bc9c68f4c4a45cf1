package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"edastat/internal/dataset"
	"edastat/internal/stats"
)

var (
	ovDelimiter string
	ovEncoding  string
	ovMaxRows   int
)

var overviewCmd = &cobra.Command{
	Use:   "overview <path>",
	Short: "Print a short dataset overview: dimensions, types, per-column table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := readOptions(ovDelimiter, ovEncoding, ovMaxRows)
		if err != nil {
			return err
		}
		frame, err := dataset.Read(args[0], opt)
		if err != nil {
			return err
		}
		sum := stats.Summarize(frame)

		fmt.Printf("Rows: %d\n", sum.NRows)
		fmt.Printf("Columns: %d\n\n", sum.NCols)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "name\tdtype\tnon_null\tmissing\tmissing_share\tunique\tmin\tmax\tmean\tstd")
		for _, c := range sum.Columns {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3f\t%d\t%s\t%s\t%s\t%s\n",
				c.Name, c.Kind, c.NonNull, c.Missing, c.MissingShare, c.Unique,
				fmtOpt(c.Min), fmtOpt(c.Max), fmtOpt(c.Mean), fmtOpt(c.Std))
		}
		return w.Flush()
	},
}

func fmtOpt(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.4g", *f)
}

// readOptions translates CLI delimiter/encoding flags into dataset options.
func readOptions(delimiter, encoding string, maxRows int) (dataset.Options, error) {
	opt := dataset.DefaultOptions()
	switch delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return opt, fmt.Errorf("unsupported --delimiter: %s (use ','|';'|'tab')", delimiter)
	}
	if encoding != "" {
		opt.Encoding = encoding
	}
	if maxRows > 0 {
		opt.MaxRows = maxRows
	}
	return opt, nil
}

func init() {
	rootCmd.AddCommand(overviewCmd)
	overviewCmd.Flags().StringVar(&ovDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	overviewCmd.Flags().StringVar(&ovEncoding, "encoding", "utf-8", "file encoding: utf-8 | latin-1 | windows-1251")
	overviewCmd.Flags().IntVar(&ovMaxRows, "max-rows", 0, "maximum rows to load (0 = unlimited)")
}
