package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfgpkg "edastat/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "edastat",
	Short: "edastat: descriptive statistics and quality checks for CSV datasets",
	Long:  `edastat computes per-column statistics, missingness tables, correlation matrices and rule-based quality flags over CSV files, as a CLI or a small HTTP service.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.edastat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// activeConfig returns the loaded config, or built-in defaults when config
// loading failed.
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	c, err := cfgpkg.Load("")
	if err != nil {
		return &cfgpkg.Global{
			OutDir:                "reports",
			MaxHistColumns:        6,
			MaxCatColumns:         5,
			TopKCategories:        5,
			MinMissingShare:       0.2,
			MinRows:               100,
			MaxColumns:            100,
			MaxMissingShare:       0.5,
			HighCardinalityUnique: 50,
			HighCardinalityShare:  0.5,
			ServerPort:            8080,
			MaxUploadBytes:        64 << 20,
			RateLimitPerSec:       50,
		}
	}
	return c
}
