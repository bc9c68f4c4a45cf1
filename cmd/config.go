package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "edastat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set edastat configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		fmt.Printf("out_dir: %s\n", c.OutDir)
		fmt.Printf("max_hist_columns: %d\n", c.MaxHistColumns)
		fmt.Printf("max_cat_columns: %d\n", c.MaxCatColumns)
		fmt.Printf("top_k_categories: %d\n", c.TopKCategories)
		fmt.Printf("min_missing_share: %.3f\n", c.MinMissingShare)
		fmt.Printf("min_rows: %d\n", c.MinRows)
		fmt.Printf("max_columns: %d\n", c.MaxColumns)
		fmt.Printf("max_missing_share: %.3f\n", c.MaxMissingShare)
		fmt.Printf("high_cardinality_unique: %d\n", c.HighCardinalityUnique)
		fmt.Printf("high_cardinality_share: %.3f\n", c.HighCardinalityShare)
		fmt.Printf("server_port: %d\n", c.ServerPort)
		fmt.Printf("max_upload_bytes: %d\n", c.MaxUploadBytes)
		fmt.Printf("rate_limit_per_sec: %d\n", c.RateLimitPerSec)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := activeConfig()
		switch key {
		case "out_dir":
			c.OutDir = val
		case "max_hist_columns":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %s", key, val)
			}
			c.MaxHistColumns = n
		case "max_cat_columns":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %s", key, val)
			}
			c.MaxCatColumns = n
		case "top_k_categories":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid %s: %s (must be >= 1)", key, val)
			}
			c.TopKCategories = n
		case "min_missing_share":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid %s: %s (must be in [0..1])", key, val)
			}
			c.MinMissingShare = f
		case "min_rows":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %s", key, val)
			}
			c.MinRows = n
		case "max_columns":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %s", key, val)
			}
			c.MaxColumns = n
		case "max_missing_share":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid %s: %s (must be in [0..1])", key, val)
			}
			c.MaxMissingShare = f
		case "high_cardinality_unique":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid %s: %s (must be >= 1)", key, val)
			}
			c.HighCardinalityUnique = n
		case "high_cardinality_share":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid %s: %s (must be in [0..1])", key, val)
			}
			c.HighCardinalityShare = f
		case "server_port":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("invalid %s: %s", key, val)
			}
			c.ServerPort = n
		case "rate_limit_per_sec":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid %s: %s", key, val)
			}
			c.RateLimitPerSec = n
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
