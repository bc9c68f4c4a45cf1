package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"edastat/internal/quality"
)

// Global configuration structure.
type Global struct {
	// Report defaults
	OutDir          string  `mapstructure:"out_dir" yaml:"out_dir"`
	MaxHistColumns  int     `mapstructure:"max_hist_columns" yaml:"max_hist_columns"`
	MaxCatColumns   int     `mapstructure:"max_cat_columns" yaml:"max_cat_columns"`
	TopKCategories  int     `mapstructure:"top_k_categories" yaml:"top_k_categories"`
	MinMissingShare float64 `mapstructure:"min_missing_share" yaml:"min_missing_share"`

	// Quality heuristics
	MinRows               int     `mapstructure:"min_rows" yaml:"min_rows"`
	MaxColumns            int     `mapstructure:"max_columns" yaml:"max_columns"`
	MaxMissingShare       float64 `mapstructure:"max_missing_share" yaml:"max_missing_share"`
	HighCardinalityUnique int     `mapstructure:"high_cardinality_unique" yaml:"high_cardinality_unique"`
	HighCardinalityShare  float64 `mapstructure:"high_cardinality_share" yaml:"high_cardinality_share"`

	// HTTP service
	ServerPort      int   `mapstructure:"server_port" yaml:"server_port"`
	MaxUploadBytes  int64 `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`
	RateLimitPerSec int   `mapstructure:"rate_limit_per_sec" yaml:"rate_limit_per_sec"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.edastat/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".edastat")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("EDASTAT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("out_dir", "reports")
	v.SetDefault("max_hist_columns", 6)
	v.SetDefault("max_cat_columns", 5)
	v.SetDefault("top_k_categories", 5)
	v.SetDefault("min_missing_share", 0.2)
	v.SetDefault("min_rows", 100)
	v.SetDefault("max_columns", 100)
	v.SetDefault("max_missing_share", 0.5)
	v.SetDefault("high_cardinality_unique", 50)
	v.SetDefault("high_cardinality_share", 0.5)
	v.SetDefault("server_port", 8080)
	v.SetDefault("max_upload_bytes", 64<<20)
	v.SetDefault("rate_limit_per_sec", 50)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".edastat")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// QualityThresholds builds the heuristic thresholds carried by the config.
func (c *Global) QualityThresholds() quality.Thresholds {
	return quality.Thresholds{
		MinRows:               c.MinRows,
		MaxColumns:            c.MaxColumns,
		MaxMissingShare:       c.MaxMissingShare,
		HighCardinalityUnique: c.HighCardinalityUnique,
		HighCardinalityShare:  c.HighCardinalityShare,
	}
}
