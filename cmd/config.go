package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"db-split/internal/pattern"
)

type SplitConfig struct {
	Out        string   `mapstructure:"out"`
	Exclude    []string `mapstructure:"exclude"`
	CreateOnly []string `mapstructure:"create_only"`
}

type ImportConfig struct {
	DSN        string   `mapstructure:"dsn"`
	Client     string   `mapstructure:"client"`
	ClientArgs []string `mapstructure:"client_args"`
}

// GetSplitConfig returns the split settings from the config file, with the
// default retention policy filled in when no exclude list is given.
func GetSplitConfig() (*SplitConfig, error) {
	c := &SplitConfig{}
	if err := viper.UnmarshalKey("split", c); err != nil {
		return nil, fmt.Errorf("failed to parse split config: %w", err)
	}
	if c.Out == "" {
		c.Out = viper.GetString("split.out")
	}
	if c.Exclude == nil {
		c.Exclude = pattern.DefaultPolicy().Exclude
	}
	return c, nil
}

// GetImportConfig returns the import connection profile. A missing DSN for
// the driver client is rejected here, before any import attempt is made.
func GetImportConfig() (*ImportConfig, error) {
	c := &ImportConfig{}
	if err := viper.UnmarshalKey("database", c); err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	// Flag-bound values are not always merged into the sub-tree; overlay them.
	if v := viper.GetString("database.dsn"); v != "" {
		c.DSN = v
	}
	if c.Client == "" {
		c.Client = "driver"
	}
	if c.Client == "driver" && c.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required (via flag or config)")
	}
	return c, nil
}
