package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SourceConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// GetActiveSourceConfig returns the currently active database source
// from the config file's `sources` list.
func GetActiveSourceConfig() (*SourceConfig, error) {
	var configs []SourceConfig

	if err := viper.UnmarshalKey("sources", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse sources config: %w", err)
	}

	var activeConfig *SourceConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active source found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active sources found (only one can be active)")
	}

	return activeConfig, nil
}

// detectDriver guesses the driver name from a DSN when not configured.
func detectDriver(dsn string) string {
	switch {
	case strings.Contains(dsn, "postgres") || strings.Contains(dsn, "sslmode"):
		return "postgres"
	case strings.Contains(dsn, "sqlserver") || strings.Contains(dsn, "mssql"):
		return "mssql"
	case strings.Contains(dsn, "oracle"):
		return "oracle"
	default:
		return "mysql"
	}
}
