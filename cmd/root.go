package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "dataprof",
	Short: "A tabular data-quality and profiling tool",
	Long: `dataprof - exploratory profiling for tabular data

Loads a table from CSV, JSON, a SQL database, or a synthetic sample,
and reports its shape, column types, missingness, descriptive
statistics, correlations, and outliers.`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./dataprof.yaml)")

	viper.SetDefault("profile.iqr_factor", 1.5)
	viper.SetDefault("profile.zscore_threshold", 3.0)
	viper.SetDefault("profile.categorical_threshold", 20)
	viper.SetDefault("profile.outlier_method", "iqr")
	viper.SetDefault("profile.correlation", "pearson")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Executable directory first, then the current directory.
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		viper.AddConfigPath(".")

		viper.SetConfigName("dataprof")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
