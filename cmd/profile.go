package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dataprof/internal/dataset"
	"dataprof/internal/profile"
	"dataprof/internal/source"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	file       string
	format     string
	dsn        string
	driver     string
	query      string
	useSample  bool
	sampleRows int
	outputDir  string
	asJSON     bool
	method     string
	corrMethod string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile a table and report its quality and statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}

		log.Printf("Loaded table: %d rows x %d columns", table.Rows(), table.Cols())

		opts := profile.Options{
			Correlation:    viper.GetString("profile.correlation"),
			CategoricalMin: viper.GetInt("profile.categorical_threshold"),
		}
		if corrMethod != "" {
			opts.Correlation = corrMethod
		}

		outlierMethod := viper.GetString("profile.outlier_method")
		if method != "" {
			outlierMethod = method
		}
		switch outlierMethod {
		case "iqr":
			opts.Rule = profile.IQR(viper.GetFloat64("profile.iqr_factor"))
		case "zscore":
			opts.Rule = profile.ZScore(viper.GetFloat64("profile.zscore_threshold"))
		default:
			return fmt.Errorf("unknown outlier method: %s (use iqr or zscore)", outlierMethod)
		}

		uiprogress.Start()
		bar := uiprogress.AddBar(table.Cols()).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Profiling: "
		})
		opts.OnColumn = func(string) { bar.Incr() }

		start := time.Now()
		report, err := profile.New(opts).Profile(table)
		uiprogress.Stop()
		if err != nil {
			return err
		}
		log.Printf("Profiled in %s", time.Since(start))

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			profile.RenderText(os.Stdout, report)
		}

		if outputDir != "" {
			if err := saveReport(report, outputDir); err != nil {
				return err
			}
			log.Printf("Report saved to %s", outputDir)
		}

		return nil
	},
}

// loadTable resolves the input source: --sample, --file, or a SQL query
// against the configured database, in that order of precedence.
func loadTable() (*dataset.Table, error) {
	if useSample {
		log.Printf("Generating sample dataset with %d rows...", sampleRows)
		return source.Sample(sampleRows, sampleSeed), nil
	}

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file, err)
		}
		defer f.Close()

		fileFormat := format
		if fileFormat == "" {
			fileFormat = strings.TrimPrefix(filepath.Ext(file), ".")
		}
		switch fileFormat {
		case "csv", "":
			opts := source.CSVOptions{}
			if viper.IsSet("source.null_values") {
				opts.NullValues = viper.GetStringSlice("source.null_values")
			}
			return source.ReadCSV(f, opts)
		case "json":
			return source.ReadJSON(f)
		default:
			return nil, fmt.Errorf("unsupported format: %s (use csv or json)", fileFormat)
		}
	}

	if query != "" {
		return loadFromDB()
	}

	return nil, fmt.Errorf("specify an input with --file, --query, or --sample")
}

func loadFromDB() (*dataset.Table, error) {
	connStr := dsn
	driverName := driver

	// Flag > active source config > database.* keys.
	if connStr == "" {
		if active, err := GetActiveSourceConfig(); err == nil {
			connStr = active.DSN
			if driverName == "" {
				driverName = active.Driver
			}
		} else {
			connStr = viper.GetString("database.dsn")
			if driverName == "" {
				driverName = viper.GetString("database.driver")
			}
		}
	}
	if connStr == "" {
		return nil, fmt.Errorf("database.dsn is required (via flag or config)")
	}
	if driverName == "" {
		driverName = detectDriver(connStr)
	}

	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	log.Printf("Connected via %s", driverName)
	return source.QueryDB(context.Background(), db, query)
}

func saveReport(report *profile.Report, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	txt, err := os.Create(filepath.Join(dir, "report.txt"))
	if err != nil {
		return err
	}
	defer txt.Close()
	profile.RenderText(txt, report)

	m, err := report.ToMap()
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "report.json"), raw, 0o644)
}

func init() {
	RootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVarP(&file, "file", "f", "", "Path to the data file")
	profileCmd.Flags().StringVar(&format, "format", "", "File format: csv or json (default: by extension)")
	profileCmd.Flags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")
	profileCmd.Flags().StringVar(&driver, "driver", "", "Database driver: mysql, postgres, mssql, oracle")
	profileCmd.Flags().StringVar(&query, "query", "", "SQL query to load the table from")
	profileCmd.Flags().BoolVar(&useSample, "sample", false, "Profile a synthetic sample dataset")
	profileCmd.Flags().IntVar(&sampleRows, "rows", 500, "Row count for --sample")
	profileCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to save report.txt and report.json")
	profileCmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON instead of text")
	profileCmd.Flags().StringVar(&method, "method", "", "Outlier method: iqr or zscore (overrides config)")
	profileCmd.Flags().StringVar(&corrMethod, "corr", "", "Correlation method: pearson or spearman (overrides config)")

	viper.BindPFlag("database.dsn", profileCmd.Flags().Lookup("dsn"))
}
