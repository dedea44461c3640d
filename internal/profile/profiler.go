package profile

import (
	"errors"
	"sort"
	"strings"
	"time"

	"dataprof/internal/dataset"
)

// ErrNoColumns is returned for a table with zero columns. A table with
// zero rows is still valid and produces a report with empty statistics.
var ErrNoColumns = errors.New("table has no columns")

// Correlation methods.
const (
	Pearson  = "pearson"
	Spearman = "spearman"
)

// Options configure a profiling run. The zero value gets the defaults:
// IQR(1.5) outlier fencing, Pearson correlation, categorical threshold
// of max(20, 5% of rows).
type Options struct {
	Rule           OutlierRule
	Correlation    string
	CategoricalMin int
	CategoricalPct float64

	// OnColumn is invoked after each column is profiled. Used by the
	// CLI for progress reporting; nil is fine.
	OnColumn func(name string)
}

type Profiler struct {
	opts Options
}

func New(opts Options) *Profiler {
	if opts.Rule == nil {
		opts.Rule = IQR(1.5)
	}
	if opts.Correlation == "" {
		opts.Correlation = Pearson
	}
	if opts.CategoricalMin == 0 {
		opts.CategoricalMin = 20
	}
	if opts.CategoricalPct == 0 {
		opts.CategoricalPct = 0.05
	}
	return &Profiler{opts: opts}
}

// numericColumn is the parsed view of a numeric column: non-missing
// values with their original row indices, plus a full-length validity
// slice for pairwise-complete correlation.
type numericColumn struct {
	name   string
	values []float64
	rows   []int
	cells  []float64 // full length, junk where invalid
	valid  []bool
}

// Profile inspects the table and assembles a Report. Pure function of
// the table contents and the options; classification is re-inferred on
// every call.
func (p *Profiler) Profile(t *dataset.Table) (*Report, error) {
	if t.Cols() == 0 {
		return nil, ErrNoColumns
	}

	rows := t.Rows()
	catLimit := dataset.CategoricalLimit(rows, p.opts.CategoricalMin, p.opts.CategoricalPct)

	report := &Report{
		Shape:       Shape{Rows: rows, Cols: t.Cols()},
		GeneratedAt: time.Now().UTC(),
	}

	var numerics []*numericColumn
	for _, col := range t.Columns() {
		cp, nc := p.profileColumn(col, rows, catLimit)
		report.Columns = append(report.Columns, cp)
		if nc != nil {
			numerics = append(numerics, nc)
		}
		if p.opts.OnColumn != nil {
			p.opts.OnColumn(col.Name)
		}
	}

	report.Outliers = p.flagOutliers(numerics)
	report.Correlations = p.correlate(numerics)
	report.DuplicateRows = countDuplicateRows(t)

	return report, nil
}

// profileColumn builds one ColumnProfile. For numeric columns it also
// returns the parsed values for the outlier and correlation passes. A
// column whose declared kind contradicts its cells degrades to a text
// profile instead of failing the run.
func (p *Profiler) profileColumn(col *dataset.Column, rows, catLimit int) (ColumnProfile, *numericColumn) {
	cp := ColumnProfile{
		Name:    col.Name,
		Type:    dataset.Classify(col, catLimit),
		Missing: col.MissingCount(),
		Unique:  col.UniqueCount(),
	}
	if rows > 0 {
		cp.MissingPct = float64(cp.Missing) / float64(rows)
	}

	if cp.Type != dataset.KindNumeric {
		return cp, nil
	}

	nc := &numericColumn{
		name:  col.Name,
		cells: make([]float64, col.Len()),
		valid: make([]bool, col.Len()),
	}
	for i, raw := range col.Cells {
		if !col.Valid[i] {
			continue
		}
		v, ok := dataset.ParseNumber(raw)
		if !ok {
			// Declared numeric but the cells disagree: degrade to a
			// text profile rather than abort the remaining columns.
			cp.Type = dataset.KindText
			return cp, nil
		}
		nc.cells[i] = v
		nc.valid[i] = true
		nc.values = append(nc.values, v)
		nc.rows = append(nc.rows, i)
	}

	if len(nc.values) > 0 {
		min, max := minMax(nc.values)
		sorted := sortedCopy(nc.values)
		cp.Min = Fv(min)
		cp.Max = Fv(max)
		cp.Mean = Fv(mean(nc.values))
		cp.Median = Fv(quantile(sorted, 0.5))
		cp.Q1 = Fv(quantile(sorted, 0.25))
		cp.Q3 = Fv(quantile(sorted, 0.75))
		if v, ok := sampleVariance(nc.values); ok {
			cp.Variance = Fv(v)
		}
		if v, ok := sampleStd(nc.values); ok {
			cp.Std = Fv(v)
		}
		if v, ok := skewness(nc.values); ok {
			cp.Skewness = Fv(v)
		}
		if v, ok := kurtosis(nc.values); ok {
			cp.Kurtosis = Fv(v)
		}
	}

	return cp, nc
}

// flagOutliers runs the configured rule per numeric column and returns
// the flags sorted by column name then row index.
func (p *Profiler) flagOutliers(numerics []*numericColumn) []OutlierFlag {
	var flags []OutlierFlag
	for _, nc := range numerics {
		flags = append(flags, p.opts.Rule.Flag(nc.name, nc.values, nc.rows)...)
	}
	sort.Slice(flags, func(i, j int) bool {
		if flags[i].Column != flags[j].Column {
			return flags[i].Column < flags[j].Column
		}
		return flags[i].Row < flags[j].Row
	})
	return flags
}

// correlate builds the upper triangle (diagonal included) over the
// numeric columns in table order. Coefficients are computed over
// pairwise-complete observations; fewer than two shared observations,
// or zero variance, yields the absent marker rather than 0.
func (p *Profiler) correlate(numerics []*numericColumn) []Correlation {
	var out []Correlation
	for i, a := range numerics {
		for _, b := range numerics[i:] {
			out = append(out, Correlation{
				ColA: a.name,
				ColB: b.name,
				Coef: p.coefficient(a, b),
			})
		}
	}
	return out
}

func (p *Profiler) coefficient(a, b *numericColumn) Float {
	if a == b {
		// Self-pair: 1.0 by definition, absent when the column lacks
		// the two observations needed to define a correlation at all.
		if len(a.values) < 2 {
			return Float{}
		}
		return Fv(1.0)
	}

	var x, y []float64
	for i := range a.valid {
		if a.valid[i] && b.valid[i] {
			x = append(x, a.cells[i])
			y = append(y, b.cells[i])
		}
	}

	var v float64
	var ok bool
	if p.opts.Correlation == Spearman {
		v, ok = spearman(x, y)
	} else {
		v, ok = pearson(x, y)
	}
	if !ok {
		return Float{}
	}
	return Fv(v)
}

// countDuplicateRows counts rows whose full cell tuple (content and
// missingness) already occurred earlier in the table.
func countDuplicateRows(t *dataset.Table) int {
	seen := make(map[string]struct{}, t.Rows())
	dups := 0
	var sb strings.Builder
	for i := 0; i < t.Rows(); i++ {
		sb.Reset()
		for _, col := range t.Columns() {
			if col.Valid[i] {
				sb.WriteByte('v')
				sb.WriteString(col.Cells[i])
			} else {
				sb.WriteByte('n')
			}
			sb.WriteByte('\x1f')
		}
		key := sb.String()
		if _, ok := seen[key]; ok {
			dups++
		} else {
			seen[key] = struct{}{}
		}
	}
	return dups
}
