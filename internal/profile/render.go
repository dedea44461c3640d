package profile

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderText writes a human-readable rendering of the report with a
// fixed section order: shape, column profiles, correlation matrix,
// outliers. Output is byte-stable for identical reports.
func RenderText(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Shape: %d rows x %d columns\n", r.Shape.Rows, r.Shape.Cols)
	fmt.Fprintf(w, "Duplicate rows: %d\n", r.DuplicateRows)
	fmt.Fprintf(w, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	renderColumns(w, r)
	renderCorrelations(w, r)
	renderOutliers(w, r)
}

func renderColumns(w io.Writer, r *Report) {
	fmt.Fprintln(w, "Column profiles:")

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{
		"COLUMN", "TYPE", "MISSING", "MISSING %", "UNIQUE",
		"MIN", "MAX", "MEAN", "MEDIAN", "STD", "Q1", "Q3",
	})
	for _, c := range r.Columns {
		t.AppendRow(table.Row{
			c.Name, c.Type.String(), c.Missing, formatPct(c.MissingPct), c.Unique,
			formatFloat(c.Min), formatFloat(c.Max), formatFloat(c.Mean),
			formatFloat(c.Median), formatFloat(c.Std), formatFloat(c.Q1), formatFloat(c.Q3),
		})
	}
	t.Render()
	fmt.Fprintln(w)
}

func renderCorrelations(w io.Writer, r *Report) {
	fmt.Fprintln(w, "Correlation matrix:")

	// Numeric column names in matrix order (diagonal entries lead each
	// column's triple run, so first occurrences preserve table order).
	var names []string
	seen := make(map[string]struct{})
	for _, c := range r.Correlations {
		if _, ok := seen[c.ColA]; !ok {
			seen[c.ColA] = struct{}{}
			names = append(names, c.ColA)
		}
	}
	if len(names) == 0 {
		fmt.Fprintln(w, "(no numeric columns)")
		fmt.Fprintln(w)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	header := table.Row{""}
	for _, n := range names {
		header = append(header, n)
	}
	t.AppendHeader(header)
	for _, a := range names {
		row := table.Row{a}
		for _, b := range names {
			coef, _ := r.Coef(a, b)
			row = append(row, formatFloat(coef))
		}
		t.AppendRow(row)
	}
	t.Render()
	fmt.Fprintln(w)
}

func renderOutliers(w io.Writer, r *Report) {
	fmt.Fprintln(w, "Outliers:")
	if len(r.Outliers) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"COLUMN", "ROW", "VALUE"})
	for _, o := range r.Outliers {
		t.AppendRow(table.Row{o.Column, o.Row, strconv.FormatFloat(o.Value, 'g', -1, 64)})
	}
	t.Render()
}

// formatFloat renders an absent value as "-" and a present one with four
// decimals, so identical reports render identically.
func formatFloat(f Float) string {
	if !f.Valid {
		return "-"
	}
	return strconv.FormatFloat(f.Value, 'f', 4, 64)
}

func formatPct(p float64) string {
	return strconv.FormatFloat(p*100, 'f', 1, 64) + "%"
}
