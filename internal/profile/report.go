package profile

import (
	"bytes"
	"encoding/json"
	"time"

	"dataprof/internal/dataset"
)

// Float is a float64 with an explicit absent state. Undefined statistics
// (all-missing columns, correlations with too little paired data) are
// absent, never coerced to zero. Marshals as a JSON number or null.
type Float struct {
	Value float64
	Valid bool
}

func Fv(v float64) Float { return Float{Value: v, Valid: true} }

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f *Float) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = Float{}
		return nil
	}
	if err := json.Unmarshal(b, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// ColumnProfile summarizes one column. The numeric statistics are absent
// for non-numeric columns and for numeric columns without enough
// non-missing values to define them.
type ColumnProfile struct {
	Name       string       `json:"name"`
	Type       dataset.Kind `json:"type"`
	Missing    int          `json:"missing_count"`
	MissingPct float64      `json:"missing_pct"`
	Unique     int          `json:"unique_count"`

	Min      Float `json:"min"`
	Max      Float `json:"max"`
	Mean     Float `json:"mean"`
	Median   Float `json:"median"`
	Std      Float `json:"std"`
	Variance Float `json:"variance"`
	Q1       Float `json:"q1"`
	Q3       Float `json:"q3"`
	Skewness Float `json:"skewness"`
	Kurtosis Float `json:"kurtosis"`
}

// Correlation is one cell of the correlation matrix. The matrix is stored
// as its upper triangle (including the diagonal) over the numeric columns
// in original table order; Report.Coef resolves both orders.
type Correlation struct {
	ColA string `json:"col_a"`
	ColB string `json:"col_b"`
	Coef Float  `json:"coefficient"`
}

// OutlierFlag marks a single numeric value outside the configured fence.
type OutlierFlag struct {
	Column string  `json:"column"`
	Row    int     `json:"row"`
	Value  float64 `json:"value"`
}

// Report is the aggregate result of one profiling run. Immutable once
// built; a new run always produces a fresh Report.
type Report struct {
	Shape         Shape           `json:"shape"`
	Columns       []ColumnProfile `json:"columns"`
	Correlations  []Correlation   `json:"correlations"`
	Outliers      []OutlierFlag   `json:"outliers"`
	DuplicateRows int             `json:"duplicate_rows"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// Coef returns the correlation coefficient for a column pair in either
// order. The second return is false when the pair is not in the matrix.
func (r *Report) Coef(a, b string) (Float, bool) {
	for _, c := range r.Correlations {
		if (c.ColA == a && c.ColB == b) || (c.ColA == b && c.ColB == a) {
			return c.Coef, true
		}
	}
	return Float{}, false
}

// ToMap renders the report as a serializable mapping with stable keys:
// shape, columns, correlations, outliers, duplicate_rows, generated_at.
func (r *Report) ToMap() (map[string]any, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// FromMap rebuilds a Report from a mapping produced by ToMap.
func FromMap(m map[string]any) (*Report, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
