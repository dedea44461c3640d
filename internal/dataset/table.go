package dataset

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the semantic type of a column.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNumeric
	KindTemporal
	KindBoolean
	KindCategorical
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindTemporal:
		return "temporal"
	case KindBoolean:
		return "boolean"
	case KindCategorical:
		return "categorical"
	case KindText:
		return "text"
	}
	return "unknown"
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*k = KindFromString(s)
	return nil
}

func KindFromString(s string) Kind {
	switch strings.ToLower(s) {
	case "numeric":
		return KindNumeric
	case "temporal":
		return KindTemporal
	case "boolean":
		return KindBoolean
	case "categorical":
		return KindCategorical
	case "text":
		return KindText
	}
	return KindUnknown
}

// Column holds raw string cells plus a parallel validity bitmap. A cell
// is missing iff its validity bit is false; the string content alone never
// decides missingness. Kind is an optional hint declared by the source
// (e.g. SQL column types); KindUnknown means "infer from cells".
type Column struct {
	Name  string
	Kind  Kind
	Cells []string
	Valid []bool
}

// Append adds one cell. Missing cells carry an empty string.
func (c *Column) Append(value string, valid bool) {
	if !valid {
		value = ""
	}
	c.Cells = append(c.Cells, value)
	c.Valid = append(c.Valid, valid)
}

// Len returns the row count of the column.
func (c *Column) Len() int { return len(c.Cells) }

// MissingCount returns the number of invalid cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Valid {
		if !v {
			n++
		}
	}
	return n
}

// NonMissing returns the valid cell values in row order.
func (c *Column) NonMissing() []string {
	out := make([]string, 0, len(c.Cells)-c.MissingCount())
	for i, v := range c.Valid {
		if v {
			out = append(out, c.Cells[i])
		}
	}
	return out
}

// UniqueCount returns the number of distinct non-missing values.
func (c *Column) UniqueCount() int {
	seen := make(map[string]struct{})
	for i, v := range c.Valid {
		if v {
			seen[c.Cells[i]] = struct{}{}
		}
	}
	return len(seen)
}

// Table is an ordered sequence of equal-length named columns. The zero
// value is an empty table ready for AddColumn.
type Table struct {
	columns []*Column
	rows    int
}

func New() *Table {
	return &Table{}
}

// AddColumn appends a column, enforcing the rectangular invariant.
func (t *Table) AddColumn(col *Column) error {
	if col.Name == "" {
		return fmt.Errorf("column name must not be empty")
	}
	if len(col.Cells) != len(col.Valid) {
		return fmt.Errorf("column %s: cells/validity length mismatch (%d vs %d)",
			col.Name, len(col.Cells), len(col.Valid))
	}
	if len(t.columns) > 0 && col.Len() != t.rows {
		return fmt.Errorf("column %s: expected %d rows, got %d", col.Name, t.rows, col.Len())
	}
	if len(t.columns) == 0 {
		t.rows = col.Len()
	}
	t.columns = append(t.columns, col)
	return nil
}

// Columns returns the columns in original order.
func (t *Table) Columns() []*Column { return t.columns }

// Column returns the named column, or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (t *Table) Rows() int { return t.rows }
func (t *Table) Cols() int { return len(t.columns) }
