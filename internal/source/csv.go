package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"dataprof/internal/dataset"
)

// DefaultNullValues are the cell contents the CSV adapter treats as
// missing. The empty string is included here because CSV has no other
// way to mark a null; the profiler core itself never interprets cell
// content, only the validity bits this adapter sets.
var DefaultNullValues = []string{"", "NA", "N/A", "NaN", "null", "NULL"}

type CSVOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// NullValues override DefaultNullValues when non-nil.
	NullValues []string
}

// ReadCSV loads a headered CSV stream into a table.
func ReadCSV(r io.Reader, opts CSVOptions) (*dataset.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows pad out as missing
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	nulls := opts.NullValues
	if nulls == nil {
		nulls = DefaultNullValues
	}
	nullSet := make(map[string]struct{}, len(nulls))
	for _, v := range nulls {
		nullSet[v] = struct{}{}
	}

	cols := make([]*dataset.Column, len(header))
	for i, name := range header {
		cols[i] = &dataset.Column{Name: strings.TrimSpace(name)}
	}

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read record: %w", err)
		}
		for i, cell := range rec {
			if i >= len(cols) {
				break
			}
			_, isNull := nullSet[cell]
			cols[i].Append(cell, !isNull)
		}
		// Short records pad out as missing.
		for i := len(rec); i < len(cols); i++ {
			cols[i].Append("", false)
		}
	}

	t := dataset.New()
	for _, c := range cols {
		if err := t.AddColumn(c); err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
	}
	return t, nil
}
