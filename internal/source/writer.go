package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"dataprof/internal/dataset"
)

// WriteCSV writes the table as headered CSV. Missing cells are written
// as empty fields, which ReadCSV maps back to missing under the default
// null markers.
func WriteCSV(w io.Writer, t *dataset.Table) error {
	writer := csv.NewWriter(w)

	header := make([]string, t.Cols())
	for i, c := range t.Columns() {
		header[i] = c.Name
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	record := make([]string, t.Cols())
	for row := 0; row < t.Rows(); row++ {
		for i, c := range t.Columns() {
			if c.Valid[row] {
				record[i] = c.Cells[row]
			} else {
				record[i] = ""
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("csv: write record %d: %w", row, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
