package source

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"dataprof/internal/dataset"
)

// ReadJSON loads an array-of-records JSON stream into a table. Column
// order follows first appearance of each key; absent keys and JSON
// nulls become missing cells.
func ReadJSON(r io.Reader) (*dataset.Table, error) {
	var records []map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("json: decode records: %w", err)
	}

	var order []string
	cols := make(map[string]*dataset.Column)
	for _, rec := range records {
		// Scan keys in a stable way: json maps are unordered, so order
		// within one record follows a sorted pass only for keys not yet
		// seen. Keys already known keep their first-seen position.
		for _, key := range sortedKeys(rec) {
			if _, ok := cols[key]; !ok {
				cols[key] = &dataset.Column{Name: key}
				order = append(order, key)
			}
		}
	}

	for _, rec := range records {
		for _, key := range order {
			col := cols[key]
			v, ok := rec[key]
			if !ok || v == nil {
				col.Append("", false)
				continue
			}
			col.Append(formatJSONValue(v), true)
		}
	}

	t := dataset.New()
	for _, key := range order {
		if err := t.AddColumn(cols[key]); err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
	}
	return t, nil
}

func formatJSONValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		// Nested objects/arrays keep their JSON text.
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
