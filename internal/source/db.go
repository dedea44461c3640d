package source

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dataprof/internal/dataset"
)

// QueryDB runs a query and loads the result set into a table. Driver
// column types become declared Kinds so the profiler does not have to
// re-infer what the database already knows; SQL NULLs become missing
// cells.
func QueryDB(ctx context.Context, db *sql.DB, query string) (*dataset.Table, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db: query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("db: columns: %w", err)
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("db: column types: %w", err)
	}

	cols := make([]*dataset.Column, len(names))
	for i, name := range names {
		cols[i] = &dataset.Column{
			Name: name,
			Kind: kindFromSQLType(types[i].DatabaseTypeName()),
		}
	}

	values := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("db: scan row: %w", err)
		}
		for i, v := range values {
			if v == nil {
				cols[i].Append("", false)
				continue
			}
			cols[i].Append(formatSQLValue(v), true)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db: iterate rows: %w", err)
	}

	t := dataset.New()
	for _, c := range cols {
		if err := t.AddColumn(c); err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
	}
	return t, nil
}

// kindFromSQLType maps a driver's database type name to a declared Kind.
// Unrecognized types stay unknown and fall back to content inference.
func kindFromSQLType(typeName string) dataset.Kind {
	switch strings.ToUpper(typeName) {
	case "INT", "INTEGER", "SMALLINT", "TINYINT", "MEDIUMINT", "BIGINT",
		"INT2", "INT4", "INT8", "DECIMAL", "NUMERIC", "NUMBER",
		"FLOAT", "FLOAT4", "FLOAT8", "DOUBLE", "REAL", "MONEY":
		return dataset.KindNumeric
	case "DATE", "TIME", "DATETIME", "DATETIME2", "TIMESTAMP", "TIMESTAMPTZ", "SMALLDATETIME":
		return dataset.KindTemporal
	case "BOOL", "BOOLEAN", "BIT":
		return dataset.KindBoolean
	}
	return dataset.KindUnknown
}

func formatSQLValue(v any) string {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(x)
	}
}
