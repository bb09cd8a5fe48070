package mysql

import (
	"database/sql"

	sqlhelper "github.com/zeptools/sql-helper"
)

type cursor struct {
	rows    *sql.Rows
	columns []string
	shape   sqlhelper.RowShape
}

// Ensure mysql cursor implements sqlhelper.Cursor interface
var _ sqlhelper.Cursor = (*cursor)(nil)

func newCursor(rows *sql.Rows, shape sqlhelper.RowShape) (*cursor, error) {
	columns, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return nil, err
	}
	return &cursor{rows: rows, columns: columns, shape: shape}, nil
}

func (c *cursor) FetchOne() (*sqlhelper.Row, error) {
	if !c.rows.Next() {
		if err := c.rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	values := make([]any, len(c.columns))
	ptrs := make([]any, len(c.columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := c.rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	for i, v := range values {
		// the driver yields []byte for text columns on plain queries
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}
	if c.shape == sqlhelper.DictRows {
		return sqlhelper.NewRow(values, c.columns), nil
	}
	return sqlhelper.NewRow(values, nil), nil
}

func (c *cursor) FetchAll() ([]*sqlhelper.Row, error) {
	var rows []*sqlhelper.Row
	for {
		row, err := c.FetchOne()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return rows, nil
		}
		rows = append(rows, row)
	}
}

func (c *cursor) Close() error {
	return c.rows.Close()
}
