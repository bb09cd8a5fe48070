package pgsql

import (
	"github.com/jackc/pgx/v5"
	sqlhelper "github.com/zeptools/sql-helper"
)

type cursor struct {
	rows    pgx.Rows
	columns []string
	shape   sqlhelper.RowShape
}

// Ensure pgsql cursor implements sqlhelper.Cursor interface
var _ sqlhelper.Cursor = (*cursor)(nil)

func newCursor(rows pgx.Rows, shape sqlhelper.RowShape) *cursor {
	fds := rows.FieldDescriptions()
	columns := make([]string, len(fds))
	for i, fd := range fds {
		columns[i] = fd.Name
	}
	return &cursor{rows: rows, columns: columns, shape: shape}
}

func (c *cursor) FetchOne() (*sqlhelper.Row, error) {
	if !c.rows.Next() {
		if err := c.rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	values, err := c.rows.Values()
	if err != nil {
		return nil, err
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
	c.rows.Close()
	return nil
}
