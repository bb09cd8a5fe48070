package sqlhelper

// RowShape selects how a cursor materializes fetched rows.
type RowShape int

const (
	TupleRows RowShape = iota // positional values only
	DictRows                  // values keyed by column name
)

// Cursor is the result handle returned by Client.Execute.
// FetchOne returns (nil, nil) once the result set is exhausted.
type Cursor interface {
	FetchOne() (*Row, error)
	FetchAll() ([]*Row, error)
	Close() error
}

// Row is a single fetched row. Tuple-shaped rows carry values only;
// dict-shaped rows also carry the column names of the result set.
type Row struct {
	values  []any
	columns []string // nil for tuple shape
}

// NewRow is used by backend impls to build rows. columns must be nil
// for tuple shape, and the same length as values for dict shape.
func NewRow(values []any, columns []string) *Row {
	return &Row{values: values, columns: columns}
}

func (r *Row) Len() int {
	return len(r.values)
}

// Values returns the positional values of the row.
func (r *Row) Values() []any {
	return r.values
}

// Value returns the i-th field of the row.
func (r *Row) Value(i int) any {
	return r.values[i]
}

// Get returns the value of the named column of a dict-shaped row.
func (r *Row) Get(column string) (any, bool) {
	for i, name := range r.columns {
		if name == column {
			return r.values[i], true
		}
	}
	return nil, false
}

// Record returns the row as a column-name keyed map.
// Returns nil for tuple-shaped rows.
func (r *Row) Record() map[string]any {
	if r.columns == nil {
		return nil
	}
	rec := make(map[string]any, len(r.columns))
	for i, name := range r.columns {
		rec[name] = r.values[i]
	}
	return rec
}
