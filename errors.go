package sqlhelper

import "errors"

// ErrMultipleRows is returned by Row/TupleRow/Value when a query
// expected to match at most one row returns two or more.
var ErrMultipleRows = errors.New("sqlhelper: multiple rows returned")
