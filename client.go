package sqlhelper

import (
	"context"
	"log"
)

// Client is the per-backend dialect adapter. Open is an idempotent
// connect-or-reuse: the first call establishes the connection, later
// calls return immediately. Execute rewrites the statement to the
// backend's native placeholder syntax, substitutes dialect
// pseudo-functions and runs it with the bound parameters.
//
// A Client and the cursors it hands out are not safe for concurrent
// use from multiple goroutines.
type Client interface {
	Open(ctx context.Context) error
	Close() error
	Execute(ctx context.Context, stmt string, bind []any, shape RowShape) (Cursor, error)
}

// CloseClient closes c, logging instead of returning the error.
// Useful in defers and shutdown paths.
func CloseClient(name string, c interface{ Close() error }) {
	if c == nil {
		log.Printf("[INFO] `%s` Nothing to Close", name)
		return
	}
	if err := c.Close(); err != nil {
		log.Printf("[WARN] Failed to Close `%s`: %v", name, err)
	} else {
		log.Printf("[INFO] `%s` Closed", name)
	}
}
