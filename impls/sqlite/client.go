package sqlite

import (
	"context"
	"database/sql"
	"log"
	"time"

	sqlhelper "github.com/zeptools/sql-helper"
	_ "github.com/mattn/go-sqlite3" // side-effect
)

func init() {
	sqlhelper.RegisterFactory("sqlite", func(conf *sqlhelper.Conf) (sqlhelper.Client, error) {
		return &Client{Conf: conf}, nil
	})
}

type Client struct {
	Conf *sqlhelper.Conf

	// db fields are implementation details, not exported
	db *sql.DB
}

// Ensure sqlite.Client implements sqlhelper.Client interface
var _ sqlhelper.Client = (*Client)(nil)

// Open connects to the database file named in Conf, or reuses the
// handle from a previous call. Conf.DB may be `:memory:` for a
// non-persistent database.
func (c *Client) Open(_ context.Context) error {
	if c.db != nil {
		return nil
	}
	dsn := c.Conf.DSN
	if dsn == "" {
		dsn = c.Conf.DB
		if c.Conf.Params != "" {
			dsn += "?" + c.Conf.Params
		}
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return err
	}
	if c.Conf.DB == ":memory:" {
		// each pooled connection would otherwise get its own empty db
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return err
	}
	c.db = db
	log.Println("[INFO] sqlite client initialized")
	return nil
}

func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// DB exposes the raw handle for callers needing driver-native
// features, e.g. transactions.
func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Execute(ctx context.Context, stmt string, bind []any, shape sqlhelper.RowShape) (sqlhelper.Cursor, error) {
	if err := c.Open(ctx); err != nil {
		return nil, err
	}
	rows, err := c.db.QueryContext(ctx, c.Rewrite(stmt), bind...)
	if err != nil {
		return nil, err
	}
	return newCursor(rows, shape)
}

// Rewrite makes a few conversions from other dialects to sqlite.
// This is not intended to handle everything, just a few common cases:
//
//	%s to ?
//	unix_timestamp() to a literal
func (c *Client) Rewrite(stmt string) string {
	stmt = sqlhelper.UnifyPlaceholders(stmt)
	return sqlhelper.ReplaceUnixTimestamp(stmt, time.Now().Unix())
}
