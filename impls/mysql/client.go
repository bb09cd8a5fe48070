package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	sqlhelper "github.com/zeptools/sql-helper"
	_ "github.com/go-sql-driver/mysql" // side-effect
)

func init() {
	sqlhelper.RegisterFactory("mysql", func(conf *sqlhelper.Conf) (sqlhelper.Client, error) {
		return &Client{Conf: conf}, nil
	})
}

type Client struct {
	Conf *sqlhelper.Conf

	// db fields are implementation details, not exported
	db  *sql.DB
	dsn string
}

// Ensure mysql.Client implements sqlhelper.Client interface
var _ sqlhelper.Client = (*Client)(nil)

// DSN returns the driver DSN built from Conf. ANSI_QUOTES keeps
// double-quoted identifiers working like on the other backends.
func (c *Client) DSN() string {
	if c.Conf.DSN != "" {
		return c.Conf.DSN
	}
	port := c.Conf.Port
	if port == 0 {
		port = 3306
	}
	tz := c.Conf.TZ
	if tz == "" {
		tz = "Local"
	}
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=%s&sql_mode=ANSI_QUOTES",
		c.Conf.User,
		c.Conf.PW,
		c.Conf.Host,
		port,
		c.Conf.DB,
		tz,
	)
	if c.Conf.Params != "" {
		dsn += "&" + c.Conf.Params
	}
	return dsn
}

// Open connects to the server named in Conf, or reuses the handle
// from a previous call.
func (c *Client) Open(_ context.Context) error {
	if c.db != nil {
		return nil
	}
	c.dsn = c.DSN()
	db, err := sql.Open("mysql", c.dsn)
	if err != nil {
		return err
	}
	db.SetConnMaxLifetime(time.Minute * 3)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return err
	}
	c.db = db
	log.Println("[INFO] mysql client initialized")
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

// Rewrite makes a few conversions from other dialects to the mysql
// driver's native form. Only the common cases:
//
//	%s to ?
//
// unix_timestamp() is native, left alone.
func (c *Client) Rewrite(stmt string) string {
	return sqlhelper.UnifyPlaceholders(stmt)
}
