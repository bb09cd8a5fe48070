package pgsql

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	sqlhelper "github.com/zeptools/sql-helper"
)

func init() {
	sqlhelper.RegisterFactory("pgsql", func(conf *sqlhelper.Conf) (sqlhelper.Client, error) {
		return &Client{Conf: conf}, nil
	})
}

type Client struct {
	Conf *sqlhelper.Conf

	// pool fields are implementation details, not exported
	pool *pgxpool.Pool
	dsn  string
}

// Ensure pgsql.Client implements sqlhelper.Client interface
var _ sqlhelper.Client = (*Client)(nil)

// DSN returns the pgx DSN built from Conf.
func (c *Client) DSN() string {
	if c.Conf.DSN != "" {
		return c.Conf.DSN
	}
	port := c.Conf.Port
	if port == 0 {
		port = 5432
	}
	tz := c.Conf.TZ
	if tz == "" {
		tz = "UTC"
	}
	// NOTE: sslmode=disable is often used for local dev, adjust as needed.
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=%s",
		c.Conf.Host,
		port,
		c.Conf.User,
		c.Conf.PW,
		c.Conf.DB,
		tz,
	)
}

// Open connects to the server named in Conf, or reuses the pool from
// a previous call.
func (c *Client) Open(ctx context.Context) error {
	if c.pool != nil {
		return nil
	}
	c.dsn = c.DSN()
	config, err := pgxpool.ParseConfig(c.dsn)
	if err != nil {
		return fmt.Errorf("failed to parse pgx config: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 3 * time.Minute
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to connect pgx Pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	c.pool = pool
	log.Print("[INFO] pgsql client initialized")
	return nil
}

func (c *Client) Close() error {
	if c.pool == nil {
		return nil
	}
	c.pool.Close()
	c.pool = nil
	return nil
}

// Pool exposes the raw pool for callers needing driver-native
// features, e.g. transactions or LISTEN/NOTIFY.
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

func (c *Client) Execute(ctx context.Context, stmt string, bind []any, shape sqlhelper.RowShape) (sqlhelper.Cursor, error) {
	if err := c.Open(ctx); err != nil {
		return nil, err
	}
	rows, err := c.pool.Query(ctx, c.Rewrite(stmt), bind...)
	if err != nil {
		return nil, err
	}
	return newCursor(rows, shape), nil
}

// Rewrite makes a few conversions from other dialects to postgres.
// Only the common cases:
//
//	%s and ? to $1, $2, ...
//	unix_timestamp() to a literal
func (c *Client) Rewrite(stmt string) string {
	stmt = sqlhelper.UnifyPlaceholders(stmt)
	stmt = sqlhelper.ReplaceUnixTimestamp(stmt, time.Now().Unix())
	return sqlhelper.ReplaceStaticPlaceholders(stmt, sqlhelper.PlaceholderPrefixForDBType["pgsql"])
}
