package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/rickgao/playerdata-source/internal/config"
)

// MaxConns is the maximum number of simultaneously open connections.
const MaxConns = 5

// Pool is a bounded set of connections to the game database.
// It is safe for concurrent use.
type Pool struct {
	db *sql.DB
}

// Connect creates the connection pool and verifies the server accepts it.
// Every failure is reported as a connection error.
func Connect(ctx context.Context, cfg config.DBConfig) (*Pool, error) {
	connector, err := mysql.NewConnector(mysqlConfig(cfg))
	if err != nil {
		return nil, NewError(KindConnection, "create connector", err)
	}

	pool := NewPool(sql.OpenDB(connector))

	if err := pool.db.PingContext(ctx); err != nil {
		pool.db.Close()
		return nil, NewError(KindConnection, "ping database", err)
	}

	return pool, nil
}

// NewPool wraps an opened *sql.DB and applies the connection limits.
func NewPool(db *sql.DB) *Pool {
	db.SetMaxOpenConns(MaxConns)
	db.SetMaxIdleConns(MaxConns)
	return &Pool{db: db}
}

// QueryContext runs a query on a pooled connection.
func (p *Pool) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return p.db.QueryContext(ctx, query, args...)
}

// Ping verifies the database is reachable.
func (p *Pool) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return Classify("ping database", err)
	}
	return nil
}

// Stats returns connection pool statistics.
func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

// DB returns the underlying *sql.DB.
func (p *Pool) DB() *sql.DB {
	return p.db
}

// Close closes the pool. Queries in flight are allowed to finish.
func (p *Pool) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("close pool: %w", err)
	}
	return nil
}
