package iodb

import (
	"context"
	"fmt"

	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	gormBase
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new PostgreSQL operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{gormBase: gormBase{driver: "postgres"}}
}

// Connect establishes a connection pool to PostgreSQL and wraps it
// with GORM.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)
	target := fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(p.driver, target, err)
	}

	// Lookups are sequential, a small pool is enough.
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(p.driver, target, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(p.driver, target, err)
	}

	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: stdlib.OpenDBFromPool(pool)}),
		gormConfig(),
	)
	if err != nil {
		pool.Close()
		return ConnectionError(p.driver, target, err)
	}

	p.pool = pool
	p.db = gdb
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	err := closeGorm(p.db)
	if p.pool != nil {
		p.pool.Close()
	}
	p.db = nil
	p.pool = nil
	return err
}
