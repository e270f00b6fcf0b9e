package iodb

import (
	"context"
	"fmt"

	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/db"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// mysqlOperator implements db.Operator for MySQL/MariaDB.
type mysqlOperator struct {
	gormBase
}

// NewMySQLOperator creates a new MySQL operator
// (without connecting).
func NewMySQLOperator() db.Operator {
	return &mysqlOperator{gormBase: gormBase{driver: "mysql"}}
}

// Connect opens a MySQL connection with utf8mb4 encoding, which is
// required for Chinese names.
func (m *mysqlOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)
	target := fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)

	gdb, err := gorm.Open(mysql.Open(dsn), gormConfig())
	if err != nil {
		return ConnectionError(m.driver, target, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return ConnectionError(m.driver, target, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return ConnectionError(m.driver, target, err)
	}

	m.db = gdb
	return nil
}

// Close releases all database connections.
func (m *mysqlOperator) Close() error {
	err := closeGorm(m.db)
	m.db = nil
	return err
}
