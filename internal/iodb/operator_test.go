package iodb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/internal/iodb"
	"github.com/gnames/gnpest/internal/iotesting"
	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) (context.Context, *config.DatabaseConfig) {
	t.Helper()
	cfg := config.New()
	cfg.Database.Path = filepath.Join(t.TempDir(), "pests.db")
	return context.Background(), &cfg.Database
}

func TestSQLiteOperator_Connect(t *testing.T) {
	ctx, cfg := newSQLite(t)

	op := iodb.NewSQLiteOperator()
	err := op.Connect(ctx, cfg)
	require.NoError(t, err, "Connect should create a new catalog file")
	defer op.Close()

	assert.NotNil(t, op.DB())
	assert.Equal(t, "sqlite", op.Driver())

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err)
	assert.False(t, exists)

	has, err := op.HasTables(ctx)
	assert.NoError(t, err)
	assert.False(t, has, "new catalog has no tables")
}

func TestSQLiteOperator_Connect_NoPath(t *testing.T) {
	op := iodb.NewSQLiteOperator()
	err := op.Connect(context.Background(), &config.DatabaseConfig{})
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
}

func TestSQLiteOperator_NotConnected(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewSQLiteOperator()

	_, err := op.TableExists(ctx, "species")
	assert.Error(t, err)

	_, err = op.HasTables(ctx)
	assert.Error(t, err)

	err = op.DropAllTables(ctx)
	assert.Error(t, err)

	assert.NoError(t, op.Close(), "closing unconnected operator is a no-op")
}

func TestSQLiteOperator_DropAllTables(t *testing.T) {
	ctx, cfg := newSQLite(t)
	iotesting.SeedCatalog(t, cfg.Path)

	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	exists, err := op.TableExists(ctx, "species")
	require.NoError(t, err)
	assert.True(t, exists, "seeded catalog has species table")

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	err = op.DropAllTables(ctx)
	require.NoError(t, err)

	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has, "all tables should be dropped")
}

func TestPgxOperator_Connect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	cfg := iotesting.PostgresConfig(t)

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, cfg)
	require.NoError(t, err, "Connect should succeed with valid config")
	defer op.Close()

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestMySQLOperator_Connect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	cfg := iotesting.MySQLConfig(t)

	op := iodb.NewMySQLOperator()
	ctx := context.Background()

	err := op.Connect(ctx, cfg)
	require.NoError(t, err, "Connect should succeed with valid config")
	defer op.Close()

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err)
	assert.False(t, exists)
}
