package ioschema_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/internal/iodb"
	"github.com/gnames/gnpest/internal/ioschema"
	"github.com/gnames/gnpest/internal/iotesting"
	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/errcode"
	"github.com/gnames/gnpest/pkg/lifecycle"
	"github.com/gnames/gnpest/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestManager_ImplementsInterface verifies manager
// implements lifecycle.SchemaManager interface.
func TestManager_ImplementsInterface(t *testing.T) {
	var _ lifecycle.SchemaManager = ioschema.NewManager(iodb.NewSQLiteOperator())
}

func TestManager_NotConnected(t *testing.T) {
	ctx := context.Background()
	mgr := ioschema.NewManager(iodb.NewSQLiteOperator())

	for _, err := range []error{
		mgr.Create(ctx, config.New()),
		mgr.Migrate(ctx, config.New()),
	} {
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	}
}

func TestManager_CreateSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.New()
	cfg.Database.Path = filepath.Join(t.TempDir(), "pests.db")

	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx, cfg))

	for _, tbl := range schema.TableNames() {
		exists, err := op.TableExists(ctx, tbl)
		require.NoError(t, err)
		assert.True(t, exists, tbl)
	}

	// Migrate is idempotent on an up-to-date schema.
	assert.NoError(t, mgr.Migrate(ctx, cfg))
	assert.NoError(t, mgr.Migrate(ctx, cfg))
}

func TestManager_MigrateKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pests.db")
	iotesting.SeedCatalog(t, path)

	cfg := config.New()
	cfg.Database.Path = path
	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	require.NoError(t, ioschema.NewManager(op).Migrate(ctx, cfg))

	var count int64
	err := op.DB().Table("species").Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestManager_CreatePostgres(t *testing.T) {
	dbCfg := iotesting.PostgresConfig(t)
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, dbCfg))
	defer op.Close()
	require.NoError(t, op.DropAllTables(ctx))

	require.NoError(t, ioschema.NewManager(op).Create(ctx, config.New()))
	exists, err := op.TableExists(ctx, "species")
	require.NoError(t, err)
	assert.True(t, exists)
}
