package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/internal/iotesting"
	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestCatalog points the package config to a temporary home and
// an SQLite catalog, seeded if requested.
func setupTestCatalog(t *testing.T, seeded bool) string {
	t.Helper()
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	cfg = iotesting.SetupTempHome(t)
	path := filepath.Join(t.TempDir(), "pests.db")
	cfg.Update([]config.Option{config.OptDatabasePath(path)})
	if seeded {
		iotesting.SeedCatalog(t, path)
	}
	return path
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	setupTestCatalog(t, true)

	op, store, err := openStore(ctx)
	require.NoError(t, err)
	defer op.Close()

	sp, err := store.SpeciesByName(ctx, iotesting.AedesAlbopictus)
	require.NoError(t, err)
	assert.Len(t, sp, 1)
}

func TestOpenStore_Unusable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) {
				setupTestCatalog(t, false)
			},
		},
		{
			name: "no schema",
			setup: func(t *testing.T) {
				setupTestCatalog(t, false)
				op, err := connectCatalog(context.Background())
				require.NoError(t, err)
				require.NoError(t, op.Close())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			_, _, err := openStore(context.Background())
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, errcode.DBEmptyDatabaseError, gnErr.Code)
		})
	}
}

func TestConnectCatalog_DefaultPath(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg = iotesting.SetupTempHome(t)

	op, err := connectCatalog(context.Background())
	require.NoError(t, err)
	defer op.Close()

	assert.Equal(t, "sqlite", op.Driver())
	assert.FileExists(t, config.CatalogFilePath(cfg.HomeDir))
}

func TestCatalogName(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg = iotesting.SetupTempHome(t)

	dbCfg := config.New().Database
	assert.Equal(t, cfg.SQLitePath(), catalogName(&dbCfg))

	dbCfg.Path = "/data/pests.db"
	assert.Equal(t, "/data/pests.db", catalogName(&dbCfg))

	dbCfg.Driver = "postgres"
	assert.Equal(t, "postgres@localhost:5432/pests", catalogName(&dbCfg))
}
