package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/gnames/gnpest/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetMigrateCmd_Exists verifies getMigrateCmd returns
// a valid command.
func TestGetMigrateCmd_Exists(t *testing.T) {
	cmd := getMigrateCmd()
	require.NotNil(t, cmd, "Migrate command should exist")
	assert.Equal(t, "migrate", cmd.Use,
		"Command name should be migrate")
	assert.Contains(t, cmd.Short, "schema")
	assert.Contains(t, cmd.Long, "GORM AutoMigrate")
	assert.Contains(t, cmd.Long, "non-destructive")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
}

// TestGetMigrateCmd_HelpText verifies help text content.
func TestGetMigrateCmd_HelpText(t *testing.T) {
	cmd := getMigrateCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "gnpest migrate")
}

func TestRunMigrate_EmptyCatalog(t *testing.T) {
	setupTestCatalog(t, false)

	// Nothing to migrate is not an error.
	assert.NoError(t, runMigrate(nil, nil))
}

func TestRunMigrate_Seeded(t *testing.T) {
	setupTestCatalog(t, true)
	assert.NoError(t, runMigrate(nil, nil))
}

func TestRunMigrate_AddsMissingTable(t *testing.T) {
	setupTestCatalog(t, true)
	ctx := context.Background()

	op, err := connectCatalog(ctx)
	require.NoError(t, err)
	require.NoError(t, op.DB().Migrator().DropTable("carries"))

	before, err := catalogTables(ctx, op)
	require.NoError(t, err)
	assert.False(t, before["carries"])
	require.NoError(t, op.Close())

	require.NoError(t, runMigrate(nil, nil))

	op, err = connectCatalog(ctx)
	require.NoError(t, err)
	defer op.Close()
	after, err := catalogTables(ctx, op)
	require.NoError(t, err)
	assert.Len(t, after, len(schema.TableNames()))
}
