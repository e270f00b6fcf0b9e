package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCreateCmd_Exists verifies getCreateCmd returns
// a valid command.
func TestGetCreateCmd_Exists(t *testing.T) {
	cmd := getCreateCmd()
	require.NotNil(t, cmd, "Create command should exist")
	assert.Equal(t, "create", cmd.Use,
		"Command name should be create")
	assert.Contains(t, cmd.Short, "schema")
	assert.Contains(t, cmd.Long, "GORM AutoMigrate")
	assert.Contains(t, cmd.Long, "collation")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
}

// TestGetCreateCmd_ForceFlag verifies --force flag exists.
func TestGetCreateCmd_ForceFlag(t *testing.T) {
	cmd := getCreateCmd()

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag,
		"--force flag should exist")

	assert.Equal(t, "f", forceFlag.Shorthand,
		"Short form should be -f")
	assert.Equal(t, "false", forceFlag.DefValue,
		"Default should be false")
	assert.Contains(t, forceFlag.Usage, "drop",
		"Usage should mention drop")
}

// TestGetCreateCmd_HelpText verifies help text content.
func TestGetCreateCmd_HelpText(t *testing.T) {
	cmd := getCreateCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "--force")
	assert.Contains(t, helpText, "Examples:")
	assert.Contains(t, helpText, "gnpest create --force")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		err   bool
	}{
		{name: "yes", input: "yes\n", ok: true},
		{name: "short yes", input: "y\n", ok: true},
		{name: "upper case", input: " YES \n", ok: true},
		{name: "no newline", input: "y", ok: true},
		{name: "no", input: "no\n"},
		{name: "anything else", input: "sure\n"},
		{name: "empty line", input: "\n"},
		{name: "closed input", input: "", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := confirm(strings.NewReader(tt.input))
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRunCreate_SQLite(t *testing.T) {
	setupTestCatalog(t, false)

	err := runCreate(nil, nil, false)
	require.NoError(t, err)

	// Existing tables are dropped without a prompt.
	err = runCreate(nil, nil, true)
	require.NoError(t, err)

	err = runMigrate(nil, nil)
	assert.NoError(t, err)
}

func TestClearCatalog(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		input   string
		ok      bool
		dropped bool
	}{
		{name: "declined", input: "no\n"},
		{name: "confirmed", input: "yes\n", ok: true, dropped: true},
		{name: "forced", force: true, ok: true, dropped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestCatalog(t, true)
			ctx := context.Background()
			op, err := connectCatalog(ctx)
			require.NoError(t, err)
			defer op.Close()

			ok, err := clearCatalog(ctx, op, tt.force,
				strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)

			has, err := op.HasTables(ctx)
			require.NoError(t, err)
			assert.Equal(t, !tt.dropped, has)
		})
	}
}

func TestClearCatalog_Empty(t *testing.T) {
	setupTestCatalog(t, false)
	ctx := context.Background()
	op, err := connectCatalog(ctx)
	require.NoError(t, err)
	defer op.Close()

	// Nothing to drop, no question asked.
	ok, err := clearCatalog(ctx, op, false, strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, ok)
}
