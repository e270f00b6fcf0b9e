package cmd

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/internal/iotesting"
	"github.com/gnames/gnpest/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLookupCmd(t *testing.T) {
	cmd := getLookupCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "lookup", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("json"))
	assert.Error(t, cmd.Args(cmd, nil), "at least one name is required")
	assert.NoError(t, cmd.Args(cmd, []string{iotesting.CulexPipiens}))
}

func TestRunLookup(t *testing.T) {
	setupTestCatalog(t, true)

	tests := []struct {
		name   string
		names  []string
		asJSON bool
	}{
		{
			name:  "found",
			names: []string{iotesting.AedesAlbopictus},
		},
		{
			name: "found and missing",
			names: []string{
				iotesting.AnophelesSinensis,
				"Unknown species",
				"Aedes",
			},
		},
		{
			name:   "json",
			names:  []string{iotesting.CulexPipiens},
			asJSON: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runLookup(nil, tt.names, tt.asJSON)
			assert.NoError(t, err)
		})
	}
}

func TestRunLookup_NoCatalog(t *testing.T) {
	setupTestCatalog(t, false)

	err := runLookup(nil, []string{iotesting.AedesAlbopictus}, false)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBEmptyDatabaseError, gnErr.Code)
}
