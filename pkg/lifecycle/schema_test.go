package lifecycle_test

import (
	"testing"

	"github.com/gnames/gnpest/internal/iodb"
	"github.com/gnames/gnpest/internal/ioschema"
	"github.com/gnames/gnpest/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestSchemaManagerContract ensures that the ioschema manager
// satisfies the lifecycle.SchemaManager interface.
func TestSchemaManagerContract(t *testing.T) {
	var mgr lifecycle.SchemaManager = ioschema.NewManager(iodb.NewSQLiteOperator())
	assert.NotNil(t, mgr)
}
