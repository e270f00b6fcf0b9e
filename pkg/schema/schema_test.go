package schema_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gnpest/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, []string{
		"species", "taxonomies", "locations", "diseases",
		"belongs", "distributed", "carries",
	}, schema.TableNames())
	assert.Len(t, schema.AllModels(), len(schema.TableNames()))
}

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(
		sqlite.New(sqlite.Config{
			DriverName: "sqlite",
			DSN:        filepath.Join(t.TempDir(), "pests.db") + "?_pragma=foreign_keys(1)",
		}),
		&gorm.Config{Logger: logger.Discard},
	)
	require.NoError(t, err)

	err = schema.Migrate(db)
	require.NoError(t, err)

	for _, v := range schema.TableNames() {
		assert.True(t, db.Migrator().HasTable(v), v)
	}

	cols := []struct {
		model  any
		column string
	}{
		{&schema.Species{}, "scientific_name"},
		{&schema.Species{}, "chinese_name"},
		{&schema.Species{}, "other_name"},
		{&schema.Species{}, "traits"},
		{&schema.Taxonomy{}, "type"},
		{&schema.Belongs{}, "taxonomy_id"},
		{&schema.Distributed{}, "location_id"},
		{&schema.Carries{}, "disease_id"},
	}
	for _, v := range cols {
		assert.True(t, db.Migrator().HasColumn(v.model, v.column), v.column)
	}

	// AutoMigrate is idempotent
	err = schema.Migrate(db)
	assert.NoError(t, err)
}

func TestUniqueScientificName(t *testing.T) {
	db, err := gorm.Open(
		sqlite.New(sqlite.Config{
			DriverName: "sqlite",
			DSN:        filepath.Join(t.TempDir(), "pests.db"),
		}),
		&gorm.Config{Logger: logger.Discard},
	)
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))

	sp := schema.Species{ScientificName: "Aedes albopictus"}
	require.NoError(t, db.Create(&sp).Error)

	dup := schema.Species{ScientificName: "Aedes albopictus"}
	assert.Error(t, db.Create(&dup).Error)
}
