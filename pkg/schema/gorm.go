package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Entity tables precede the bridge tables that reference them.
func AllModels() []any {
	return []any{
		&Species{},
		&Taxonomy{},
		&Location{},
		&Disease{},
		&Belongs{},
		&Distributed{},
		&Carries{},
	}
}

// TableNames returns the names of all catalog tables in creation order.
func TableNames() []string {
	return []string{
		Species{}.TableName(),
		Taxonomy{}.TableName(),
		Location{}.TableName(),
		Disease{}.TableName(),
		Belongs{}.TableName(),
		Distributed{}.TableName(),
		Carries{}.TableName(),
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
