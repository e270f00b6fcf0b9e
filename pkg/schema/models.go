// Package schema provides GORM models of the GNpest species catalog.
// The layout is created and updated with AutoMigrate, the same way on
// every supported backend.
package schema

// Species is one row per binomial name.
type Species struct {
	ID int `gorm:"primaryKey"`

	// ScientificName is the exact binomial (genus and species epithet).
	ScientificName string `gorm:"size:255;not null;uniqueIndex"`

	ChineseName string `gorm:"size:255"`

	// OtherName keeps alternate names as a single string.
	OtherName string `gorm:"type:text"`

	// Traits is a free-text description of distinguishing features.
	Traits string `gorm:"type:text"`
}

// TableName implements gorm's tabler interface.
func (Species) TableName() string { return "species" }

// Taxonomy is a node of the taxonomic hierarchy.
type Taxonomy struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	ChineseName string `gorm:"size:255"`

	// Type is the rank of the node: genus, family, order, class, phylum...
	Type string `gorm:"size:50"`
}

func (Taxonomy) TableName() string { return "taxonomies" }

// Belongs links species to their taxonomy nodes.
type Belongs struct {
	ID         int      `gorm:"primaryKey"`
	SpeciesID  int      `gorm:"not null;index"`
	Species    Species  `gorm:"foreignKey:SpeciesID"`
	TaxonomyID int      `gorm:"not null"`
	Taxonomy   Taxonomy `gorm:"foreignKey:TaxonomyID"`
}

func (Belongs) TableName() string { return "belongs" }

// Location is a province, a country or a smaller region.
type Location struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
	Type string `gorm:"size:50"`
}

func (Location) TableName() string { return "locations" }

// Distributed links species to the locations they occur in.
type Distributed struct {
	ID         int      `gorm:"primaryKey"`
	SpeciesID  int      `gorm:"not null;index"`
	Species    Species  `gorm:"foreignKey:SpeciesID"`
	LocationID int      `gorm:"not null"`
	Location   Location `gorm:"foreignKey:LocationID"`
}

func (Distributed) TableName() string { return "distributed" }

// Disease is a disease or virus transmitted by a species.
type Disease struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
}

func (Disease) TableName() string { return "diseases" }

// Carries links species to the diseases they carry.
type Carries struct {
	ID        int     `gorm:"primaryKey"`
	SpeciesID int     `gorm:"not null;index"`
	Species   Species `gorm:"foreignKey:SpeciesID"`
	Disease   Disease `gorm:"foreignKey:DiseaseID"`
	DiseaseID int     `gorm:"not null"`
}

func (Carries) TableName() string { return "carries" }
