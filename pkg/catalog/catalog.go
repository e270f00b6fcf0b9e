// Package catalog defines the entities of the species catalog and the
// read contract the lookup engine depends on. It has no I/O; the store
// implementation lives in internal/iocatalog.
package catalog

import "context"

// Location types that select a distribution bucket. Any other type is
// treated as a regional location.
const (
	LocationProvince = "province"
	LocationCountry  = "country"
)

// Species is a row of the species table.
type Species struct {
	ID             int
	ScientificName string
	ChineseName    string
	// OtherName keeps alternate names as they were ingested.
	OtherName string
	Traits    string
}

// Taxon is a taxonomy node attached to a species through the belongs
// relation.
type Taxon struct {
	ID          int
	Name        string
	ChineseName string
	// Type is the rank of the node (genus, family, order...).
	Type string
}

// Location is a geographic unit a species is distributed in.
type Location struct {
	ID   int
	Name string
	// Type is "province", "country" or a finer regional granularity.
	Type string
}

// Disease is a disease or virus a species is known to carry.
type Disease struct {
	ID   int
	Name string
}

// Store provides parameterized read access to the species catalog.
// Relation queries return rows in the order of the relation table.
type Store interface {
	// SpeciesByName returns all species rows with the exact scientific
	// name, ordered by id. More than one row means the catalog is
	// corrupted.
	SpeciesByName(ctx context.Context, name string) ([]Species, error)

	// TaxaForSpecies returns taxonomy nodes joined through belongs.
	TaxaForSpecies(ctx context.Context, speciesID int) ([]Taxon, error)

	// LocationsForSpecies returns locations joined through distributed.
	LocationsForSpecies(ctx context.Context, speciesID int) ([]Location, error)

	// DiseasesForSpecies returns diseases joined through carries.
	DiseasesForSpecies(ctx context.Context, speciesID int) ([]Disease, error)
}
