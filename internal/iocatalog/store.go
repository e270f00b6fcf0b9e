// Package iocatalog implements catalog.Store on top of GORM.
// Every query binds its values as parameters, the query text
// never contains user input.
package iocatalog

import (
	"context"

	"github.com/gnames/gnpest/pkg/catalog"
	"github.com/gnames/gnpest/pkg/db"
	"gorm.io/gorm"
)

const (
	qSpecies = `
SELECT id, scientific_name, chinese_name, other_name, traits
  FROM species
  WHERE scientific_name = ?
  ORDER BY id`

	qTaxa = `
SELECT t.id, t.name, t.chinese_name, t.type
  FROM belongs b
    JOIN taxonomies t ON t.id = b.taxonomy_id
  WHERE b.species_id = ?
  ORDER BY b.id`

	qLocations = `
SELECT l.id, l.name, l.type
  FROM distributed d
    JOIN locations l ON l.id = d.location_id
  WHERE d.species_id = ?
  ORDER BY d.id`

	qDiseases = `
SELECT ds.id, ds.name
  FROM carries c
    JOIN diseases ds ON ds.id = c.disease_id
  WHERE c.species_id = ?
  ORDER BY c.id`
)

type store struct {
	db *gorm.DB
}

// New creates a catalog store over a connected operator.
func New(op db.Operator) (catalog.Store, error) {
	gdb := op.DB()
	if gdb == nil {
		return nil, NotConnectedError()
	}
	return &store{db: gdb}, nil
}

// SpeciesByName returns all species rows with the exact scientific
// name.
func (s *store) SpeciesByName(
	ctx context.Context,
	name string,
) ([]catalog.Species, error) {
	var res []catalog.Species
	err := s.query(ctx, qSpecies, name, func(rows scanner) error {
		var sp catalog.Species
		var chName, other, traits *string
		err := rows.Scan(&sp.ID, &sp.ScientificName, &chName, &other, &traits)
		if err != nil {
			return err
		}
		sp.ChineseName = str(chName)
		sp.OtherName = str(other)
		sp.Traits = str(traits)
		res = append(res, sp)
		return nil
	})
	return res, err
}

// TaxaForSpecies returns taxonomy nodes in the order of the belongs
// relation.
func (s *store) TaxaForSpecies(
	ctx context.Context,
	speciesID int,
) ([]catalog.Taxon, error) {
	var res []catalog.Taxon
	err := s.query(ctx, qTaxa, speciesID, func(rows scanner) error {
		var t catalog.Taxon
		var chName, tp *string
		if err := rows.Scan(&t.ID, &t.Name, &chName, &tp); err != nil {
			return err
		}
		t.ChineseName = str(chName)
		t.Type = str(tp)
		res = append(res, t)
		return nil
	})
	return res, err
}

// LocationsForSpecies returns locations in the order of the
// distributed relation.
func (s *store) LocationsForSpecies(
	ctx context.Context,
	speciesID int,
) ([]catalog.Location, error) {
	var res []catalog.Location
	err := s.query(ctx, qLocations, speciesID, func(rows scanner) error {
		var l catalog.Location
		var tp *string
		if err := rows.Scan(&l.ID, &l.Name, &tp); err != nil {
			return err
		}
		l.Type = str(tp)
		res = append(res, l)
		return nil
	})
	return res, err
}

// DiseasesForSpecies returns diseases in the order of the carries
// relation.
func (s *store) DiseasesForSpecies(
	ctx context.Context,
	speciesID int,
) ([]catalog.Disease, error) {
	var res []catalog.Disease
	err := s.query(ctx, qDiseases, speciesID, func(rows scanner) error {
		var d catalog.Disease
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return err
		}
		res = append(res, d)
		return nil
	})
	return res, err
}

type scanner interface {
	Scan(dest ...any) error
}

// query runs a parameterized query and calls scan for every row.
func (s *store) query(
	ctx context.Context,
	q string,
	arg any,
	scan func(scanner) error,
) error {
	rows, err := s.db.WithContext(ctx).Raw(q, arg).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// str converts nullable text columns, ingestion leaves some of them
// NULL.
func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
