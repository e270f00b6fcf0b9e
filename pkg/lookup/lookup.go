// Package lookup assembles display-ready species records from the
// catalog. It reads the species row and its taxonomy, distribution and
// disease relations, and aggregates them into a catalog.Record.
package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/pkg/catalog"
)

const (
	// TaxonomySep joins taxonomy nodes.
	TaxonomySep = " - "
	// ListSep joins locations and diseases.
	ListSep = "、"
)

// Engine looks species up in a catalog store. It keeps no state
// between calls and never writes to the store.
type Engine struct {
	store catalog.Store
}

// New creates a lookup engine for a store.
func New(store catalog.Store) *Engine {
	return &Engine{store: store}
}

// Lookup returns the aggregated record of a binomial scientific name.
// A species absent from the catalog is not an error: the engine
// reports it once to the user and returns a nil record. Names that are
// not binomials are never found.
func (e *Engine) Lookup(
	ctx context.Context,
	scientificName string,
) (*catalog.Record, error) {
	name, ok := Binomial(scientificName)
	if !ok {
		notFound(scientificName)
		return nil, nil
	}

	spp, err := e.store.SpeciesByName(ctx, name)
	if err != nil {
		return nil, QueryError(name, "species", err)
	}
	switch len(spp) {
	case 0:
		notFound(name)
		return nil, nil
	case 1:
	default:
		return nil, DuplicateSpeciesError(name, len(spp))
	}
	sp := spp[0]

	res := catalog.Record{
		ScientificName: sp.ScientificName,
		ChineseName:    sp.ChineseName,
		OtherName:      sp.OtherName,
		Traits:         sp.Traits,
	}

	taxa, err := e.store.TaxaForSpecies(ctx, sp.ID)
	if err != nil {
		return nil, QueryError(name, "taxonomies", err)
	}
	res.Taxonomy = Taxonomy(taxa)

	locs, err := e.store.LocationsForSpecies(ctx, sp.ID)
	if err != nil {
		return nil, QueryError(name, "locations", err)
	}
	res.DomesticDistribution, res.InternationalDistribution,
		res.RegionalDistribution = Distribution(locs)

	diseases, err := e.store.DiseasesForSpecies(ctx, sp.ID)
	if err != nil {
		return nil, QueryError(name, "diseases", err)
	}
	res.Diseases = Diseases(diseases)

	return &res, nil
}

// Binomial normalizes whitespace of a name and reports whether the
// result has exactly two words.
func Binomial(name string) (string, bool) {
	words := strings.Fields(name)
	if len(words) != 2 {
		return "", false
	}
	return words[0] + " " + words[1], true
}

// Taxonomy renders taxa from the most specific to the most general
// rank as "<name> (<chinese name>)" nodes. The input is not modified.
func Taxonomy(taxa []catalog.Taxon) string {
	sorted := make([]catalog.Taxon, len(taxa))
	copy(sorted, taxa)
	catalog.SortTaxa(sorted)

	nodes := make([]string, len(sorted))
	for i, v := range sorted {
		nodes[i] = fmt.Sprintf("%s (%s)", v.Name, v.ChineseName)
	}
	return strings.Join(nodes, TaxonomySep)
}

// Distribution partitions locations into domestic (province),
// international (country) and regional (anything else) lists in a
// single pass. Encounter order is preserved inside each list.
func Distribution(locs []catalog.Location) (domestic, international, regional string) {
	var dom, intl, reg []string
	for _, v := range locs {
		switch strings.ToLower(strings.TrimSpace(v.Type)) {
		case catalog.LocationProvince:
			dom = append(dom, v.Name)
		case catalog.LocationCountry:
			intl = append(intl, v.Name)
		default:
			reg = append(reg, v.Name)
		}
	}
	return strings.Join(dom, ListSep),
		strings.Join(intl, ListSep),
		strings.Join(reg, ListSep)
}

// Diseases joins disease names in relation order.
func Diseases(diseases []catalog.Disease) string {
	names := make([]string, len(diseases))
	for i, v := range diseases {
		names[i] = v.Name
	}
	return strings.Join(names, ListSep)
}

func notFound(name string) {
	gn.Warn("Species <em>%s</em> is not in the catalog", name)
}
