package catalog

import (
	"slices"
	"strings"
)

// ranks lists taxonomic ranks from the most specific to the most general.
var ranks = []string{
	"subspecies",
	"species",
	"subgenus",
	"genus",
	"subtribe",
	"tribe",
	"subfamily",
	"family",
	"superfamily",
	"infraorder",
	"suborder",
	"order",
	"superorder",
	"infraclass",
	"subclass",
	"class",
	"superclass",
	"subphylum",
	"phylum",
	"kingdom",
	"domain",
}

var rankLevels = func() map[string]int {
	res := make(map[string]int, len(ranks))
	for i, v := range ranks {
		res[v] = i
	}
	return res
}()

// RankLevel returns the position of a rank in the hierarchy, lower
// values being more specific. The boolean is false for unknown ranks.
// Comparison ignores case and surrounding spaces.
func RankLevel(rank string) (int, bool) {
	rank = strings.ToLower(strings.TrimSpace(rank))
	level, ok := rankLevels[rank]
	return level, ok
}

// SortTaxa orders taxa from the most specific to the most general rank.
// Unknown ranks go after known ones. The sort is stable, so rows with
// the same level keep the relation order.
func SortTaxa(taxa []Taxon) {
	slices.SortStableFunc(taxa, func(a, b Taxon) int {
		return rankKey(a.Type) - rankKey(b.Type)
	})
}

func rankKey(rank string) int {
	if level, ok := RankLevel(rank); ok {
		return level
	}
	return len(ranks)
}
