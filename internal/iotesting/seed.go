package iotesting

import (
	"testing"

	"github.com/gnames/gnpest/pkg/schema"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

// Species seeded by SeedCatalog.
const (
	// AedesAlbopictus has 5 taxa, 2 provinces, a country, a region and
	// one disease.
	AedesAlbopictus = "Aedes albopictus"
	// CulexPipiens has 3 taxa and no distribution or diseases.
	CulexPipiens = "Culex pipiens"
	// AnophelesSinensis has 7 taxa and two diseases.
	AnophelesSinensis = "Anopheles sinensis"
)

// AedesTaxonomy is the expected taxonomy chain of AedesAlbopictus.
const AedesTaxonomy = "Aedes (伊蚊属) - Culicidae (蚊科) - Diptera (双翅目) - " +
	"Insecta (昆虫纲) - Arthropoda (节肢动物门)"

type seedSpecies struct {
	species   schema.Species
	taxa      []string
	locations []string
	diseases  []string
}

var taxa = map[string]schema.Taxonomy{
	"Aedes":       {Name: "Aedes", ChineseName: "伊蚊属", Type: "genus"},
	"Culex":       {Name: "Culex", ChineseName: "库蚊属", Type: "genus"},
	"Anopheles":   {Name: "Anopheles", ChineseName: "按蚊属", Type: "genus"},
	"Anophelinae": {Name: "Anophelinae", ChineseName: "按蚊亚科", Type: "subfamily"},
	"Culicidae":   {Name: "Culicidae", ChineseName: "蚊科", Type: "family"},
	"Culicoidea":  {Name: "Culicoidea", ChineseName: "蚊总科", Type: "superfamily"},
	"Diptera":     {Name: "Diptera", ChineseName: "双翅目", Type: "order"},
	"Insecta":     {Name: "Insecta", ChineseName: "昆虫纲", Type: "class"},
	"Arthropoda":  {Name: "Arthropoda", ChineseName: "节肢动物门", Type: "phylum"},
}

var locations = map[string]schema.Location{
	"广东":  {Name: "广东", Type: "province"},
	"海南":  {Name: "海南", Type: "province"},
	"日本":  {Name: "日本", Type: "country"},
	"东南亚": {Name: "东南亚", Type: "region"},
}

var diseases = map[string]schema.Disease{
	"登革热": {Name: "登革热"},
	"疟疾":  {Name: "疟疾"},
	"丝虫病": {Name: "丝虫病"},
}

// Relations are deliberately stored out of rank order.
var seed = []seedSpecies{
	{
		species: schema.Species{
			ScientificName: AedesAlbopictus,
			ChineseName:    "白纹伊蚊",
			OtherName:      "亚洲虎蚊",
			Traits:         "中胸盾片正中有一条白色纵纹",
		},
		taxa:      []string{"Culicidae", "Aedes", "Arthropoda", "Diptera", "Insecta"},
		locations: []string{"广东", "日本", "海南", "东南亚"},
		diseases:  []string{"登革热"},
	},
	{
		species: schema.Species{
			ScientificName: CulexPipiens,
			ChineseName:    "尖音库蚊",
		},
		taxa: []string{"Diptera", "Culex", "Culicidae"},
	},
	{
		species: schema.Species{
			ScientificName: AnophelesSinensis,
			ChineseName:    "中华按蚊",
			Traits:         "翅前缘有两个白斑",
		},
		taxa: []string{
			"Insecta", "Anopheles", "Culicoidea", "Anophelinae",
			"Arthropoda", "Culicidae", "Diptera",
		},
		locations: []string{"广东"},
		diseases:  []string{"疟疾", "丝虫病"},
	},
}

// SeedCatalog creates a SQLite species catalog at path and fills it
// with a few mosquito species.
func SeedCatalog(t *testing.T, path string) {
	t.Helper()

	db, err := gorm.Open(
		sqlite.New(sqlite.Config{
			DriverName: "sqlite",
			DSN:        path + "?_pragma=foreign_keys(1)",
		}),
		&gorm.Config{Logger: logger.Discard},
	)
	if err != nil {
		t.Fatalf("Failed to open seed catalog: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get seed connection: %v", err)
	}
	defer sqlDB.Close()

	if err = schema.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate seed catalog: %v", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return seedData(tx)
	})
	if err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}
}

func seedData(tx *gorm.DB) error {
	taxonIDs := make(map[string]int)
	for k, v := range taxa {
		if err := tx.Create(&v).Error; err != nil {
			return err
		}
		taxonIDs[k] = v.ID
	}
	locationIDs := make(map[string]int)
	for k, v := range locations {
		if err := tx.Create(&v).Error; err != nil {
			return err
		}
		locationIDs[k] = v.ID
	}
	diseaseIDs := make(map[string]int)
	for k, v := range diseases {
		if err := tx.Create(&v).Error; err != nil {
			return err
		}
		diseaseIDs[k] = v.ID
	}

	for _, v := range seed {
		sp := v.species
		if err := tx.Create(&sp).Error; err != nil {
			return err
		}
		for _, name := range v.taxa {
			b := schema.Belongs{SpeciesID: sp.ID, TaxonomyID: taxonIDs[name]}
			if err := tx.Omit("Species", "Taxonomy").Create(&b).Error; err != nil {
				return err
			}
		}
		for _, name := range v.locations {
			d := schema.Distributed{SpeciesID: sp.ID, LocationID: locationIDs[name]}
			if err := tx.Omit("Species", "Location").Create(&d).Error; err != nil {
				return err
			}
		}
		for _, name := range v.diseases {
			c := schema.Carries{SpeciesID: sp.ID, DiseaseID: diseaseIDs[name]}
			if err := tx.Omit("Species", "Disease").Create(&c).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
