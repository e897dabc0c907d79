package catalogService

import (
	"strings"
	"testing"

	catalogRepository "VoiceCommerce/internal/api/catalog/repository"
	"VoiceCommerce/internal/entity"

	"github.com/sirupsen/logrus"
)

func newTestCatalog() ICatalogService {
	logger := logrus.New()
	return New(logger, catalogRepository.New(logger))
}

func TestCanonicalLookup(t *testing.T) {
	catalog := newTestCatalog()

	tests := []struct {
		name      string
		dimension string
		key       string
		want      string
		found     bool
	}{
		{name: "lowercase size", dimension: entity.DimSizes, key: "m", want: "M", found: true},
		{name: "color passthrough", dimension: entity.DimColors, key: "black", want: "black", found: true},
		{name: "brand casing", dimension: entity.DimBrands, key: "zenflow", want: "ZenFlow", found: true},
		{name: "out of vocabulary", dimension: entity.DimSizes, key: "xxxl", found: false},
		{name: "equipment subcategory", dimension: entity.DimSubCategories, key: "equipment", want: "equipment", found: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			canonical := catalog.Canonical(tc.dimension)
			got, ok := canonical[tc.key]
			if ok != tc.found {
				t.Fatalf("lookup %q found = %v, want %v", tc.key, ok, tc.found)
			}
			if ok && got != tc.want {
				t.Errorf("canonical[%q] = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestProductByID(t *testing.T) {
	catalog := newTestCatalog()

	product, ok := catalog.ProductByID("yoga-mat-premium")
	if !ok {
		t.Fatal("yoga-mat-premium not found")
	}
	if product.Category != "yoga" {
		t.Errorf("category = %q, want yoga", product.Category)
	}

	if _, ok := catalog.ProductByID("no-such-product"); ok {
		t.Error("unknown id reported as found")
	}
}

func TestProductsByCategory(t *testing.T) {
	catalog := newTestCatalog()

	for _, category := range []string{"yoga", "jogging", "gym"} {
		products := catalog.ProductsByCategory(category)
		if len(products) == 0 {
			t.Errorf("category %q has no products", category)
		}
		for _, p := range products {
			if p.Category != category {
				t.Errorf("product %q in category %q listing has category %q", p.ID, category, p.Category)
			}
		}
	}
}

func TestProductListing(t *testing.T) {
	listing := newTestCatalog().ProductListing()

	if !strings.Contains(listing, "Premium Yoga Mat") {
		t.Error("listing misses Premium Yoga Mat")
	}
	lines := strings.Split(strings.TrimSpace(listing), "\n")
	if len(lines) != 12 {
		t.Errorf("listing has %d lines, want 12", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "- ") {
			t.Errorf("listing line %q not bullet formatted", line)
		}
	}
}

func TestVocabularyValues(t *testing.T) {
	catalog := newTestCatalog()

	genders := catalog.VocabularyValues(entity.DimGenders)
	if len(genders) != 3 {
		t.Errorf("genders = %v, want three values", genders)
	}
	if len(catalog.VocabularyValues("bogus")) != 0 {
		t.Error("unknown dimension returned values")
	}
}
