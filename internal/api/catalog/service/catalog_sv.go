package catalogService

import (
	"fmt"
	"strings"

	"VoiceCommerce/internal/entity"
)

func (s *catalogService) Products() []entity.Product {
	return s.repo.Products()
}

func (s *catalogService) ProductByID(id string) (entity.Product, bool) {
	return s.repo.ProductByID(id)
}

func (s *catalogService) ProductsByCategory(category string) []entity.Product {
	return s.repo.ProductsByCategory(category)
}

func (s *catalogService) Categories() []entity.Category {
	return s.repo.Categories()
}

func (s *catalogService) FilterOptions() entity.FilterOptions {
	return s.repo.FilterOptions()
}

// Canonical returns the lowercase-to-canonical-casing lookup for one filter
// dimension. Validated filter values are mapped through this so FilterState
// always stores the exact casing the catalog uses.
func (s *catalogService) Canonical(dimension string) map[string]string {
	return s.canonical[dimension]
}

func (s *catalogService) VocabularyValues(dimension string) []string {
	opts := s.repo.FilterOptions()
	switch dimension {
	case entity.DimColors:
		return opts.Colors
	case entity.DimSizes:
		return opts.Sizes
	case entity.DimMaterials:
		return opts.Materials
	case entity.DimGenders:
		return opts.Genders
	case entity.DimBrands:
		return opts.Brands
	case entity.DimSubCategories:
		return opts.SubCategories
	default:
		return nil
	}
}

// ProductListing renders the catalog as "name: description" lines for the
// product detection prompt.
func (s *catalogService) ProductListing() string {
	var b strings.Builder
	for _, p := range s.repo.Products() {
		fmt.Fprintf(&b, "- %s: %s\n", p.Name, p.Description)
	}
	return b.String()
}

func buildCanonicalLookup(opts entity.FilterOptions) map[string]map[string]string {
	lookup := make(map[string]map[string]string, len(entity.FilterDimensions))

	add := func(dimension string, values []string) {
		m := make(map[string]string, len(values))
		for _, v := range values {
			m[strings.ToLower(v)] = v
		}
		lookup[dimension] = m
	}

	add(entity.DimColors, opts.Colors)
	add(entity.DimSizes, opts.Sizes)
	add(entity.DimMaterials, opts.Materials)
	add(entity.DimGenders, opts.Genders)
	add(entity.DimBrands, opts.Brands)
	add(entity.DimSubCategories, opts.SubCategories)

	return lookup
}
