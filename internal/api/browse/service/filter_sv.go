package browseService

import (
	"strings"

	"VoiceCommerce/internal/api/browse"
	"VoiceCommerce/internal/entity"
)

func (s *filterStore) Filters() entity.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFilters(s.filters)
}

// UpdateFilters merges validated values into the active state. Array
// dimensions only ever grow here; removal goes through RemoveFilterValues.
// Price must already satisfy 0 <= min <= max <= 200 or it is ignored.
func (s *filterStore) UpdateFilters(update browse.FilterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.Colors = appendMissing(s.filters.Colors, update.Colors)
	s.filters.Sizes = appendMissing(s.filters.Sizes, update.Sizes)
	s.filters.Materials = appendMissing(s.filters.Materials, update.Materials)
	s.filters.Genders = appendMissing(s.filters.Genders, update.Genders)
	s.filters.Brands = appendMissing(s.filters.Brands, update.Brands)
	s.filters.SubCategories = appendMissing(s.filters.SubCategories, update.SubCategories)

	if update.Price != nil {
		price := *update.Price
		if price[0] >= entity.PriceMin && price[1] <= entity.PriceMax && price[0] <= price[1] {
			s.filters.Price = price
		} else {
			s.log.Warnf("Dropping out-of-range price filter [%v, %v]", price[0], price[1])
		}
	}

	if update.SearchQuery != nil {
		s.filters.SearchQuery = *update.SearchQuery
	}
}

// RemoveFilterValues drops the given values from one dimension,
// case-insensitively. A nil values slice clears the whole dimension.
func (s *filterStore) RemoveFilterValues(dimension string, values []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.dimensionRef(dimension)
	if target == nil {
		return
	}

	if values == nil {
		*target = []string{}
		return
	}

	remove := make(map[string]bool, len(values))
	for _, v := range values {
		remove[strings.ToLower(v)] = true
	}

	kept := (*target)[:0]
	for _, v := range *target {
		if !remove[strings.ToLower(v)] {
			kept = append(kept, v)
		}
	}
	*target = kept
}

func (s *filterStore) ResetPrice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Price = [2]float64{entity.PriceMin, entity.PriceMax}
}

func (s *filterStore) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = entity.DefaultFilters()
}

func (s *filterStore) dimensionRef(dimension string) *[]string {
	switch dimension {
	case entity.DimColors:
		return &s.filters.Colors
	case entity.DimSizes:
		return &s.filters.Sizes
	case entity.DimMaterials:
		return &s.filters.Materials
	case entity.DimGenders:
		return &s.filters.Genders
	case entity.DimBrands:
		return &s.filters.Brands
	case entity.DimSubCategories:
		return &s.filters.SubCategories
	default:
		return nil
	}
}

// appendMissing adds values not already present, comparing
// case-insensitively so "black" never joins an existing "Black".
func appendMissing(existing []string, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}

	seen := make(map[string]bool, len(existing))
	for _, v := range existing {
		seen[strings.ToLower(v)] = true
	}

	for _, v := range incoming {
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if !seen[key] {
			existing = append(existing, v)
			seen[key] = true
		}
	}
	return existing
}

func cloneFilters(f entity.FilterState) entity.FilterState {
	out := f
	out.Colors = append([]string{}, f.Colors...)
	out.Sizes = append([]string{}, f.Sizes...)
	out.Materials = append([]string{}, f.Materials...)
	out.Genders = append([]string{}, f.Genders...)
	out.Brands = append([]string{}, f.Brands...)
	out.SubCategories = append([]string{}, f.SubCategories...)
	return out
}
