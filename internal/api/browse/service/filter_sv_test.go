package browseService

import (
	"testing"

	"VoiceCommerce/internal/api/browse"
	"VoiceCommerce/internal/entity"

	"github.com/sirupsen/logrus"
)

func newTestFilterStore() IFilterStore {
	return NewFilterStore(logrus.New())
}

func TestUpdateFiltersIsAdditive(t *testing.T) {
	store := newTestFilterStore()

	store.UpdateFilters(browse.FilterUpdate{Colors: []string{"black"}})
	store.UpdateFilters(browse.FilterUpdate{Colors: []string{"white"}, Sizes: []string{"M"}})

	filters := store.Filters()
	if len(filters.Colors) != 2 || filters.Colors[0] != "black" || filters.Colors[1] != "white" {
		t.Errorf("colors = %v, want [black white]", filters.Colors)
	}
	if len(filters.Sizes) != 1 || filters.Sizes[0] != "M" {
		t.Errorf("sizes = %v, want [M]", filters.Sizes)
	}
}

func TestUpdateFiltersDeduplicatesCaseInsensitively(t *testing.T) {
	store := newTestFilterStore()

	store.UpdateFilters(browse.FilterUpdate{Colors: []string{"Black"}})
	store.UpdateFilters(browse.FilterUpdate{Colors: []string{"black", "BLACK", "white"}})

	filters := store.Filters()
	if len(filters.Colors) != 2 {
		t.Errorf("colors = %v, want two distinct values", filters.Colors)
	}
}

func TestUpdateFiltersPriceBounds(t *testing.T) {
	tests := []struct {
		name  string
		price [2]float64
		want  [2]float64
	}{
		{name: "in range applied", price: [2]float64{10, 50}, want: [2]float64{10, 50}},
		{name: "above max dropped", price: [2]float64{50, 500}, want: [2]float64{entity.PriceMin, entity.PriceMax}},
		{name: "negative min dropped", price: [2]float64{-5, 50}, want: [2]float64{entity.PriceMin, entity.PriceMax}},
		{name: "inverted dropped", price: [2]float64{100, 10}, want: [2]float64{entity.PriceMin, entity.PriceMax}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestFilterStore()
			price := tc.price
			store.UpdateFilters(browse.FilterUpdate{Price: &price})

			if got := store.Filters().Price; got != tc.want {
				t.Errorf("price = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRemoveFilterValues(t *testing.T) {
	store := newTestFilterStore()
	store.UpdateFilters(browse.FilterUpdate{Colors: []string{"Black", "White", "Red"}})

	store.RemoveFilterValues(entity.DimColors, []string{"WHITE"})

	filters := store.Filters()
	if len(filters.Colors) != 2 {
		t.Fatalf("colors = %v, want two remaining", filters.Colors)
	}
	for _, c := range filters.Colors {
		if c == "White" {
			t.Error("White should have been removed")
		}
	}
}

func TestRemoveFilterValuesNilClearsDimension(t *testing.T) {
	store := newTestFilterStore()
	store.UpdateFilters(browse.FilterUpdate{Brands: []string{"ZenFlow", "Luluma"}})

	store.RemoveFilterValues(entity.DimBrands, nil)

	if got := store.Filters().Brands; len(got) != 0 {
		t.Errorf("brands = %v, want empty", got)
	}
}

func TestClearFiltersRestoresDefaults(t *testing.T) {
	store := newTestFilterStore()

	query := "shoes"
	price := [2]float64{10, 90}
	store.UpdateFilters(browse.FilterUpdate{
		Colors:      []string{"black"},
		Price:       &price,
		SearchQuery: &query,
	})

	store.ClearFilters()
	store.ClearFilters() // idempotent

	filters := store.Filters()
	defaults := entity.DefaultFilters()
	if len(filters.Colors) != 0 || filters.Price != defaults.Price || filters.SearchQuery != "" {
		t.Errorf("filters after clear = %+v, want defaults", filters)
	}
}

func TestResetPrice(t *testing.T) {
	store := newTestFilterStore()

	price := [2]float64{20, 80}
	store.UpdateFilters(browse.FilterUpdate{Colors: []string{"red"}, Price: &price})
	store.ResetPrice()

	filters := store.Filters()
	if filters.Price != [2]float64{entity.PriceMin, entity.PriceMax} {
		t.Errorf("price = %v, want full range", filters.Price)
	}
	if len(filters.Colors) != 1 {
		t.Errorf("colors touched by ResetPrice: %v", filters.Colors)
	}
}
