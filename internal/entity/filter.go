package entity

const (
	PriceMin float64 = 0
	PriceMax float64 = 200
)

// Filter dimension names, matching the FilterState JSON keys and the keys
// the extraction prompts instruct the model to return.
const (
	DimColors        = "colors"
	DimSizes         = "sizes"
	DimMaterials     = "materials"
	DimGenders       = "genders"
	DimBrands        = "brands"
	DimSubCategories = "subCategories"
)

// FilterDimensions lists every array-valued dimension in a stable order.
var FilterDimensions = []string{DimColors, DimSizes, DimMaterials, DimGenders, DimBrands, DimSubCategories}

// FilterState holds the active product-filter criteria for the browsing
// session. Array dimensions are deduplicated and stored in canonical
// vocabulary casing; price is always within [PriceMin, PriceMax].
type FilterState struct {
	Colors        []string   `json:"colors"`
	Sizes         []string   `json:"sizes"`
	Materials     []string   `json:"materials"`
	Genders       []string   `json:"genders"`
	Brands        []string   `json:"brands"`
	SubCategories []string   `json:"subCategories"`
	Price         [2]float64 `json:"price"`
	SearchQuery   string     `json:"searchQuery"`
}

func DefaultFilters() FilterState {
	return FilterState{
		Colors:        []string{},
		Sizes:         []string{},
		Materials:     []string{},
		Genders:       []string{},
		Brands:        []string{},
		SubCategories: []string{},
		Price:         [2]float64{PriceMin, PriceMax},
		SearchQuery:   "",
	}
}
