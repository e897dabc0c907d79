package entity

type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	Gender       string   `json:"gender"`
	Colors       []string `json:"colors"`
	Sizes        []string `json:"sizes"`
	Materials    []string `json:"materials"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Brand        string   `json:"brand"`
	SubCategory  string   `json:"sub_category"`
	IsNew        bool     `json:"is_new,omitempty"`
	IsBestSeller bool     `json:"is_best_seller,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FilterOptions is the reference vocabulary every validated filter value
// must belong to. Casing here is canonical.
type FilterOptions struct {
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Materials     []string `json:"materials"`
	Genders       []string `json:"genders"`
	Brands        []string `json:"brands"`
	SubCategories []string `json:"subCategories"`
}
