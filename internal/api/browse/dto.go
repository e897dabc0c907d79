package browse

// FilterUpdate carries already-validated filter values to merge into the
// filter state. Array dimensions are additive; Price and SearchQuery
// replace. A nil Price or SearchQuery means "not mentioned".
type FilterUpdate struct {
	Colors        []string
	Sizes         []string
	Materials     []string
	Genders       []string
	Brands        []string
	SubCategories []string
	Price         *[2]float64
	SearchQuery   *string
}

func (u FilterUpdate) Empty() bool {
	return len(u.Colors) == 0 &&
		len(u.Sizes) == 0 &&
		len(u.Materials) == 0 &&
		len(u.Genders) == 0 &&
		len(u.Brands) == 0 &&
		len(u.SubCategories) == 0 &&
		u.Price == nil &&
		u.SearchQuery == nil
}
