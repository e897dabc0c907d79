package catalogRepository

import "VoiceCommerce/internal/entity"

var defaultFilterOptions = entity.FilterOptions{
	Colors:        []string{"black", "white", "gray", "blue", "red", "navy", "purple", "teal", "olive", "pink", "burgundy"},
	Sizes:         []string{"XS", "S", "M", "L", "XL", "XXL", "standard", "7", "8", "9", "10", "11", "12", "13"},
	Materials:     []string{"cotton", "polyester", "nylon", "spandex", "elastane", "TPE", "cork", "leather", "rubber", "mesh", "modal"},
	Genders:       []string{"men", "women", "unisex"},
	Brands:        []string{"ZenFlow", "Luluma", "SprintForce", "PowerLift"},
	SubCategories: []string{"tops", "bottoms", "outerwear", "footwear", "equipment", "accessories"},
}

var defaultProducts = []entity.Product{
	{
		ID:           "yoga-mat-premium",
		Name:         "Premium Yoga Mat",
		Description:  "High-density cushioning for joint protection and superior grip during practice.",
		Price:        69.99,
		Category:     "yoga",
		Gender:       "unisex",
		Colors:       []string{"purple", "blue", "black", "teal"},
		Sizes:        []string{"standard"},
		Materials:    []string{"TPE", "eco-friendly"},
		Rating:       4.8,
		Reviews:      342,
		Brand:        "ZenFlow",
		SubCategory:  "equipment",
		IsBestSeller: true,
	},
	{
		ID:          "yoga-leggings-flow",
		Name:        "Flow Yoga Leggings",
		Description: "Four-way stretch fabric for maximum mobility during your yoga practice.",
		Price:       54.99,
		Category:    "yoga",
		Gender:      "women",
		Colors:      []string{"black", "navy", "maroon", "olive"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Materials:   []string{"nylon", "spandex"},
		Rating:      4.7,
		Reviews:     289,
		Brand:       "Luluma",
		SubCategory: "bottoms",
		IsNew:       true,
	},
	{
		ID:          "yoga-top-breeze",
		Name:        "Breeze Yoga Top",
		Description: "Lightweight, breathable fabric with a relaxed fit for unrestricted movement.",
		Price:       39.99,
		Category:    "yoga",
		Gender:      "women",
		Colors:      []string{"white", "light blue", "blush", "sage"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Materials:   []string{"modal", "cotton"},
		Rating:      4.5,
		Reviews:     210,
		Brand:       "Luluma",
		SubCategory: "tops",
	},
	{
		ID:           "running-shoes-cloud",
		Name:         "Cloud Runner Shoes",
		Description:  "Responsive cushioning and support for long-distance running comfort.",
		Price:        129.99,
		Category:     "jogging",
		Gender:       "unisex",
		Colors:       []string{"black/white", "gray/blue", "all black", "navy/orange"},
		Sizes:        []string{"7", "8", "9", "10", "11", "12", "13"},
		Materials:    []string{"mesh", "rubber"},
		Rating:       4.9,
		Reviews:      520,
		Brand:        "SprintForce",
		SubCategory:  "footwear",
		IsBestSeller: true,
	},
	{
		ID:          "running-shorts-swift",
		Name:        "Swift Running Shorts",
		Description: "Lightweight, quick-drying shorts with built-in liner for comfort during runs.",
		Price:       44.99,
		Category:    "jogging",
		Gender:      "men",
		Colors:      []string{"black", "gray", "navy", "olive"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Materials:   []string{"polyester", "spandex"},
		Rating:      4.6,
		Reviews:     190,
		Brand:       "SprintForce",
		SubCategory: "bottoms",
	},
	{
		ID:          "running-jacket-breeze",
		Name:        "Breeze Running Jacket",
		Description: "Lightweight, water-resistant jacket for protection during changing weather conditions.",
		Price:       89.99,
		Category:    "jogging",
		Gender:      "women",
		Colors:      []string{"black", "teal", "pink", "silver"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Materials:   []string{"nylon", "polyester"},
		Rating:      4.7,
		Reviews:     156,
		Brand:       "SprintForce",
		SubCategory: "outerwear",
		IsNew:       true,
	},
	{
		ID:          "running-tights-thermal",
		Name:        "Thermal Running Tights",
		Description: "Warm, moisture-wicking tights for cold-weather running with reflective details.",
		Price:       64.99,
		Category:    "jogging",
		Gender:      "men",
		Colors:      []string{"black", "navy", "olive"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Materials:   []string{"polyester", "elastane"},
		Rating:      4.8,
		Reviews:     230,
		Brand:       "SprintForce",
		SubCategory: "bottoms",
	},
	{
		ID:          "gym-tank-power",
		Name:        "Power Gym Tank",
		Description: "Moisture-wicking tank with racerback design for maximum mobility during workouts.",
		Price:       34.99,
		Category:    "gym",
		Gender:      "women",
		Colors:      []string{"black", "white", "red", "blue"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Materials:   []string{"polyester", "spandex"},
		Rating:      4.6,
		Reviews:     178,
		Brand:       "PowerLift",
		SubCategory: "tops",
	},
	{
		ID:           "gym-shorts-flex",
		Name:         "Flex Training Shorts",
		Description:  "Stretchy, durable shorts with moisture management for intense gym sessions.",
		Price:        49.99,
		Category:     "gym",
		Gender:       "men",
		Colors:       []string{"black", "gray", "navy", "red"},
		Sizes:        []string{"S", "M", "L", "XL", "XXL"},
		Materials:    []string{"polyester", "elastane"},
		Rating:       4.7,
		Reviews:      245,
		Brand:        "PowerLift",
		SubCategory:  "bottoms",
		IsBestSeller: true,
	},
	{
		ID:          "gym-hoodie-element",
		Name:        "Element Gym Hoodie",
		Description: "Soft, breathable hoodie with performance fabric for pre and post-workout comfort.",
		Price:       69.99,
		Category:    "gym",
		Gender:      "unisex",
		Colors:      []string{"black", "gray", "navy", "burgundy"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Materials:   []string{"cotton", "polyester"},
		Rating:      4.8,
		Reviews:     310,
		Brand:       "PowerLift",
		SubCategory: "outerwear",
	},
	{
		ID:          "gym-gloves-grip",
		Name:        "Grip Pro Gym Gloves",
		Description: "Anti-slip palm grips with wrist support for weightlifting and training.",
		Price:       29.99,
		Category:    "gym",
		Gender:      "unisex",
		Colors:      []string{"black", "black/red", "black/blue"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Materials:   []string{"leather", "neoprene"},
		Rating:      4.5,
		Reviews:     185,
		Brand:       "PowerLift",
		SubCategory: "accessories",
		IsNew:       true,
	},
	{
		ID:          "yoga-block-cork",
		Name:        "Cork Yoga Block",
		Description: "Sustainable cork yoga block providing stable support for various yoga poses.",
		Price:       19.99,
		Category:    "yoga",
		Gender:      "unisex",
		Colors:      []string{"natural cork"},
		Sizes:       []string{"standard"},
		Materials:   []string{"cork"},
		Rating:      4.9,
		Reviews:     120,
		Brand:       "ZenFlow",
		SubCategory: "equipment",
	},
}
