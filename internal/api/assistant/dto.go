package assistant

import (
	"context"
	"strings"
)

// Intent is the coarse category the master classifier assigns to a
// transcript before detailed handling.
type Intent string

const (
	IntentNavigation         Intent = "navigation"
	IntentOrderCompletion    Intent = "order_completion"
	IntentUserInfo           Intent = "user_info"
	IntentCart               Intent = "cart"
	IntentProductAction      Intent = "product_action"
	IntentProductNavigation  Intent = "product_navigation"
	IntentRemoveFilter       Intent = "remove_filter"
	IntentCategoryNavigation Intent = "category_navigation"
	IntentApplyFilter        Intent = "apply_filter"
	IntentClearFilters       Intent = "clear_filters"
	IntentGeneralCommand     Intent = "general_command"
)

var knownIntents = map[Intent]bool{
	IntentNavigation:         true,
	IntentOrderCompletion:    true,
	IntentUserInfo:           true,
	IntentCart:               true,
	IntentProductAction:      true,
	IntentProductNavigation:  true,
	IntentRemoveFilter:       true,
	IntentCategoryNavigation: true,
	IntentApplyFilter:        true,
	IntentClearFilters:       true,
	IntentGeneralCommand:     true,
}

// ParseIntent is fail-open: anything outside the enumeration becomes
// general_command, never an error.
func ParseIntent(raw string) Intent {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.Trim(cleaned, `"'.`)

	intent := Intent(cleaned)
	if knownIntents[intent] {
		return intent
	}
	return IntentGeneralCommand
}

// Capabilities abstracts the "simulated click" actions the handlers need
// from the view layer, so the core never probes presentation structure.
type Capabilities interface {
	SubmitPaymentForm(ctx context.Context) error
	AddCurrentProductToCart(ctx context.Context) error
}

// NavigationResult is the back/home extraction payload.
type NavigationResult struct {
	Action string `json:"action"`
}

// ProductActionResult is the size/quantity/add-to-cart extraction payload.
// Quantity stays untyped because the model returns numbers and quoted
// numbers interchangeably.
type ProductActionResult struct {
	Action   string      `json:"action"`
	Size     string      `json:"size"`
	Quantity interface{} `json:"quantity"`
}

// FilterExtraction mirrors the filter prompt's JSON contract exactly.
type FilterExtraction struct {
	Colors        []string  `json:"colors"`
	Sizes         []string  `json:"sizes"`
	Materials     []string  `json:"materials"`
	Genders       []string  `json:"genders"`
	Brands        []string  `json:"brands"`
	SubCategories []string  `json:"subCategories"`
	Price         []float64 `json:"price"`
}

// RemoveFilterExtraction mirrors the removal prompt's JSON contract; Price
// is a boolean meaning "reset the price range".
type RemoveFilterExtraction struct {
	IsRemoveFilter bool     `json:"isRemoveFilter"`
	Colors         []string `json:"colors"`
	Sizes          []string `json:"sizes"`
	Materials      []string `json:"materials"`
	Genders        []string `json:"genders"`
	Brands         []string `json:"brands"`
	SubCategories  []string `json:"subCategories"`
	Price          bool     `json:"price"`
}

// UserInfoExtraction mirrors the user-info prompt's JSON contract. The
// field keys double as UserProfile keys and must not drift.
type UserInfoExtraction struct {
	IsUserInfoUpdate bool    `json:"isUserInfoUpdate"`
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	Address          *string `json:"address"`
	Phone            *string `json:"phone"`
	CardName         *string `json:"cardName"`
	CardNumber       *string `json:"cardNumber"`
	ExpiryDate       *string `json:"expiryDate"`
	CVV              *string `json:"cvv"`
}
