package assistant

import "testing"

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Intent
	}{
		{name: "exact", raw: "navigation", want: IntentNavigation},
		{name: "uppercase", raw: "CART", want: IntentCart},
		{name: "surrounding whitespace", raw: "  apply_filter \n", want: IntentApplyFilter},
		{name: "quoted", raw: `"product_action"`, want: IntentProductAction},
		{name: "trailing period", raw: "remove_filter.", want: IntentRemoveFilter},
		{name: "unknown falls open", raw: "make_me_a_sandwich", want: IntentGeneralCommand},
		{name: "empty falls open", raw: "", want: IntentGeneralCommand},
		{name: "prose falls open", raw: "the intent is navigation", want: IntentGeneralCommand},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseIntent(tc.raw); got != tc.want {
				t.Errorf("ParseIntent(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
