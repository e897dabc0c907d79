package assistantService

import "testing"

func TestValidateValues(t *testing.T) {
	env := newTestEnv(t, nil)

	tests := []struct {
		name       string
		dimension  string
		candidates []string
		want       []string
	}{
		{name: "canonical casing restored", dimension: "sizes", candidates: []string{"m", "xl"}, want: []string{"M", "XL"}},
		{name: "brand casing", dimension: "brands", candidates: []string{"zenflow"}, want: []string{"ZenFlow"}},
		{name: "unknown dropped", dimension: "colors", candidates: []string{"black", "chartreuse"}, want: []string{"black"}},
		{name: "all unknown yields nil", dimension: "colors", candidates: []string{"chartreuse"}, want: nil},
		{name: "blank ignored", dimension: "colors", candidates: []string{"", "  "}, want: nil},
		{name: "empty input", dimension: "colors", candidates: nil, want: nil},
		{name: "equipment subcategory in vocabulary", dimension: "subCategories", candidates: []string{"equipment"}, want: []string{"equipment"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := env.svc.validateValues(tc.dimension, tc.candidates)
			if len(got) != len(tc.want) {
				t.Fatalf("validateValues = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("validateValues[%d] = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestValidatePrice(t *testing.T) {
	env := newTestEnv(t, nil)

	tests := []struct {
		name  string
		price []float64
		want  [2]float64
		ok    bool
	}{
		{name: "valid range", price: []float64{10, 50}, want: [2]float64{10, 50}, ok: true},
		{name: "full range", price: []float64{0, 200}, want: [2]float64{0, 200}, ok: true},
		{name: "above max rejected", price: []float64{0, 201}, ok: false},
		{name: "negative rejected", price: []float64{-1, 50}, ok: false},
		{name: "inverted rejected", price: []float64{60, 40}, ok: false},
		{name: "wrong arity rejected", price: []float64{50}, ok: false},
		{name: "empty rejected", price: nil, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := env.svc.validatePrice(tc.price)
			if ok != tc.ok {
				t.Fatalf("validatePrice(%v) ok = %v, want %v", tc.price, ok, tc.ok)
			}
			if ok && *got != tc.want {
				t.Errorf("validatePrice(%v) = %v, want %v", tc.price, *got, tc.want)
			}
		})
	}
}
