package browseService

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSelectionQuantityClamp(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{name: "positive kept", quantity: 3, want: 3},
		{name: "zero clamped", quantity: 0, want: 1},
		{name: "negative clamped", quantity: -2, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := NewSelectionStore(logrus.New())
			store.SetActiveProduct("yoga-mat-premium")
			store.SetQuantity(tc.quantity)

			if got := store.Selection().Quantity; got != tc.want {
				t.Errorf("quantity = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSelectionResetsOnProductChange(t *testing.T) {
	store := NewSelectionStore(logrus.New())

	store.SetActiveProduct("yoga-mat-premium")
	store.SetSize("M")
	store.SetQuantity(4)

	store.SetActiveProduct("running-shoes-cloud")
	selection := store.Selection()
	if selection.SelectedSize != "" || selection.Quantity != 1 {
		t.Errorf("selection after product change = %+v, want size reset and quantity 1", selection)
	}

	// Re-selecting the same product keeps the state.
	store.SetSize("42")
	store.SetActiveProduct("running-shoes-cloud")
	if got := store.Selection().SelectedSize; got != "42" {
		t.Errorf("size after same-product reselect = %q, want 42", got)
	}
}
