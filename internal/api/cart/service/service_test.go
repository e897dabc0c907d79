package cartService

import (
	"testing"

	"VoiceCommerce/internal/entity"

	"github.com/sirupsen/logrus"
)

func TestCartMergesMatchingLines(t *testing.T) {
	cart := New(logrus.New())

	cart.Add(entity.CartItem{ProductID: "p1", Name: "Tee", Price: 25, Size: "M", Quantity: 1})
	cart.Add(entity.CartItem{ProductID: "p1", Name: "Tee", Price: 25, Size: "M", Quantity: 2})
	cart.Add(entity.CartItem{ProductID: "p1", Name: "Tee", Price: 25, Size: "L", Quantity: 1})

	items := cart.Items()
	if len(items) != 2 {
		t.Fatalf("lines = %d, want 2", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("merged quantity = %d, want 3", items[0].Quantity)
	}
	if cart.Count() != 4 {
		t.Errorf("count = %d, want 4", cart.Count())
	}
	if cart.Total() != 100 {
		t.Errorf("total = %v, want 100", cart.Total())
	}
}

func TestCartClampsQuantity(t *testing.T) {
	cart := New(logrus.New())

	cart.Add(entity.CartItem{ProductID: "p1", Quantity: 0})
	if cart.Count() != 1 {
		t.Errorf("count = %d, want 1 after clamp", cart.Count())
	}
}

func TestCartClear(t *testing.T) {
	cart := New(logrus.New())

	cart.Add(entity.CartItem{ProductID: "p1", Quantity: 2})
	cart.Clear()

	if cart.Count() != 0 || len(cart.Items()) != 0 {
		t.Error("cart not empty after Clear")
	}
}
