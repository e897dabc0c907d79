package browseService

import (
	"VoiceCommerce/internal/entity"
)

func (s *selectionStore) Selection() entity.ProductSelection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// SetActiveProduct resets size and quantity when the product identity
// changes; re-announcing the same product keeps the current choice.
func (s *selectionStore) SetActiveProduct(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection.ProductID == productID {
		return
	}

	s.selection = entity.ProductSelection{
		ProductID: productID,
		Quantity:  1,
	}
}

func (s *selectionStore) SetSize(size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.SelectedSize = size
}

// SetQuantity clamps to a minimum of 1.
func (s *selectionStore) SetQuantity(quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}
	s.selection.Quantity = quantity
}
