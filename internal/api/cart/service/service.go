package cartService

import (
	"sync"

	"VoiceCommerce/internal/entity"

	"github.com/sirupsen/logrus"
)

type ICartService interface {
	Add(item entity.CartItem)
	Items() []entity.CartItem
	Count() int
	Total() float64
	Clear()
}

type cartService struct {
	log *logrus.Logger

	mu    sync.RWMutex
	items []entity.CartItem
}

func New(log *logrus.Logger) ICartService {
	return &cartService{log: log}
}

// Add merges with an existing line when product and size match.
func (s *cartService) Add(item entity.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID && s.items[i].Size == item.Size {
			s.items[i].Quantity += item.Quantity
			return
		}
	}
	s.items = append(s.items, item)
}

func (s *cartService) Items() []entity.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *cartService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *cartService) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (s *cartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}
