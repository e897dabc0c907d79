package browseService

import (
	"VoiceCommerce/internal/api/browse"
	"VoiceCommerce/internal/entity"
	"sync"

	"github.com/sirupsen/logrus"
)

type IFilterStore interface {
	Filters() entity.FilterState
	UpdateFilters(update browse.FilterUpdate)
	RemoveFilterValues(dimension string, values []string)
	ResetPrice()
	ClearFilters()
}

type ISelectionStore interface {
	Selection() entity.ProductSelection
	SetActiveProduct(productID string)
	SetSize(size string)
	SetQuantity(quantity int)
}

type filterStore struct {
	log *logrus.Logger

	mu      sync.RWMutex
	filters entity.FilterState
}

type selectionStore struct {
	log *logrus.Logger

	mu        sync.RWMutex
	selection entity.ProductSelection
}

func NewFilterStore(log *logrus.Logger) IFilterStore {
	return &filterStore{
		log:     log,
		filters: entity.DefaultFilters(),
	}
}

func NewSelectionStore(log *logrus.Logger) ISelectionStore {
	return &selectionStore{
		log:       log,
		selection: entity.ProductSelection{Quantity: 1},
	}
}
