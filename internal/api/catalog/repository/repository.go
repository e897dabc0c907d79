package catalogRepository

import (
	"VoiceCommerce/internal/entity"

	"github.com/sirupsen/logrus"
)

type Repository interface {
	Products() []entity.Product
	ProductByID(id string) (entity.Product, bool)
	ProductsByCategory(category string) []entity.Product
	Categories() []entity.Category
	FilterOptions() entity.FilterOptions
}

type repository struct {
	log      *logrus.Logger
	products []entity.Product
	options  entity.FilterOptions
	byID     map[string]entity.Product
}

func New(log *logrus.Logger) Repository {
	byID := make(map[string]entity.Product, len(defaultProducts))
	for _, p := range defaultProducts {
		byID[p.ID] = p
	}

	return &repository{
		log:      log,
		products: defaultProducts,
		options:  defaultFilterOptions,
		byID:     byID,
	}
}

func (r *repository) Products() []entity.Product {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *repository) ProductByID(id string) (entity.Product, bool) {
	p, ok := r.byID[id]
	return p, ok
}

func (r *repository) ProductsByCategory(category string) []entity.Product {
	var out []entity.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (r *repository) Categories() []entity.Category {
	return []entity.Category{
		{ID: "yoga", Name: "Yoga"},
		{ID: "jogging", Name: "Jogging/Running/Walking"},
		{ID: "gym", Name: "Gym"},
	}
}

func (r *repository) FilterOptions() entity.FilterOptions {
	return r.options
}
