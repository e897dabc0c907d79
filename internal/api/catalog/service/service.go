package catalogService

import (
	catalogRepository "VoiceCommerce/internal/api/catalog/repository"
	"VoiceCommerce/internal/entity"

	"github.com/sirupsen/logrus"
)

type ICatalogService interface {
	Products() []entity.Product
	ProductByID(id string) (entity.Product, bool)
	ProductsByCategory(category string) []entity.Product
	Categories() []entity.Category
	FilterOptions() entity.FilterOptions
	Canonical(dimension string) map[string]string
	VocabularyValues(dimension string) []string
	ProductListing() string
}

type catalogService struct {
	log       *logrus.Logger
	repo      catalogRepository.Repository
	canonical map[string]map[string]string
}

func New(log *logrus.Logger, repo catalogRepository.Repository) ICatalogService {
	s := &catalogService{
		log:  log,
		repo: repo,
	}
	s.canonical = buildCanonicalLookup(repo.FilterOptions())
	return s
}
