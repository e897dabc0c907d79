package assistantService

import (
	"strings"

	"VoiceCommerce/internal/entity"

	"github.com/sirupsen/logrus"
)

// validateValues maps oracle-extracted filter values onto the catalog
// vocabulary for one dimension. Matching is case-insensitive and the
// returned values carry the catalog's canonical casing. Values outside
// the vocabulary are dropped, never guessed.
func (s *AssistantService) validateValues(dimension string, candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}

	canonical := s.catalog.Canonical(dimension)
	valid := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		key := strings.ToLower(strings.TrimSpace(candidate))
		if key == "" {
			continue
		}
		if value, ok := canonical[key]; ok {
			valid = append(valid, value)
			continue
		}
		s.log.WithFields(logrus.Fields{
			"dimension": dimension,
			"value":     candidate,
		}).Debug("Dropping filter value outside catalog vocabulary")
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}

// validatePrice accepts a [min, max] pair only when it is well-formed
// and inside the catalog price bounds. Out-of-range pairs are rejected
// whole rather than clamped.
func (s *AssistantService) validatePrice(price []float64) (*[2]float64, bool) {
	if len(price) != 2 {
		return nil, false
	}
	min, max := price[0], price[1]
	if min < entity.PriceMin || max > entity.PriceMax || min > max {
		s.log.WithFields(logrus.Fields{
			"min": min,
			"max": max,
		}).Debug("Rejecting out-of-range price filter")
		return nil, false
	}
	return &[2]float64{min, max}, true
}
