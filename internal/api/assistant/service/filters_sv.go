package assistantService

import (
	"context"
	"fmt"
	"strings"

	"VoiceCommerce/internal/api/assistant"
	"VoiceCommerce/internal/api/browse"
	"VoiceCommerce/internal/entity"

	"github.com/sirupsen/logrus"
)

func (s *AssistantService) vocabularyParams(transcript string) map[string]interface{} {
	return map[string]interface{}{
		"transcript": transcript,
		"colors":     s.catalog.VocabularyValues(entity.DimColors),
		"sizes":      s.catalog.VocabularyValues(entity.DimSizes),
		"materials":  s.catalog.VocabularyValues(entity.DimMaterials),
		"genders":    s.catalog.VocabularyValues(entity.DimGenders),
		"brands":     s.catalog.VocabularyValues(entity.DimBrands),
		"categories": s.catalog.VocabularyValues(entity.DimSubCategories),
	}
}

func (s *AssistantService) handleApplyFilter(ctx context.Context, transcript string) (string, error) {
	raw, err := s.complete(ctx, applyFilterPrompt, s.vocabularyParams(transcript))
	if err != nil {
		return "", err
	}

	var extraction assistant.FilterExtraction
	if err := json.UnmarshalFromString(raw, &extraction); err != nil {
		s.log.WithFields(logrus.Fields{
			"error":    err.Error(),
			"response": raw,
		}).Warn("Failed to parse filter extraction")
		return "", assistant.ErrCommandNotRecognized
	}

	update := browse.FilterUpdate{
		Colors:        s.validateValues(entity.DimColors, extraction.Colors),
		Sizes:         s.validateValues(entity.DimSizes, extraction.Sizes),
		Materials:     s.validateValues(entity.DimMaterials, extraction.Materials),
		Genders:       s.validateValues(entity.DimGenders, extraction.Genders),
		Brands:        s.validateValues(entity.DimBrands, extraction.Brands),
		SubCategories: s.validateValues(entity.DimSubCategories, extraction.SubCategories),
	}
	if price, ok := s.validatePrice(extraction.Price); ok {
		update.Price = price
	}

	if update.Empty() {
		return "", assistant.ErrCommandNotRecognized
	}

	s.filters.UpdateFilters(update)
	return "Applied " + describeFilterUpdate(update), nil
}

func (s *AssistantService) handleRemoveFilter(ctx context.Context, transcript string) (string, error) {
	raw, err := s.complete(ctx, removeFilterPrompt, s.vocabularyParams(transcript))
	if err != nil {
		return "", err
	}

	var extraction assistant.RemoveFilterExtraction
	if err := json.UnmarshalFromString(raw, &extraction); err != nil {
		s.log.WithFields(logrus.Fields{
			"error":    err.Error(),
			"response": raw,
		}).Warn("Failed to parse filter removal extraction")
		return "", assistant.ErrCommandNotRecognized
	}
	if !extraction.IsRemoveFilter {
		return "", assistant.ErrCommandNotRecognized
	}

	removals := map[string][]string{
		entity.DimColors:        s.validateValues(entity.DimColors, extraction.Colors),
		entity.DimSizes:         s.validateValues(entity.DimSizes, extraction.Sizes),
		entity.DimMaterials:     s.validateValues(entity.DimMaterials, extraction.Materials),
		entity.DimGenders:       s.validateValues(entity.DimGenders, extraction.Genders),
		entity.DimBrands:        s.validateValues(entity.DimBrands, extraction.Brands),
		entity.DimSubCategories: s.validateValues(entity.DimSubCategories, extraction.SubCategories),
	}

	var removed []string
	for _, dimension := range entity.FilterDimensions {
		values := removals[dimension]
		if len(values) == 0 {
			continue
		}
		s.filters.RemoveFilterValues(dimension, values)
		removed = append(removed, strings.Join(values, ", "))
	}
	if extraction.Price {
		s.filters.ResetPrice()
		removed = append(removed, "price range")
	}

	if len(removed) == 0 {
		return "", assistant.ErrCommandNotRecognized
	}
	return "Removed filters: " + strings.Join(removed, ", "), nil
}

func (s *AssistantService) handleClearFilters() (string, error) {
	s.filters.ClearFilters()
	return "Cleared all filters", nil
}

func describeFilterUpdate(update browse.FilterUpdate) string {
	var parts []string
	collect := func(values []string) {
		parts = append(parts, values...)
	}
	collect(update.Colors)
	collect(update.Sizes)
	collect(update.Materials)
	collect(update.Genders)
	collect(update.Brands)
	collect(update.SubCategories)
	if update.Price != nil {
		parts = append(parts, fmt.Sprintf("$%.0f-$%.0f", update.Price[0], update.Price[1]))
	}
	if len(parts) == 0 {
		return "filters"
	}
	return strings.Join(parts, ", ") + " filters"
}
