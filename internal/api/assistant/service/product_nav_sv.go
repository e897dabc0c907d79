package assistantService

import (
	"context"
	"strings"

	"VoiceCommerce/internal/api/assistant"
	"VoiceCommerce/internal/entity"
	"VoiceCommerce/internal/navigation"
	"VoiceCommerce/pkg/nlp"
)

func (s *AssistantService) handleProductNavigation(ctx context.Context, transcript string) (string, error) {
	raw, err := s.complete(ctx, productDetailPrompt, map[string]interface{}{
		"transcript":  transcript,
		"productList": s.catalog.ProductListing(),
	})
	if err != nil {
		return "", err
	}

	query := strings.TrimSpace(raw)
	product, found := entity.Product{}, false
	if query != "" && !strings.EqualFold(query, "none") {
		product, found = s.resolveProduct(query)
	}
	if !found {
		// The model sometimes answers "none" for phrasings the local
		// matcher can still resolve.
		product, found = s.resolveProduct(transcript)
	}
	if !found {
		return "", assistant.ErrCommandNotRecognized
	}

	s.nav.Go(navigation.ProductRoute(product.ID))
	s.selection.SetActiveProduct(product.ID)
	return "Showing you the " + product.Name, nil
}

// Minimum similarity score for the fuzzy tier to accept a product.
const productMatchThreshold = 0.6

// resolveProduct maps a spoken product reference to a catalog product.
// Tiers: exact name match, then substring containment in either
// direction, then individual keyword overlap, then fuzzy similarity for
// transcription slips. First hit in catalog order wins; the fuzzy tier
// takes the highest-scoring product instead.
func (s *AssistantService) resolveProduct(query string) (entity.Product, bool) {
	cleaned := nlp.CleanText(query)
	if cleaned == "" {
		return entity.Product{}, false
	}
	products := s.catalog.Products()

	for _, p := range products {
		if nlp.CleanText(p.Name) == cleaned {
			return p, true
		}
	}

	for _, p := range products {
		name := nlp.CleanText(p.Name)
		if strings.Contains(name, cleaned) || strings.Contains(cleaned, name) {
			return p, true
		}
	}

	for _, word := range nlp.Keywords(cleaned, 3) {
		for _, p := range products {
			if strings.Contains(nlp.CleanText(p.Name), word) {
				return p, true
			}
		}
	}

	best, bestScore := entity.Product{}, 0.0
	for _, p := range products {
		if score := nlp.Similarity(cleaned, p.Name); score > bestScore {
			best, bestScore = p, score
		}
	}
	if bestScore >= productMatchThreshold {
		return best, true
	}
	return entity.Product{}, false
}
