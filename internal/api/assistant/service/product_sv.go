package assistantService

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"VoiceCommerce/internal/api/assistant"

	"github.com/sirupsen/logrus"
)

// handleProductAction covers size selection, quantity changes and
// add-to-cart for the product currently on screen.
func (s *AssistantService) handleProductAction(ctx context.Context, transcript string) (string, error) {
	productID, ok := s.nav.CurrentProductID()
	if !ok {
		return "", assistant.ErrNoActiveProduct
	}
	product, found := s.catalog.ProductByID(productID)
	if !found {
		return "", assistant.ErrNoActiveProduct
	}

	raw, err := s.complete(ctx, productActionPrompt, map[string]interface{}{
		"transcript":  transcript,
		"productName": product.Name,
		"sizes":       product.Sizes,
	})
	if err != nil {
		return "", err
	}

	var result assistant.ProductActionResult
	if err := json.UnmarshalFromString(raw, &result); err != nil {
		s.log.WithFields(logrus.Fields{
			"error":    err.Error(),
			"response": raw,
		}).Warn("Failed to parse product action extraction")
		return "", assistant.ErrCommandNotRecognized
	}

	s.selection.SetActiveProduct(productID)

	switch result.Action {
	case "size":
		size, available := matchSize(result.Size, product.Sizes)
		if !available {
			s.log.WithFields(logrus.Fields{
				"product": product.ID,
				"size":    result.Size,
			}).Debug("Requested size not offered for product")
			return "", assistant.ErrCommandNotRecognized
		}
		s.selection.SetSize(size)
		return "Selected size " + size, nil

	case "quantity":
		quantity, valid := coerceQuantity(result.Quantity)
		if !valid {
			return "", assistant.ErrCommandNotRecognized
		}
		s.selection.SetQuantity(quantity)
		return fmt.Sprintf("Set quantity to %d", quantity), nil

	case "addToCart":
		if err := s.caps.AddCurrentProductToCart(ctx); err != nil {
			return "", err
		}
		return "Added " + product.Name + " to your cart", nil

	default:
		return "", assistant.ErrCommandNotRecognized
	}
}

// matchSize resolves a spoken size against the product's own size list,
// case-insensitively, returning the listed casing.
func matchSize(size string, available []string) (string, bool) {
	cleaned := strings.TrimSpace(size)
	if cleaned == "" {
		return "", false
	}
	for _, candidate := range available {
		if strings.EqualFold(candidate, cleaned) {
			return candidate, true
		}
	}
	return "", false
}

// coerceQuantity accepts the number, quoted-number and float spellings
// the model produces; anything non-positive or fractional is rejected.
func coerceQuantity(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		if v < 1 || v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		if v < 1 {
			return 0, false
		}
		return v, true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || parsed < 1 {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
