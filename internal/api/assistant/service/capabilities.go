package assistantService

import (
	"context"

	"VoiceCommerce/internal/api/assistant"
	browseService "VoiceCommerce/internal/api/browse/service"
	cartService "VoiceCommerce/internal/api/cart/service"
	catalogService "VoiceCommerce/internal/api/catalog/service"
	"VoiceCommerce/internal/entity"
	"VoiceCommerce/internal/navigation"

	"github.com/sirupsen/logrus"
)

// capabilities is the storefront-backed implementation of the simulated
// click actions. Submission empties the cart and lands on the
// confirmation page, the same flow a tap on the pay button runs.
type capabilities struct {
	log       *logrus.Logger
	catalog   catalogService.ICatalogService
	selection browseService.ISelectionStore
	cart      cartService.ICartService
	nav       navigation.INavigator
}

func NewCapabilities(
	log *logrus.Logger,
	catalog catalogService.ICatalogService,
	selection browseService.ISelectionStore,
	cart cartService.ICartService,
	nav navigation.INavigator,
) assistant.Capabilities {
	return &capabilities{
		log:       log,
		catalog:   catalog,
		selection: selection,
		cart:      cart,
		nav:       nav,
	}
}

func (c *capabilities) SubmitPaymentForm(ctx context.Context) error {
	c.log.WithFields(logrus.Fields{
		"items": c.cart.Count(),
		"total": c.cart.Total(),
	}).Info("Submitting order")

	c.cart.Clear()
	c.nav.Go(navigation.RouteConfirmation)
	return nil
}

func (c *capabilities) AddCurrentProductToCart(ctx context.Context) error {
	selection := c.selection.Selection()
	if selection.ProductID == "" {
		return assistant.ErrNoActiveProduct
	}
	product, found := c.catalog.ProductByID(selection.ProductID)
	if !found {
		return assistant.ErrNoActiveProduct
	}

	size := selection.SelectedSize
	if size == "" && len(product.Sizes) > 0 {
		size = product.Sizes[0]
	}
	quantity := selection.Quantity
	if quantity < 1 {
		quantity = 1
	}

	c.cart.Add(entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Size:      size,
		Quantity:  quantity,
	})
	return nil
}
