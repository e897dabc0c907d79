package navigation

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNavigatorHistory(t *testing.T) {
	nav := New(logrus.New())

	if nav.Current() != RouteHome {
		t.Fatalf("initial route = %q, want %q", nav.Current(), RouteHome)
	}

	nav.Go(ListingRoute("yoga"))
	nav.Go(RouteCart)
	if nav.Current() != RouteCart {
		t.Fatalf("current = %q, want %q", nav.Current(), RouteCart)
	}

	nav.Back()
	if nav.Current() != "/products/yoga" {
		t.Errorf("after back current = %q, want /products/yoga", nav.Current())
	}

	nav.Back()
	nav.Back() // at the root already, must stay
	if nav.Current() != RouteHome {
		t.Errorf("back at root moved to %q", nav.Current())
	}
}

func TestNavigatorDeduplicatesSamePath(t *testing.T) {
	nav := New(logrus.New())

	nav.Go(RouteCart)
	nav.Go(RouteCart)
	nav.Back()

	if nav.Current() != RouteHome {
		t.Errorf("duplicate Go created extra history entry, current = %q", nav.Current())
	}
}

func TestCurrentProductID(t *testing.T) {
	nav := New(logrus.New())

	if _, ok := nav.CurrentProductID(); ok {
		t.Error("home page reported a product id")
	}

	nav.Go(ProductRoute("yoga-mat-premium"))
	id, ok := nav.CurrentProductID()
	if !ok || id != "yoga-mat-premium" {
		t.Errorf("CurrentProductID = %q, %v, want yoga-mat-premium, true", id, ok)
	}

	nav.Go(RouteCart)
	if _, ok := nav.CurrentProductID(); ok {
		t.Error("cart page reported a product id")
	}
}

func TestNavigatorSubscribe(t *testing.T) {
	nav := New(logrus.New())

	routes, cancel := nav.Subscribe()
	defer cancel()

	nav.Go(RoutePayment)
	if got := <-routes; got != RoutePayment {
		t.Errorf("notified route = %q, want %q", got, RoutePayment)
	}
}
