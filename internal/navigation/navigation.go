package navigation

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// The assistant only ever navigates to this fixed destination set; it
// never constructs arbitrary paths.
const (
	RouteHome         = "/"
	RouteCategories   = "/categories"
	RouteCart         = "/cart"
	RoutePayment      = "/payment"
	RouteConfirmation = "/confirmation"
)

func ListingRoute(category string) string {
	return "/products/" + category
}

func ProductRoute(productID string) string {
	return "/product/" + productID
}

type INavigator interface {
	Go(path string)
	Back()
	Current() string
	CurrentProductID() (string, bool)
	Subscribe() (<-chan string, func())
}

type navigator struct {
	log *logrus.Logger

	mu          sync.Mutex
	history     []string
	subscribers map[int]chan string
	nextSubID   int
}

func New(log *logrus.Logger) INavigator {
	return &navigator{
		log:         log,
		history:     []string{RouteHome},
		subscribers: make(map[int]chan string),
	}
}

func (n *navigator) Go(path string) {
	n.mu.Lock()
	if n.history[len(n.history)-1] == path {
		n.mu.Unlock()
		return
	}
	n.history = append(n.history, path)
	n.mu.Unlock()

	n.notify(path)
}

// Back pops the history; at the root it stays put.
func (n *navigator) Back() {
	n.mu.Lock()
	if len(n.history) <= 1 {
		n.mu.Unlock()
		return
	}
	n.history = n.history[:len(n.history)-1]
	path := n.history[len(n.history)-1]
	n.mu.Unlock()

	n.notify(path)
}

func (n *navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history[len(n.history)-1]
}

// CurrentProductID reports the product id when the current route is a
// product detail view.
func (n *navigator) CurrentProductID() (string, bool) {
	current := n.Current()
	if id, ok := strings.CutPrefix(current, "/product/"); ok && id != "" {
		return id, true
	}
	return "", false
}

func (n *navigator) Subscribe() (<-chan string, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextSubID
	n.nextSubID++
	ch := make(chan string, 16)
	n.subscribers[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subscribers[id]; ok {
			delete(n.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (n *navigator) notify(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subscribers {
		select {
		case ch <- path:
		default:
			n.log.Warn("Dropping route-change notification for slow subscriber")
		}
	}
}
