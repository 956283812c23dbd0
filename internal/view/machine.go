// Package view models the storefront's single-page navigation as an explicit
// state machine. Exactly one screen is active at a time; every transition is
// an event method that either applies and returns true, or refuses and
// returns false, leaving the state untouched.
package view

import (
	"github.com/iwholesale/storefront/internal/catalog"
	"github.com/iwholesale/storefront/internal/checkout"
)

// Screen identifies the active view.
type Screen string

const (
	ScreenListing      Screen = "listing"
	ScreenDetail       Screen = "detail"
	ScreenCheckout     Screen = "checkout"
	ScreenConfirmation Screen = "confirmation"
	ScreenAuth         Screen = "auth"
)

// Machine holds the navigation state for one session. It is not safe for
// concurrent use; the owning session serializes access.
type Machine struct {
	screen        Screen
	selected      *catalog.ProductDto
	order         *checkout.ConfirmedOrder
	authenticated bool
	searchQuery   string
}

// NewMachine returns a machine on the listing screen, signed out, with no
// product selected.
func NewMachine() *Machine {
	return &Machine{screen: ScreenListing}
}

func (m *Machine) Screen() Screen { return m.screen }

// Selected returns the product backing the detail screen, or nil when no
// product is selected.
func (m *Machine) Selected() *catalog.ProductDto { return m.selected }

// Order returns the order backing the confirmation screen, or nil outside it.
func (m *Machine) Order() *checkout.ConfirmedOrder { return m.order }

func (m *Machine) Authenticated() bool { return m.authenticated }

func (m *Machine) SearchQuery() string { return m.searchQuery }

// SetSearchQuery records the listing filter text. The filter applies only to
// the listing screen but may be edited from any screen.
func (m *Machine) SetSearchQuery(query string) {
	m.searchQuery = query
}

// SelectProduct moves from the listing to the detail screen for the given
// product and clears the search filter. Panics on a nil product; entering
// the detail screen without its data is a programmer error. Refused outside
// the listing screen.
func (m *Machine) SelectProduct(product *catalog.ProductDto) bool {
	if product == nil {
		panic("view: SelectProduct called with nil product")
	}
	if m.screen != ScreenListing {
		return false
	}
	m.screen = ScreenDetail
	m.selected = product
	m.searchQuery = ""
	return true
}

// Back returns to the listing from the detail, checkout or auth screen. On
// leaving the detail screen the selection is cleared.
func (m *Machine) Back() bool {
	switch m.screen {
	case ScreenDetail:
		m.selected = nil
	case ScreenCheckout, ScreenAuth:
	default:
		return false
	}
	m.screen = ScreenListing
	return true
}

// RequestCheckout moves to the checkout screen from the listing or detail
// screen. Refused when the cart is empty; there is nothing to review.
func (m *Machine) RequestCheckout(cartEmpty bool) bool {
	if cartEmpty {
		return false
	}
	if m.screen != ScreenListing && m.screen != ScreenDetail {
		return false
	}
	m.screen = ScreenCheckout
	return true
}

// PlaceOrder moves from the checkout screen to the confirmation screen,
// pinning the confirmed order for display. Panics on a nil order.
func (m *Machine) PlaceOrder(order *checkout.ConfirmedOrder) bool {
	if order == nil {
		panic("view: PlaceOrder called with nil order")
	}
	if m.screen != ScreenCheckout {
		return false
	}
	m.screen = ScreenConfirmation
	m.order = order
	m.selected = nil
	return true
}

// ContinueShopping leaves the confirmation screen for the listing and
// discards the displayed order.
func (m *Machine) ContinueShopping() bool {
	if m.screen != ScreenConfirmation {
		return false
	}
	m.screen = ScreenListing
	m.order = nil
	return true
}

// GoToAuth opens the sign-in screen. Permitted from any screen, including
// the auth screen itself, where it applies as a no-op. Screen-bound data
// (selection, displayed order) is discarded on the way out.
func (m *Machine) GoToAuth() bool {
	if m.screen == ScreenAuth {
		return true
	}
	m.selected = nil
	m.order = nil
	m.screen = ScreenAuth
	return true
}

// LoginSucceeded marks the session authenticated and returns to the listing.
// Only meaningful on the auth screen.
func (m *Machine) LoginSucceeded() bool {
	if m.screen != ScreenAuth {
		return false
	}
	m.authenticated = true
	m.screen = ScreenListing
	return true
}

// SignOut clears the authentication flag without changing screens.
func (m *Machine) SignOut() {
	m.authenticated = false
}
