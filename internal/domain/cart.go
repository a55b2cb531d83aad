package domain

import (
	"fmt"
	"time"
)

// All currency amounts are integer cents.
const (
	// TaxRateBasisPoints is the sales tax applied to the cart subtotal (8.5%).
	TaxRateBasisPoints = 850
	// DeliveryFeeCents is the flat fee charged for delivery orders ($3.99).
	DeliveryFeeCents int64 = 399
)

// OrderType determines the delivery fee and whether an address is required
// at checkout.
type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

// Valid reports whether the order type is one of the known values.
func (t OrderType) Valid() bool {
	return t == OrderTypeDelivery || t == OrderTypePickup
}

// LineItem is one distinct dish in the cart with an aggregated quantity.
// Items are merged by Name, not ID: adding a dish whose name is already in
// the cart bumps the existing line's quantity.
type LineItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`

	// Display-only metadata copied from the menu entry. No business logic
	// depends on these fields.
	Description string   `json:"description,omitempty"`
	PrepTime    string   `json:"prep_time,omitempty"`
	Rating      string   `json:"rating,omitempty"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
	ChefsPick   bool     `json:"chefs_pick,omitempty"`
	Popular     bool     `json:"popular,omitempty"`
}

// Cart holds the line items for one browsing session. Insertion order is
// display order.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Totals are derived from the cart on every read; they are never stored.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	Tax         int64 `json:"tax"`
	DeliveryFee int64 `json:"delivery_fee"`
	Total       int64 `json:"total"`
}

// Subtotal returns the sum of unit price times quantity over all items.
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, item := range c.Items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}
	return subtotal
}

// ItemCount returns the total number of dishes in the cart (sum of quantities).
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// FindItemIndex returns the index of the line item with the given ID, or -1.
func (c *Cart) FindItemIndex(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// FindItemIndexByName returns the index of the line item with the given
// display name, or -1. Name equality is the merge key for AddItem.
func (c *Cart) FindItemIndexByName(name string) int {
	for i := range c.Items {
		if c.Items[i].Name == name {
			return i
		}
	}
	return -1
}

// ComputeTotals derives subtotal, tax, delivery fee, and total for the given
// order type. It is a pure function of the current items and never mutates
// the cart. Tax is rounded half-up to the nearest cent.
func (c *Cart) ComputeTotals(orderType OrderType) Totals {
	subtotal := c.Subtotal()
	tax := (subtotal*TaxRateBasisPoints + 5000) / 10000

	var deliveryFee int64
	if orderType == OrderTypeDelivery {
		deliveryFee = DeliveryFeeCents
	}

	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Total:       subtotal + tax + deliveryFee,
	}
}

// FormatCents renders an amount of cents as a $-prefixed fixed-point string.
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
