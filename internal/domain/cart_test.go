package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name      string
		items     []LineItem
		orderType OrderType
		want      Totals
	}{
		{
			name: "two bruschetta delivery",
			items: []LineItem{
				{ID: "bruschetta", Name: "Bruschetta", UnitPrice: 800, Quantity: 2},
			},
			orderType: OrderTypeDelivery,
			want:      Totals{Subtotal: 1600, Tax: 136, DeliveryFee: 399, Total: 2135},
		},
		{
			name: "pickup has no delivery fee",
			items: []LineItem{
				{ID: "bruschetta", Name: "Bruschetta", UnitPrice: 800, Quantity: 2},
			},
			orderType: OrderTypePickup,
			want:      Totals{Subtotal: 1600, Tax: 136, DeliveryFee: 0, Total: 1736},
		},
		{
			name:      "empty cart",
			items:     nil,
			orderType: OrderTypeDelivery,
			want:      Totals{Subtotal: 0, Tax: 0, DeliveryFee: 399, Total: 399},
		},
		{
			name: "tax rounds half up",
			items: []LineItem{
				// 8.5% of 1230 is 104.55, rounds to 105.
				{ID: "x", Name: "X", UnitPrice: 1230, Quantity: 1},
			},
			orderType: OrderTypePickup,
			want:      Totals{Subtotal: 1230, Tax: 105, DeliveryFee: 0, Total: 1335},
		},
		{
			name: "tax rounds down below half",
			items: []LineItem{
				// 8.5% of 1100 is 93.5, rounds to 94; of 1000 is 85 exactly.
				{ID: "x", Name: "X", UnitPrice: 1000, Quantity: 1},
			},
			orderType: OrderTypePickup,
			want:      Totals{Subtotal: 1000, Tax: 85, DeliveryFee: 0, Total: 1085},
		},
		{
			name: "multiple lines",
			items: []LineItem{
				{ID: "osso-buco", Name: "Osso Buco", UnitPrice: 3400, Quantity: 1},
				{ID: "tiramisu", Name: "Tiramisu", UnitPrice: 950, Quantity: 2},
			},
			orderType: OrderTypeDelivery,
			want:      Totals{Subtotal: 5300, Tax: 451, DeliveryFee: 399, Total: 6150},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{Items: tt.items}
			assert.Equal(t, tt.want, cart.ComputeTotals(tt.orderType))
		})
	}
}

func TestComputeTotalsDoesNotMutate(t *testing.T) {
	cart := &Cart{Items: []LineItem{{ID: "a", Name: "A", UnitPrice: 500, Quantity: 3}}}

	first := cart.ComputeTotals(OrderTypeDelivery)
	second := cart.ComputeTotals(OrderTypeDelivery)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestItemCount(t *testing.T) {
	cart := &Cart{Items: []LineItem{
		{ID: "a", Quantity: 2},
		{ID: "b", Quantity: 3},
	}}
	assert.Equal(t, 5, cart.ItemCount())

	empty := &Cart{}
	assert.Equal(t, 0, empty.ItemCount())
}

func TestFindItemIndex(t *testing.T) {
	cart := &Cart{Items: []LineItem{
		{ID: "a", Name: "Alpha"},
		{ID: "b", Name: "Beta"},
	}}

	assert.Equal(t, 1, cart.FindItemIndex("b"))
	assert.Equal(t, -1, cart.FindItemIndex("c"))
	assert.Equal(t, 0, cart.FindItemIndexByName("Alpha"))
	assert.Equal(t, -1, cart.FindItemIndexByName("Gamma"))
}

func TestOrderTypeValid(t *testing.T) {
	assert.True(t, OrderTypeDelivery.Valid())
	assert.True(t, OrderTypePickup.Valid())
	assert.False(t, OrderType("drone").Valid())
	assert.False(t, OrderType("").Valid())
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$3.99", FormatCents(399))
	assert.Equal(t, "$21.35", FormatCents(2135))
	assert.Equal(t, "$120.00", FormatCents(12000))
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-001001", FormatOrderNumber(OrderNumberSeed))
	assert.Equal(t, "ORD-001002", FormatOrderNumber(OrderNumberSeed+1))
	assert.Equal(t, "ORD-999999", FormatOrderNumber(999999))
}
