package domain

import (
	"fmt"
	"time"
)

// Order numbers count up from a fixed seed and are formatted with a fixed
// prefix and zero-padded width, e.g. ORD-001001.
const (
	OrderNumberSeed   int64 = 1001
	orderNumberPrefix       = "ORD"
)

// Checkout submission states.
type CheckoutState string

const (
	CheckoutStateIdle             CheckoutState = "idle"
	CheckoutStateSubmitting       CheckoutState = "submitting"
	CheckoutStateCompleted        CheckoutState = "completed"
	CheckoutStateValidationFailed CheckoutState = "validation_failed"
)

// CustomerInfo holds the checkout form fields, captured verbatim.
type CustomerInfo struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address,omitempty"`
	OrderType     OrderType `json:"order_type"`
	PaymentMethod string    `json:"payment_method"`
	Instructions  string    `json:"instructions,omitempty"`
}

// Order is an immutable snapshot of the cart and customer details taken at
// submission time. Orders are never persisted; they exist only for the
// duration of the simulated submission.
type Order struct {
	Number      string       `json:"number"`
	SessionID   string       `json:"session_id"`
	Customer    CustomerInfo `json:"customer"`
	Items       []LineItem   `json:"items"`
	Subtotal    int64        `json:"subtotal"`
	Tax         int64        `json:"tax"`
	DeliveryFee int64        `json:"delivery_fee"`
	Total       int64        `json:"total"`
	CreatedAt   time.Time    `json:"created_at"`
}

// FormatOrderNumber renders a counter value as a display order number.
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("%s-%06d", orderNumberPrefix, n)
}
