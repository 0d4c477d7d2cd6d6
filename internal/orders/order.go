// Package orders builds and submits the finished checkout payload. Raw card
// data never enters an order; the payment token field carries a placeholder
// until a gateway integration supplies a real token.
package orders

import (
	"fmt"
	"time"
)

// PaymentTokenPlaceholder stands in for a gateway-issued payment token.
const PaymentTokenPlaceholder = "tok_placeholder"

// Contact is a shipping or billing address block. Email and phone are only
// collected on the shipping form, so they are omitted when empty.
type Contact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postal    string `json:"postal"`
	Country   string `json:"country"`
}

// Item is one purchased cart line, flattened for the order payload.
type Item struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

// Order is the full submission payload. Amounts are whole naira.
type Order struct {
	Reference    string  `json:"reference"`
	ShippingInfo Contact `json:"shippingInfo"`
	BillingInfo  Contact `json:"billingInfo"`
	Items        []Item  `json:"items"`
	Subtotal     int64   `json:"subtotal"`
	Shipping     int64   `json:"shipping"`
	Tax          int64   `json:"tax"`
	Total        int64   `json:"total"`
	PaymentToken string  `json:"paymentToken"`
}

// NewReference derives the customer-facing order reference from the
// submission instant, millisecond precision.
func NewReference(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}
