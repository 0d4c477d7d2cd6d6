// Package checkout drives the four stage order wizard: shipping, billing,
// review, payment. Form state lives server side per session; the client only
// sends field updates and navigation actions.
package checkout

// ShippingInfo is the first stage form. City, state and country come from
// the cascading location selects.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postal    string `json:"postal"`
	Country   string `json:"country"`
}

// BillingInfo is the second stage form. When SameAsShipping is set the other
// fields are ignored and the shipping address is billed.
type BillingInfo struct {
	SameAsShipping bool   `json:"sameAsShipping"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Postal         string `json:"postal"`
	Country        string `json:"country"`
}

// PaymentInfo is the final stage form. Expiry arrives either as the combined
// MM/YY text field or as separate month and year selects; when both selects
// are set the combined value is derived from them.
type PaymentInfo struct {
	CardName    string `json:"cardName"`
	CardNumber  string `json:"cardNumber"`
	ExpiryDate  string `json:"expiryDate"`
	ExpiryMonth string `json:"expiryMonth,omitempty"`
	ExpiryYear  string `json:"expiryYear,omitempty"`
	CVV         string `json:"cvv"`
}
