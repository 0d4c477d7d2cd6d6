package checkout

import (
	"github.com/calabarlabs/storefront-backend/pkg/config"
	"github.com/calabarlabs/storefront-backend/pkg/money"
)

// Totals is the derived order pricing. Tax applies to the cart subtotal
// only, never to the shipping charge.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// CalculateTotals prices a cart subtotal under the configured flat shipping
// rate and tax percentage.
func CalculateTotals(subtotal int64, cfg config.CheckoutConfig) (Totals, error) {
	tax, err := money.ApplyRate(subtotal, cfg.TaxRatePercent)
	if err != nil {
		return Totals{}, err
	}
	return Totals{
		Subtotal: subtotal,
		Shipping: cfg.ShippingCost,
		Tax:      tax,
		Total:    subtotal + cfg.ShippingCost + tax,
	}, nil
}
