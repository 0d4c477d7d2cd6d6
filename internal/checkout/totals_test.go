package checkout

import (
	"testing"

	"github.com/calabarlabs/storefront-backend/pkg/config"
)

func testCheckoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{ShippingCost: 5000, TaxRatePercent: "7.5"}
}

func TestCalculateTotals(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		subtotal int64
		wantTax  int64
	}{
		{name: "round number", subtotal: 100000, wantTax: 7500},
		{name: "single cap", subtotal: 45000, wantTax: 3375},
		{name: "half rounds up", subtotal: 35010, wantTax: 2626},
		{name: "empty cart", subtotal: 0, wantTax: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			totals, err := CalculateTotals(tc.subtotal, testCheckoutConfig())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if totals.Tax != tc.wantTax {
				t.Fatalf("tax = %d, want %d", totals.Tax, tc.wantTax)
			}
			if totals.Shipping != 5000 {
				t.Fatalf("shipping = %d, want flat 5000", totals.Shipping)
			}
			if totals.Total != tc.subtotal+5000+tc.wantTax {
				t.Fatalf("total = %d, want %d", totals.Total, tc.subtotal+5000+tc.wantTax)
			}
		})
	}
}

func TestCalculateTotalsNeverTaxesShipping(t *testing.T) {
	t.Parallel()

	totals, err := CalculateTotals(0, testCheckoutConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Tax != 0 {
		t.Fatalf("zero subtotal must mean zero tax regardless of shipping, got %d", totals.Tax)
	}
}

func TestCalculateTotalsBadRate(t *testing.T) {
	t.Parallel()

	cfg := config.CheckoutConfig{ShippingCost: 5000, TaxRatePercent: "seven"}
	if _, err := CalculateTotals(1000, cfg); err == nil {
		t.Fatal("expected rate parse error")
	}
}
