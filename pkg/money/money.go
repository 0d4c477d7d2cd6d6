package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is the storefront's single supported currency symbol.
const Symbol = "₦"

var printer = message.NewPrinter(language.English)

// Format renders a minor-unit-free naira amount with locale digit grouping,
// e.g. 45000 -> "₦45,000".
func Format(amount int64) string {
	return printer.Sprintf("%s%d", Symbol, amount)
}

// ApplyRate applies a percentage rate to an amount and rounds half-up at the
// integer boundary. The rate is given as a decimal string ("7.5" for 7.5%).
func ApplyRate(amount int64, ratePercent string) (int64, error) {
	rate, err := decimal.NewFromString(ratePercent)
	if err != nil {
		return 0, fmt.Errorf("parsing rate %q: %w", ratePercent, err)
	}
	result := decimal.NewFromInt(amount).
		Mul(rate).
		Div(decimal.NewFromInt(100)).
		Round(0)
	return result.IntPart(), nil
}
