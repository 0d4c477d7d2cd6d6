package checkout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/calabarlabs/storefront-backend/internal/locations"
)

var (
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3}$`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

// expiryYearSpan bounds the year select to the current year plus ten.
const expiryYearSpan = 10

// ValidateShipping returns the first failing check's message, or "" when the
// form passes. With strictLocations set the city/state/country triple must
// also name a real path in the location hierarchy.
func ValidateShipping(s ShippingInfo, strictLocations bool) string {
	if strings.TrimSpace(s.FirstName) == "" || strings.TrimSpace(s.LastName) == "" {
		return "First and last name are required"
	}
	if !strings.Contains(s.Email, "@") {
		return "Valid email is required"
	}
	if strings.TrimSpace(s.Phone) == "" {
		return "Phone number is required"
	}
	if strings.TrimSpace(s.Address) == "" {
		return "Address is required"
	}
	if strings.TrimSpace(s.City) == "" || strings.TrimSpace(s.State) == "" {
		return "City and state are required"
	}
	if strings.TrimSpace(s.Postal) == "" || strings.TrimSpace(s.Country) == "" {
		return "Postal code and country are required"
	}
	if strictLocations {
		sel := locations.Selection{Country: s.Country, State: s.State, City: s.City}
		if !locations.Valid(sel) {
			return "City and state are required"
		}
	}
	return ""
}

// ValidateBilling returns the first failing check's message, or "" when the
// form passes. A sameAsShipping billing form is always valid.
func ValidateBilling(b BillingInfo) string {
	if b.SameAsShipping {
		return ""
	}
	if strings.TrimSpace(b.FirstName) == "" || strings.TrimSpace(b.LastName) == "" {
		return "Billing first and last name are required"
	}
	if strings.TrimSpace(b.Address) == "" || strings.TrimSpace(b.City) == "" {
		return "Billing address information is required"
	}
	return ""
}

// ValidatePayment returns the first failing check's message, or "" when the
// form passes. now anchors the expiry year window.
func ValidatePayment(p PaymentInfo, now time.Time) string {
	if strings.TrimSpace(p.CardName) == "" {
		return "Cardholder name is required"
	}
	cardNum := strings.Join(strings.Fields(p.CardNumber), "")
	if len(cardNum) != 16 || !digitsOnly.MatchString(cardNum) {
		return "Valid 16-digit card number required"
	}
	if !validExpiry(p, now) {
		return "Expiry date must be MM/YY format"
	}
	if !cvvPattern.MatchString(p.CVV) {
		return "Valid 3-digit CVV required"
	}
	return ""
}

func validExpiry(p PaymentInfo, now time.Time) bool {
	if p.ExpiryMonth != "" || p.ExpiryYear != "" {
		if !validExpiryMonth(p.ExpiryMonth) || !validExpiryYear(p.ExpiryYear, now) {
			return false
		}
		return expiryPattern.MatchString(CombineExpiry(p.ExpiryMonth, p.ExpiryYear))
	}
	return expiryPattern.MatchString(p.ExpiryDate)
}

func validExpiryMonth(month string) bool {
	for _, option := range ExpiryMonths() {
		if month == option {
			return true
		}
	}
	return false
}

func validExpiryYear(year string, now time.Time) bool {
	parsed, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	return parsed >= now.Year() && parsed <= now.Year()+expiryYearSpan
}

// ExpiryMonths lists the month select options, 01 through 12.
func ExpiryMonths() []string {
	months := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, fmt.Sprintf("%02d", m))
	}
	return months
}

// ExpiryYears lists the year select options, the current year through the
// current year plus ten.
func ExpiryYears(now time.Time) []string {
	years := make([]string, 0, expiryYearSpan+1)
	for y := now.Year(); y <= now.Year()+expiryYearSpan; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return years
}
