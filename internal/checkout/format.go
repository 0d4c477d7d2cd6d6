package checkout

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeCard regroups a card number into blocks of four digits as typed,
// capped at sixteen digits. Whitespace is stripped before regrouping so
// pasted values come out the same as typed ones.
func NormalizeCard(value string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
	if len(stripped) > 16 {
		stripped = stripped[:16]
	}

	var b strings.Builder
	for i, r := range stripped {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeExpiry keeps only digits, caps at four and inserts the slash
// after the month, so "123" becomes "12/3" and "1226" becomes "12/26".
func NormalizeExpiry(value string) string {
	digits := keepDigits(value, 4)
	if len(digits) >= 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// NormalizeCVV keeps only digits, capped at three.
func NormalizeCVV(value string) string {
	return keepDigits(value, 3)
}

// CombineExpiry derives the MM/YY representation from the month and year
// select values. Empty selections yield an empty string.
func CombineExpiry(month, year string) string {
	if month == "" || year == "" {
		return ""
	}
	if len(year) == 4 {
		year = year[2:]
	}
	return fmt.Sprintf("%s/%s", month, year)
}

func keepDigits(value string, limit int) string {
	var b strings.Builder
	for _, r := range value {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() >= limit {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
