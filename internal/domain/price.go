package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrencySuffix decorates every displayed price.
const CurrencySuffix = " synapses"

// PricelessLabel is the display sentinel for products without a price.
const PricelessLabel = "priceless"

// FormatPrice renders a nullable product price for display.
func FormatPrice(price *float64) string {
	if price == nil {
		return PricelessLabel
	}
	return FormatTotal(*price)
}

// FormatTotal renders a computed sum with two decimals and the currency suffix.
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', 2, 64) + CurrencySuffix
}

// ParsePrice extracts the numeric portion of a display price string. The
// second return is false when no number can be recovered ("priceless",
// garbage, empty); callers treat such lines as zero contribution, never as an
// error.
func ParsePrice(display string) (float64, bool) {
	s := strings.TrimSpace(display)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Ptr is a convenience for literal nullable prices in wiring and tests.
func Ptr(v float64) *float64 { return &v }

func (p Product) DisplayPrice() string { return FormatPrice(p.Price) }

func (l BasketLine) String() string {
	return fmt.Sprintf("%s x%d (%s)", l.Title, l.Quantity, l.Price)
}
