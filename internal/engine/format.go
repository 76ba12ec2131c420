package engine

import (
	"fmt"
	"math"
)

// Price-format experiment variants. Formatting is cosmetic only; the stored
// price is never altered and checkout always charges the stored amount.
const (
	PriceFormatWhole    = "whole"
	PriceFormatDecimal9 = "decimal_9"
	PriceFormatDecimal5 = "decimal_5"
)

// FormatPrice renders a price under the given price_format variant. Charm
// endings display marginally below the stored price, never above it.
func FormatPrice(price float64, variant string) string {
	switch variant {
	case PriceFormatWhole:
		return fmt.Sprintf("%.0f", math.Round(price))
	case PriceFormatDecimal9:
		return fmt.Sprintf("%.2f", charmPrice(price, 0.90))
	case PriceFormatDecimal5:
		return fmt.Sprintf("%.2f", charmPrice(price, 0.50))
	}
	return fmt.Sprintf("%.2f", price)
}

func charmPrice(price, ending float64) float64 {
	charmed := math.Floor(price) - 1 + ending
	if charmed <= 0 {
		return price
	}
	return charmed
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
