package packages

import (
	"medilabx-service/internal/pkg/dto/responses"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Savings compares a package price with the sum of its tests bought one by
// one. The percentage is rounded to two places, half away from zero, and is
// zero when the regular total is zero. A package dearer than its parts yields
// negative savings.
func Savings(regularPrices []decimal.Decimal, packagePrice decimal.Decimal) responses.PackageQuote {
	total := decimal.Sum(decimal.Zero, regularPrices...)
	amount := total.Sub(packagePrice)

	percentage := decimal.Zero
	if !total.IsZero() {
		percentage = amount.Div(total).Mul(hundred).Round(2)
	}

	return responses.PackageQuote{
		RegularTotal:      total,
		PackagePrice:      packagePrice,
		SavingsAmount:     amount,
		SavingsPercentage: percentage,
	}
}
