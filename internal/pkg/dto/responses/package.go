package responses

import "github.com/shopspring/decimal"

type PackageQuote struct {
	RegularTotal      decimal.Decimal `json:"regular_total"`
	PackagePrice      decimal.Decimal `json:"package_price"`
	SavingsAmount     decimal.Decimal `json:"savings_amount"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`
}
