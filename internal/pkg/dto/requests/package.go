package requests

type PackageSavings struct {
	RegularPrices []string `json:"regular_prices" validate:"dive,decimal"`
	PackagePrice  string   `json:"package_price" validate:"required,decimal"`
}
