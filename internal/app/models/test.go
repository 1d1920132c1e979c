package models

import "github.com/shopspring/decimal"

// Test is a test template from the lab catalog.
type Test struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Code       string          `json:"code,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Parameters []TestParameter `json:"parameters"`
}

type TestParameter struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Unit         string   `json:"unit,omitempty"`
	NormalRange  string   `json:"normal_range,omitempty"`
	CriticalLow  *float64 `json:"critical_low,omitempty"`
	CriticalHigh *float64 `json:"critical_high,omitempty"`
}
