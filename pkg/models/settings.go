package models

import "github.com/shopspring/decimal"

// PlatformSettings is a singleton record. Updates merge into the existing
// value; the record is never recreated from scratch.
type PlatformSettings struct {
	CommissionRate decimal.Decimal `json:"commissionRate"`
	DeliveryFeeMin decimal.Decimal `json:"deliveryFeeMin"`
	DeliveryFeeMax decimal.Decimal `json:"deliveryFeeMax"`
	SupportEmail   string          `json:"supportEmail"`
}
