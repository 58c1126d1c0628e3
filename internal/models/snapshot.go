package models

import "github.com/shopspring/decimal"

// AccountSnapshot is an immutable point-in-time view of one account's balance.
type AccountSnapshot struct {
	AccountID uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}
