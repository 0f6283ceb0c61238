package entities

import "github.com/shopspring/decimal"

// Service is a catalog entry (a sewing/adjustment job the shop offers).
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - UnitPrice is the current catalog price. Order line items snapshot it at
//     the time the line is added, so later catalog edits never rewrite history.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Description string          `json:"description,omitempty"`
}
