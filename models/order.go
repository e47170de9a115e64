package models

import "github.com/shopspring/decimal"

// OrderState represents a customer's current selections at a point in time.
// Absent ids mean quantity 0 / empty remark. Remarks only hold entries with
// non-empty trimmed text.
type OrderState struct {
	Quantities      map[string]int    `json:"quantities"`
	Remarks         map[string]string `json:"remarks"`
	DiscountPercent int               `json:"discount"`
}

// NewOrderState creates the canonical zero state (no quantities, no remarks, 0% discount)
func NewOrderState() OrderState {
	return OrderState{
		Quantities: make(map[string]int),
		Remarks:    make(map[string]string),
	}
}

// IsEmpty reports whether the state carries no nonzero quantity, no remark and no discount
func (s OrderState) IsEmpty() bool {
	for _, qty := range s.Quantities {
		if qty > 0 {
			return false
		}
	}
	return len(s.Remarks) == 0 && s.DiscountPercent == 0
}

// LineItem is one catalog item's quantity, remark and computed pricing for a
// given order state. Derived, recomputed each render, never stored.
type LineItem struct {
	Item               CatalogItem     `json:"item"`
	Quantity           int             `json:"quantity"`
	Remark             string          `json:"remark,omitempty"`
	EffectiveUnitPrice decimal.Decimal `json:"effectiveUnitPrice"`
	LineTotal          decimal.Decimal `json:"lineTotal"`
}

// Bill represents the computed totals for an order state
type Bill struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"` // SST, fixed 6% of subtotal
	GrandTotal decimal.Decimal `json:"grandTotal"`
}
