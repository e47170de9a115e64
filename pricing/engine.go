// Package pricing computes line items and bill totals for an order state.
package pricing

import (
	"github.com/shopspring/decimal"

	"kenneths-desserts/catalog"
	"kenneths-desserts/models"
)

// SSTRate is the fixed 6% sales and service tax applied to the subtotal.
// It is a constant of the engine, not user-configurable.
var SSTRate = decimal.RequireFromString("0.06")

var hundred = decimal.NewFromInt(100)

// Engine computes bills against a fixed catalog
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a pricing engine for the given catalog
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// ComputeBill derives the full itemization and totals for an order state.
// Every catalog item produces a line in catalog order, including items with
// quantity zero (they contribute 0 to the subtotal but stay part of the
// itemization). Quantities for ids unknown to the catalog are ignored.
//
// All arithmetic runs at full decimal precision; rounding to 2 decimals
// happens only when values are formatted for display.
func (e *Engine) ComputeBill(st models.OrderState) (models.Bill, []models.LineItem) {
	// The discount is a single shop-wide percent applied to every line
	discount := st.DiscountPercent
	if discount < 0 || discount > 100 {
		discount = 0
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(discount)).Div(hundred))

	lines := make([]models.LineItem, 0, e.catalog.Len())
	subtotal := decimal.Zero

	for _, item := range e.catalog.Items() {
		qty := st.Quantities[item.ID]
		if qty < 0 {
			qty = 0
		}

		effectiveUnitPrice := item.UnitPrice.Mul(factor)
		lineTotal := effectiveUnitPrice.Mul(decimal.NewFromInt(int64(qty)))
		subtotal = subtotal.Add(lineTotal)

		lines = append(lines, models.LineItem{
			Item:               item,
			Quantity:           qty,
			Remark:             st.Remarks[item.ID],
			EffectiveUnitPrice: effectiveUnitPrice,
			LineTotal:          lineTotal,
		})
	}

	tax := subtotal.Mul(SSTRate)
	bill := models.Bill{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}

	return bill, lines
}
