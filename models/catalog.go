package models

import "github.com/shopspring/decimal"

// CatalogItem represents a single dessert in the shop catalog
type CatalogItem struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	UnitPrice         decimal.Decimal `json:"unitPrice"` // RM, 2-decimal display precision
	ImageRef          string          `json:"imageRef"`
	RemarkPlaceholder string          `json:"remarkPlaceholder"`
	// Image endpoints (populated for page rendering)
	ImageURLThumb  string `json:"imageUrlThumb,omitempty"`
	ImageURLMedium string `json:"imageUrlMedium,omitempty"`
}
