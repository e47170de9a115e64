package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"kenneths-desserts/models"
)

// Catalog is the fixed, ordered list of sellable desserts. Slice order is the
// canonical display order on both pages.
type Catalog struct {
	items []models.CatalogItem
	byID  map[string]models.CatalogItem
}

// New builds a Catalog from an ordered item list after validating it
func New(items []models.CatalogItem) (*Catalog, error) {
	if err := validateItems(items); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	byID := make(map[string]models.CatalogItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return &Catalog{
		items: items,
		byID:  byID,
	}, nil
}

func validateItems(items []models.CatalogItem) error {
	if len(items) == 0 {
		return fmt.Errorf("catalog must contain at least one item")
	}

	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if item.ID == "" {
			return fmt.Errorf("item at index %d has an empty id", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate item id: %s", item.ID)
		}
		seen[item.ID] = true

		if item.Name == "" {
			return fmt.Errorf("item %s has an empty name", item.ID)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("item %s has a negative unit price: %s", item.ID, item.UnitPrice)
		}
	}
	return nil
}

// Load reads a catalog definition from a JSON file (an ordered array of
// catalog items) and validates it
func Load(configPath string) (*Catalog, error) {
	// Resolve config path
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog config: %w", err)
	}

	var items []models.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog config: %w", err)
	}

	return New(items)
}

// Items returns the catalog items in display order
func (c *Catalog) Items() []models.CatalogItem {
	return c.items
}

// Get returns the item for the given id
func (c *Catalog) Get(id string) (models.CatalogItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Has reports whether the catalog knows the given id
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of items in the catalog
func (c *Catalog) Len() int {
	return len(c.items)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Default returns the built-in dessert catalog used when no CATALOG_PATH is configured
func Default() *Catalog {
	items := []models.CatalogItem{
		{
			ID:                "cheesecake",
			Name:              "Classic Cheesecake",
			Description:       "Creamy, rich cheesecake with buttery graham crust.",
			UnitPrice:         price("12.00"),
			ImageRef:          "cheese.jpg",
			RemarkPlaceholder: "Creamy classic, add berries, no nuts",
		},
		{
			ID:                "brownie",
			Name:              "Chocolate Brownie",
			Description:       "Dense chocolate brownie with walnut crunch.",
			UnitPrice:         price("8.50"),
			ImageRef:          "brownie.jpg",
			RemarkPlaceholder: "Rich chocolate, no walnuts, extra fudge",
		},
		{
			ID:                "macarons",
			Name:              "French Macarons",
			Description:       "Assorted flavors: pistachio, raspberry, chocolate.",
			UnitPrice:         price("9.90"),
			ImageRef:          "french.jpg",
			RemarkPlaceholder: "Assorted flavors, mix selection, avoid pistachio",
		},
		{
			ID:                "tiramisu",
			Name:              "Tiramisu",
			Description:       "Espresso-soaked ladyfingers with mascarpone cream.",
			UnitPrice:         price("18.00"),
			ImageRef:          "tiramisu.jpg",
			RemarkPlaceholder: "Espresso-rich, light cocoa, no alcohol",
		},
		{
			ID:                "sundae",
			Name:              "Ice Cream Sundae",
			Description:       "Vanilla ice cream with chocolate sauce & cherry.",
			UnitPrice:         price("5.90"),
			ImageRef:          "sundae.jpg",
			RemarkPlaceholder: "Vanilla treat, extra sauce, hold cherry",
		},
		{
			ID:                "pannacotta",
			Name:              "Panna Cotta",
			Description:       "Silky cream dessert with berry coulis.",
			UnitPrice:         price("10.90"),
			ImageRef:          "panna.jpg",
			RemarkPlaceholder: "Silky cream, berry coulis, lower sugar",
		},
		{
			ID:                "fruittart",
			Name:              "Fresh Fruit Tart",
			Description:       "Seasonal fruits over custard in crisp tart shell.",
			UnitPrice:         price("8.50"),
			ImageRef:          "tart.jpg",
			RemarkPlaceholder: "Fresh fruits, add kiwi, skip glaze",
		},
		{
			ID:                "eclair",
			Name:              "Chocolate Éclair",
			Description:       "Choux pastry with vanilla cream & chocolate glaze.",
			UnitPrice:         price("6.50"),
			ImageRef:          "eclairs.jpg",
			RemarkPlaceholder: "Choux pastry, extra cream, less chocolate",
		},
	}

	catalog, err := New(items)
	if err != nil {
		// The built-in list is validated by tests; a failure here is a programming error.
		panic(err)
	}
	return catalog
}
