package models

// MenuItemView is the data bound to one item card on the menu page
type MenuItemView struct {
	Item            CatalogItem `json:"item"`
	Quantity        int         `json:"quantity"`
	Remark          string      `json:"remark"`
	PriceOriginal   string      `json:"priceOriginal"`
	PriceDiscounted string      `json:"priceDiscounted,omitempty"` // set only when a discount is active
}

// MenuPageData is the data structure passed to the menu template
type MenuPageData struct {
	Items           []MenuItemView `json:"items"`
	DiscountOn      bool           `json:"discountOn"`
	DiscountPercent int            `json:"discountPercent"`
	Year            int            `json:"year"`
}

// CartLineView is the data bound to one row of the order summary table
type CartLineView struct {
	Item           CatalogItem `json:"item"`
	Quantity       int         `json:"quantity"`
	Remark         string      `json:"remark,omitempty"`
	PriceOriginal  string      `json:"priceOriginal"`
	PriceEffective string      `json:"priceEffective"`
	LineTotal      string      `json:"lineTotal"`
}

// CartPageData is the data structure passed to the cart template
type CartPageData struct {
	Lines           []CartLineView `json:"lines"`
	DiscountPercent int            `json:"discountPercent"`
	Subtotal        string         `json:"subtotal"`
	Tax             string         `json:"tax"`
	GrandTotal      string         `json:"grandTotal"`
	StateQuery      string         `json:"stateQuery"` // encoded current state, reused by back/receipt links
	Year            int            `json:"year"`
}

// ConfirmationPageData is the data structure passed to the order confirmation template
type ConfirmationPageData struct {
	RedirectURL  string `json:"redirectUrl"`
	DelaySeconds int    `json:"delaySeconds"`
	Year         int    `json:"year"`
}
