// Package state implements the codec between an order state and its two
// external representations: URL query parameters carried between the menu and
// cart pages, and the JSON blob persisted in the per-session state repository.
package state

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"kenneths-desserts/models"
)

const (
	// StorageKey is the fixed name the order state is persisted under
	StorageKey = "dessertOrder"

	// DiscountPercent is the shop-wide percentage applied when the
	// late-evening discount toggle is on
	DiscountPercent = 50
)

// URL query parameter names shared by both pages
const (
	ParamQuantities = "quantities"
	ParamRemarks    = "remarks"
	ParamDiscount   = "discount"
	ParamReset      = "reset"
)

// EncodeQuery serializes an order state into URL query parameters.
// quantities is always included; remarks only when non-empty; discount only
// when greater than zero.
func EncodeQuery(st models.OrderState) url.Values {
	params := url.Values{}

	quantities := st.Quantities
	if quantities == nil {
		quantities = map[string]int{}
	}
	// json.Marshal sorts map keys, so the encoding is deterministic
	quantitiesJSON, _ := json.Marshal(quantities)
	params.Set(ParamQuantities, string(quantitiesJSON))

	if len(st.Remarks) > 0 {
		remarksJSON, _ := json.Marshal(st.Remarks)
		params.Set(ParamRemarks, string(remarksJSON))
	}

	if st.DiscountPercent > 0 {
		params.Set(ParamDiscount, strconv.Itoa(st.DiscountPercent))
	}

	return params
}

// DecodeQuery parses URL query parameters into an order state. Decoding is
// total: any malformed or missing parameter yields its zero default, never an
// error.
func DecodeQuery(params url.Values) models.OrderState {
	st := models.NewOrderState()

	if raw := params.Get(ParamQuantities); raw != "" {
		var quantities map[string]int
		if err := json.Unmarshal([]byte(raw), &quantities); err == nil {
			for id, qty := range quantities {
				st.Quantities[id] = ClampQuantity(qty)
			}
		}
	}

	if raw := params.Get(ParamRemarks); raw != "" {
		var remarks map[string]string
		if err := json.Unmarshal([]byte(raw), &remarks); err == nil {
			for id, text := range remarks {
				if strings.TrimSpace(text) != "" {
					st.Remarks[id] = text
				}
			}
		}
	}

	st.DiscountPercent = ClampDiscount(parseInt(params.Get(ParamDiscount)))

	return st
}

// HasQuantities reports whether the query carries a quantities parameter,
// which makes the URL authoritative for the cart page
func HasQuantities(params url.Values) bool {
	return params.Has(ParamQuantities)
}

// HasReset reports whether the query carries the reset flag
func HasReset(params url.Values) bool {
	return params.Has(ParamReset)
}

// storedOrder is the persisted shape, mirroring the URL field shapes
type storedOrder struct {
	Quantities map[string]int    `json:"quantities"`
	Remarks    map[string]string `json:"remarks"`
	Discount   int               `json:"discount"`
}

// EncodeStored serializes an order state into the persisted JSON blob
func EncodeStored(st models.OrderState) ([]byte, error) {
	stored := storedOrder{
		Quantities: st.Quantities,
		Remarks:    st.Remarks,
		Discount:   st.DiscountPercent,
	}
	if stored.Quantities == nil {
		stored.Quantities = map[string]int{}
	}
	if stored.Remarks == nil {
		stored.Remarks = map[string]string{}
	}
	return json.Marshal(stored)
}

// DecodeStored parses a persisted blob. Failure yields absence (ok=false)
// rather than a zero state, so callers can distinguish "nothing saved" from a
// saved zero state.
func DecodeStored(blob []byte) (models.OrderState, bool) {
	if len(blob) == 0 {
		return models.OrderState{}, false
	}

	var stored storedOrder
	if err := json.Unmarshal(blob, &stored); err != nil {
		return models.OrderState{}, false
	}
	// A blob without a quantities object is treated as nothing saved
	if stored.Quantities == nil {
		return models.OrderState{}, false
	}

	st := models.NewOrderState()
	for id, qty := range stored.Quantities {
		st.Quantities[id] = ClampQuantity(qty)
	}
	for id, text := range stored.Remarks {
		if strings.TrimSpace(text) != "" {
			st.Remarks[id] = text
		}
	}
	st.DiscountPercent = ClampDiscount(stored.Discount)

	return st, true
}

// ClampQuantity normalizes a quantity to a non-negative integer
func ClampQuantity(qty int) int {
	if qty < 0 {
		return 0
	}
	return qty
}

// ClampDiscount rejects discounts outside [0,100] back to zero. Out-of-range
// values are zeroed rather than snapped to the nearest bound.
func ClampDiscount(percent int) int {
	if percent < 0 || percent > 100 {
		return 0
	}
	return percent
}

// ParseQuantity converts a form value into a quantity, treating anything that
// is not a non-negative integer as zero
func ParseQuantity(raw string) int {
	return ClampQuantity(parseInt(raw))
}

func parseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
