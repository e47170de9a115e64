package controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"kenneths-desserts/catalog"
	"kenneths-desserts/models"
	"kenneths-desserts/pricing"
	"kenneths-desserts/repository"
	"kenneths-desserts/session"
	"kenneths-desserts/state"
	"kenneths-desserts/utils"
)

// MenuController handles the menu page: item cards with quantity and remark
// inputs plus the shop-wide discount toggle
type MenuController struct {
	catalog      *catalog.Catalog
	stateRepo    repository.StateRepositoryInterface
	engine       *pricing.Engine
	templatesDir string
}

// NewMenuController creates a new MenuController
func NewMenuController(cat *catalog.Catalog, stateRepo repository.StateRepositoryInterface, engine *pricing.Engine, templatesDir string) *MenuController {
	return &MenuController{
		catalog:      cat,
		stateRepo:    stateRepo,
		engine:       engine,
		templatesDir: templatesDir,
	}
}

// Show handles GET / and GET /menu
// A reset flag wipes the form and the persisted state; otherwise form values
// are prefilled from URL parameters when present. The menu page never falls
// back to the session store, only the cart page does.
func (c *MenuController) Show(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 MenuShow: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := session.Resolve(w, r)
	params := r.URL.Query()

	var st models.OrderState
	if state.HasReset(params) {
		// Terminal state after order confirmation: wipe everything
		if err := c.stateRepo.Clear(r.Context(), sessionID); err != nil {
			log.Printf("❌ MenuShow: Failed to clear persisted state: %v", err)
		}
		st = models.NewOrderState()
		log.Printf("🔄 MenuShow: Reset signal received, state wiped for session %s", sessionID)
	} else {
		st = state.DecodeQuery(params)
	}

	c.renderMenu(w, st)
}

// Update handles POST /menu/update
// Re-derives the order state from the submitted form, persists it, and
// redirects back to the menu with the state in the URL. This is the
// write-through persist that runs on every edit.
func (c *MenuController) Update(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 MenuUpdate: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := session.Resolve(w, r)
	st := c.snapshotForm(r)

	if err := c.persist(r.Context(), sessionID, st); err != nil {
		log.Printf("❌ MenuUpdate: Failed to persist state: %v", err)
	}

	http.Redirect(w, r, "/menu?"+state.EncodeQuery(st).Encode(), http.StatusSeeOther)
}

// Checkout handles POST /menu/checkout
// Snapshots the current form state, persists it, and navigates to the cart
// page with the state encoded into the URL
func (c *MenuController) Checkout(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 MenuCheckout: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := session.Resolve(w, r)
	st := c.snapshotForm(r)

	if err := c.persist(r.Context(), sessionID, st); err != nil {
		log.Printf("❌ MenuCheckout: Failed to persist state: %v", err)
	}

	log.Printf("🛒 MenuCheckout: Navigating to cart for session %s", sessionID)
	http.Redirect(w, r, "/cart?"+state.EncodeQuery(st).Encode(), http.StatusSeeOther)
}

// snapshotForm rebuilds the full order state from the submitted form values.
// Quantities are clamped to non-negative integers, remarks are kept only when
// their trimmed text is non-empty, and form fields for ids the catalog does
// not know are dropped.
func (c *MenuController) snapshotForm(r *http.Request) models.OrderState {
	if err := r.ParseForm(); err != nil {
		log.Printf("❌ snapshotForm: Failed to parse form: %v", err)
		return models.NewOrderState()
	}

	st := models.NewOrderState()
	for _, item := range c.catalog.Items() {
		st.Quantities[item.ID] = state.ParseQuantity(r.PostFormValue("qty_" + item.ID))

		remark := r.PostFormValue("remark_" + item.ID)
		if strings.TrimSpace(remark) != "" {
			st.Remarks[item.ID] = remark
		}
	}

	if r.PostFormValue("discount") != "" {
		st.DiscountPercent = state.DiscountPercent
	}

	return st
}

func (c *MenuController) persist(ctx context.Context, sessionID string, st models.OrderState) error {
	blob, err := state.EncodeStored(st)
	if err != nil {
		return err
	}
	return c.stateRepo.Save(ctx, sessionID, blob)
}

func (c *MenuController) renderMenu(w http.ResponseWriter, st models.OrderState) {
	// The pricing engine supplies per-item effective prices so the discount
	// rendering matches the cart exactly
	_, lines := c.engine.ComputeBill(st)

	items := make([]models.MenuItemView, 0, len(lines))
	for _, line := range lines {
		view := models.MenuItemView{
			Item:          line.Item,
			Quantity:      line.Quantity,
			Remark:        line.Remark,
			PriceOriginal: utils.FormatRM(line.Item.UnitPrice),
		}
		if st.DiscountPercent > 0 {
			view.PriceDiscounted = utils.FormatRM(line.EffectiveUnitPrice)
		}
		items = append(items, view)
	}

	data := models.MenuPageData{
		Items:           items,
		DiscountOn:      st.DiscountPercent > 0,
		DiscountPercent: st.DiscountPercent,
		Year:            time.Now().Year(),
	}

	renderPage(w, c.templatesDir, "menu.html", data)
}
