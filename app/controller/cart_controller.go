package controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"kenneths-desserts/catalog"
	"kenneths-desserts/models"
	"kenneths-desserts/pricing"
	"kenneths-desserts/repository"
	"kenneths-desserts/service"
	"kenneths-desserts/session"
	"kenneths-desserts/state"
	"kenneths-desserts/utils"
)

// confirmRedirectDelay is the fixed delay between the confirmation
// acknowledgment and the navigation back to the menu
const confirmRedirectDelay = 2 * time.Second

// CartController handles the cart page: bill computation and rendering,
// order confirmation, and the printable receipt
type CartController struct {
	catalog        *catalog.Catalog
	stateRepo      repository.StateRepositoryInterface
	engine         *pricing.Engine
	receiptService service.ReceiptServiceInterface
	templatesDir   string
}

// NewCartController creates a new CartController
func NewCartController(
	cat *catalog.Catalog,
	stateRepo repository.StateRepositoryInterface,
	engine *pricing.Engine,
	receiptService service.ReceiptServiceInterface,
	templatesDir string,
) *CartController {
	return &CartController{
		catalog:        cat,
		stateRepo:      stateRepo,
		engine:         engine,
		receiptService: receiptService,
		templatesDir:   templatesDir,
	}
}

// Show handles GET /cart
// A URL carrying a quantities parameter is authoritative. Without one the
// controller falls back to the session store: saved state triggers a single
// redirect that puts the state into the URL (keeping the render URL-driven
// and the link shareable); nothing saved renders the zero state.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CartShow: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := session.Resolve(w, r)
	params := r.URL.Query()

	if !state.HasQuantities(params) {
		blob, found, err := c.stateRepo.Load(r.Context(), sessionID)
		if err != nil {
			log.Printf("❌ CartShow: Failed to load persisted state: %v", err)
			found = false
		}
		if found {
			if saved, ok := state.DecodeStored(blob); ok {
				log.Printf("🔄 CartShow: Restoring saved state into URL for session %s", sessionID)
				http.Redirect(w, r, "/cart?"+state.EncodeQuery(saved).Encode(), http.StatusFound)
				return
			}
		}
		// Nothing saved: fall through and render the empty cart
	}

	st := state.DecodeQuery(params)
	c.renderCart(w, st)
}

// Confirm handles POST /cart/confirm
// Clears all persisted state and shows a confirmation acknowledgment that
// redirects to the menu with a reset signal after a short fixed delay. No
// order record is created anywhere; this transition is irreversible.
func (c *CartController) Confirm(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CartConfirm: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := session.Resolve(w, r)
	if err := c.stateRepo.Clear(r.Context(), sessionID); err != nil {
		log.Printf("❌ CartConfirm: Failed to clear persisted state: %v", err)
	}

	log.Printf("✅ CartConfirm: Order confirmed, state cleared for session %s", sessionID)

	data := models.ConfirmationPageData{
		RedirectURL:  "/menu?" + state.ParamReset + "=1",
		DelaySeconds: int(confirmRedirectDelay.Seconds()),
		Year:         time.Now().Year(),
	}
	renderPage(w, c.templatesDir, "confirmation.html", data)
}

// Receipt handles GET /cart/receipt.pdf
// Renders the cart for the state carried in the URL and returns it as a PDF
func (c *CartController) Receipt(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CartReceipt: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.receiptService == nil {
		http.Error(w, "Receipt generation is not configured", http.StatusServiceUnavailable)
		return
	}

	st := state.DecodeQuery(r.URL.Query())
	pdf, err := c.receiptService.GeneratePDF(r.Context(), state.EncodeQuery(st))
	if err != nil {
		log.Printf("❌ CartReceipt: Failed to generate PDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate receipt: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="receipt.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("❌ CartReceipt: Failed to write PDF response: %v", err)
	}
}

func (c *CartController) renderCart(w http.ResponseWriter, st models.OrderState) {
	bill, lines := c.engine.ComputeBill(st)

	views := make([]models.CartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, models.CartLineView{
			Item:           line.Item,
			Quantity:       line.Quantity,
			Remark:         line.Remark,
			PriceOriginal:  utils.FormatAmount(line.Item.UnitPrice),
			PriceEffective: utils.FormatAmount(line.EffectiveUnitPrice),
			LineTotal:      utils.FormatAmount(line.LineTotal),
		})
	}

	data := models.CartPageData{
		Lines:           views,
		DiscountPercent: st.DiscountPercent,
		Subtotal:        utils.FormatRM(bill.Subtotal),
		Tax:             utils.FormatRM(bill.Tax),
		GrandTotal:      utils.FormatRM(bill.GrandTotal),
		StateQuery:      state.EncodeQuery(st).Encode(),
		Year:            time.Now().Year(),
	}

	renderPage(w, c.templatesDir, "cart.html", data)
}
