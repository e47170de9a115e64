package router

import (
	"net/http"
	"strings"

	"kenneths-desserts/app/controller"
)

type Controllers struct {
	Menu      *controller.MenuController
	Cart      *controller.CartController
	Asset     *controller.AssetController
	ImageLoad *controller.ImageLoadController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Menu page is the root page
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		controllers.Menu.Show(w, r)
	})
	mux.HandleFunc("/menu", controllers.Menu.Show)

	// Write-through persist of the current menu form
	mux.HandleFunc("/menu/update", controllers.Menu.Update)

	// Snapshot form state and navigate to the cart
	mux.HandleFunc("/menu/checkout", controllers.Menu.Checkout)

	// Cart page and order confirmation
	mux.HandleFunc("/cart", controllers.Cart.Show)
	mux.HandleFunc("/cart/confirm", controllers.Cart.Confirm)

	// Printable bill for the state carried in the URL
	mux.HandleFunc("/cart/receipt.pdf", controllers.Cart.Receipt)

	// Optimized item photos
	mux.HandleFunc("/assets/items/", func(w http.ResponseWriter, r *http.Request) {
		// Check if this is the image endpoint
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.Asset.GetItemImage(w, r)
			return
		}
		// Otherwise, return 404
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Drive image loading is only wired when credentials are configured
	if controllers.ImageLoad != nil {
		mux.HandleFunc("/admin/assets/load", controllers.ImageLoad.LoadImages)
	}
}
