package app

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"kenneths-desserts/app/controller"
	"kenneths-desserts/app/router"
	"kenneths-desserts/catalog"
	"kenneths-desserts/pricing"
	"kenneths-desserts/repository"
	"kenneths-desserts/service"
)

// Initialize wires the application and returns the HTTP handler
func Initialize(baseURL string) (*http.ServeMux, error) {
	// Catalog: fixed external dataset, optionally overridden by CATALOG_PATH
	var cat *catalog.Catalog
	if configPath := os.Getenv("CATALOG_PATH"); configPath != "" {
		loaded, err := catalog.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		cat = loaded
		log.Printf("✅ Catalog: Loaded %d items from %s", cat.Len(), configPath)
	} else {
		cat = catalog.Default()
		log.Printf("✅ Catalog: Using built-in catalog with %d items", cat.Len())
	}

	if err := service.EnsureCacheDir(); err != nil {
		return nil, err
	}

	assetsDir := os.Getenv("ASSETS_DIR")
	if assetsDir == "" {
		assetsDir = "assets/items"
	}

	templatesDir := os.Getenv("TEMPLATES_DIR")
	if templatesDir == "" {
		templatesDir = "templates"
	}

	// Per-session order state lives in memory only; there is no server-side
	// order persistence
	stateRepo := repository.NewMemoryStateRepository()
	engine := pricing.NewEngine(cat)
	receiptService := service.NewReceiptService(baseURL)

	// Drive image loading is optional: wired only when credentials are set
	var imageLoadController *controller.ImageLoadController
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		driveService, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return nil, err
		}
		downloadService := service.NewDownloadService(driveService, cat, assetsDir)
		imageLoadController = controller.NewImageLoadController(downloadService)
		log.Printf("✅ Drive image loading enabled")
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, Drive image loading disabled")
	}

	controllers := &router.Controllers{
		Menu:      controller.NewMenuController(cat, stateRepo, engine, templatesDir),
		Cart:      controller.NewCartController(cat, stateRepo, engine, receiptService, templatesDir),
		Asset:     controller.NewAssetController(cat, assetsDir),
		ImageLoad: imageLoadController,
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)

	return mux, nil
}
