package controller

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"kenneths-desserts/catalog"
	"kenneths-desserts/service"
)

// AssetController serves optimized item photos from the local assets directory
type AssetController struct {
	catalog   *catalog.Catalog
	assetsDir string
}

// NewAssetController creates a new AssetController
func NewAssetController(cat *catalog.Catalog, assetsDir string) *AssetController {
	return &AssetController{
		catalog:   cat,
		assetsDir: assetsDir,
	}
}

// GetItemImage handles GET /assets/items/:id/image?size=thumb|medium
// Serves the item's photo optimized for the requested size, with a disk cache
func (c *AssetController) GetItemImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /assets/items/{id}/image
	path := strings.TrimPrefix(r.URL.Path, "/assets/items/")
	itemID := strings.TrimSuffix(path, "/image")
	if itemID == "" || itemID == path {
		http.Error(w, "item id parameter is required", http.StatusBadRequest)
		return
	}

	item, ok := c.catalog.Get(itemID)
	if !ok {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "thumb"
	}

	// Serve from cache when possible
	cachePath := service.GetCachePath(itemID, size)
	if service.CacheExists(cachePath) {
		data, err := service.ReadFromCache(cachePath)
		if err == nil {
			serveJPEG(w, data)
			return
		}
		log.Printf("⚠️  GetItemImage: Cache read failed for %s, re-optimizing: %v", cachePath, err)
	}

	sourceData, err := c.readSourceImage(item.ImageRef, itemID)
	if err != nil {
		log.Printf("❌ GetItemImage: No source image for item %s: %v", itemID, err)
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}

	optimized, err := service.OptimizeImage(sourceData, size)
	if err != nil {
		log.Printf("❌ GetItemImage: Failed to optimize image for item %s: %v", itemID, err)
		http.Error(w, "Failed to process image", http.StatusInternalServerError)
		return
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		// Serving still succeeds without the cache
		log.Printf("⚠️  GetItemImage: Failed to cache image for item %s: %v", itemID, err)
	}

	serveJPEG(w, optimized)
}

// readSourceImage looks for the item photo under the assets directory, first
// by the catalog's image reference, then by the item id
func (c *AssetController) readSourceImage(imageRef, itemID string) ([]byte, error) {
	candidates := []string{}
	if imageRef != "" {
		candidates = append(candidates, filepath.Join(c.assetsDir, imageRef))
	}
	candidates = append(candidates, filepath.Join(c.assetsDir, itemID+".jpg"))

	var lastErr error
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func serveJPEG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
