package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"kenneths-desserts/service"
)

// ImageLoadController handles loading item photos from Google Drive into the
// local assets directory
type ImageLoadController struct {
	downloadService service.DownloadServiceInterface
}

// NewImageLoadController creates a new ImageLoadController
func NewImageLoadController(downloadService service.DownloadServiceInterface) *ImageLoadController {
	return &ImageLoadController{
		downloadService: downloadService,
	}
}

// LoadImages handles POST /admin/assets/load
// Downloads all item photos from the configured Drive folder (or the folderId
// query parameter), optimizes them, and saves them locally
func (c *ImageLoadController) LoadImages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		folderID = os.Getenv("ASSET_DRIVE_FOLDER_ID")
	}
	if folderID == "" {
		http.Error(w, "folderId query parameter or ASSET_DRIVE_FOLDER_ID environment variable is required", http.StatusBadRequest)
		return
	}

	log.Printf("📥 LoadImages: Download request received for folder: %s", folderID)

	totalImages, downloaded, skipped, errors, err := c.downloadService.DownloadAllImages(folderID)
	if err != nil {
		log.Printf("❌ LoadImages: Download failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to download images: %v", err), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"status":       "success",
		"total_images": totalImages,
		"downloaded":   downloaded,
		"skipped":      skipped,
		"failed":       len(errors),
		"errors":       errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ LoadImages: Failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	log.Printf("✅ LoadImages: Download request completed: %d/%d images downloaded", downloaded, totalImages)
}
