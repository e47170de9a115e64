package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"kenneths-desserts/catalog"
)

// DownloadService downloads item photos from Google Drive, optimizes them and
// saves them into the local assets directory the asset controller serves from.
// Implements DownloadServiceInterface
type DownloadService struct {
	driveService DriveServiceInterface
	catalog      *catalog.Catalog
	assetsDir    string
}

// NewDownloadService creates a new DownloadService instance
func NewDownloadService(driveService DriveServiceInterface, cat *catalog.Catalog, assetsDir string) *DownloadService {
	return &DownloadService{
		driveService: driveService,
		catalog:      cat,
		assetsDir:    assetsDir,
	}
}

// Ensure DownloadService implements DownloadServiceInterface
var _ DownloadServiceInterface = (*DownloadService)(nil)

// DownloadAllImages downloads all item photos from a Google Drive folder,
// optimizes them, and saves them under the assets directory as <itemID>.jpg.
// Files whose names don't map to a catalog item are skipped.
// Returns: total images found, downloaded count, skipped count, per-file
// errors, and a fatal error if the listing itself failed.
func (ds *DownloadService) DownloadAllImages(folderID string) (int, int, int, []string, error) {
	log.Printf("📥 Starting download process for folder: %s", folderID)
	log.Printf("📁 Assets directory: %s", ds.assetsDir)

	if err := os.MkdirAll(ds.assetsDir, 0755); err != nil {
		return 0, 0, 0, nil, fmt.Errorf("failed to create assets directory: %w", err)
	}

	images, err := ds.driveService.ListItemImages(folderID)
	if err != nil {
		return 0, 0, 0, nil, fmt.Errorf("failed to list item images from Drive: %w", err)
	}

	log.Printf("📦 Found %d images to download", len(images))

	totalImages := len(images)
	downloaded := 0
	skipped := 0
	var errors []string

	// Track seen item ids to skip duplicate files in the same folder
	seenItems := make(map[string]bool)

	for _, img := range images {
		if !ds.catalog.Has(img.ItemID) {
			log.Printf("⏭️  Skipping %s (no catalog item %q)", img.FileName, img.ItemID)
			skipped++
			continue
		}

		// OptimizeImage always emits JPEG
		fileName := img.ItemID + ".jpg"
		filePath := filepath.Join(ds.assetsDir, fileName)

		// Check if file already exists on disk (from previous downloads)
		if _, err := os.Stat(filePath); err == nil {
			log.Printf("⏭️  Skipping %s (already exists on disk)", fileName)
			skipped++
			continue
		}

		if seenItems[img.ItemID] {
			log.Printf("⏭️  Skipping %s (duplicate item in this folder)", img.FileName)
			skipped++
			continue
		}
		seenItems[img.ItemID] = true

		imageData, err := ds.driveService.DownloadImage(img.FileID)
		if err != nil {
			errorMsg := fmt.Sprintf("Failed to download image %s (%s): %v", img.FileName, img.FileID, err)
			log.Printf("❌ %s", errorMsg)
			errors = append(errors, errorMsg)
			continue
		}

		optimizedData, err := OptimizeImage(imageData, "medium")
		if err != nil {
			errorMsg := fmt.Sprintf("Failed to optimize image %s (%s): %v", img.FileName, img.FileID, err)
			log.Printf("❌ %s", errorMsg)
			errors = append(errors, errorMsg)
			continue
		}

		if err := os.WriteFile(filePath, optimizedData, 0644); err != nil {
			errorMsg := fmt.Sprintf("Failed to save image %s: %v", fileName, err)
			log.Printf("❌ %s", errorMsg)
			errors = append(errors, errorMsg)
			continue
		}

		log.Printf("✓ Successfully downloaded and saved: %s", filePath)
		downloaded++
	}

	log.Printf("🎉 Download completed: %d downloaded, %d skipped, %d failed out of %d total images", downloaded, skipped, len(errors), totalImages)
	return totalImages, downloaded, skipped, errors, nil
}
