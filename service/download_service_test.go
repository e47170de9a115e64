package service

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"kenneths-desserts/catalog"
	"kenneths-desserts/models"
)

// stubDriveService serves canned listings and image bytes
type stubDriveService struct {
	images    []models.DriveImage
	data      map[string][]byte
	listErr   error
	downloads []string
}

func (s *stubDriveService) ListItemImages(folderID string) ([]models.DriveImage, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.images, nil
}

func (s *stubDriveService) DownloadImage(fileID string) ([]byte, error) {
	s.downloads = append(s.downloads, fileID)
	data, ok := s.data[fileID]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", fileID)
	}
	return data, nil
}

func TestDownloadAllImages(t *testing.T) {
	assetsDir := t.TempDir()
	validPNG := pngFixture(t, 100, 100)

	drive := &stubDriveService{
		images: []models.DriveImage{
			{FileID: "f1", FileName: "cheesecake.jpg", ItemID: "cheesecake"},
			{FileID: "f2", FileName: "Brownie.PNG", ItemID: "brownie"},
			{FileID: "f3", FileName: "unicorncake.jpg", ItemID: "unicorncake"},
			{FileID: "f4", FileName: "cheesecake copy.jpg", ItemID: "cheesecake"},
			{FileID: "f5", FileName: "tiramisu.jpg", ItemID: "tiramisu"},
		},
		data: map[string][]byte{
			"f1": validPNG,
			"f2": validPNG,
			"f5": []byte("corrupt"),
		},
	}

	ds := NewDownloadService(drive, catalog.Default(), assetsDir)
	total, downloaded, skipped, errors, err := ds.DownloadAllImages("folder-1")
	if err != nil {
		t.Fatalf("DownloadAllImages failed: %v", err)
	}

	if total != 5 {
		t.Fatalf("total: got %d, want 5", total)
	}
	if downloaded != 2 {
		t.Fatalf("downloaded: got %d, want 2", downloaded)
	}
	// unicorncake (not in catalog) + duplicate cheesecake
	if skipped != 2 {
		t.Fatalf("skipped: got %d, want 2", skipped)
	}
	// tiramisu bytes do not decode
	if len(errors) != 1 {
		t.Fatalf("errors: got %v, want exactly one", errors)
	}

	for _, name := range []string{"cheesecake.jpg", "brownie.jpg"} {
		if _, err := os.Stat(filepath.Join(assetsDir, name)); err != nil {
			t.Fatalf("expected saved asset %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(assetsDir, "unicorncake.jpg")); err == nil {
		t.Fatalf("non-catalog item must not be saved")
	}
}

func TestDownloadAllImagesSkipsExistingFiles(t *testing.T) {
	assetsDir := t.TempDir()
	existing := filepath.Join(assetsDir, "cheesecake.jpg")
	if err := os.WriteFile(existing, []byte("already here"), 0o644); err != nil {
		t.Fatalf("failed to seed existing file: %v", err)
	}

	drive := &stubDriveService{
		images: []models.DriveImage{
			{FileID: "f1", FileName: "cheesecake.jpg", ItemID: "cheesecake"},
		},
		data: map[string][]byte{"f1": pngFixture(t, 100, 100)},
	}

	ds := NewDownloadService(drive, catalog.Default(), assetsDir)
	_, downloaded, skipped, _, err := ds.DownloadAllImages("folder-1")
	if err != nil {
		t.Fatalf("DownloadAllImages failed: %v", err)
	}
	if downloaded != 0 || skipped != 1 {
		t.Fatalf("existing file must be skipped: downloaded=%d skipped=%d", downloaded, skipped)
	}
	if len(drive.downloads) != 0 {
		t.Fatalf("no download should happen for an existing file")
	}

	data, _ := os.ReadFile(existing)
	if string(data) != "already here" {
		t.Fatalf("existing file must not be overwritten")
	}
}

func TestDownloadAllImagesListFailure(t *testing.T) {
	drive := &stubDriveService{listErr: fmt.Errorf("drive unavailable")}

	ds := NewDownloadService(drive, catalog.Default(), t.TempDir())
	if _, _, _, _, err := ds.DownloadAllImages("folder-1"); err == nil {
		t.Fatalf("expected listing failure to surface")
	}
}
