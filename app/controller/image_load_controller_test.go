package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// stubDownloadService returns canned download counters
type stubDownloadService struct {
	gotFolderID string
	total       int
	downloaded  int
	skipped     int
	errors      []string
	err         error
}

func (s *stubDownloadService) DownloadAllImages(folderID string) (int, int, int, []string, error) {
	s.gotFolderID = folderID
	return s.total, s.downloaded, s.skipped, s.errors, s.err
}

func TestLoadImages(t *testing.T) {
	stub := &stubDownloadService{total: 5, downloaded: 3, skipped: 1, errors: []string{"boom"}}
	c := NewImageLoadController(stub)

	rec := httptest.NewRecorder()
	c.LoadImages(rec, httptest.NewRequest(http.MethodPost, "/admin/assets/load?folderId=folder-1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if stub.gotFolderID != "folder-1" {
		t.Fatalf("folder id: got %q, want folder-1", stub.gotFolderID)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["status"] != "success" {
		t.Fatalf("status field: got %v", resp["status"])
	}
	if resp["downloaded"].(float64) != 3 || resp["failed"].(float64) != 1 {
		t.Fatalf("counters mismatch: %v", resp)
	}
}

func TestLoadImagesRequiresFolderID(t *testing.T) {
	t.Setenv("ASSET_DRIVE_FOLDER_ID", "")
	c := NewImageLoadController(&stubDownloadService{})

	rec := httptest.NewRecorder()
	c.LoadImages(rec, httptest.NewRequest(http.MethodPost, "/admin/assets/load", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestLoadImagesMethodNotAllowed(t *testing.T) {
	c := NewImageLoadController(&stubDownloadService{})

	rec := httptest.NewRecorder()
	c.LoadImages(rec, httptest.NewRequest(http.MethodGet, "/admin/assets/load", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
