package controller

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"kenneths-desserts/catalog"
)

// chdir mirrors t.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change working directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}

func writeSourceImage(t *testing.T, assetsDir, name string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 600, 400))
	for x := 0; x < 600; x += 20 {
		for y := 0; y < 400; y++ {
			img.Set(x, y, color.RGBA{R: 180, G: 90, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode source image: %v", err)
	}
	if err := os.WriteFile(filepath.Join(assetsDir, name), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write source image: %v", err)
	}
}

func TestGetItemImage(t *testing.T) {
	// The image cache path is relative to the working directory
	chdir(t, t.TempDir())

	assetsDir := t.TempDir()
	writeSourceImage(t, assetsDir, "cheese.jpg")
	c := NewAssetController(catalog.Default(), assetsDir)

	rec := httptest.NewRecorder()
	c.GetItemImage(rec, httptest.NewRequest(http.MethodGet, "/assets/items/cheesecake/image?size=thumb", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/jpeg" {
		t.Fatalf("content type: got %q", got)
	}
	img, err := jpeg.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a JPEG: %v", err)
	}
	if img.Bounds().Dx() != 300 {
		t.Fatalf("thumb width: got %d, want 300", img.Bounds().Dx())
	}

	// Second request is served from the cache
	rec = httptest.NewRecorder()
	c.GetItemImage(rec, httptest.NewRequest(http.MethodGet, "/assets/items/cheesecake/image?size=thumb", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("cached status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestGetItemImageFallsBackToItemID(t *testing.T) {
	chdir(t, t.TempDir())

	assetsDir := t.TempDir()
	// No cheese.jpg; provide the id-named fallback instead
	writeSourceImage(t, assetsDir, "cheesecake.jpg")
	c := NewAssetController(catalog.Default(), assetsDir)

	rec := httptest.NewRecorder()
	c.GetItemImage(rec, httptest.NewRequest(http.MethodGet, "/assets/items/cheesecake/image", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestGetItemImageUnknownItem(t *testing.T) {
	c := NewAssetController(catalog.Default(), t.TempDir())

	rec := httptest.NewRecorder()
	c.GetItemImage(rec, httptest.NewRequest(http.MethodGet, "/assets/items/unicorncake/image", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetItemImageMissingSource(t *testing.T) {
	chdir(t, t.TempDir())
	c := NewAssetController(catalog.Default(), t.TempDir())

	rec := httptest.NewRecorder()
	c.GetItemImage(rec, httptest.NewRequest(http.MethodGet, "/assets/items/cheesecake/image", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetItemImageBadPath(t *testing.T) {
	c := NewAssetController(catalog.Default(), t.TempDir())

	rec := httptest.NewRecorder()
	c.GetItemImage(rec, httptest.NewRequest(http.MethodGet, "/assets/items//image", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
