package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestOptimizeImageResizesToThumb(t *testing.T) {
	data := pngFixture(t, 1200, 600)

	out, err := OptimizeImage(data, "thumb")
	if err != nil {
		t.Fatalf("OptimizeImage failed: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 300 {
		t.Fatalf("thumb width: got %d, want 300", bounds.Dx())
	}
	if bounds.Dy() != 150 {
		t.Fatalf("thumb height: got %d, want 150", bounds.Dy())
	}
}

func TestOptimizeImageKeepsSmallImages(t *testing.T) {
	data := pngFixture(t, 200, 100)

	out, err := OptimizeImage(data, "medium")
	if err != nil {
		t.Fatalf("OptimizeImage failed: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Fatalf("small image must keep its dimensions, got %v", img.Bounds())
	}
}

func TestOptimizeImageRejectsGarbage(t *testing.T) {
	if _, err := OptimizeImage([]byte("not an image"), "thumb"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestGetCachePath(t *testing.T) {
	got := GetCachePath("cheesecake", "thumb")
	want := "cache/images/item_cheesecake_thumb.jpg"
	if got != want {
		t.Fatalf("GetCachePath: got %q, want %q", got, want)
	}
}
