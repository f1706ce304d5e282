package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFlipRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows: %v", err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top row should be blue, got r=%d b=%d", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("bottom row should be red, got r=%d b=%d", r, b)
	}
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	if _, err := FlipRows(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := FlipRows(nil, 0, 0); err == nil {
		t.Error("expected invalid size error")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "cubik")
	sc.now = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 535e6, time.UTC) }

	name, err := sc.CaptureFromPixels(make([]byte, 4*3*2), 3, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if want := filepath.Join(dir, "cubik_2026-03-14_15-09-26.535.png"); name != want {
		t.Errorf("filename = %s, want %s", name, want)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 3 || cfg.Height != 2 {
		t.Errorf("decoded %dx%d, want 3x2", cfg.Width, cfg.Height)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("expected .png suffix, got %s", name)
	}
}
