package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"
)

// Scale resizes img by factor using CatmullRom. A factor of 1 returns img unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*factor+0.5))
	h := max(1, int(float64(b.Dy())*factor+0.5))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// Encode writes img as PNG after scaling.
func Encode(w io.Writer, img image.Image, factor float64) error {
	return png.Encode(w, Scale(img, factor))
}

// FileName is the capture name for time t.
func FileName(t time.Time) string {
	return fmt.Sprintf("frame-%s.png", t.Format("20060102-150405.000"))
}

// Save writes img under dir, creating it if needed, and returns the file path.
func Save(dir string, img image.Image, factor float64, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}
	path := filepath.Join(dir, FileName(t))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	if err := Encode(f, img, factor); err != nil {
		f.Close()
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close screenshot: %w", err)
	}
	return path, nil
}
