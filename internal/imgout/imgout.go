// Package imgout writes rendered frames to disk.
package imgout

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// Write encodes img at path in the given format ("webp" or "png"),
// creating parent directories as needed.
func Write(path string, img *image.NRGBA, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imgout: mkdir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgout: create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("imgout: encode %s: %w", path, err)
		}
	case "png":
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("imgout: encode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("imgout: unknown format %q", format)
	}
	return nil
}

// Ext returns the file extension for a format.
func Ext(format string) string {
	if format == "png" {
		return ".png"
	}
	return ".webp"
}
