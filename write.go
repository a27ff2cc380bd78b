package scex

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// writePNG encodes img losslessly to path. The file is removed again when
// encoding fails partway so no truncated image is left behind.
func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("%w: %q: %v", ErrSaveImage, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrSaveImage, path, err)
	}

	return nil
}
