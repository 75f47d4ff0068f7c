package imgur

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	// Registered raster formats accepted by normalizeImage.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/nfnt/resize"
)

// normalizeImage decodes a raster image from r, optionally downscales it so
// neither side exceeds maxDim, and re-encodes it as PNG. The output is
// deterministic: the same input bytes always produce the same PNG bytes.
func normalizeImage(r io.Reader, maxDim int) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if maxDim > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
			img = resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image as png: %w", err)
	}
	return buf.Bytes(), nil
}
