// Package imageproc normalizes uploaded portraits: resize to a fixed width
// preserving aspect ratio, then encode as WebP.
package imageproc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	// TargetWidth is the display width used across the site.
	TargetWidth = 800
	// Quality is the lossy WebP quality factor.
	Quality = 80
)

// OptimizeWebP decodes any common image format, scales it to TargetWidth and
// returns the WebP bytes.
func OptimizeWebP(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := imaging.Resize(img, TargetWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
