package engine

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // phone screenshots arrive as webp
)

// jpegQuality is the re-encode quality for standardized images.
const jpegQuality = 90

// PrepareImage decodes an image in any common container format, applies
// the embedded EXIF orientation, and re-encodes to a clean JPEG.
func PrepareImage(data []byte) (ImagePart, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return ImagePart{}, fmt.Errorf("decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return ImagePart{}, fmt.Errorf("encode jpeg: %w", err)
	}
	return ImagePart{MediaType: "image/jpeg", Data: buf.Bytes()}, nil
}

// PrepareImages preprocesses a batch, skipping images that fail to decode
// rather than aborting. Order is preserved.
func PrepareImages(images [][]byte) []ImagePart {
	parts := make([]ImagePart, 0, len(images))
	for i, data := range images {
		if len(data) == 0 {
			continue
		}
		part, err := PrepareImage(data)
		if err != nil {
			slog.Warn("skipping undecodable image",
				slog.Int("index", i), slog.Any("err", err))
			continue
		}
		parts = append(parts, part)
	}
	return parts
}
