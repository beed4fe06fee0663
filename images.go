package clubsite

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 85
	maxUploadSize = 10 << 20 // 10MB
)

// prepareUpload turns an uploaded file into the bytes and filename to store.
// Decodable images are resized down to maxImageWidth and re-encoded as JPEG;
// anything the image package cannot decode is stored as-is. The returned
// filename is "<ms>-<sanitized original>" so repeated uploads never collide.
func prepareUpload(originalName string, data []byte) (string, []byte) {
	stamp := time.Now().UnixMilli()
	processed, err := processImage(data)
	if err != nil {
		return fmt.Sprintf("%d-%s", stamp, safeFileName(originalName)), data
	}
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(originalName, ext)
	return fmt.Sprintf("%d-%s.jpg", stamp, safeFileName(base)), processed
}

// processImage decodes an image, resizes it to maxImageWidth if wider, and
// re-encodes it as JPEG.
func processImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
