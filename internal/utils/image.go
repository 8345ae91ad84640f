package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/nfnt/resize"
)

var ErrInvalidImagePayload = errors.New("invalid image payload")

type DecodedImage struct {
	Image       image.Image
	Format      string // jpeg, png
	ContentType string
}

// IsBase64Image reports whether the string looks like a data-URI image, the
// format the admin app submits banner and logo uploads in.
func IsBase64Image(s string) bool {
	return strings.HasPrefix(s, "data:image/")
}

// DecodeBase64Image parses a data:image/...;base64 payload.
func DecodeBase64Image(payload string) (*DecodedImage, error) {
	if !IsBase64Image(payload) {
		return nil, ErrInvalidImagePayload
	}

	parts := strings.SplitN(payload, ",", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidImagePayload
	}

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidImagePayload
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImagePayload
	}

	contentType := "image/jpeg"
	if format == "png" {
		contentType = "image/png"
	}

	return &DecodedImage{
		Image:       img,
		Format:      format,
		ContentType: contentType,
	}, nil
}

// LimitImage scales the image down so it fits within maxWidth x maxHeight,
// preserving aspect ratio. Images already inside the bounds pass through.
func LimitImage(img image.Image, maxWidth, maxHeight uint) image.Image {
	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	widthRatio := float64(maxWidth) / float64(width)
	heightRatio := float64(maxHeight) / float64(height)

	if widthRatio < heightRatio {
		return resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}
	return resize.Resize(0, maxHeight, img, resize.Lanczos3)
}

// EncodeImage writes the image in the given format. Unknown formats fall back
// to JPEG, matching what the upload pipeline advertises.
func EncodeImage(img image.Image, format string, w io.Writer) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	default:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 85})
	}
}
