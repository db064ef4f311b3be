// Package imaging normalizes product photos for the POS grid and the
// product pages.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// TileSize is the edge length of a stored product photo. Photos are square
// so the product grid stays aligned.
const TileSize = 512

// MaxUploadBytes caps the accepted upload size.
const MaxUploadBytes = 8 << 20

// JPEGQuality is the compression quality for stored photos.
const JPEGQuality = 85

// ErrTooLarge is returned for uploads above MaxUploadBytes.
var ErrTooLarge = errors.New("image exceeds upload limit")

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Photo is an encoded product photo ready for storage.
type Photo struct {
	Data []byte
	MIME string
}

// ProductPhoto reads an uploaded image, checks its real format, crops it to
// the centered square and scales it down to TileSize. The result is always
// JPEG.
func ProductPhoto(r io.Reader) (*Photo, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	// Client headers are not trusted.
	if detected := http.DetectContentType(data); !allowedMIME[detected] {
		return nil, fmt.Errorf("unsupported image format: %s", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	tile := squareTile(img, TileSize)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, tile, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return &Photo{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

// squareTile crops img to its centered square and scales it to at most
// size pixels per edge. Smaller images keep their resolution.
func squareTile(img image.Image, size int) image.Image {
	b := img.Bounds()
	edge := min(b.Dx(), b.Dy())
	crop := image.Rect(0, 0, edge, edge).Add(image.Pt(
		b.Min.X+(b.Dx()-edge)/2,
		b.Min.Y+(b.Dy()-edge)/2,
	))

	out := min(edge, size)
	dst := image.NewRGBA(image.Rect(0, 0, out, out))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)
	return dst
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
