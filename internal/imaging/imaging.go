package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/deepteams/webp"
	"github.com/kropptrevor/go-qoi/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	ErrUnreadableImage   = errors.New("unreadable image")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Decoded is a raster image flattened to interleaved 8-bit RGB
// (3 bytes per pixel, row-major order).
type Decoded struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 3
	Format string // source format name, e.g. "png"
}

// Decode parses any registered image format (PNG, JPEG, GIF, BMP,
// TIFF, WebP) and flattens it to RGB. Alpha is discarded.
func Decode(data []byte) (*Decoded, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, w*h*3)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pixels[i] = uint8(r >> 8)
			pixels[i+1] = uint8(g >> 8)
			pixels[i+2] = uint8(bl >> 8)
			i += 3
		}
	}

	return &Decoded{Width: w, Height: h, Pixels: pixels, Format: format}, nil
}

// jpegQuality matches the default the convert pipeline has always
// used for lossy output.
const jpegQuality = 85

// Encode renders an RGB grid to the named output format.
func Encode(d *Decoded, format string) ([]byte, error) {
	if expected := d.Width * d.Height * 3; len(d.Pixels) != expected {
		return nil, fmt.Errorf("expected %d RGB bytes for %dx%d, got %d",
			expected, d.Width, d.Height, len(d.Pixels))
	}

	img := toNRGBA(d)
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg", "jpg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "tiff", "tif":
		err = tiff.Encode(&buf, img, nil)
	case "webp":
		err = webp.Encode(&buf, img, webp.DefaultOptions())
	case "qoi":
		err = qoi.Encode(&buf, img, qoi.ChannelsRGBA)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Formats lists the supported output format names.
func Formats() []string {
	return []string{"bmp", "gif", "jpeg", "jpg", "png", "qoi", "tif", "tiff", "webp"}
}

func toNRGBA(d *Decoded) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))
	for i, j := 0, 0; i < len(d.Pixels); i, j = i+3, j+4 {
		img.Pix[j] = d.Pixels[i]
		img.Pix[j+1] = d.Pixels[i+1]
		img.Pix[j+2] = d.Pixels[i+2]
		img.Pix[j+3] = 0xFF
	}
	return img
}
