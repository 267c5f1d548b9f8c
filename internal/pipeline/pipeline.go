package pipeline

import (
	"bytes"
	"fmt"

	"github.com/davesmith10/RGBtoYIQ/internal/color"
	"github.com/davesmith10/RGBtoYIQ/internal/imaging"
	"github.com/davesmith10/RGBtoYIQ/internal/ir"
	"github.com/davesmith10/RGBtoYIQ/internal/yiq"
)

// Options controls the image→container direction.
type Options struct {
	Method color.Method // colorimetry both transforms will use
}

// EncodeResult holds the output of an encode run.
type EncodeResult struct {
	Data      []byte // serialized YIQ container
	SrcWidth  int
	SrcHeight int
	SrcFormat string
}

// Encode executes the full image→YIQ pipeline: decode → color
// transform → container serialize. The container is fully built in
// memory before the caller sees a single byte.
func Encode(imageData []byte, opts Options) (*EncodeResult, error) {
	// 1. Decode the source raster to RGB
	decoded, err := imaging.Decode(imageData)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 2. Per-pixel RGB → YIQ, row-major
	data, err := color.TransformPixels(decoded.Pixels, decoded.Width, decoded.Height, opts.Method)
	if err != nil {
		return nil, fmt.Errorf("color transform: %w", err)
	}

	// 3. Serialize the container
	img := &ir.YIQImage{
		Method: opts.Method,
		Width:  decoded.Width,
		Height: decoded.Height,
		Data:   data,
	}
	var buf bytes.Buffer
	buf.Grow(yiq.HeaderSize + len(data))
	if err := yiq.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("container encode: %w", err)
	}

	return &EncodeResult{
		Data:      buf.Bytes(),
		SrcWidth:  decoded.Width,
		SrcHeight: decoded.Height,
		SrcFormat: decoded.Format,
	}, nil
}

// DecodeResult holds the output of a decode run.
type DecodeResult struct {
	Data   []byte // encoded output image
	Width  int
	Height int
	Method color.Method
}

// Decode executes the full YIQ→image pipeline: container parse →
// inverse color transform → image encode in the requested format.
func Decode(containerData []byte, format string) (*DecodeResult, error) {
	// 1. Parse and validate the container
	img, err := yiq.Decode(bytes.NewReader(containerData))
	if err != nil {
		return nil, fmt.Errorf("container decode: %w", err)
	}

	// 2. Per-pixel YIQ → RGB, row-major
	rgb, err := color.InverseTransformPixels(img.Data, img.Width, img.Height, img.Method)
	if err != nil {
		return nil, fmt.Errorf("color transform: %w", err)
	}

	// 3. Encode the displayable image
	out, err := imaging.Encode(&imaging.Decoded{
		Width:  img.Width,
		Height: img.Height,
		Pixels: rgb,
	}, format)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &DecodeResult{
		Data:   out,
		Width:  img.Width,
		Height: img.Height,
		Method: img.Method,
	}, nil
}
