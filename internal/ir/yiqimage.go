package ir

import "github.com/davesmith10/RGBtoYIQ/internal/color"

// YIQImage is the intermediate representation passed between the color
// transform and the container codec. Pixels are stored as interleaved
// Y,I,Q bytes (3 bytes per pixel, row-major order).
type YIQImage struct {
	Method color.Method
	Width  int
	Height int
	Data   []byte // len = Width * Height * 3
}
