package color

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EncodePixel converts one RGB pixel to its stored (Y,I,Q) triplet:
// channels are normalized to [0,1], the method's matrix is applied,
// chroma is offset into non-negative range, then everything is scaled
// by 100, rounded half away from zero, and clamped to the stored
// domains (Y 0–100, I 0–119, Q 0–105).
func EncodePixel(r, g, b uint8, m Method) (y, i, q uint8) {
	c := &coefficientTable[m]
	fr := float64(r) / 255
	fg := float64(g) / 255
	fb := float64(b) / 255

	fy := c.y[0]*fr + c.y[1]*fg + c.y[2]*fb
	fi := c.i[0]*fr + c.i[1]*fg + c.i[2]*fb + iOffset
	fq := c.q[0]*fr + c.q[1]*fg + c.q[2]*fb + qOffset

	y = clampScaled(fy, MaxY)
	i = clampScaled(fi, MaxI)
	q = clampScaled(fq, MaxQ)
	return
}

// DecodePixel reconstructs an approximate RGB pixel from a stored
// (Y,I,Q) triplet. All precision loss happens on the encode side; the
// result stays within 6 levels per channel of the pixel that produced
// the triplet.
func DecodePixel(y, i, q uint8, m Method) (r, g, b uint8) {
	c := &coefficientTable[m]
	fy := float64(y) / 100
	fi := float64(i)/100 - iOffset
	fq := float64(q)/100 - qOffset

	r = channelByte(c.r[0]*fy + c.r[1]*fi + c.r[2]*fq)
	g = channelByte(c.g[0]*fy + c.g[1]*fi + c.g[2]*fq)
	b = channelByte(c.b[0]*fy + c.b[1]*fi + c.b[2]*fq)
	return
}

// clampScaled scales a raw channel value by 100, rounds half away
// from zero, and saturates to [0, max].
func clampScaled(v float64, max int) uint8 {
	scaled := math.Round(v * 100)
	if scaled < 0 {
		return 0
	}
	if scaled > float64(max) {
		return uint8(max)
	}
	return uint8(scaled)
}

// channelByte clamps a reconstructed channel to [0,1] and quantizes
// it back to an 8-bit value.
func channelByte(v float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(math.Round(v * 255))
}

// TransformPixels converts interleaved RGB pixels to stored YIQ
// triplets in row-major order.
// src must be width*height*3 bytes; the result has the same length.
func TransformPixels(src []byte, width, height int, m Method) ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid colorimetry method: %d", m)
	}
	expected := width * height * 3
	if len(src) != expected {
		return nil, fmt.Errorf("expected %d RGB bytes, got %d", expected, len(src))
	}

	dst := make([]byte, expected)
	forEachRowBand(width, height, func(off int) {
		dst[off], dst[off+1], dst[off+2] = EncodePixel(src[off], src[off+1], src[off+2], m)
	})
	return dst, nil
}

// InverseTransformPixels converts stored YIQ triplets back to
// interleaved RGB pixels in row-major order.
// src must be width*height*3 bytes; the result has the same length.
func InverseTransformPixels(src []byte, width, height int, m Method) ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid colorimetry method: %d", m)
	}
	expected := width * height * 3
	if len(src) != expected {
		return nil, fmt.Errorf("expected %d YIQ bytes, got %d", expected, len(src))
	}

	dst := make([]byte, expected)
	forEachRowBand(width, height, func(off int) {
		dst[off], dst[off+1], dst[off+2] = DecodePixel(src[off], src[off+1], src[off+2], m)
	})
	return dst, nil
}

// forEachRowBand invokes fn for every pixel offset, partitioning the
// image into contiguous row bands, one per worker. Each worker touches
// a disjoint index range, so the output needs no synchronization.
func forEachRowBand(width, height int, fn func(off int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		for off := 0; off < width*height*3; off += 3 {
			fn(off)
		}
		return
	}

	rowsPerBand := (height + workers - 1) / workers
	var g errgroup.Group
	for y0 := 0; y0 < height; y0 += rowsPerBand {
		y1 := y0 + rowsPerBand
		if y1 > height {
			y1 = height
		}
		start, end := y0*width*3, y1*width*3
		g.Go(func() error {
			for off := start; off < end; off += 3 {
				fn(off)
			}
			return nil
		})
	}
	g.Wait()
}
