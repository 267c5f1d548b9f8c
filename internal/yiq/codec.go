package yiq

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/davesmith10/RGBtoYIQ/internal/color"
	"github.com/davesmith10/RGBtoYIQ/internal/ir"
)

// Container layout, multi-byte fields little-endian:
//
//	offset 0   3 bytes  magic "YIQ"
//	offset 3   1 byte   version (1)
//	offset 4   1 byte   method (0 = NTSC-1953, 1 = SMPTE-C)
//	offset 5   4 bytes  width, u32
//	offset 9   4 bytes  height, u32
//	offset 13  4 bytes  sentinel "DATA"
//	offset 17  w*h*3    (Y,I,Q) byte triplets, row-major
const (
	magic    = "YIQ"
	sentinel = "DATA"

	// Version is the only container version this codec reads or writes.
	Version = 1

	// HeaderSize is the fixed byte length before the pixel data.
	HeaderSize = 17
)

var (
	ErrInvalidFormat      = errors.New("not a YIQ container")
	ErrUnsupportedVersion = errors.New("unsupported YIQ version")
	ErrInvalidMethod      = errors.New("invalid colorimetry method byte")
	ErrTruncatedData      = errors.New("truncated pixel data")
)

// Encode serializes img to w: fixed header first, then the pixel
// triplets. The only failure modes beyond sink errors are dimension
// and length mismatches in img itself.
func Encode(w io.Writer, img *ir.YIQImage) error {
	if !img.Method.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMethod, img.Method)
	}
	if img.Width < 0 || img.Height < 0 ||
		uint64(img.Width) > math.MaxUint32 || uint64(img.Height) > math.MaxUint32 {
		return fmt.Errorf("dimensions %dx%d do not fit the container", img.Width, img.Height)
	}
	if expected := img.Width * img.Height * 3; len(img.Data) != expected {
		return fmt.Errorf("expected %d data bytes for %dx%d, got %d",
			expected, img.Width, img.Height, len(img.Data))
	}

	var header [HeaderSize]byte
	copy(header[0:3], magic)
	header[3] = Version
	header[4] = byte(img.Method)
	binary.LittleEndian.PutUint32(header[5:9], uint32(img.Width))
	binary.LittleEndian.PutUint32(header[9:13], uint32(img.Height))
	copy(header[13:17], sentinel)

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := w.Write(img.Data); err != nil {
		return fmt.Errorf("writing pixel data: %w", err)
	}
	return nil
}

// Decode parses a YIQ container from r, validating every header field
// before touching the pixel data. Bytes past the expected data length
// are left unread, so trailing pipe artifacts do not fail a decode.
func Decode(r io.Reader) (*ir.YIQImage, error) {
	var header [HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: header shorter than %d bytes", ErrInvalidFormat, HeaderSize)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	if string(header[0:3]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidFormat, header[0:3])
	}
	if header[3] != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header[3])
	}
	method := color.Method(header[4])
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMethod, header[4])
	}
	width := binary.LittleEndian.Uint32(header[5:9])
	height := binary.LittleEndian.Uint32(header[9:13])
	if string(header[13:17]) != sentinel {
		return nil, fmt.Errorf("%w: bad sentinel %q", ErrInvalidFormat, header[13:17])
	}

	size := uint64(width) * uint64(height) * 3
	if size > math.MaxInt32 {
		return nil, fmt.Errorf("%dx%d pixel data too large to materialize", width, height)
	}

	data := make([]byte, size)
	if n, err := io.ReadFull(r, data); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: got %d of %d pixel bytes", ErrTruncatedData, n, size)
		}
		return nil, fmt.Errorf("reading pixel data: %w", err)
	}

	return &ir.YIQImage{
		Method: method,
		Width:  int(width),
		Height: int(height),
		Data:   data,
	}, nil
}
