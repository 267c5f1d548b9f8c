package yiq

import (
	"encoding/binary"
	"fmt"

	"github.com/davesmith10/RGBtoYIQ/internal/color"
)

// Info contains header metadata parsed from a YIQ container, without
// materializing the pixel data.
type Info struct {
	Version    uint8
	Method     color.Method
	Width      int
	Height     int
	DataBytes  int // pixel bytes present after the header
	Complete   bool
	TrailBytes int // bytes past the expected pixel data
}

// GetInfo reads header metadata from raw container bytes. It applies
// the same field validation as Decode.
func GetInfo(data []byte) (*Info, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: header shorter than %d bytes", ErrInvalidFormat, HeaderSize)
	}
	if string(data[0:3]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidFormat, data[0:3])
	}
	if data[3] != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[3])
	}
	method := color.Method(data[4])
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMethod, data[4])
	}
	if string(data[13:17]) != sentinel {
		return nil, fmt.Errorf("%w: bad sentinel %q", ErrInvalidFormat, data[13:17])
	}

	width := binary.LittleEndian.Uint32(data[5:9])
	height := binary.LittleEndian.Uint32(data[9:13])
	expected := uint64(width) * uint64(height) * 3
	present := len(data) - HeaderSize

	info := &Info{
		Version:   data[3],
		Method:    method,
		Width:     int(width),
		Height:    int(height),
		DataBytes: present,
		Complete:  uint64(present) >= expected,
	}
	if info.Complete {
		info.TrailBytes = present - int(expected)
	}
	return info, nil
}
