package yiq

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/davesmith10/RGBtoYIQ/internal/color"
	"github.com/davesmith10/RGBtoYIQ/internal/ir"
)

func testImage(t *testing.T, width, height int, m color.Method) *ir.YIQImage {
	t.Helper()
	data := make([]byte, width*height*3)
	for off := 0; off < len(data); off += 3 {
		data[off] = uint8(off % (color.MaxY + 1))
		data[off+1] = uint8(off % (color.MaxI + 1))
		data[off+2] = uint8(off % (color.MaxQ + 1))
	}
	return &ir.YIQImage{Method: m, Width: width, Height: height, Data: data}
}

func encodeToBytes(t *testing.T, img *ir.YIQImage) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return buf.Bytes()
}

func TestEncodeGoldenBytes(t *testing.T) {
	img := &ir.YIQImage{
		Method: color.SMPTEC,
		Width:  2,
		Height: 1,
		Data:   []byte{10, 60, 52, 100, 119, 105},
	}
	want := []byte{
		'Y', 'I', 'Q', // magic
		1,          // version
		1,          // method: SMPTE-C
		2, 0, 0, 0, // width, u32 LE
		1, 0, 0, 0, // height, u32 LE
		'D', 'A', 'T', 'A', // sentinel
		10, 60, 52, 100, 119, 105,
	}
	got := encodeToBytes(t, img)
	if !bytes.Equal(got, want) {
		t.Fatalf("serialized bytes\n got %v\nwant %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []struct {
		width, height int
		method        color.Method
	}{
		{1, 1, color.NTSC1953},
		{3, 2, color.SMPTEC},
		{16, 16, color.SMPTEC},
		{5, 1, color.NTSC1953},
	} {
		img := testImage(t, c.width, c.height, c.method)
		raw := encodeToBytes(t, img)

		decoded, err := Decode(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("%dx%d: Decode: %v", c.width, c.height, err)
		}
		if !reflect.DeepEqual(img, decoded) {
			t.Fatalf("%dx%d: round-trip mismatch: %+v vs %+v", c.width, c.height, img, decoded)
		}

		// Serializing the decoded image must reproduce the input bytes.
		again := encodeToBytes(t, decoded)
		if !bytes.Equal(raw, again) {
			t.Fatalf("%dx%d: re-encode is not byte-identical", c.width, c.height)
		}
	}
}

func TestZeroDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 7}, {7, 0}} {
		img := &ir.YIQImage{Method: color.SMPTEC, Width: dims[0], Height: dims[1], Data: []byte{}}
		raw := encodeToBytes(t, img)
		if len(raw) != HeaderSize {
			t.Fatalf("%dx%d: expected bare header, got %d bytes", dims[0], dims[1], len(raw))
		}
		decoded, err := Decode(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("%dx%d: Decode: %v", dims[0], dims[1], err)
		}
		if decoded.Width != dims[0] || decoded.Height != dims[1] || len(decoded.Data) != 0 {
			t.Fatalf("%dx%d: decoded %dx%d with %d data bytes",
				dims[0], dims[1], decoded.Width, decoded.Height, len(decoded.Data))
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	valid := encodeToBytes(t, testImage(t, 2, 2, color.NTSC1953))

	corrupt := func(off int, b byte) []byte {
		out := append([]byte(nil), valid...)
		out[off] = b
		return out
	}

	cases := []struct {
		name  string
		input []byte
		want  error
	}{
		{"empty", nil, ErrInvalidFormat},
		{"short header", valid[:HeaderSize-1], ErrInvalidFormat},
		{"bad magic", corrupt(0, 'X'), ErrInvalidFormat},
		{"bad version", corrupt(3, 2), ErrUnsupportedVersion},
		{"bad method", corrupt(4, 9), ErrInvalidMethod},
		{"bad sentinel", corrupt(13, 'd'), ErrInvalidFormat},
		{"truncated data", valid[:len(valid)-1], ErrTruncatedData},
		{"header only", valid[:HeaderSize], ErrTruncatedData},
	}
	for _, c := range cases {
		_, err := Decode(bytes.NewReader(c.input))
		if !errors.Is(err, c.want) {
			t.Errorf("[%s] got %v, want %v", c.name, err, c.want)
		}
	}
}

func TestTrailingBytesIgnored(t *testing.T) {
	img := testImage(t, 2, 2, color.SMPTEC)
	raw := append(encodeToBytes(t, img), '\n', '\n')

	decoded, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode with trailing newlines: %v", err)
	}
	if !reflect.DeepEqual(img, decoded) {
		t.Fatal("trailing bytes changed the decoded image")
	}
}

func TestEncodeValidation(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, &ir.YIQImage{Method: color.Method(5), Width: 1, Height: 1, Data: make([]byte, 3)})
	if !errors.Is(err, ErrInvalidMethod) {
		t.Errorf("invalid method: got %v", err)
	}
	err = Encode(&buf, &ir.YIQImage{Method: color.SMPTEC, Width: 2, Height: 2, Data: make([]byte, 3)})
	if err == nil {
		t.Error("expected error for data length mismatch")
	}
	err = Encode(&buf, &ir.YIQImage{Method: color.SMPTEC, Width: -1, Height: 1, Data: nil})
	if err == nil {
		t.Error("expected error for negative width")
	}
}

func TestGetInfo(t *testing.T) {
	raw := encodeToBytes(t, testImage(t, 4, 3, color.NTSC1953))

	info, err := GetInfo(raw)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Version != Version || info.Method != color.NTSC1953 ||
		info.Width != 4 || info.Height != 3 {
		t.Fatalf("unexpected info: %+v", info)
	}
	if !info.Complete || info.TrailBytes != 0 {
		t.Errorf("expected complete data with no trailer: %+v", info)
	}

	info, err = GetInfo(raw[:len(raw)-5])
	if err != nil {
		t.Fatalf("GetInfo on truncated data: %v", err)
	}
	if info.Complete {
		t.Error("truncated container reported as complete")
	}

	info, err = GetInfo(append(append([]byte(nil), raw...), '\n'))
	if err != nil {
		t.Fatalf("GetInfo with trailer: %v", err)
	}
	if !info.Complete || info.TrailBytes != 1 {
		t.Errorf("expected 1 trailing byte: %+v", info)
	}

	if _, err := GetInfo([]byte("PNG stuff")); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("non-container data: got %v", err)
	}
}
