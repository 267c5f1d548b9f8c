package color

import "fmt"

// Method selects the colorimetry standard used by both transform
// directions. The numeric values are the on-wire method byte of the
// .yiq container.
type Method uint8

const (
	NTSC1953 Method = 0 // original 1953 FCC primaries
	SMPTEC   Method = 1 // SMPTE-C (1987 revision), the default
)

// ParseMethod converts a CLI method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "ntsc", "ntsc1953":
		return NTSC1953, nil
	case "smpte", "smpte-c", "smptec":
		return SMPTEC, nil
	default:
		return 0, fmt.Errorf("unknown colorimetry method: %q", s)
	}
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	return m == NTSC1953 || m == SMPTEC
}

func (m Method) String() string {
	switch m {
	case NTSC1953:
		return "NTSC-1953"
	case SMPTEC:
		return "SMPTE-C"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// Chroma offsets added to raw I and Q before scaling, shifting both
// into non-negative range for byte storage.
const (
	iOffset = 0.5957
	qOffset = 0.5226
)

// Upper bounds of the stored channel domains after offsetting, ×100
// scaling, and rounding. Lower bound is 0 for all three.
const (
	MaxY = 100
	MaxI = 119
	MaxQ = 105
)

// coefficients holds one method's forward RGB→YIQ matrix rows and the
// precomputed inverse rows, so decoding stays three dot products.
type coefficients struct {
	y, i, q [3]float64 // forward rows, applied to (R,G,B) in [0,1]
	r, g, b [3]float64 // inverse rows, applied to raw (y,i,q)
}

// Forward matrices from the FCC NTSC-1953 and SMPTE-C standards
// (weights for Y sum to 1 in both). Inverse rows are the 3x3 matrix
// inverses to six decimal places.
var coefficientTable = [2]coefficients{
	NTSC1953: {
		y: [3]float64{0.30, 0.59, 0.11},
		i: [3]float64{0.599, -0.2773, -0.3217},
		q: [3]float64{0.213, -0.5251, 0.3121},
		r: [3]float64{1.000000, 0.946882, 0.623557},
		g: [3]float64{1.000000, -0.274788, -0.635691},
		b: [3]float64{1.000000, -1.108545, 1.709007},
	},
	SMPTEC: {
		y: [3]float64{0.2124, 0.7011, 0.0866},
		i: [3]float64{0.5959, -0.2746, -0.3213},
		q: [3]float64{0.2115, -0.5227, 0.3112},
		r: [3]float64{0.999900, 1.039553, 0.795042},
		g: [3]float64{0.999900, -0.188549, -0.472918},
		b: [3]float64{0.999900, -1.023201, 1.878709},
	},
}
