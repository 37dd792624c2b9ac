package pixel

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Convertible is implemented by pixel types that can be read into the
// canonical representation.
type Convertible interface {
	ToCanonical() RGBA128F
}

// Factory is implemented by pixel types that can be built from the
// canonical representation. The receiver is ignored, so the zero
// value of T serves as the factory for T.
type Factory[T any] interface {
	FromCanonical(RGBA128F) T
}

// Convert converts a single pixel by way of the canonical
// representation.
func Convert[Dst Factory[Dst], Src Convertible](src Src) Dst {
	var dst Dst
	return dst.FromCanonical(src.ToCanonical())
}

// layout is the set of operations the bulk converters need from a
// concrete pixel type.
type layout[T any] interface {
	Convertible
	Factory[T]
	Format() Format

	// load decodes a pixel from the start of b.
	load(b []byte) T

	// store encodes the receiver at the start of b.
	store(b []byte)
}

// RGBA128F is the canonical pixel type. Every concrete layout converts
// to and from it. Color channels are straight, not premultiplied, and
// are in [0, 1] for every layout except the float ones, which are
// copied unscaled.
type RGBA128F struct {
	R, G, B, A float32
}

func (RGBA128F) Format() Format { return FormatRGBA128F }

func (c RGBA128F) ToCanonical() RGBA128F { return c }

func (RGBA128F) FromCanonical(c RGBA128F) RGBA128F { return c }

func (RGBA128F) load(b []byte) RGBA128F {
	_ = b[15]
	return RGBA128F{R: getF32(b), G: getF32(b[4:]), B: getF32(b[8:]), A: getF32(b[12:])}
}

func (c RGBA128F) store(b []byte) {
	_ = b[15]
	putF32(b, c.R)
	putF32(b[4:], c.G)
	putF32(b[8:], c.B)
	putF32(b[12:], c.A)
}

func getF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Min(math32.Max(v, 0), 1)
}

// unorm8 quantizes v to a byte by truncation, so that
// unorm8(fromUnorm8(x)) == x for every byte x.
func unorm8(v float32) uint8 {
	return uint8(clamp01(v) * 255)
}

func fromUnorm8(v uint8) float32 {
	return float32(v) / 255
}

func unorm16(v float32) uint16 {
	return uint16(clamp01(v) * 65535)
}

func fromUnorm16(v uint16) float32 {
	return float32(v) / 65535
}

// expandBits widens a channel of the given bit count to 8 bits by
// replicating its high bits into the vacated low bits. For 5 bits this
// is p*8 + p>>2, for 6 bits p*4 + p>>4 and for 4 bits p*16 + p. Zero
// maps to zero and the maximum maps to 255 exactly; packing the result
// back with a right shift of 8-bits recovers p.
func expandBits(p uint8, bits uint) uint8 {
	if bits == 1 {
		return p * 255
	}
	shift := 8 - bits
	return p<<shift | p>>(bits-shift)
}

// BT.601 luma weights, scaled so that they sum to 1<<16.
const (
	lumaWeightR = 19562
	lumaWeightG = 38550
	lumaWeightB = 7424
)

// lumaFixed returns the BT.601 luma of r, g and b in the same depth as
// the inputs.
func lumaFixed[T constraints.Unsigned](r, g, b T) T {
	sum := lumaWeightR*uint64(r) + lumaWeightG*uint64(g) + lumaWeightB*uint64(b)
	return T(sum >> 16)
}

func lumaFloat(c RGBA128F) float32 {
	return 0.2989*c.R + 0.5870*c.G + 0.1140*c.B
}
