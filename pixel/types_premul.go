package pixel

// The 8-bit premultiplied layouts go through straight 8-bit values on
// their way to and from the canonical type. Converting between any two
// byte layouts therefore gives the same result whether it is done
// through RGBA128F or with integer arithmetic.

// RGBP32 is 8-bit premultiplied red, green, blue and alpha.
type RGBP32 struct {
	PreR, PreG, PreB, A uint8
}

// NewRGBP32 premultiplies straight color bytes.
func NewRGBP32(r, g, b, a uint8) RGBP32 {
	return RGBP32{PreR: PremulByte(r, a), PreG: PremulByte(g, a), PreB: PremulByte(b, a), A: a}
}

func (RGBP32) Format() Format { return FormatRGBP32 }

func (p RGBP32) ToCanonical() RGBA128F {
	return unpremulCanonical(p.PreR, p.PreG, p.PreB, p.A)
}

func (RGBP32) FromCanonical(c RGBA128F) RGBP32 {
	return NewRGBP32(unorm8(c.R), unorm8(c.G), unorm8(c.B), unorm8(c.A))
}

func (RGBP32) load(b []byte) RGBP32 {
	_ = b[3]
	return RGBP32{PreR: b[0], PreG: b[1], PreB: b[2], A: b[3]}
}

func (p RGBP32) store(b []byte) {
	_ = b[3]
	b[0], b[1], b[2], b[3] = p.PreR, p.PreG, p.PreB, p.A
}

// BGRP32 is 8-bit premultiplied blue, green, red and alpha.
type BGRP32 struct {
	PreB, PreG, PreR, A uint8
}

// NewBGRP32 premultiplies straight color bytes.
func NewBGRP32(r, g, b, a uint8) BGRP32 {
	return BGRP32{PreR: PremulByte(r, a), PreG: PremulByte(g, a), PreB: PremulByte(b, a), A: a}
}

func (BGRP32) Format() Format { return FormatBGRP32 }

func (p BGRP32) ToCanonical() RGBA128F {
	return unpremulCanonical(p.PreR, p.PreG, p.PreB, p.A)
}

func (BGRP32) FromCanonical(c RGBA128F) BGRP32 {
	return NewBGRP32(unorm8(c.R), unorm8(c.G), unorm8(c.B), unorm8(c.A))
}

func (BGRP32) load(b []byte) BGRP32 {
	_ = b[3]
	return BGRP32{PreB: b[0], PreG: b[1], PreR: b[2], A: b[3]}
}

func (p BGRP32) store(b []byte) {
	_ = b[3]
	b[0], b[1], b[2], b[3] = p.PreB, p.PreG, p.PreR, p.A
}

// PRGB32 is 8-bit alpha followed by premultiplied red, green and blue.
// Unlike ARGB32, its color channels are premultiplied by alpha.
type PRGB32 struct {
	A, PreR, PreG, PreB uint8
}

// NewPRGB32 premultiplies straight color bytes.
func NewPRGB32(r, g, b, a uint8) PRGB32 {
	return PRGB32{PreR: PremulByte(r, a), PreG: PremulByte(g, a), PreB: PremulByte(b, a), A: a}
}

func (PRGB32) Format() Format { return FormatPRGB32 }

func (p PRGB32) ToCanonical() RGBA128F {
	return unpremulCanonical(p.PreR, p.PreG, p.PreB, p.A)
}

func (PRGB32) FromCanonical(c RGBA128F) PRGB32 {
	return NewPRGB32(unorm8(c.R), unorm8(c.G), unorm8(c.B), unorm8(c.A))
}

func (PRGB32) load(b []byte) PRGB32 {
	_ = b[3]
	return PRGB32{A: b[0], PreR: b[1], PreG: b[2], PreB: b[3]}
}

func (p PRGB32) store(b []byte) {
	_ = b[3]
	b[0], b[1], b[2], b[3] = p.A, p.PreR, p.PreG, p.PreB
}

func unpremulCanonical(r, g, b, a uint8) RGBA128F {
	return RGBA128F{
		R: fromUnorm8(UnpremulByte(r, a)),
		G: fromUnorm8(UnpremulByte(g, a)),
		B: fromUnorm8(UnpremulByte(b, a)),
		A: fromUnorm8(a),
	}
}

// RGBP128F is float premultiplied red, green, blue and alpha.
type RGBP128F struct {
	PreR, PreG, PreB, A float32
}

func (RGBP128F) Format() Format { return FormatRGBP128F }

func (p RGBP128F) ToCanonical() RGBA128F {
	return RGBA128F{R: p.PreR, G: p.PreG, B: p.PreB, A: p.A}.Unpremul()
}

func (RGBP128F) FromCanonical(c RGBA128F) RGBP128F {
	c = c.Premul()
	return RGBP128F{PreR: c.R, PreG: c.G, PreB: c.B, A: c.A}
}

func (RGBP128F) load(b []byte) RGBP128F {
	_ = b[15]
	return RGBP128F{PreR: getF32(b), PreG: getF32(b[4:]), PreB: getF32(b[8:]), A: getF32(b[12:])}
}

func (p RGBP128F) store(b []byte) {
	_ = b[15]
	putF32(b, p.PreR)
	putF32(b[4:], p.PreG)
	putF32(b[8:], p.PreB)
	putF32(b[12:], p.A)
}

// BGRP128F is float premultiplied blue, green, red and alpha.
type BGRP128F struct {
	PreB, PreG, PreR, A float32
}

func (BGRP128F) Format() Format { return FormatBGRP128F }

func (p BGRP128F) ToCanonical() RGBA128F {
	return RGBA128F{R: p.PreR, G: p.PreG, B: p.PreB, A: p.A}.Unpremul()
}

func (BGRP128F) FromCanonical(c RGBA128F) BGRP128F {
	c = c.Premul()
	return BGRP128F{PreB: c.B, PreG: c.G, PreR: c.R, A: c.A}
}

func (BGRP128F) load(b []byte) BGRP128F {
	_ = b[15]
	return BGRP128F{PreB: getF32(b), PreG: getF32(b[4:]), PreR: getF32(b[8:]), A: getF32(b[12:])}
}

func (p BGRP128F) store(b []byte) {
	_ = b[15]
	putF32(b, p.PreB)
	putF32(b[4:], p.PreG)
	putF32(b[8:], p.PreR)
	putF32(b[12:], p.A)
}
