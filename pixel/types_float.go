package pixel

// RGB96F is float red, green and blue.
type RGB96F struct {
	R, G, B float32
}

func (RGB96F) Format() Format { return FormatRGB96F }

func (p RGB96F) ToCanonical() RGBA128F { return RGBA128F{R: p.R, G: p.G, B: p.B, A: 1} }

func (RGB96F) FromCanonical(c RGBA128F) RGB96F { return RGB96F{R: c.R, G: c.G, B: c.B} }

func (RGB96F) load(b []byte) RGB96F {
	_ = b[11]
	return RGB96F{R: getF32(b), G: getF32(b[4:]), B: getF32(b[8:])}
}

func (p RGB96F) store(b []byte) {
	_ = b[11]
	putF32(b, p.R)
	putF32(b[4:], p.G)
	putF32(b[8:], p.B)
}

// BGR96F is float blue, green and red.
type BGR96F struct {
	B, G, R float32
}

func (BGR96F) Format() Format { return FormatBGR96F }

func (p BGR96F) ToCanonical() RGBA128F { return RGBA128F{R: p.R, G: p.G, B: p.B, A: 1} }

func (BGR96F) FromCanonical(c RGBA128F) BGR96F { return BGR96F{R: c.R, G: c.G, B: c.B} }

func (BGR96F) load(b []byte) BGR96F {
	_ = b[11]
	return BGR96F{B: getF32(b), G: getF32(b[4:]), R: getF32(b[8:])}
}

func (p BGR96F) store(b []byte) {
	_ = b[11]
	putF32(b, p.B)
	putF32(b[4:], p.G)
	putF32(b[8:], p.R)
}

// BGRA128F is float blue, green, red and straight alpha.
type BGRA128F struct {
	B, G, R, A float32
}

func (BGRA128F) Format() Format { return FormatBGRA128F }

func (p BGRA128F) ToCanonical() RGBA128F { return RGBA128F{R: p.R, G: p.G, B: p.B, A: p.A} }

func (BGRA128F) FromCanonical(c RGBA128F) BGRA128F {
	return BGRA128F{B: c.B, G: c.G, R: c.R, A: c.A}
}

func (BGRA128F) load(b []byte) BGRA128F {
	_ = b[15]
	return BGRA128F{B: getF32(b), G: getF32(b[4:]), R: getF32(b[8:]), A: getF32(b[12:])}
}

func (p BGRA128F) store(b []byte) {
	_ = b[15]
	putF32(b, p.B)
	putF32(b[4:], p.G)
	putF32(b[8:], p.R)
	putF32(b[12:], p.A)
}
