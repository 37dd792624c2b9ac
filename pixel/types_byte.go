package pixel

// Alpha8 is a single 8-bit alpha channel.
type Alpha8 struct {
	A uint8
}

func (Alpha8) Format() Format { return FormatAlpha8 }

func (p Alpha8) ToCanonical() RGBA128F { return RGBA128F{A: fromUnorm8(p.A)} }

func (Alpha8) FromCanonical(c RGBA128F) Alpha8 { return Alpha8{A: unorm8(c.A)} }

func (Alpha8) load(b []byte) Alpha8 { return Alpha8{A: b[0]} }

func (p Alpha8) store(b []byte) { b[0] = p.A }

// RGB24 is 8-bit red, green and blue, in that order in memory.
type RGB24 struct {
	R, G, B uint8
}

func (RGB24) Format() Format { return FormatRGB24 }

func (p RGB24) ToCanonical() RGBA128F {
	return RGBA128F{R: fromUnorm8(p.R), G: fromUnorm8(p.G), B: fromUnorm8(p.B), A: 1}
}

func (RGB24) FromCanonical(c RGBA128F) RGB24 {
	return RGB24{R: unorm8(c.R), G: unorm8(c.G), B: unorm8(c.B)}
}

func (RGB24) load(b []byte) RGB24 {
	_ = b[2]
	return RGB24{R: b[0], G: b[1], B: b[2]}
}

func (p RGB24) store(b []byte) {
	_ = b[2]
	b[0], b[1], b[2] = p.R, p.G, p.B
}

// BGR24 is 8-bit blue, green and red, in that order in memory.
type BGR24 struct {
	B, G, R uint8
}

func (BGR24) Format() Format { return FormatBGR24 }

func (p BGR24) ToCanonical() RGBA128F {
	return RGBA128F{R: fromUnorm8(p.R), G: fromUnorm8(p.G), B: fromUnorm8(p.B), A: 1}
}

func (BGR24) FromCanonical(c RGBA128F) BGR24 {
	return BGR24{R: unorm8(c.R), G: unorm8(c.G), B: unorm8(c.B)}
}

func (BGR24) load(b []byte) BGR24 {
	_ = b[2]
	return BGR24{B: b[0], G: b[1], R: b[2]}
}

func (p BGR24) store(b []byte) {
	_ = b[2]
	b[0], b[1], b[2] = p.B, p.G, p.R
}

// RGBA32 is 8-bit red, green, blue and straight alpha.
type RGBA32 struct {
	R, G, B, A uint8
}

func (RGBA32) Format() Format { return FormatRGBA32 }

func (p RGBA32) ToCanonical() RGBA128F {
	return RGBA128F{R: fromUnorm8(p.R), G: fromUnorm8(p.G), B: fromUnorm8(p.B), A: fromUnorm8(p.A)}
}

func (RGBA32) FromCanonical(c RGBA128F) RGBA32 {
	return RGBA32{R: unorm8(c.R), G: unorm8(c.G), B: unorm8(c.B), A: unorm8(c.A)}
}

func (RGBA32) load(b []byte) RGBA32 {
	_ = b[3]
	return RGBA32{R: b[0], G: b[1], B: b[2], A: b[3]}
}

func (p RGBA32) store(b []byte) {
	_ = b[3]
	b[0], b[1], b[2], b[3] = p.R, p.G, p.B, p.A
}

// BGRA32 is 8-bit blue, green, red and straight alpha. It is the
// in-memory order of a little-endian 0xAARRGGBB word.
type BGRA32 struct {
	B, G, R, A uint8
}

func (BGRA32) Format() Format { return FormatBGRA32 }

func (p BGRA32) ToCanonical() RGBA128F {
	return RGBA128F{R: fromUnorm8(p.R), G: fromUnorm8(p.G), B: fromUnorm8(p.B), A: fromUnorm8(p.A)}
}

func (BGRA32) FromCanonical(c RGBA128F) BGRA32 {
	return BGRA32{R: unorm8(c.R), G: unorm8(c.G), B: unorm8(c.B), A: unorm8(c.A)}
}

func (BGRA32) load(b []byte) BGRA32 {
	_ = b[3]
	return BGRA32{B: b[0], G: b[1], R: b[2], A: b[3]}
}

func (p BGRA32) store(b []byte) {
	_ = b[3]
	b[0], b[1], b[2], b[3] = p.B, p.G, p.R, p.A
}

// ARGB32 is 8-bit straight alpha, red, green and blue.
type ARGB32 struct {
	A, R, G, B uint8
}

func (ARGB32) Format() Format { return FormatARGB32 }

func (p ARGB32) ToCanonical() RGBA128F {
	return RGBA128F{R: fromUnorm8(p.R), G: fromUnorm8(p.G), B: fromUnorm8(p.B), A: fromUnorm8(p.A)}
}

func (ARGB32) FromCanonical(c RGBA128F) ARGB32 {
	return ARGB32{R: unorm8(c.R), G: unorm8(c.G), B: unorm8(c.B), A: unorm8(c.A)}
}

func (ARGB32) load(b []byte) ARGB32 {
	_ = b[3]
	return ARGB32{A: b[0], R: b[1], G: b[2], B: b[3]}
}

func (p ARGB32) store(b []byte) {
	_ = b[3]
	b[0], b[1], b[2], b[3] = p.A, p.R, p.G, p.B
}
