package pixel

import "encoding/binary"

// Luminance layouts are built from color with BT.601 weights and are
// read back as a neutral grey with opaque alpha. Alpha is discarded on
// the way in.

// Luminance8 is 8-bit luminance.
type Luminance8 struct {
	L uint8
}

func (Luminance8) Format() Format { return FormatLuminance8 }

func (p Luminance8) ToCanonical() RGBA128F {
	v := fromUnorm8(p.L)
	return RGBA128F{R: v, G: v, B: v, A: 1}
}

func (Luminance8) FromCanonical(c RGBA128F) Luminance8 {
	return Luminance8{L: lumaFixed(unorm8(c.R), unorm8(c.G), unorm8(c.B))}
}

func (Luminance8) load(b []byte) Luminance8 { return Luminance8{L: b[0]} }

func (p Luminance8) store(b []byte) { b[0] = p.L }

// Luminance16 is 16-bit luminance.
type Luminance16 struct {
	L uint16
}

func (Luminance16) Format() Format { return FormatLuminance16 }

func (p Luminance16) ToCanonical() RGBA128F {
	v := fromUnorm16(p.L)
	return RGBA128F{R: v, G: v, B: v, A: 1}
}

func (Luminance16) FromCanonical(c RGBA128F) Luminance16 {
	return Luminance16{L: lumaFixed(unorm16(c.R), unorm16(c.G), unorm16(c.B))}
}

func (Luminance16) load(b []byte) Luminance16 {
	return Luminance16{L: binary.LittleEndian.Uint16(b)}
}

func (p Luminance16) store(b []byte) { binary.LittleEndian.PutUint16(b, p.L) }

// Luminance32F is float luminance.
type Luminance32F struct {
	L float32
}

func (Luminance32F) Format() Format { return FormatLuminance32F }

func (p Luminance32F) ToCanonical() RGBA128F {
	return RGBA128F{R: p.L, G: p.L, B: p.L, A: 1}
}

func (Luminance32F) FromCanonical(c RGBA128F) Luminance32F {
	return Luminance32F{L: lumaFloat(c)}
}

func (Luminance32F) load(b []byte) Luminance32F { return Luminance32F{L: getF32(b)} }

func (p Luminance32F) store(b []byte) { putF32(b, p.L) }
