package pixel

import "encoding/binary"

// Packed layouts store their channels in a little-endian 16-bit word,
// first element in the low bits. Channels are packed by dropping low
// bits and widened again with expandBits, so a packed value survives
// a trip through any wider layout unchanged.

// BGR565 is 5-bit blue, 6-bit green and 5-bit red.
type BGR565 struct {
	Packed uint16
}

// NewBGR565 packs 8-bit channels, discarding their low bits.
func NewBGR565(r, g, b uint8) BGR565 {
	return BGR565{Packed: uint16(b>>3) | uint16(g>>2)<<5 | uint16(r>>3)<<11}
}

// Unpack returns the channels of p widened to 8 bits.
func (p BGR565) Unpack() (r, g, b uint8) {
	r = expandBits(uint8(p.Packed>>11)&0x1F, 5)
	g = expandBits(uint8(p.Packed>>5)&0x3F, 6)
	b = expandBits(uint8(p.Packed)&0x1F, 5)
	return r, g, b
}

func (BGR565) Format() Format { return FormatBGR565 }

func (p BGR565) ToCanonical() RGBA128F {
	r, g, b := p.Unpack()
	return RGBA128F{R: fromUnorm8(r), G: fromUnorm8(g), B: fromUnorm8(b), A: 1}
}

func (BGR565) FromCanonical(c RGBA128F) BGR565 {
	return NewBGR565(unorm8(c.R), unorm8(c.G), unorm8(c.B))
}

func (BGR565) load(b []byte) BGR565 { return BGR565{Packed: binary.LittleEndian.Uint16(b)} }

func (p BGR565) store(b []byte) { binary.LittleEndian.PutUint16(b, p.Packed) }

// BGRA5551 is 5-bit blue, green and red with a 1-bit alpha.
type BGRA5551 struct {
	Packed uint16
}

// NewBGRA5551 packs 8-bit channels, discarding their low bits. Alpha
// is opaque only when a has its high bit set.
func NewBGRA5551(r, g, b, a uint8) BGRA5551 {
	return BGRA5551{Packed: uint16(b>>3) | uint16(g>>3)<<5 | uint16(r>>3)<<10 | uint16(a>>7)<<15}
}

// Unpack returns the channels of p widened to 8 bits.
func (p BGRA5551) Unpack() (r, g, b, a uint8) {
	r = expandBits(uint8(p.Packed>>10)&0x1F, 5)
	g = expandBits(uint8(p.Packed>>5)&0x1F, 5)
	b = expandBits(uint8(p.Packed)&0x1F, 5)
	a = expandBits(uint8(p.Packed>>15), 1)
	return r, g, b, a
}

func (BGRA5551) Format() Format { return FormatBGRA5551 }

func (p BGRA5551) ToCanonical() RGBA128F {
	r, g, b, a := p.Unpack()
	return RGBA128F{R: fromUnorm8(r), G: fromUnorm8(g), B: fromUnorm8(b), A: fromUnorm8(a)}
}

func (BGRA5551) FromCanonical(c RGBA128F) BGRA5551 {
	return NewBGRA5551(unorm8(c.R), unorm8(c.G), unorm8(c.B), unorm8(c.A))
}

func (BGRA5551) load(b []byte) BGRA5551 { return BGRA5551{Packed: binary.LittleEndian.Uint16(b)} }

func (p BGRA5551) store(b []byte) { binary.LittleEndian.PutUint16(b, p.Packed) }

// BGRA4444 is 4-bit blue, green, red and alpha.
type BGRA4444 struct {
	Packed uint16
}

// NewBGRA4444 packs 8-bit channels, discarding their low bits.
func NewBGRA4444(r, g, b, a uint8) BGRA4444 {
	return BGRA4444{Packed: uint16(b>>4) | uint16(g>>4)<<4 | uint16(r>>4)<<8 | uint16(a>>4)<<12}
}

// Unpack returns the channels of p widened to 8 bits.
func (p BGRA4444) Unpack() (r, g, b, a uint8) {
	r = expandBits(uint8(p.Packed>>8)&0xF, 4)
	g = expandBits(uint8(p.Packed>>4)&0xF, 4)
	b = expandBits(uint8(p.Packed)&0xF, 4)
	a = expandBits(uint8(p.Packed>>12), 4)
	return r, g, b, a
}

func (BGRA4444) Format() Format { return FormatBGRA4444 }

func (p BGRA4444) ToCanonical() RGBA128F {
	r, g, b, a := p.Unpack()
	return RGBA128F{R: fromUnorm8(r), G: fromUnorm8(g), B: fromUnorm8(b), A: fromUnorm8(a)}
}

func (BGRA4444) FromCanonical(c RGBA128F) BGRA4444 {
	return NewBGRA4444(unorm8(c.R), unorm8(c.G), unorm8(c.B), unorm8(c.A))
}

func (BGRA4444) load(b []byte) BGRA4444 { return BGRA4444{Packed: binary.LittleEndian.Uint16(b)} }

func (p BGRA4444) store(b []byte) { binary.LittleEndian.PutUint16(b, p.Packed) }
