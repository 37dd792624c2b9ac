package pixel

// byteChannels locates the 8-bit channels of a byte layout. An offset
// of -1 marks a missing channel.
type byteChannels struct {
	r, g, b, a int
	premul     bool
	size       int
}

func byteChannelsOf(f Format) byteChannels {
	bc := byteChannels{a: -1, premul: f.HasPremul(), size: f.ByteCount()}
	red, green, blue := Red8ID, Green8ID, Blue8ID
	if bc.premul {
		red, green, blue = RedPremul8ID, GreenPremul8ID, BluePremul8ID
	}
	bc.r, _ = f.FindByteOffset(red)
	bc.g, _ = f.FindByteOffset(green)
	bc.b, _ = f.FindByteOffset(blue)
	if off, ok := f.FindByteOffset(Alpha8ID); ok {
		bc.a = off
	}
	return bc
}

type formatPair struct {
	src, dst Format
}

// knownPairs are conversions common enough to skip the canonical
// representation. Every one of them produces exactly the bytes the
// canonical path would.
var knownPairs = map[formatPair]struct{}{
	{FormatBGR24, FormatBGRA32}:  {},
	{FormatRGB24, FormatBGRA32}:  {},
	{FormatBGR24, FormatRGBA32}:  {},
	{FormatRGB24, FormatRGBA32}:  {},
	{FormatBGRA32, FormatBGR24}:  {},
	{FormatRGBA32, FormatBGR24}:  {},
	{FormatBGRA32, FormatRGB24}:  {},
	{FormatRGBA32, FormatRGB24}:  {},
	{FormatBGRA32, FormatRGBA32}: {},
	{FormatRGBA32, FormatBGRA32}: {},
	{FormatARGB32, FormatBGRA32}: {},
	{FormatBGRA32, FormatARGB32}: {},
	{FormatBGRA32, FormatRGBP32}: {},
	{FormatBGRA32, FormatBGRP32}: {},
	{FormatRGBA32, FormatRGBP32}: {},
	{FormatRGBP32, FormatBGRA32}: {},
	{FormatBGRP32, FormatBGRA32}: {},
	{FormatRGBP32, FormatRGBA32}: {},
}

func pairConverter(src, dst Format) (Converter, bool) {
	if _, ok := knownPairs[formatPair{src, dst}]; !ok {
		return nil, false
	}

	in, out := byteChannelsOf(src), byteChannelsOf(dst)
	return func(dst, src []byte) error {
		n, err := checkBuffers(dst, src, in.size, out.size)
		if err != nil {
			return err
		}
		if overlaps(dst, src) {
			return ErrOverlap
		}

		for i := range n {
			s := src[i*in.size : (i+1)*in.size]
			d := dst[i*out.size : (i+1)*out.size]

			r, g, b, a := s[in.r], s[in.g], s[in.b], uint8(255)
			if in.a >= 0 {
				a = s[in.a]
			}
			if in.premul {
				r, g, b = UnpremulByte(r, a), UnpremulByte(g, a), UnpremulByte(b, a)
			}
			if out.premul {
				r, g, b = PremulByte(r, a), PremulByte(g, a), PremulByte(b, a)
			}

			d[out.r], d[out.g], d[out.b] = r, g, b
			if out.a >= 0 {
				d[out.a] = a
			}
		}
		return nil
	}, true
}
