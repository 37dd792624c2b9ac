package pixel

// PremulByte multiplies the straight color byte c by the alpha byte a,
// truncating the result.
func PremulByte(c, a uint8) uint8 {
	return uint8(uint32(c) * uint32(a) / 255)
}

// UnpremulByte divides the premultiplied color byte p by the alpha
// byte a. A zero alpha yields zero. The quotient is rounded up, which
// makes PremulByte(UnpremulByte(p, a), a) == p for every p <= a.
func UnpremulByte(p, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	v := (uint32(p)*255 + uint32(a) - 1) / uint32(a)
	return uint8(min(v, 255))
}

// Premul returns c with its color channels multiplied by its alpha.
func (c RGBA128F) Premul() RGBA128F {
	return RGBA128F{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremul returns c with its color channels divided by its alpha.
// When alpha is zero the result is transparent black rather than NaN
// or Inf.
func (c RGBA128F) Unpremul() RGBA128F {
	if c.A == 0 {
		return RGBA128F{}
	}
	return RGBA128F{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// PremulSpan premultiplies every pixel of s in place.
func PremulSpan(s []RGBA128F) {
	for i := range s {
		s[i] = s[i].Premul()
	}
}

// UnpremulSpan unpremultiplies every pixel of s in place.
func UnpremulSpan(s []RGBA128F) {
	for i := range s {
		s[i] = s[i].Unpremul()
	}
}
