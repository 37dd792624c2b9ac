// Package pixel describes packed pixel formats by value and converts
// buffers of pixels between them.
//
// A Format is a sequence of up to four Elements, each of which pairs a
// channel role, such as red or premultiplied blue, with a depth from 1
// bit to a 32-bit float. The package provides a concrete Go type for
// each common format, like BGRA32 or RGBP128F, all of which can be
// converted to and from the canonical RGBA128F type.
//
// Bulk conversion works on raw bytes:
//
//	conv, err := pixel.GetByteConverter(pixel.FormatBGR565, pixel.FormatRGBA32)
//	if err != nil {
//		return err
//	}
//	for y := range height {
//		err := conv(dst[y*dstStride:][:width*4], src[y*srcStride:][:width*2])
//		...
//	}
//
// Conversions that have no direct implementation are staged through
// RGBA128F in blocks of BlockSize pixels, so converting a buffer never
// allocates memory proportional to its size.
package pixel
