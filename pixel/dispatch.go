package pixel

import "github.com/pkg/errors"

func loadAll[T layout[T]](dst []RGBA128F, src []byte) {
	var zero T
	n := zero.Format().ByteCount()
	for i := range dst {
		dst[i] = zero.load(src[i*n:]).ToCanonical()
	}
}

func storeAll[T layout[T]](dst []byte, src []RGBA128F) {
	var zero T
	n := zero.Format().ByteCount()
	for i, c := range src {
		zero.FromCanonical(c).store(dst[i*n:])
	}
}

// toCanonical decodes len(dst) pixels of layout l from src. It
// returns false if l is not a concrete layout.
func toCanonical(l Layout, dst []RGBA128F, src []byte) bool {
	switch l {
	case LayoutAlpha8:
		loadAll[Alpha8](dst, src)
	case LayoutLuminance8:
		loadAll[Luminance8](dst, src)
	case LayoutLuminance16:
		loadAll[Luminance16](dst, src)
	case LayoutLuminance32F:
		loadAll[Luminance32F](dst, src)
	case LayoutBGR565:
		loadAll[BGR565](dst, src)
	case LayoutBGRA5551:
		loadAll[BGRA5551](dst, src)
	case LayoutBGRA4444:
		loadAll[BGRA4444](dst, src)
	case LayoutRGB24:
		loadAll[RGB24](dst, src)
	case LayoutBGR24:
		loadAll[BGR24](dst, src)
	case LayoutRGBA32:
		loadAll[RGBA32](dst, src)
	case LayoutBGRA32:
		loadAll[BGRA32](dst, src)
	case LayoutARGB32:
		loadAll[ARGB32](dst, src)
	case LayoutRGBP32:
		loadAll[RGBP32](dst, src)
	case LayoutBGRP32:
		loadAll[BGRP32](dst, src)
	case LayoutPRGB32:
		loadAll[PRGB32](dst, src)
	case LayoutRGB96F:
		loadAll[RGB96F](dst, src)
	case LayoutBGR96F:
		loadAll[BGR96F](dst, src)
	case LayoutRGBA128F:
		loadAll[RGBA128F](dst, src)
	case LayoutBGRA128F:
		loadAll[BGRA128F](dst, src)
	case LayoutRGBP128F:
		loadAll[RGBP128F](dst, src)
	case LayoutBGRP128F:
		loadAll[BGRP128F](dst, src)
	default:
		return false
	}
	return true
}

// fromCanonical encodes src as pixels of layout l into dst. It returns
// false if l is not a concrete layout.
func fromCanonical(l Layout, dst []byte, src []RGBA128F) bool {
	switch l {
	case LayoutAlpha8:
		storeAll[Alpha8](dst, src)
	case LayoutLuminance8:
		storeAll[Luminance8](dst, src)
	case LayoutLuminance16:
		storeAll[Luminance16](dst, src)
	case LayoutLuminance32F:
		storeAll[Luminance32F](dst, src)
	case LayoutBGR565:
		storeAll[BGR565](dst, src)
	case LayoutBGRA5551:
		storeAll[BGRA5551](dst, src)
	case LayoutBGRA4444:
		storeAll[BGRA4444](dst, src)
	case LayoutRGB24:
		storeAll[RGB24](dst, src)
	case LayoutBGR24:
		storeAll[BGR24](dst, src)
	case LayoutRGBA32:
		storeAll[RGBA32](dst, src)
	case LayoutBGRA32:
		storeAll[BGRA32](dst, src)
	case LayoutARGB32:
		storeAll[ARGB32](dst, src)
	case LayoutRGBP32:
		storeAll[RGBP32](dst, src)
	case LayoutBGRP32:
		storeAll[BGRP32](dst, src)
	case LayoutPRGB32:
		storeAll[PRGB32](dst, src)
	case LayoutRGB96F:
		storeAll[RGB96F](dst, src)
	case LayoutBGR96F:
		storeAll[BGR96F](dst, src)
	case LayoutRGBA128F:
		storeAll[RGBA128F](dst, src)
	case LayoutBGRA128F:
		storeAll[BGRA128F](dst, src)
	case LayoutRGBP128F:
		storeAll[RGBP128F](dst, src)
	case LayoutBGRP128F:
		storeAll[BGRP128F](dst, src)
	default:
		return false
	}
	return true
}

// ToCanonical decodes the pixels of format f in src into dst. src must
// hold exactly len(dst) pixels.
func ToCanonical(dst []RGBA128F, src []byte, f Format) error {
	l, ok := f.DefaultLayout()
	if !ok {
		return errors.Wrapf(ErrUnsupportedFormat, "read %v", f)
	}
	if len(src) != len(dst)*f.ByteCount() {
		return errors.Wrapf(ErrLengthMismatch, "%d bytes of %v for %d pixels", len(src), f, len(dst))
	}

	toCanonical(l, dst, src)
	return nil
}

// FromCanonical encodes src into dst as pixels of format f. dst must
// have room for exactly len(src) pixels.
func FromCanonical(dst []byte, f Format, src []RGBA128F) error {
	l, ok := f.DefaultLayout()
	if !ok {
		return errors.Wrapf(ErrUnsupportedFormat, "write %v", f)
	}
	if len(dst) != len(src)*f.ByteCount() {
		return errors.Wrapf(ErrLengthMismatch, "%d bytes of %v for %d pixels", len(dst), f, len(src))
	}

	fromCanonical(l, dst, src)
	return nil
}
