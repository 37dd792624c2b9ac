package pixel

import (
	"unsafe"

	"github.com/pkg/errors"
)

// BlockSize is the number of pixels a Converter stages through the
// canonical representation at a time. The staging buffer lives on the
// converter's stack, so its size bounds the working memory of a
// conversion regardless of how many pixels are converted.
const BlockSize = 1024

// Converter converts a buffer of pixels into another format. Both
// buffers must hold the same whole number of pixels of their
// respective formats, or ErrLengthMismatch is returned before anything
// is written. Converters hold no state and may be used concurrently on
// disjoint buffers.
type Converter func(dst, src []byte) error

// GetByteConverter returns a Converter from pixels of format src to
// pixels of format dst. The strategy is picked once, here, in order of
// preference:
//
//   - identical formats are copied;
//   - formats made of the same straight red, green and blue channels
//     at the same depth have their channels moved directly;
//   - a few common pairs of byte formats are converted with integer
//     arithmetic;
//   - everything else goes through RGBA128F in blocks of BlockSize
//     pixels.
//
// The last strategy requires both formats to have a concrete layout.
// If either does not, ErrUnsupportedFormat is returned.
func GetByteConverter(src, dst Format) (Converter, error) {
	if src.IsZero() || dst.IsZero() {
		return nil, errors.Wrapf(ErrInvalidFormat, "convert %v to %v", src, dst)
	}

	log := Logger()
	conv, path, err := resolve(src, dst)
	if err != nil {
		log.Warn().Err(err).Stringer("src", src).Stringer("dst", dst).Msg("no pixel converter")
		return nil, err
	}
	log.Debug().Stringer("src", src).Stringer("dst", dst).Str("path", path).Msg("resolved pixel converter")
	return conv, nil
}

func resolve(src, dst Format) (Converter, string, error) {
	if src == dst {
		return copyConverter(src.ByteCount()), "identity", nil
	}
	if conv, ok := planarConverter(src, dst); ok {
		return conv, "planar", nil
	}
	if conv, ok := pairConverter(src, dst); ok {
		return conv, "pair", nil
	}

	sl, ok := src.DefaultLayout()
	if !ok {
		return nil, "", errors.Wrapf(ErrUnsupportedFormat, "no layout for source %v", src)
	}
	dl, ok := dst.DefaultLayout()
	if !ok {
		return nil, "", errors.Wrapf(ErrUnsupportedFormat, "no layout for destination %v", dst)
	}
	return canonicalConverter(sl, dl, src.ByteCount(), dst.ByteCount()), "canonical", nil
}

// checkBuffers returns the number of pixels in src after making sure
// that dst holds the same number.
func checkBuffers(dst, src []byte, srcSize, dstSize int) (int, error) {
	if len(src)%srcSize != 0 || len(dst)%dstSize != 0 || len(src)/srcSize != len(dst)/dstSize {
		return 0, errors.Wrapf(ErrLengthMismatch, "%d source bytes of %d, %d destination bytes of %d", len(src), srcSize, len(dst), dstSize)
	}
	return len(src) / srcSize, nil
}

func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b)) && b0 < a0+uintptr(len(a))
}

func copyConverter(size int) Converter {
	return func(dst, src []byte) error {
		if _, err := checkBuffers(dst, src, size, size); err != nil {
			return err
		}
		copy(dst, src)
		return nil
	}
}

// planarConverter handles formats that are nothing but straight red,
// green and blue at a common depth of 8 bits or float, in any order.
func planarConverter(src, dst Format) (Converter, bool) {
	sd, sn, ok := src.DepthAndChannelCount()
	if !ok || sn != 3 || (sd != Depth8 && sd != Depth32F) {
		return nil, false
	}
	dd, dn, ok := dst.DepthAndChannelCount()
	if !ok || dn != 3 || dd != sd {
		return nil, false
	}

	var srcOff, dstOff [3]int
	for i, role := range [...]Role{RoleRed, RoleGreen, RoleBlue} {
		id := elementID(role, sd)
		if srcOff[i], ok = src.FindByteOffset(id); !ok {
			return nil, false
		}
		if dstOff[i], ok = dst.FindByteOffset(id); !ok {
			return nil, false
		}
	}

	width := sd.Bits() / 8
	srcSize, dstSize := src.ByteCount(), dst.ByteCount()
	return func(dst, src []byte) error {
		n, err := checkBuffers(dst, src, srcSize, dstSize)
		if err != nil {
			return err
		}
		if overlaps(dst, src) {
			return ErrOverlap
		}

		for c := range srcOff {
			so, do := srcOff[c], dstOff[c]
			for i := range n {
				s := src[i*srcSize+so:]
				copy(dst[i*dstSize+do:], s[:width])
			}
		}
		return nil
	}, true
}

func canonicalConverter(srcLayout, dstLayout Layout, srcSize, dstSize int) Converter {
	return func(dst, src []byte) error {
		n, err := checkBuffers(dst, src, srcSize, dstSize)
		if err != nil {
			return err
		}
		if overlaps(dst, src) {
			return ErrOverlap
		}

		var stage [BlockSize]RGBA128F
		for n > 0 {
			block := min(n, BlockSize)
			buf := stage[:block]
			toCanonical(srcLayout, buf, src[:block*srcSize])
			fromCanonical(dstLayout, dst[:block*dstSize], buf)

			src, dst = src[block*srcSize:], dst[block*dstSize:]
			n -= block
		}
		return nil
	}
}
