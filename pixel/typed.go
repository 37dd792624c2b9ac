package pixel

import (
	"unsafe"

	"github.com/pkg/errors"
)

// IdentifyPixel returns the Format of the pixel type T. Types that
// report their own Format, such as every pixel type in this package,
// use it. Any other type gets a Format of Undefined elements with the
// same size as T, which can be copied but not converted. If T is too
// large to be described, the zero Format is returned.
func IdentifyPixel[T any]() Format {
	var zero T
	if p, ok := any(zero).(interface{ Format() Format }); ok {
		return p.Format()
	}
	return undefinedFormat(int(unsafe.Sizeof(zero)))
}

func undefinedFormat(size int) Format {
	ids := make([]ElementID, 0, MaxElements)
	for size > 0 && len(ids) < MaxElements {
		switch {
		case size >= 4:
			ids = append(ids, Undefined32FID)
			size -= 4
		case size >= 2:
			ids = append(ids, Undefined16ID)
			size -= 2
		default:
			ids = append(ids, Undefined8ID)
			size--
		}
	}
	if size > 0 || len(ids) == 0 {
		return Format{}
	}
	return MustFormat(ids...)
}

// bytesOf returns the memory backing s.
func bytesOf[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(s[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*size)
}

// GetConverter returns a function converting slices of pixel type Src
// to slices of pixel type Dst. The formats are identified once with
// IdentifyPixel and the conversion is then done on the memory of the
// slices by a Converter, so the in-memory representation of both
// types must match their Formats. The pixel types of this package
// satisfy this on little-endian machines.
func GetConverter[Dst, Src any]() (func(dst []Dst, src []Src) error, error) {
	conv, err := GetByteConverter(IdentifyPixel[Src](), IdentifyPixel[Dst]())
	if err != nil {
		return nil, err
	}
	return func(dst []Dst, src []Src) error {
		if len(dst) != len(src) {
			return errors.Wrapf(ErrLengthMismatch, "%d destination pixels for %d source pixels", len(dst), len(src))
		}
		return conv(bytesOf(dst), bytesOf(src))
	}, nil
}

// ConvertPixels converts src into dst, which must be the same length.
func ConvertPixels[Dst, Src any](dst []Dst, src []Src) error {
	conv, err := GetConverter[Dst, Src]()
	if err != nil {
		return err
	}
	return conv(dst, src)
}
