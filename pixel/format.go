package pixel

import (
	"iter"
	"strings"

	"deedles.dev/xiter"
	"github.com/pkg/errors"
)

// MaxElements is the number of element slots in a Format.
const MaxElements = 4

// Format describes the memory layout of a single pixel as a sequence
// of up to four elements. The first element occupies the lowest bits
// of the pixel, which for byte aligned elements is also the first
// byte in memory.
//
// A Format is identified entirely by its packed code: the element IDs
// stored one per byte, first element in the least significant byte.
// Two Formats are equal if and only if their codes are equal, so
// Format values may be compared with == and used as map keys.
type Format struct {
	code uint32
}

// NewFormat returns the Format made of the given elements, in memory
// order. Trailing Empty elements are permitted. It returns
// ErrInvalidFormat if the elements do not add up to a non-zero whole
// number of bytes.
func NewFormat(ids ...ElementID) (Format, error) {
	if len(ids) == 0 || len(ids) > MaxElements {
		return Format{}, errors.Wrapf(ErrInvalidFormat, "%d elements", len(ids))
	}

	var code uint32
	var bits int
	var ended bool
	for i, id := range ids {
		if !id.Valid() {
			return Format{}, errors.Wrapf(ErrInvalidFormat, "unknown element 0x%02x at %d", uint8(id), i)
		}
		if id == EmptyID {
			ended = true
			continue
		}
		if ended {
			return Format{}, errors.Wrapf(ErrInvalidFormat, "element %v at %d follows an empty slot", id, i)
		}

		code |= uint32(id) << (8 * i)
		bits += id.Depth().Bits()
	}
	if bits == 0 || bits%8 != 0 {
		return Format{}, errors.Wrapf(ErrInvalidFormat, "%d bits is not a whole number of bytes", bits)
	}

	return Format{code: code}, nil
}

// MustFormat is like NewFormat but panics if the elements are invalid.
func MustFormat(ids ...ElementID) Format {
	f, err := NewFormat(ids...)
	if err != nil {
		panic(err)
	}
	return f
}

// FormatFromUint32 returns the Format whose packed code is code.
func FormatFromUint32(code uint32) (Format, error) {
	return NewFormat(
		ElementID(code),
		ElementID(code>>8),
		ElementID(code>>16),
		ElementID(code>>24),
	)
}

// AsUint32 returns the packed code of f.
func (f Format) AsUint32() uint32 { return f.code }

// IsZero reports whether f is the zero Format, which describes no
// pixel at all.
func (f Format) IsZero() bool { return f.code == 0 }

// ElementAt returns the element in slot i. Slots past the last
// element, and indices outside of [0, MaxElements), are Empty.
func (f Format) ElementAt(i int) Element {
	if i < 0 || i >= MaxElements {
		return Element{}
	}
	return Element{ID: ElementID(f.code >> (8 * i))}
}

// Elements yields the non-empty elements of f in memory order.
func (f Format) Elements() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for i := range MaxElements {
			e := f.ElementAt(i)
			if e.IsEmpty() || !yield(e) {
				return
			}
		}
	}
}

// ChannelCount returns the number of non-empty elements.
func (f Format) ChannelCount() (n int) {
	for range f.Elements() {
		n++
	}
	return n
}

// BitCount returns the number of bits in one pixel.
func (f Format) BitCount() (bits int) {
	for e := range f.Elements() {
		bits += e.BitCount()
	}
	return bits
}

// ByteCount returns the number of bytes in one pixel.
func (f Format) ByteCount() int { return f.BitCount() / 8 }

// RowBytes returns the number of bytes occupied by width pixels.
func (f Format) RowBytes(width int) int { return width * f.ByteCount() }

// FindByteOffset returns the offset in bytes from the start of the
// pixel to the first element with the given ID. Offsets of elements
// that do not start on a byte boundary are rounded down.
func (f Format) FindByteOffset(id ElementID) (int, bool) {
	var bits int
	for e := range f.Elements() {
		if e.ID == id {
			return bits / 8, true
		}
		bits += e.BitCount()
	}
	return 0, false
}

func (f Format) anyElement(pred func(Element) bool) bool {
	for e := range f.Elements() {
		if pred(e) {
			return true
		}
	}
	return false
}

// HasAlpha reports whether f has an alpha channel.
func (f Format) HasAlpha() bool { return f.anyElement(Element.IsAlpha) }

// HasPremul reports whether the color channels of f are premultiplied
// by alpha.
func (f Format) HasPremul() bool { return f.anyElement(Element.IsPremul) }

// IsFloating reports whether every element of f is a float.
func (f Format) IsFloating() bool {
	return !f.IsZero() && !f.anyElement(func(e Element) bool { return !e.IsFloating() })
}

// IsDefined reports whether f has no Undefined elements.
func (f Format) IsDefined() bool { return !f.anyElement(Element.IsUndefined) }

// DepthAndChannelCount returns the shared depth of the elements of f
// along with how many there are. It returns false if the elements do
// not all have the same depth.
func (f Format) DepthAndChannelCount() (depth Depth, n int, ok bool) {
	for i, e := range xiter.Enumerate(f.Elements()) {
		d := e.ID.Depth()
		if i == 0 {
			depth = d
		}
		if d != depth {
			return 0, 0, false
		}
		n = i + 1
	}
	return depth, n, n > 0
}

// FormatFromDepthAndChannels returns the canonical Format used for
// plain buffers of n channels of the given depth, such as the last
// dimension of a tensor.
func FormatFromDepthAndChannels(depth Depth, n int) (Format, error) {
	switch {
	case depth == Depth8 && n == 1:
		return FormatLuminance8, nil
	case depth == Depth8 && n == 3:
		return FormatRGB24, nil
	case depth == Depth8 && n == 4:
		return FormatRGBA32, nil
	case depth == Depth16 && n == 1:
		return FormatLuminance16, nil
	case depth == Depth32F && n == 1:
		return FormatLuminance32F, nil
	case depth == Depth32F && n == 3:
		return FormatRGB96F, nil
	case depth == Depth32F && n == 4:
		return FormatRGBA128F, nil
	}
	return Format{}, errors.Wrapf(ErrUnsupportedFormat, "%d channels of depth %v", n, depth)
}

// String returns the name of the layout described by f if it has one,
// or its elements joined by '|' otherwise.
func (f Format) String() string {
	if l, ok := f.DefaultLayout(); ok {
		return l.String()
	}
	if f.IsZero() {
		return "Empty"
	}

	var sb strings.Builder
	for i, e := range xiter.Enumerate(f.Elements()) {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}
