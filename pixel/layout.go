package pixel

import (
	"strings"

	"github.com/pkg/errors"
)

// Layout identifies one of the concrete pixel types of this package.
// It is the tag used by the conversion engine to dispatch on a Format
// without reflection.
type Layout uint8

const (
	LayoutUnknown Layout = iota
	LayoutAlpha8
	LayoutLuminance8
	LayoutLuminance16
	LayoutLuminance32F
	LayoutBGR565
	LayoutBGRA5551
	LayoutBGRA4444
	LayoutRGB24
	LayoutBGR24
	LayoutRGBA32
	LayoutBGRA32
	LayoutARGB32
	LayoutRGBP32
	LayoutBGRP32
	LayoutPRGB32
	LayoutRGB96F
	LayoutBGR96F
	LayoutRGBA128F
	LayoutBGRA128F
	LayoutRGBP128F
	LayoutBGRP128F

	layoutCount
)

// Well-known formats, one per concrete pixel type.
var (
	FormatAlpha8       = MustFormat(Alpha8ID)
	FormatLuminance8   = MustFormat(Luminance8ID)
	FormatLuminance16  = MustFormat(Luminance16ID)
	FormatLuminance32F = MustFormat(Luminance32FID)

	FormatBGR565   = MustFormat(Blue5ID, Green6ID, Red5ID)
	FormatBGRA5551 = MustFormat(Blue5ID, Green5ID, Red5ID, Alpha1ID)
	FormatBGRA4444 = MustFormat(Blue4ID, Green4ID, Red4ID, Alpha4ID)

	FormatRGB24  = MustFormat(Red8ID, Green8ID, Blue8ID)
	FormatBGR24  = MustFormat(Blue8ID, Green8ID, Red8ID)
	FormatRGBA32 = MustFormat(Red8ID, Green8ID, Blue8ID, Alpha8ID)
	FormatBGRA32 = MustFormat(Blue8ID, Green8ID, Red8ID, Alpha8ID)
	FormatARGB32 = MustFormat(Alpha8ID, Red8ID, Green8ID, Blue8ID)
	FormatRGBP32 = MustFormat(RedPremul8ID, GreenPremul8ID, BluePremul8ID, Alpha8ID)
	FormatBGRP32 = MustFormat(BluePremul8ID, GreenPremul8ID, RedPremul8ID, Alpha8ID)
	// FormatPRGB32 is alpha first with premultiplied color channels.
	FormatPRGB32 = MustFormat(Alpha8ID, RedPremul8ID, GreenPremul8ID, BluePremul8ID)

	FormatRGB96F   = MustFormat(Red32FID, Green32FID, Blue32FID)
	FormatBGR96F   = MustFormat(Blue32FID, Green32FID, Red32FID)
	FormatRGBA128F = MustFormat(Red32FID, Green32FID, Blue32FID, Alpha32FID)
	FormatBGRA128F = MustFormat(Blue32FID, Green32FID, Red32FID, Alpha32FID)
	FormatRGBP128F = MustFormat(RedPremul32FID, GreenPremul32FID, BluePremul32FID, Alpha32FID)
	FormatBGRP128F = MustFormat(BluePremul32FID, GreenPremul32FID, RedPremul32FID, Alpha32FID)
)

var layoutNames = [layoutCount]string{
	LayoutUnknown:      "Unknown",
	LayoutAlpha8:       "Alpha8",
	LayoutLuminance8:   "Luminance8",
	LayoutLuminance16:  "Luminance16",
	LayoutLuminance32F: "Luminance32F",
	LayoutBGR565:       "BGR565",
	LayoutBGRA5551:     "BGRA5551",
	LayoutBGRA4444:     "BGRA4444",
	LayoutRGB24:        "RGB24",
	LayoutBGR24:        "BGR24",
	LayoutRGBA32:       "RGBA32",
	LayoutBGRA32:       "BGRA32",
	LayoutARGB32:       "ARGB32",
	LayoutRGBP32:       "RGBP32",
	LayoutBGRP32:       "BGRP32",
	LayoutPRGB32:       "PRGB32",
	LayoutRGB96F:       "RGB96F",
	LayoutBGR96F:       "BGR96F",
	LayoutRGBA128F:     "RGBA128F",
	LayoutBGRA128F:     "BGRA128F",
	LayoutRGBP128F:     "RGBP128F",
	LayoutBGRP128F:     "BGRP128F",
}

func (l Layout) String() string {
	if l >= layoutCount {
		return layoutNames[LayoutUnknown]
	}
	return layoutNames[l]
}

// Layouts returns every concrete layout, in declaration order.
func Layouts() []Layout {
	layouts := make([]Layout, 0, layoutCount-1)
	for l := LayoutUnknown + 1; l < layoutCount; l++ {
		layouts = append(layouts, l)
	}
	return layouts
}

// Format returns the Format of the layout. The Format of
// LayoutUnknown is the zero Format.
func (l Layout) Format() Format {
	switch l {
	case LayoutAlpha8:
		return FormatAlpha8
	case LayoutLuminance8:
		return FormatLuminance8
	case LayoutLuminance16:
		return FormatLuminance16
	case LayoutLuminance32F:
		return FormatLuminance32F
	case LayoutBGR565:
		return FormatBGR565
	case LayoutBGRA5551:
		return FormatBGRA5551
	case LayoutBGRA4444:
		return FormatBGRA4444
	case LayoutRGB24:
		return FormatRGB24
	case LayoutBGR24:
		return FormatBGR24
	case LayoutRGBA32:
		return FormatRGBA32
	case LayoutBGRA32:
		return FormatBGRA32
	case LayoutARGB32:
		return FormatARGB32
	case LayoutRGBP32:
		return FormatRGBP32
	case LayoutBGRP32:
		return FormatBGRP32
	case LayoutPRGB32:
		return FormatPRGB32
	case LayoutRGB96F:
		return FormatRGB96F
	case LayoutBGR96F:
		return FormatBGR96F
	case LayoutRGBA128F:
		return FormatRGBA128F
	case LayoutBGRA128F:
		return FormatBGRA128F
	case LayoutRGBP128F:
		return FormatRGBP128F
	case LayoutBGRP128F:
		return FormatBGRP128F
	default:
		return Format{}
	}
}

// DefaultLayout returns the concrete layout that stores pixels of
// format f. Formats that are valid but have no named layout return
// false; they can still be copied, but not converted.
func (f Format) DefaultLayout() (Layout, bool) {
	switch f {
	case FormatAlpha8:
		return LayoutAlpha8, true
	case FormatLuminance8:
		return LayoutLuminance8, true
	case FormatLuminance16:
		return LayoutLuminance16, true
	case FormatLuminance32F:
		return LayoutLuminance32F, true
	case FormatBGR565:
		return LayoutBGR565, true
	case FormatBGRA5551:
		return LayoutBGRA5551, true
	case FormatBGRA4444:
		return LayoutBGRA4444, true
	case FormatRGB24:
		return LayoutRGB24, true
	case FormatBGR24:
		return LayoutBGR24, true
	case FormatRGBA32:
		return LayoutRGBA32, true
	case FormatBGRA32:
		return LayoutBGRA32, true
	case FormatARGB32:
		return LayoutARGB32, true
	case FormatRGBP32:
		return LayoutRGBP32, true
	case FormatBGRP32:
		return LayoutBGRP32, true
	case FormatPRGB32:
		return LayoutPRGB32, true
	case FormatRGB96F:
		return LayoutRGB96F, true
	case FormatBGR96F:
		return LayoutBGR96F, true
	case FormatRGBA128F:
		return LayoutRGBA128F, true
	case FormatBGRA128F:
		return LayoutBGRA128F, true
	case FormatRGBP128F:
		return LayoutRGBP128F, true
	case FormatBGRP128F:
		return LayoutBGRP128F, true
	default:
		return LayoutUnknown, false
	}
}

// ParseFormat returns the well-known Format with the given layout
// name, such as "BGRA32". Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	for _, l := range Layouts() {
		if strings.EqualFold(l.String(), name) {
			return l.Format(), nil
		}
	}
	return Format{}, errors.Wrapf(ErrUnsupportedFormat, "unknown format name %q", name)
}
