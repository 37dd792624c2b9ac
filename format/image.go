package format

import (
	"image"
	"image/color"

	"deedles.dev/xpixel/pixel"
)

// Model implements color.Model using a pixel.Format. Colors that
// can't be written in the format, such as any color when the format
// has Undefined elements, convert to the zero value of the format.
type Model struct {
	Format pixel.Format
}

func (m Model) Convert(c color.Color) color.Color {
	if c, ok := c.(*Color); ok && c.Format == m.Format {
		return c
	}

	fc := Color{Format: m.Format}
	fc.set(c)
	return &fc
}

// Color implements color.Color using a pixel.Format.
type Color struct {
	Format pixel.Format

	// Data contains the pixel data for the color. Only the first
	// Format.ByteCount() bytes of the array are used.
	Data [16]byte
}

// Slice returns a slice of Data correctly sized for the color's format.
func (c *Color) Slice() []byte {
	return c.slice(c.Format.ByteCount())
}

func (c *Color) slice(size int) []byte {
	return c.Data[:size:size]
}

// Canonical returns the color as straight RGBA floats. Colors in
// formats that can't be converted read as transparent black.
func (c *Color) Canonical() pixel.RGBA128F {
	var dst [1]pixel.RGBA128F
	err := pixel.ToCanonical(dst[:], c.Slice(), c.Format)
	if err != nil {
		return pixel.RGBA128F{}
	}
	return dst[0]
}

func (c *Color) RGBA() (r, g, b, a uint32) {
	v := c.Canonical()
	a32 := unit(v.A)
	return scale(unit(v.R), a32), scale(unit(v.G), a32), scale(unit(v.B), a32), scale(a32, 1)
}

func (c *Color) set(src color.Color) {
	if sc, ok := src.(*Color); ok {
		conv, err := pixel.GetByteConverter(sc.Format, c.Format)
		if err == nil && conv(c.Slice(), sc.Slice()) == nil {
			return
		}
	}

	v := canonical(src)
	err := pixel.FromCanonical(c.Slice(), c.Format, []pixel.RGBA128F{v})
	if err != nil {
		pixel.Logger().Debug().Err(err).Msg("color not representable")
		clear(c.Data[:])
	}
}

// canonical returns the straight RGBA value of c. Straight colors
// from image/color are read directly to avoid an extra round trip
// through premultiplied 16-bit values.
func canonical(c color.Color) pixel.RGBA128F {
	switch c := c.(type) {
	case color.NRGBA:
		return pixel.RGBA32{R: c.R, G: c.G, B: c.B, A: c.A}.ToCanonical()
	case color.NRGBA64:
		return pixel.RGBA128F{
			R: float32(c.R) / 0xFFFF,
			G: float32(c.G) / 0xFFFF,
			B: float32(c.B) / 0xFFFF,
			A: float32(c.A) / 0xFFFF,
		}
	case color.Gray:
		return pixel.Luminance8{L: c.Y}.ToCanonical()
	case color.Gray16:
		return pixel.Luminance16{L: c.Y}.ToCanonical()
	}

	r, g, b, a := c.RGBA()
	return pixel.RGBA128F{
		R: float32(r) / 0xFFFF,
		G: float32(g) / 0xFFFF,
		B: float32(b) / 0xFFFF,
		A: float32(a) / 0xFFFF,
	}.Unpremul()
}

// unit clamps v to [0, 1].
func unit(v float32) float32 {
	switch {
	case !(v > 0):
		return 0
	case v > 1:
		return 1
	}
	return v
}

func scale(v, a float32) uint32 {
	return uint32(v*a*0xFFFF + 0.5)
}

// Image is an image with a color format defined by Format.
type Image struct {
	Format pixel.Format
	Rect   image.Rectangle

	// Stride is the distance in bytes between vertically adjacent
	// pixels.
	Stride int
	Pix    []byte
}

// New returns a new Image of the given format and bounds with tightly
// packed rows.
func New(f pixel.Format, r image.Rectangle) *Image {
	stride := f.RowBytes(r.Dx())
	return &Image{
		Format: f,
		Rect:   r,
		Stride: stride,
		Pix:    make([]byte, stride*r.Dy()),
	}
}

// Wrap returns an Image of the given format and size at the origin
// backed by buf. It returns nil if buf is too short.
func Wrap(f pixel.Format, w, h int, buf []byte) *Image {
	stride := f.RowBytes(w)
	if w < 0 || h < 0 || len(buf) < stride*h {
		return nil
	}
	return &Image{
		Format: f,
		Rect:   rect(w, h),
		Stride: stride,
		Pix:    buf[:stride*h],
	}
}

func (img *Image) Bounds() image.Rectangle { return img.Rect }

func (img *Image) ColorModel() color.Model { return Model{Format: img.Format} }

func (img *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(img.Rect)) {
		return &Color{Format: img.Format}
	}

	size := img.Format.ByteCount()
	c := Color{Format: img.Format}

	i := img.PixOffset(x, y)
	copy(c.slice(size), img.Pix[i:i+size:i+size])

	return &c
}

func (img *Image) PixOffset(x, y int) int {
	x -= img.Rect.Min.X
	y -= img.Rect.Min.Y
	return (img.Stride * y) + (x * img.Format.ByteCount())
}

func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}

	size := img.Format.ByteCount()
	c1 := img.ColorModel().Convert(c).(*Color)
	i := img.PixOffset(x, y)
	copy(img.Pix[i:i+size:i+size], c1.slice(size))
}

// SubImage returns an image representing the portion of img visible
// through r. The returned image shares pixels with img.
func (img *Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return &Image{Format: img.Format}
	}

	i := img.PixOffset(r.Min.X, r.Min.Y)
	return &Image{
		Format: img.Format,
		Rect:   r,
		Stride: img.Stride,
		Pix:    img.Pix[i:],
	}
}

// row returns the pixels of the yth row relative to the top of the
// image.
func (img *Image) row(y int) []byte {
	i := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
	return img.Pix[i : i+img.Format.RowBytes(img.Rect.Dx())]
}
