package pixel_test

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"runtime"
	"testing"

	"deedles.dev/xpixel/pixel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func randomPixels(rng *rand.Rand, f pixel.Format, n int) []byte {
	buf := make([]byte, n*f.ByteCount())
	if f.IsFloating() {
		for i := 0; i < len(buf); i += 4 {
			binary.LittleEndian.PutUint32(buf[i:], math.Float32bits(rng.Float32()))
		}
		return buf
	}
	for i := range buf {
		buf[i] = byte(rng.UintN(256))
	}

	// Premultiplied color can not exceed alpha.
	if off, ok := f.FindByteOffset(pixel.Alpha8ID); ok && f.HasPremul() {
		size := f.ByteCount()
		for px := 0; px < len(buf); px += size {
			a := buf[px+off]
			for i := range size {
				if i != off {
					buf[px+i] = min(buf[px+i], a)
				}
			}
		}
	}
	return buf
}

// referenceConvert converts one pixel at a time through the canonical
// type.
func referenceConvert(t testing.TB, src, dst pixel.Format, in []byte) []byte {
	sn, dn := src.ByteCount(), dst.ByteCount()
	n := len(in) / sn
	out := make([]byte, n*dn)

	var c [1]pixel.RGBA128F
	for i := range n {
		require.NoError(t, pixel.ToCanonical(c[:], in[i*sn:(i+1)*sn], src))
		require.NoError(t, pixel.FromCanonical(out[i*dn:(i+1)*dn], dst, c[:]))
	}
	return out
}

func TestConverterCompleteness(t *testing.T) {
	const n = 97
	rng := rand.New(rand.NewPCG(1, 2))

	for _, sl := range pixel.Layouts() {
		for _, dl := range pixel.Layouts() {
			src, dst := sl.Format(), dl.Format()
			t.Run(sl.String()+"To"+dl.String(), func(t *testing.T) {
				conv, err := pixel.GetByteConverter(src, dst)
				require.NoError(t, err)

				in := randomPixels(rng, src, n)
				out := make([]byte, n*dst.ByteCount())
				require.NoError(t, conv(out, in))
				if src == dst {
					require.Equal(t, in, out)
					return
				}
				require.Equal(t, referenceConvert(t, src, dst, in), out)
			})
		}
	}
}

func TestConverterBlocks(t *testing.T) {
	n := 2*pixel.BlockSize + 7
	rng := rand.New(rand.NewPCG(3, 4))
	in := randomPixels(rng, pixel.FormatBGRA4444, n)

	conv, err := pixel.GetByteConverter(pixel.FormatBGRA4444, pixel.FormatRGBP128F)
	require.NoError(t, err)
	out := make([]byte, n*16)
	require.NoError(t, conv(out, in))
	require.Equal(t, referenceConvert(t, pixel.FormatBGRA4444, pixel.FormatRGBP128F, in), out)
}

// TestRoundTrip8Bit checks that every channel value of every byte
// layout survives a trip through the canonical type.
func TestRoundTrip8Bit(t *testing.T) {
	for _, l := range pixel.Layouts() {
		f := l.Format()
		if depth, _, _ := f.DepthAndChannelCount(); depth != pixel.Depth8 {
			continue
		}

		t.Run(l.String(), func(t *testing.T) {
			n := f.ChannelCount()
			for ch := range n {
				for v := range 256 {
					px := make([]byte, n)
					for i := range n {
						e := f.ElementAt(i)
						switch {
						case e.IsAlpha():
							px[i] = 255
						case e.IsPremul():
							px[i] = 100
						default:
							px[i] = 128
						}
					}
					if f.ElementAt(ch).IsAlpha() && f.HasPremul() {
						clear(px)
					}
					px[ch] = byte(v)

					requireRoundTrip(t, f, px)
				}
			}
		})
	}
}

// TestRoundTripPacked checks every possible value of the 16-bit
// layouts.
func TestRoundTripPacked(t *testing.T) {
	layouts := []pixel.Format{
		pixel.FormatBGR565,
		pixel.FormatBGRA5551,
		pixel.FormatBGRA4444,
		pixel.FormatLuminance16,
	}
	for _, f := range layouts {
		t.Run(f.String(), func(t *testing.T) {
			px := make([]byte, 2)
			for v := range 1 << 16 {
				binary.LittleEndian.PutUint16(px, uint16(v))
				requireRoundTrip(t, f, px)
			}
		})
	}
}

func requireRoundTrip(t *testing.T, f pixel.Format, px []byte) {
	t.Helper()

	var c [1]pixel.RGBA128F
	require.NoError(t, pixel.ToCanonical(c[:], px, f))
	out := make([]byte, len(px))
	require.NoError(t, pixel.FromCanonical(out, f, c[:]))
	require.Equal(t, px, out, "%v via %+v", f, c[0])
}

func TestConverterScenario(t *testing.T) {
	in := []byte{10, 20, 30, 128}

	conv, err := pixel.GetByteConverter(pixel.FormatBGRA32, pixel.FormatRGBP32)
	require.NoError(t, err)
	out := make([]byte, 4)
	require.NoError(t, conv(out, in))
	require.Equal(t, []byte{15, 10, 5, 128}, out)

	back, err := pixel.GetByteConverter(pixel.FormatRGBP32, pixel.FormatBGRA32)
	require.NoError(t, err)
	res := make([]byte, 4)
	require.NoError(t, back(res, out))
	require.Equal(t, in, res)

	// The canonical path must agree with the integer one.
	rgbp := make([]byte, 4)
	var c [1]pixel.RGBA128F
	require.NoError(t, pixel.ToCanonical(c[:], in, pixel.FormatBGRA32))
	require.NoError(t, pixel.FromCanonical(rgbp, pixel.FormatRGBP32, c[:]))
	require.Equal(t, out, rgbp)
}

func TestConverterLengthMismatch(t *testing.T) {
	conv, err := pixel.GetByteConverter(pixel.FormatRGB24, pixel.FormatRGB96F)
	require.NoError(t, err)

	src := make([]byte, 3*4)
	dst := make([]byte, 12*3)
	for i := range dst {
		dst[i] = 0xAA
	}
	err = conv(dst, src)
	require.True(t, errors.Is(err, pixel.ErrLengthMismatch), "%v", err)
	for _, b := range dst {
		require.Equal(t, byte(0xAA), b)
	}

	err = conv(make([]byte, 12*4), make([]byte, 3*4+1))
	require.True(t, errors.Is(err, pixel.ErrLengthMismatch))

	require.NoError(t, conv(nil, nil))
}

func TestConverterOverlap(t *testing.T) {
	conv, err := pixel.GetByteConverter(pixel.FormatBGRA32, pixel.FormatRGBA128F)
	require.NoError(t, err)

	buf := make([]byte, 16*4)
	err = conv(buf, buf[:16])
	require.True(t, errors.Is(err, pixel.ErrOverlap))

	ident, err := pixel.GetByteConverter(pixel.FormatBGRA32, pixel.FormatBGRA32)
	require.NoError(t, err)
	copy(buf, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, ident(buf[4:12], buf[:8]))
	require.Equal(t, []byte{1, 2, 3, 4, 1, 2, 3, 4, 5, 6, 7, 8}, buf[:12])
}

func TestConverterUnsupported(t *testing.T) {
	undef := pixel.MustFormat(pixel.Undefined8ID, pixel.Undefined8ID, pixel.Undefined8ID, pixel.Undefined8ID)

	_, err := pixel.GetByteConverter(undef, pixel.FormatBGRA32)
	require.True(t, errors.Is(err, pixel.ErrUnsupportedFormat), "%v", err)
	_, err = pixel.GetByteConverter(pixel.FormatBGRA32, undef)
	require.True(t, errors.Is(err, pixel.ErrUnsupportedFormat), "%v", err)

	_, err = pixel.GetByteConverter(pixel.Format{}, pixel.FormatBGRA32)
	require.True(t, errors.Is(err, pixel.ErrInvalidFormat), "%v", err)

	conv, err := pixel.GetByteConverter(undef, undef)
	require.NoError(t, err)
	out := make([]byte, 4)
	require.NoError(t, conv(out, []byte{1, 2, 3, 4}))
	require.Equal(t, []byte{1, 2, 3, 4}, out)
}

func TestConverterPlanar(t *testing.T) {
	gbr := pixel.MustFormat(pixel.Green8ID, pixel.Blue8ID, pixel.Red8ID)
	_, ok := gbr.DefaultLayout()
	require.False(t, ok)

	conv, err := pixel.GetByteConverter(gbr, pixel.FormatRGB24)
	require.NoError(t, err)
	out := make([]byte, 6)
	require.NoError(t, conv(out, []byte{2, 3, 1, 5, 6, 4}))
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, out)

	conv, err = pixel.GetByteConverter(pixel.FormatRGB96F, pixel.FormatBGR96F)
	require.NoError(t, err)
	in := make([]byte, 12)
	binary.LittleEndian.PutUint32(in[0:], math.Float32bits(0.25))
	binary.LittleEndian.PutUint32(in[4:], math.Float32bits(2))
	binary.LittleEndian.PutUint32(in[8:], math.Float32bits(-1))
	fout := make([]byte, 12)
	require.NoError(t, conv(fout, in))
	require.Equal(t, in[8:12], fout[0:4])
	require.Equal(t, in[4:8], fout[4:8])
	require.Equal(t, in[0:4], fout[8:12])

	// Premultiplied channels never take the planar path.
	prgb := pixel.MustFormat(pixel.GreenPremul8ID, pixel.BluePremul8ID, pixel.RedPremul8ID)
	_, err = pixel.GetByteConverter(prgb, pixel.FormatRGB24)
	require.True(t, errors.Is(err, pixel.ErrUnsupportedFormat))
}

func TestConverterBoundedMemory(t *testing.T) {
	const n = 1_000_000
	src := make([]byte, n*pixel.FormatBGR565.ByteCount())
	dst := make([]byte, n*pixel.FormatRGBA128F.ByteCount())

	conv, err := pixel.GetByteConverter(pixel.FormatBGR565, pixel.FormatRGBA128F)
	require.NoError(t, err)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	require.NoError(t, conv(dst, src))
	runtime.ReadMemStats(&after)

	// The canonical form of a million pixels is 16 MB.
	require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))

	allocs := testing.AllocsPerRun(5, func() { _ = conv(dst, src) })
	require.LessOrEqual(t, allocs, 1.0)
}

func TestTypedConverter(t *testing.T) {
	src := []pixel.BGRA32{{B: 10, G: 20, R: 30, A: 128}, {B: 255, A: 255}}
	dst := make([]pixel.RGBP32, len(src))
	require.NoError(t, pixel.ConvertPixels(dst, src))
	require.Equal(t, []pixel.RGBP32{{PreR: 15, PreG: 10, PreB: 5, A: 128}, {PreB: 255, A: 255}}, dst)

	conv, err := pixel.GetConverter[pixel.RGB96F, pixel.BGR565]()
	require.NoError(t, err)
	out := make([]pixel.RGB96F, 1)
	require.NoError(t, conv(out, []pixel.BGR565{pixel.NewBGR565(255, 0, 255)}))
	require.Equal(t, []pixel.RGB96F{{R: 1, B: 1}}, out)

	err = conv(out, make([]pixel.BGR565, 2))
	require.True(t, errors.Is(err, pixel.ErrLengthMismatch))

	require.Equal(t, pixel.FormatBGRA32, pixel.IdentifyPixel[pixel.BGRA32]())
	require.Equal(t,
		pixel.MustFormat(pixel.Undefined32FID),
		pixel.IdentifyPixel[uint32](),
	)
	require.Equal(t,
		pixel.MustFormat(pixel.Undefined16ID, pixel.Undefined8ID),
		pixel.IdentifyPixel[[3]byte](),
	)
	require.True(t, pixel.IdentifyPixel[[64]byte]().IsZero())

	words := []uint32{0xDEADBEEF, 0x01020304}
	copied := make([]uint32, 2)
	require.NoError(t, pixel.ConvertPixels(copied, words))
	require.Equal(t, words, copied)

	_, err = pixel.GetConverter[pixel.BGRA32, uint32]()
	require.True(t, errors.Is(err, pixel.ErrUnsupportedFormat))
}

func BenchmarkConvert(b *testing.B) {
	const n = 1920
	pairs := []struct {
		name     string
		src, dst pixel.Format
	}{
		{"Identity", pixel.FormatBGRA32, pixel.FormatBGRA32},
		{"Planar", pixel.FormatRGB24, pixel.FormatBGR24},
		{"Pair", pixel.FormatBGRA32, pixel.FormatRGBP32},
		{"Canonical", pixel.FormatBGR565, pixel.FormatRGBA128F},
	}
	for _, p := range pairs {
		b.Run(p.name, func(b *testing.B) {
			conv, err := pixel.GetByteConverter(p.src, p.dst)
			require.NoError(b, err)
			src := make([]byte, n*p.src.ByteCount())
			dst := make([]byte, n*p.dst.ByteCount())

			b.ReportAllocs()
			for b.Loop() {
				_ = conv(dst, src)
			}
		})
	}
}
