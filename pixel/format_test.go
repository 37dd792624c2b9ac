package pixel_test

import (
	"slices"
	"testing"

	"deedles.dev/xpixel/pixel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewFormatInvalid(t *testing.T) {
	tests := []struct {
		name string
		ids  []pixel.ElementID
	}{
		{"None", nil},
		{"OnlyEmpty", []pixel.ElementID{pixel.EmptyID}},
		{"SingleBit", []pixel.ElementID{pixel.Alpha1ID}},
		{"TenBits", []pixel.ElementID{pixel.Red5ID, pixel.Green5ID}},
		{"Gap", []pixel.ElementID{pixel.Red8ID, pixel.EmptyID, pixel.Blue8ID}},
		{"TooMany", []pixel.ElementID{pixel.Red8ID, pixel.Green8ID, pixel.Blue8ID, pixel.Alpha8ID, pixel.Alpha8ID}},
		{"Unknown", []pixel.ElementID{pixel.ElementID(0xFF)}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := pixel.NewFormat(test.ids...)
			require.True(t, errors.Is(err, pixel.ErrInvalidFormat), "%v", err)
		})
	}

	require.Panics(t, func() { pixel.MustFormat(pixel.Alpha4ID) })
}

func TestFormatProperties(t *testing.T) {
	f := pixel.FormatBGRA32
	require.Equal(t, 4, f.ByteCount())
	require.Equal(t, 4, f.ChannelCount())
	require.True(t, f.HasAlpha())
	require.False(t, f.HasPremul())
	require.False(t, f.IsFloating())
	require.True(t, f.IsDefined())

	off, ok := f.FindByteOffset(pixel.Red8ID)
	require.True(t, ok)
	require.Equal(t, 2, off)
	_, ok = f.FindByteOffset(pixel.Red32FID)
	require.False(t, ok)

	require.True(t, pixel.FormatRGBP32.HasPremul())
	require.True(t, pixel.FormatPRGB32.HasPremul())
	require.True(t, pixel.FormatRGB96F.IsFloating())
	require.False(t, pixel.FormatRGB96F.HasAlpha())
	require.Equal(t, 12, pixel.FormatRGB96F.ByteCount())
	require.Equal(t, 2, pixel.FormatBGR565.ByteCount())
	require.Equal(t, 16, pixel.FormatBGRA5551.BitCount())
	require.Equal(t, 40, pixel.FormatRGBA32.RowBytes(10))

	undef := pixel.MustFormat(pixel.Undefined8ID, pixel.Red8ID)
	require.False(t, undef.IsDefined())
	_, ok = undef.DefaultLayout()
	require.False(t, ok)
	require.Equal(t, "Undefined8|Red8", undef.String())
}

func TestFormatEquality(t *testing.T) {
	a := pixel.MustFormat(pixel.Blue8ID, pixel.Green8ID, pixel.Red8ID, pixel.Alpha8ID)
	require.Equal(t, pixel.FormatBGRA32, a)
	require.True(t, a == pixel.FormatBGRA32)

	b := pixel.MustFormat(pixel.Red8ID, pixel.EmptyID, pixel.EmptyID, pixel.EmptyID)
	require.Equal(t, pixel.MustFormat(pixel.Red8ID), b)
	require.NotEqual(t, pixel.FormatBGRA32, pixel.FormatRGBA32)
}

func TestFormatFromUint32(t *testing.T) {
	for _, l := range pixel.Layouts() {
		f := l.Format()
		f2, err := pixel.FormatFromUint32(f.AsUint32())
		require.NoError(t, err, l)
		require.Equal(t, f, f2, l)
	}

	_, err := pixel.FormatFromUint32(0)
	require.True(t, errors.Is(err, pixel.ErrInvalidFormat))
	_, err = pixel.FormatFromUint32(uint32(pixel.Red8ID) << 8)
	require.True(t, errors.Is(err, pixel.ErrInvalidFormat))
}

func TestFormatElements(t *testing.T) {
	f := pixel.FormatBGR24
	require.Equal(t,
		[]pixel.Element{pixel.Blue8ID.Element(), pixel.Green8ID.Element(), pixel.Red8ID.Element()},
		slices.Collect(f.Elements()),
	)
	require.True(t, f.ElementAt(3).IsEmpty())
	require.True(t, f.ElementAt(-1).IsEmpty())
	require.True(t, f.ElementAt(7).IsEmpty())
}

func TestElement(t *testing.T) {
	tests := []struct {
		id    pixel.ElementID
		bits  int
		role  pixel.Role
		check func(pixel.Element) bool
	}{
		{pixel.Alpha1ID, 1, pixel.RoleAlpha, pixel.Element.IsAlpha},
		{pixel.Red4ID, 4, pixel.RoleRed, pixel.Element.IsRed},
		{pixel.Green6ID, 6, pixel.RoleGreen, pixel.Element.IsGreen},
		{pixel.Blue5ID, 5, pixel.RoleBlue, pixel.Element.IsBlue},
		{pixel.Luminance16ID, 16, pixel.RoleLuminance, pixel.Element.IsGrey},
		{pixel.RedPremul8ID, 8, pixel.RoleRedPremul, pixel.Element.IsPremul},
		{pixel.BluePremul32FID, 32, pixel.RoleBluePremul, pixel.Element.IsBlue},
		{pixel.Undefined16ID, 16, pixel.RoleUndefined, pixel.Element.IsUndefined},
		{pixel.Alpha32FID, 32, pixel.RoleAlpha, pixel.Element.IsFloating},
	}
	for _, test := range tests {
		t.Run(test.id.String(), func(t *testing.T) {
			e := test.id.Element()
			require.Equal(t, test.bits, e.BitCount())
			require.Equal(t, test.role, test.id.Role())
			require.True(t, test.check(e))
		})
	}

	require.Equal(t, 2, pixel.Red16ID.Element().ByteCount())
	require.True(t, pixel.EmptyID.Element().IsEmpty())
	require.False(t, pixel.Red8ID.Element().IsPremul())
	require.Equal(t, "Red32F", pixel.Red32FID.String())
}

func TestDepthAndChannelCount(t *testing.T) {
	tests := []struct {
		depth pixel.Depth
		n     int
		want  pixel.Format
	}{
		{pixel.Depth8, 1, pixel.FormatLuminance8},
		{pixel.Depth8, 3, pixel.FormatRGB24},
		{pixel.Depth8, 4, pixel.FormatRGBA32},
		{pixel.Depth16, 1, pixel.FormatLuminance16},
		{pixel.Depth32F, 1, pixel.FormatLuminance32F},
		{pixel.Depth32F, 3, pixel.FormatRGB96F},
		{pixel.Depth32F, 4, pixel.FormatRGBA128F},
	}
	for _, test := range tests {
		f, err := pixel.FormatFromDepthAndChannels(test.depth, test.n)
		require.NoError(t, err)
		require.Equal(t, test.want, f)

		depth, n, ok := f.DepthAndChannelCount()
		require.True(t, ok)
		require.Equal(t, test.depth, depth)
		require.Equal(t, test.n, n)
	}

	_, err := pixel.FormatFromDepthAndChannels(pixel.Depth8, 2)
	require.True(t, errors.Is(err, pixel.ErrUnsupportedFormat))

	_, _, ok := pixel.FormatBGR565.DepthAndChannelCount()
	require.False(t, ok)
}

func TestLayouts(t *testing.T) {
	layouts := pixel.Layouts()
	require.Len(t, layouts, 21)
	for _, l := range layouts {
		f := l.Format()
		require.False(t, f.IsZero(), l)

		got, ok := f.DefaultLayout()
		require.True(t, ok, l)
		require.Equal(t, l, got)
		require.Equal(t, l.String(), f.String())

		parsed, err := pixel.ParseFormat(l.String())
		require.NoError(t, err)
		require.Equal(t, f, parsed)
	}

	f, err := pixel.ParseFormat("bgra32")
	require.NoError(t, err)
	require.Equal(t, pixel.FormatBGRA32, f)

	_, err = pixel.ParseFormat("YUV420")
	require.True(t, errors.Is(err, pixel.ErrUnsupportedFormat))
	require.True(t, pixel.LayoutUnknown.Format().IsZero())
}
