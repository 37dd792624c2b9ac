// Package format adapts buffers of pixels in any pixel.Format to the
// image and image/color interfaces and converts whole images between
// formats a row at a time.
package format

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"deedles.dev/xpixel/pixel"
	"golang.org/x/sync/errgroup"
)

// Formats named after the little-endian words of the DRM and Wayland
// fourcc codes. ARGB8888 is the format of Xcursor images.
var (
	ARGB8888 = pixel.FormatBGRA32
	ABGR8888 = pixel.FormatRGBA32
	RGB888   = pixel.FormatBGR24
	BGR888   = pixel.FormatRGB24
	RGB565   = pixel.FormatBGR565
	ARGB4444 = pixel.FormatBGRA4444
	ARGB1555 = pixel.FormatBGRA5551
)

func checkSizes(dst, src *Image) error {
	if dst.Rect.Size() != src.Rect.Size() {
		return fmt.Errorf("size mismatch: %v and %v", dst.Rect.Size(), src.Rect.Size())
	}
	return nil
}

// Convert converts the pixels of src into dst, which must be the same
// size. The converter is resolved once and then run on each row.
func Convert(dst, src *Image) error {
	if err := checkSizes(dst, src); err != nil {
		return err
	}
	conv, err := pixel.GetByteConverter(src.Format, dst.Format)
	if err != nil {
		return fmt.Errorf("get converter: %w", err)
	}

	for y := range src.Rect.Dy() {
		err := conv(dst.row(y), src.row(y))
		if err != nil {
			return fmt.Errorf("row %d: %w", y, err)
		}
	}
	return nil
}

// ConvertParallel is like Convert but converts rows concurrently using
// up to workers goroutines. If workers is not positive, GOMAXPROCS is
// used. It stops early if ctx is canceled.
func ConvertParallel(ctx context.Context, dst, src *Image, workers int) error {
	if err := checkSizes(dst, src); err != nil {
		return err
	}
	conv, err := pixel.GetByteConverter(src.Format, dst.Format)
	if err != nil {
		return fmt.Errorf("get converter: %w", err)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y := range src.Rect.Dy() {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := conv(dst.row(y), src.row(y)); err != nil {
				return fmt.Errorf("row %d: %w", y, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// rect returns the bounds of an image of the given size at the origin.
func rect(w, h int) image.Rectangle {
	return image.Rect(0, 0, w, h)
}
