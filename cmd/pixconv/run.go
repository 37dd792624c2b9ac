package main

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"deedles.dev/xpixel/format"
	"deedles.dev/xpixel/pixel"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

func run(ctx context.Context, c Config) error {
	srcFormat, err := pixel.ParseFormat(c.Src)
	if err != nil {
		return fmt.Errorf("source format: %w", err)
	}

	data, err := readInput(c.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	src := format.Wrap(srcFormat, c.Width, c.Height, data)
	if src == nil {
		return fmt.Errorf("input has %v bytes, need %v for %vx%v %v", len(data), srcFormat.RowBytes(c.Width)*c.Height, c.Width, c.Height, srcFormat)
	}

	if c.Scale != 1 {
		src, err = scale(ctx, src, c.Scale, c.Workers)
		if err != nil {
			return fmt.Errorf("scale: %w", err)
		}
	}

	return writeOutput(c.Output, func(w io.Writer) error {
		return export(ctx, w, src, c)
	})
}

func export(ctx context.Context, w io.Writer, src *format.Image, c Config) error {
	if c.Export == "raw" {
		dstFormat, err := pixel.ParseFormat(c.Dst)
		if err != nil {
			return fmt.Errorf("destination format: %w", err)
		}

		dst := format.New(dstFormat, src.Rect)
		err = format.ConvertParallel(ctx, dst, src, c.Workers)
		if err != nil {
			return err
		}
		_, err = w.Write(dst.Pix)
		return err
	}

	img, err := toNRGBA(ctx, src, c.Workers)
	if err != nil {
		return err
	}

	switch c.Export {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("unknown export %q", c.Export)
	}
}

// toNRGBA converts img into an image.NRGBA, which shares its memory
// layout with RGBA32.
func toNRGBA(ctx context.Context, img *format.Image, workers int) (*image.NRGBA, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()))
	err := format.ConvertParallel(ctx, fromNRGBA(dst), img, workers)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

func fromNRGBA(img *image.NRGBA) *format.Image {
	return &format.Image{
		Format: pixel.FormatRGBA32,
		Rect:   img.Rect,
		Stride: img.Stride,
		Pix:    img.Pix,
	}
}

func scale(ctx context.Context, img *format.Image, factor float64, workers int) (*format.Image, error) {
	src, err := toNRGBA(ctx, img, workers)
	if err != nil {
		return nil, err
	}

	w := max(int(float64(img.Rect.Dx())*factor), 1)
	h := max(int(float64(img.Rect.Dy())*factor), 1)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return fromNRGBA(dst), nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, write func(io.Writer) error) error {
	if path == "-" {
		w := bufio.NewWriter(os.Stdout)
		if err := write(w); err != nil {
			return err
		}
		return w.Flush()
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := write(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Close()
}
