// Command pixconv converts raw pixel buffers between formats.
//
// The input is a file of tightly packed rows of pixels. The output is
// either the same pixels in another format or an encoded image:
//
//	pixconv -i frame.raw --width 640 --height 480 -s BGRA32 -d RGB24 -o frame.rgb
//	pixconv -i frame.raw --width 640 --height 480 -s BGR565 -e png -o frame.png
//
// Settings may also come from a YAML, JSON, or TOML file given with
// --config, or from pixconv.yaml in the working directory or the user's
// config directory. PIXCONV_ environment variables override the values
// of the file. Flags take precedence over both.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"deedles.dev/xpixel/pixel"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.0000"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func listFormats() {
	for _, l := range pixel.Layouts() {
		f := l.Format()
		fmt.Printf("%-12v %2d bytes  %08x\n", l, f.ByteCount(), f.AsUint32())
	}
}

func main() {
	c, err := ParseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	log := newLogger(c.Debug)
	pixel.SetLogger(log)

	if c.List {
		listFormats()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log.Debug().Msgf("config: %+v", c)
	if err := run(ctx, c); err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
}
