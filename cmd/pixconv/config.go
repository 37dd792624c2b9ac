package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kkyr/fig"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables that override
// values in a config file, such as PIXCONV_SRC.
const EnvPrefix = "PIXCONV"

// Config describes a single conversion.
type Config struct {
	Input  string `fig:"input"`
	Output string `fig:"output"`
	Width  int    `fig:"width"`
	Height int    `fig:"height"`

	// Src and Dst are format names as accepted by pixel.ParseFormat.
	Src string `fig:"src" default:"BGRA32"`
	Dst string `fig:"dst" default:"RGBA32"`

	// Export is one of raw, png, bmp, or tiff. Only raw output uses
	// Dst.
	Export string  `fig:"export" default:"raw"`
	Scale  float64 `fig:"scale" default:"1"`

	Workers int  `fig:"workers"`
	Debug   bool `fig:"debug"`
	List    bool
}

// DefaultConfigName is the config file looked for when none is
// given explicitly.
const DefaultConfigName = "pixconv.yaml"

func defaultConfig() Config {
	return Config{
		Src:    "BGRA32",
		Dst:    "RGBA32",
		Export: "raw",
		Scale:  1,
	}
}

// configDirs returns the directories searched for DefaultConfigName.
func configDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "pixconv"))
	}
	return dirs
}

// findConfig returns the directory of the first of dirs containing
// name.
func findConfig(name string, dirs []string) (string, bool) {
	for _, dir := range dirs {
		info, err := os.Stat(filepath.Join(dir, name))
		if err == nil && !info.IsDir() {
			return dir, true
		}
	}
	return "", false
}

// LoadConfig reads the config file at path into a new Config, with
// PIXCONV_ environment variables overriding its values. If path is
// empty, DefaultConfigName is searched for in the working directory
// and the user's config directory. Without a config file the defaults
// are returned as is.
func LoadConfig(path string) (Config, error) {
	c := defaultConfig()

	name, dirs := DefaultConfigName, configDirs()
	if path != "" {
		name, dirs = filepath.Base(path), []string{filepath.Dir(path)}
	}
	dir, ok := findConfig(name, dirs)
	if !ok {
		if path != "" {
			return c, fmt.Errorf("config file %q not found", path)
		}
		return c, nil
	}

	err := fig.Load(&c, fig.File(name), fig.Dirs(dir), fig.UseEnv(EnvPrefix))
	if err != nil {
		return c, fmt.Errorf("load config: %w", err)
	}
	return c, nil
}

// AddFlags registers flags overriding the fields of c on fs, using the
// current values as defaults.
func (c *Config) AddFlags(fs *pflag.FlagSet) *Config {
	fs.StringVarP(&c.Input, "input", "i", c.Input, "input file of raw pixels, or - for stdin")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output file, or - for stdout")
	fs.IntVar(&c.Width, "width", c.Width, "image width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "image height in pixels")
	fs.StringVarP(&c.Src, "src", "s", c.Src, "format of the input pixels")
	fs.StringVarP(&c.Dst, "dst", "d", c.Dst, "format of the output pixels")
	fs.StringVarP(&c.Export, "export", "e", c.Export, "output encoding: raw, png, bmp, or tiff")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "scale factor applied before writing")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of rows converted concurrently, or 0 for one per CPU")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.BoolVar(&c.List, "formats", c.List, "list supported formats and exit")
	return c
}

// Validate checks the fields that can be checked without reading the
// input.
func (c *Config) Validate() error {
	if c.List {
		return nil
	}
	if c.Input == "" {
		return fmt.Errorf("no input file")
	}
	if c.Output == "" {
		return fmt.Errorf("no output file")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %vx%v", c.Width, c.Height)
	}
	if !(c.Scale > 0) {
		return fmt.Errorf("invalid scale %v", c.Scale)
	}
	switch c.Export {
	case "raw", "png", "bmp", "tiff":
	default:
		return fmt.Errorf("unknown export %q", c.Export)
	}
	return nil
}

// ParseArgs loads the config and applies the command-line arguments
// over it. The config file is named by the --config flag.
func ParseArgs(name string, args []string) (Config, error) {
	pre := pflag.NewFlagSet(name, pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	path := pre.StringP("config", "c", "", "config file")
	pre.SetOutput(io.Discard)
	_ = pre.Parse(args)

	c, err := LoadConfig(*path)
	if err != nil {
		return c, err
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", *path, "config file")
	c.AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	return c, c.Validate()
}
