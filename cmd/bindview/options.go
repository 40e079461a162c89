package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const defaultConfig = "bindview.yaml"

// options are the settings of one invocation. They are read from the
// project file first; flags given on the command line override them.
type options struct {
	Pages    string `yaml:"pages"`
	Data     string `yaml:"data"`
	Page     string `yaml:"page"`
	Out      string `yaml:"out"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Measurer string `yaml:"measurer"`
	Pointer  string `yaml:"pointer"`
	Click    bool   `yaml:"click"`
	Verbose  bool   `yaml:"verbose"`
}

func defaultOptions() options {
	return options{
		Page:     "main",
		Out:      "page.png",
		Width:    800,
		Height:   600,
		Measurer: "gotext",
	}
}

// loadOptions reads the project file named by --config and applies the
// flags set on the command line. A missing default project file is not an
// error; relative paths in a project file are resolved against its
// directory.
func loadOptions(c *cli.Context) (options, error) {
	opts := defaultOptions()

	path := c.String("config")
	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("config %s: %w", path, err)
		}
		dir := filepath.Dir(path)
		opts.Pages = relTo(dir, opts.Pages)
		opts.Data = relTo(dir, opts.Data)
		opts.Out = relTo(dir, opts.Out)
	case errors.Is(err, fs.ErrNotExist) && !c.IsSet("config"):
	default:
		return opts, fmt.Errorf("config: %w", err)
	}

	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"pages", &opts.Pages},
		{"data", &opts.Data},
		{"page", &opts.Page},
		{"out", &opts.Out},
		{"measurer", &opts.Measurer},
		{"pointer", &opts.Pointer},
	} {
		if c.IsSet(f.name) {
			*f.dst = c.String(f.name)
		}
	}
	if c.IsSet("width") {
		opts.Width = c.Int("width")
	}
	if c.IsSet("height") {
		opts.Height = c.Int("height")
	}
	if c.IsSet("click") {
		opts.Click = c.Bool("click")
	}
	if c.IsSet("verbose") {
		opts.Verbose = c.Bool("verbose")
	}

	if opts.Pages == "" {
		return opts, errors.New("no page file: use --pages or set pages in " + defaultConfig)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("invalid viewport %dx%d", opts.Width, opts.Height)
	}
	return opts, nil
}

func relTo(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// parsePointer parses an "x,y" position. The empty string means no
// pointer.
func parsePointer(s string) (x, y float64, ok bool, err error) {
	if s == "" {
		return 0, 0, false, nil
	}
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false, fmt.Errorf("pointer %q: want x,y", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, false, fmt.Errorf("pointer %q: %w", s, err)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, false, fmt.Errorf("pointer %q: %w", s, err)
	}
	return x, y, true, nil
}
