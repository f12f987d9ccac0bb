package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bjaus/ionic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// config is the file format of --config: table options plus an optional
// column format.
type config struct {
	ionic.Options `yaml:",inline"`
	Columns       []ionic.Column `yaml:"columns,omitempty"`
}

// tableParams are the layout flags shared by the rendering commands.
type tableParams struct {
	columns       string
	width         int
	indent        int
	border        string
	align         string
	color         string
	noOuterBorder bool
	noHDivider    bool
	noVDivider    bool
}

func (p *tableParams) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&p.columns, "columns", "", `column formats, e.g. "fixed:2,flex,flex"`)
	fs.IntVarP(&p.width, "width", "w", 0, "total output width (default: terminal width)")
	fs.IntVar(&p.indent, "indent", 0, "spaces in front of every line")
	fs.StringVar(&p.border, "border", "ascii", "border style: ascii, rounded, heavy, double, none")
	fs.StringVar(&p.align, "align", "left", "default alignment: left, center, right")
	fs.StringVar(&p.color, "color", "auto", "emit color: auto, always, never")
	fs.BoolVar(&p.noOuterBorder, "no-outer-border", false, "omit the frame around the table")
	fs.BoolVar(&p.noHDivider, "no-hdivider", false, "omit the lines between rows")
	fs.BoolVar(&p.noVDivider, "no-vdivider", false, "separate columns with spaces instead of lines")
}

// loadConfig reads --config, or returns the defaults when it is not set.
func loadConfig(path string, logger *slog.Logger) (config, error) {
	cfg := config{Options: ionic.DefaultOptions()}
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	logger.Debug("loaded config", "path", path, "columns", len(cfg.Columns))
	return cfg, nil
}

// resolve applies the config file, the environment and then every flag the
// user set, in that order of increasing precedence.
func (p *tableParams) resolve(cmd *cobra.Command, configFile string, logger *slog.Logger) (ionic.Options, []ionic.Column, error) {
	cfg, err := loadConfig(configFile, logger)
	if err != nil {
		return ionic.Options{}, nil, err
	}
	opts := ionic.ApplyEnv(cfg.Options, os.Getenv)
	cols := cfg.Columns

	fs := cmd.Flags()
	if fs.Changed("columns") {
		if cols, err = ionic.ParseColumns(p.columns); err != nil {
			return ionic.Options{}, nil, err
		}
	}
	if fs.Changed("width") {
		opts.MaxWidth = p.width
	}
	if fs.Changed("indent") {
		opts.Indent = p.indent
	}
	if fs.Changed("border") {
		if opts.Border, err = ionic.ParseBorderStyle(p.border); err != nil {
			return ionic.Options{}, nil, err
		}
	}
	if fs.Changed("align") {
		if opts.Alignment, err = ionic.ParseAlignment(p.align); err != nil {
			return ionic.Options{}, nil, err
		}
	}
	if p.noOuterBorder {
		opts.OuterBorder = false
	}
	if p.noHDivider {
		opts.InnerHDivider = false
	}
	if p.noVDivider {
		opts.InnerVDivider = false
	}

	switch p.color {
	case "always":
		opts.ColorEnabled = true
	case "never":
		opts.ColorEnabled = false
	case "auto":
		opts.ColorEnabled = opts.ColorEnabled && ionic.ColorSupported(os.Stdout)
	default:
		return ionic.Options{}, nil, fmt.Errorf("invalid --color %q: want auto, always or never", p.color)
	}

	opts.Logger = logger
	if err := opts.Validate(); err != nil {
		return ionic.Options{}, nil, err
	}
	return opts, cols, nil
}
