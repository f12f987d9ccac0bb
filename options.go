package ionic

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Options controls the layout and decoration of a [Table]. The zero value is
// not the default; start from [DefaultOptions].
type Options struct {
	// OuterBorder draws the frame around the table.
	OuterBorder bool `yaml:"outer_border"`
	// InnerHDivider draws a horizontal line between rows.
	InnerHDivider bool `yaml:"inner_h_divider"`
	// InnerVDivider draws a vertical line between columns. Without it columns
	// are separated by two spaces.
	InnerVDivider bool `yaml:"inner_v_divider"`

	Border BorderStyle `yaml:"border"`
	// HChar, VChar and CornerChar are the glyphs of [BorderCustom].
	HChar      string `yaml:"h_char,omitempty"`
	VChar      string `yaml:"v_char,omitempty"`
	CornerChar string `yaml:"corner_char,omitempty"`

	// MaxWidth is the total output width. Zero uses the terminal width.
	MaxWidth int `yaml:"max_width"`
	// Indent is the number of spaces in front of every line.
	Indent int `yaml:"indent"`

	TableColor Color     `yaml:"table_color"`
	TextColor  Color     `yaml:"text_color"`
	Alignment  Alignment `yaml:"alignment"`

	// ColorEnabled gates every escape sequence the table emits.
	ColorEnabled bool `yaml:"color"`

	// Logger receives debug records about layout decisions. Nil discards them.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns an ASCII bordered table with dividers, sized to the
// terminal, with color enabled.
func DefaultOptions() Options {
	return Options{
		OuterBorder:   true,
		InnerHDivider: true,
		InnerVDivider: true,
		Border:        BorderASCII,
		HChar:         "-",
		VChar:         "|",
		CornerChar:    "+",
		ColorEnabled:  true,
	}
}

// Validate reports options that cannot produce a table.
func (o Options) Validate() error {
	if o.MaxWidth < 0 {
		return fmt.Errorf("%w: max width %d", ErrInvalidWidth, o.MaxWidth)
	}
	if o.Indent < 0 {
		return fmt.Errorf("%w: indent %d", ErrInvalidWidth, o.Indent)
	}
	if _, ok := borderNames[o.Border]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBorder, int(o.Border))
	}
	if o.Border == BorderCustom {
		for name, glyph := range map[string]string{"h_char": o.HChar, "v_char": o.VChar, "corner_char": o.CornerChar} {
			if len([]rune(glyph)) != 1 {
				return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidGlyph, name, glyph)
			}
		}
	}
	return nil
}

// LoadOptions decodes YAML options on top of [DefaultOptions]. Keys that are
// absent keep their default. An empty document yields the defaults.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("decoding options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// MarshalOptions encodes opts as YAML.
func MarshalOptions(w io.Writer, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return err
	}
	return enc.Close()
}
