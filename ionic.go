package ionic

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrColumnMismatch   = errors.New("column count mismatch")
	ErrInvalidWidth     = errors.New("invalid width")
	ErrInvalidColumn    = errors.New("invalid column")
	ErrOutOfRange       = errors.New("index out of range")
	ErrMissingInterface = errors.New("missing required interface")
	ErrUnknownColor     = errors.New("unknown color")
	ErrUnknownAlignment = errors.New("unknown alignment")
	ErrUnknownBorder    = errors.New("unknown border style")
	ErrInvalidGlyph     = errors.New("invalid border glyph")
)

var discardLogger = slog.New(slog.DiscardHandler)

// --- Core Interfaces ---

// Rower provides row data. Required by [Write].
type Rower interface {
	Row() []string
}

// --- Optional Interfaces ---

// Headed provides a header row, rendered as the first table row.
// Default: no header.
type Headed interface {
	Header() []string
}

// Columned declares the column formats.
// Default: every column is [Flexible].
type Columned interface {
	Columns() []Column
}

// Aligned sets per-column alignment.
// Default: [Options.Alignment].
type Aligned interface {
	Alignments() []Alignment
}

// Colored sets per-column text colors.
// Default: [Options.TextColor]. [Default] entries leave the column unchanged.
type Colored interface {
	Colors() []Color
}

// --- Value Types ---

// BorderStyle selects the glyphs used for borders and dividers.
type BorderStyle int

const (
	BorderASCII   BorderStyle = iota // +-|
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
	BorderNone                       // No borders or dividers, space-separated columns
	BorderCustom                     // Options.HChar, VChar and CornerChar
)

var borderNames = map[BorderStyle]string{
	BorderASCII:   "ascii",
	BorderRounded: "rounded",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
	BorderNone:    "none",
	BorderCustom:  "custom",
}

// String returns the style name accepted by [ParseBorderStyle].
func (b BorderStyle) String() string {
	if s, ok := borderNames[b]; ok {
		return s
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorderStyle parses a border style name.
func ParseBorderStyle(s string) (BorderStyle, error) {
	key := normalizeName(s)
	for b, name := range borderNames {
		if name == key {
			return b, nil
		}
	}
	return BorderASCII, fmt.Errorf("%w: %q", ErrUnknownBorder, s)
}

// MarshalYAML encodes the style by name.
func (b BorderStyle) MarshalYAML() (any, error) { return b.String(), nil }

// UnmarshalYAML decodes a style name.
func (b *BorderStyle) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParseBorderStyle(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Alignment controls how text is padded within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name accepted by [ParseAlignment].
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment parses "left", "center" (or "centre") and "right".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return AlignLeft, nil
	case "center", "centre", "c":
		return AlignCenter, nil
	case "right", "r":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// MarshalYAML encodes the alignment by name.
func (a Alignment) MarshalYAML() (any, error) { return a.String(), nil }

// UnmarshalYAML decodes an alignment name.
func (a *Alignment) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParseAlignment(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// FromItems builds a table from items implementing [Rower], applying the
// optional interfaces of the first item.
func FromItems[T any](opts Options, items ...T) (*Table, error) {
	t := New(opts)
	if len(items) == 0 {
		return t, nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return nil, fmt.Errorf("%w: table requires Rower, not implemented by %T", ErrMissingInterface, items[0])
	}

	if c, ok := first.(Columned); ok {
		if err := t.SetColumnFormat(c.Columns()); err != nil {
			return nil, err
		}
	}
	if h, ok := first.(Headed); ok {
		if err := t.AddRow(h.Header()...); err != nil {
			return nil, err
		}
	}
	for i, item := range items {
		r, ok := any(item).(Rower)
		if !ok {
			return nil, fmt.Errorf("%w: item %d of type %T is not a Rower", ErrMissingInterface, i, item)
		}
		if err := t.AddRow(r.Row()...); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	if a, ok := first.(Aligned); ok {
		for col, align := range a.Alignments() {
			if col >= t.NumColumns() {
				break
			}
			if err := t.SetColumn(col, WithAlignment(align)); err != nil {
				return nil, err
			}
		}
	}
	if c, ok := first.(Colored); ok {
		for col, color := range c.Colors() {
			if col >= t.NumColumns() {
				break
			}
			if color == Default {
				continue
			}
			if err := t.SetColumn(col, WithColor(color)); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// Write renders items as a table and writes it to w.
func Write[T any](w io.Writer, opts Options, items ...T) error {
	t, err := FromItems(opts, items...)
	if err != nil {
		return err
	}
	_, err = t.WriteTo(w)
	return err
}

// Marshal renders items as a table and returns the bytes.
func Marshal[T any](opts Options, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, opts, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
