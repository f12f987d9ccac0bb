package ionic

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a terminal foreground color.
type Color uint8

const (
	Default Color = iota // no decoration
	Gray
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	Reset
)

const resetCode = "\x1b[0m"

var colorCodes = [...]string{
	Default:       resetCode,
	Gray:          "\x1b[90m",
	Red:           "\x1b[31m",
	Green:         "\x1b[32m",
	Yellow:        "\x1b[33m",
	Blue:          "\x1b[34m",
	Magenta:       "\x1b[35m",
	Cyan:          "\x1b[36m",
	White:         "\x1b[97m",
	BrightRed:     "\x1b[91m",
	BrightGreen:   "\x1b[92m",
	BrightYellow:  "\x1b[93m",
	BrightBlue:    "\x1b[94m",
	BrightMagenta: "\x1b[95m",
	BrightCyan:    "\x1b[96m",
	Reset:         resetCode,
}

var colorNames = [...]string{
	Default:       "default",
	Gray:          "gray",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	BrightRed:     "bright-red",
	BrightGreen:   "bright-green",
	BrightYellow:  "bright-yellow",
	BrightBlue:    "bright-blue",
	BrightMagenta: "bright-magenta",
	BrightCyan:    "bright-cyan",
	Reset:         "reset",
}

// Colors returns every defined color, in declaration order.
func Colors() []Color {
	out := make([]Color, len(colorCodes))
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Code returns the ANSI escape sequence for c, or "" for an undefined color.
func (c Color) Code() string {
	if int(c) >= len(colorCodes) {
		return ""
	}
	return colorCodes[c]
}

// String returns the color name accepted by [ParseColor].
func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor parses a color name. Matching ignores case and treats "_" and
// " " like "-", so "BrightRed", "bright_red" and "bright red" are equivalent.
// "grey" is accepted for [Gray].
func ParseColor(s string) (Color, error) {
	key := normalizeName(s)
	if key == "grey" {
		return Gray, nil
	}
	for i, name := range colorNames {
		if strings.ReplaceAll(name, "-", "") == key {
			return Color(i), nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// MarshalYAML encodes the color by name.
func (c Color) MarshalYAML() (any, error) { return c.String(), nil }

// UnmarshalYAML decodes a color name.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// WrapWithColor surrounds text with code and the reset sequence. An empty
// code leaves text unchanged.
func WrapWithColor(code, text string) string {
	if code == "" {
		return text
	}
	return code + text + resetCode
}

// Colorize decorates text with c when enabled is true. [Default] and [Reset]
// never decorate.
func Colorize(c Color, text string, enabled bool) string {
	if !enabled || c == Default || c == Reset {
		return text
	}
	return WrapWithColor(c.Code(), text)
}

// normalizeName lowercases s and drops the separators allowed in names.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
