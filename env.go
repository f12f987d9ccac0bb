package ionic

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is the output width used when the terminal width is unknown.
const DefaultWidth = 80

// minTerminalWidth is the smallest terminal width that is trusted. Some
// terminals report nonsense such as 0 when the size is unavailable.
const minTerminalWidth = 4

// Environment variables consulted by [ApplyEnv] and [TerminalWidth].
const (
	EnvNoColor  = "NO_COLOR"
	EnvColumns  = "COLUMNS"
	EnvMaxWidth = "IONIC_MAX_WIDTH"
)

// TerminalWidth returns the column count of the terminal attached to standard
// output. It falls back to $COLUMNS and then [DefaultWidth] when the size is
// unavailable or implausibly small.
func TerminalWidth() int {
	return terminalWidth(int(os.Stdout.Fd()), os.Getenv)
}

func terminalWidth(fd int, getenv func(string) string) int {
	if w, _, err := term.GetSize(fd); err == nil && w >= minTerminalWidth {
		return w
	}
	if w, err := strconv.Atoi(strings.TrimSpace(getenv(EnvColumns))); err == nil && w >= minTerminalWidth {
		return w
	}
	return DefaultWidth
}

// ColorSupported reports whether f is a terminal that should receive color.
// It honors the NO_COLOR convention.
func ColorSupported(f *os.File) bool {
	if os.Getenv(EnvNoColor) != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ApplyEnv overrides opts from the environment: a non-empty NO_COLOR disables
// color and a positive IONIC_MAX_WIDTH sets the output width. Pass
// [os.Getenv] for the process environment.
func ApplyEnv(opts Options, getenv func(string) string) Options {
	if getenv(EnvNoColor) != "" {
		opts.ColorEnabled = false
	}
	if v := strings.TrimSpace(getenv(EnvMaxWidth)); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			opts.MaxWidth = w
		}
	}
	return opts
}
