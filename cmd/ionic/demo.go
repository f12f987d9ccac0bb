package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/ionic"
	"github.com/spf13/cobra"
)

const orwell = "It was a bright cold day in April, and the clocks were striking thirteen."

func newDemoCommand(global *globalParams) *cobra.Command {
	var (
		table tableParams
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print sample tables",
		Long: `Demo prints a set of sample tables: the four border and divider
combinations, a table shrunk to 50 columns, the color palette and the three
alignments. Layout flags apply to every sample.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, _, err := table.resolve(cmd, global.configFile, global.newLogger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			return demo(cmd.OutOrStdout(), opts, all)
		},
	}
	table.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "also print the custom glyph and fixed-width samples")
	return cmd
}

type sample struct {
	title string
	build func(opts ionic.Options) (*ionic.Table, error)
	ruler bool
}

func demo(w io.Writer, opts ionic.Options, all bool) error {
	samples := []sample{
		{title: "outer border, row dividers", build: dividers(true, true)},
		{title: "row dividers only", build: dividers(false, true)},
		{title: "outer border only", build: dividers(true, false)},
		{title: "no borders", build: dividers(false, false)},
		{title: "shrunk to 50 columns", build: shrunk, ruler: true},
		{title: "colors", build: palette},
		{title: "alignment", build: alignment},
	}
	if all {
		samples = append(samples,
			sample{title: "custom glyphs", build: glyphs},
			sample{title: "fixed width 15", build: fixed15},
		)
	}

	for _, s := range samples {
		t, err := s.build(opts)
		if err != nil {
			return fmt.Errorf("building %q: %w", s.title, err)
		}
		if _, err := fmt.Fprintf(w, "%s:\n", s.title); err != nil {
			return err
		}
		if _, err := t.WriteTo(w); err != nil {
			return err
		}
		if s.ruler {
			if _, err := fmt.Fprintln(w, ruler(t.Options().MaxWidth)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// ruler returns a digit ruler of width n.
func ruler(n int) string {
	var sb strings.Builder
	for i := range n {
		sb.WriteByte(byte('0' + i%10))
	}
	return sb.String()
}

func addRows(t *ionic.Table, rows ...[]string) error {
	for _, row := range rows {
		if err := t.AddRow(row...); err != nil {
			return err
		}
	}
	return nil
}

func dividers(outer, hdiv bool) func(ionic.Options) (*ionic.Table, error) {
	return func(opts ionic.Options) (*ionic.Table, error) {
		opts.OuterBorder = outer
		opts.InnerHDivider = hdiv
		t := ionic.New(opts)
		if err := t.SetColumnFormat([]ionic.Column{ionic.FixedColumn(2), ionic.FlexColumn(), ionic.FlexColumn()}); err != nil {
			return nil, err
		}
		return t, addRows(t,
			[]string{"0", "A", "The Outer World"},
			[]string{"1", "Hello", "And Another"},
			[]string{"2", "World", "Further Out"},
		)
	}
}

func shrunk(opts ionic.Options) (*ionic.Table, error) {
	opts.MaxWidth = 50
	t := ionic.New(opts)
	err := t.SetColumnFormat([]ionic.Column{
		ionic.FixedColumn(1),
		ionic.FixedColumn(4),
		ionic.FlexColumn(),
		ionic.FlexColumn(),
		ionic.FlexColumn(),
	})
	if err != nil {
		return nil, err
	}
	return t, addRows(t,
		[]string{"1", "4", "Dyn", "Dyn", "Dyn"},
		[]string{"a", "TooLong", "ABCDEFGHIJKLMNOPQRSTUVWXYZ\nABCDEFGHIJKLMNOPQRSTUVWXYZ", "Hello", orwell},
	)
}

func palette(opts ionic.Options) (*ionic.Table, error) {
	opts.TableColor = ionic.Blue
	t := ionic.New(opts)
	err := addRows(t,
		[]string{"", "Color", "Color", "Color", "Color", "Color", "Color"},
		[]string{"Normal", "Red", "Green", "Blue", "Yellow", "Magenta", "Cyan"},
		[]string{"Bright", "Red", "Green", "Blue", "Yellow", "Magenta", "Cyan"},
	)
	if err != nil {
		return nil, err
	}
	if err := t.SetRow(0, ionic.WithColor(ionic.White)); err != nil {
		return nil, err
	}
	if err := t.SetCell(2, 0, ionic.WithColor(ionic.White)); err != nil {
		return nil, err
	}
	pairs := [][2]ionic.Color{
		{ionic.Red, ionic.BrightRed},
		{ionic.Green, ionic.BrightGreen},
		{ionic.Blue, ionic.BrightBlue},
		{ionic.Yellow, ionic.BrightYellow},
		{ionic.Magenta, ionic.BrightMagenta},
		{ionic.Cyan, ionic.BrightCyan},
	}
	for i, p := range pairs {
		if err := t.SetCell(1, i+1, ionic.WithColor(p[0])); err != nil {
			return nil, err
		}
		if err := t.SetCell(2, i+1, ionic.WithColor(p[1])); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func alignment(opts ionic.Options) (*ionic.Table, error) {
	t := ionic.New(opts)
	fixed := ionic.FixedColumn(10)
	if err := t.SetColumnFormat([]ionic.Column{fixed, fixed, fixed}); err != nil {
		return nil, err
	}
	err := t.AddRow("This is left aligned text", "This text is center aligned", "And finally this is right aligned")
	if err != nil {
		return nil, err
	}
	for i, a := range []ionic.Alignment{ionic.AlignLeft, ionic.AlignCenter, ionic.AlignRight} {
		if err := t.SetColumn(i, ionic.WithAlignment(a)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func glyphs(opts ionic.Options) (*ionic.Table, error) {
	opts.Border = ionic.BorderCustom
	opts.HChar, opts.VChar, opts.CornerChar = "=", "I", "O"
	t := ionic.New(opts)
	return t, addRows(t,
		[]string{"1", "4", "Dyn", "Dyn", "Dyn"},
		[]string{"a", "TooLong", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "Hello", orwell},
	)
}

func fixed15(opts ionic.Options) (*ionic.Table, error) {
	t := ionic.New(opts)
	if err := t.SetColumnFormat([]ionic.Column{ionic.FixedColumn(15)}); err != nil {
		return nil, err
	}
	return t, addRows(t, []string{"123456789012345"}, []string{orwell})
}
