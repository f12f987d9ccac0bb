package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/ionic"
	"github.com/spf13/cobra"
)

func newWrapCommand() *cobra.Command {
	var (
		width int
		spans bool
	)
	cmd := &cobra.Command{
		Use:   "wrap [text...]",
		Short: "Word-wrap text to a width",
		Long: `Wrap breaks text at spaces and tabs so that no line is wider than --width,
keeping hard newlines. Text is read from the arguments, or from standard input
when none are given. With --spans every line is prefixed by its start, end and
next byte offsets.`,
		Example: `  ionic wrap --width 15 "It was a bright cold day in April"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(b)
			}
			if width < 0 {
				return fmt.Errorf("%w: width %d", ionic.ErrInvalidWidth, width)
			}
			return wrap(cmd.OutOrStdout(), text, width, spans)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "line width (default: terminal width)")
	cmd.Flags().BoolVar(&spans, "spans", false, "print the byte offsets of every line")
	return cmd
}

func wrap(w io.Writer, text string, width int, spans bool) error {
	text = ionic.NormalizeNewlines(text)
	for _, b := range ionic.WordWrap(text, width) {
		var err error
		if spans {
			_, err = fmt.Fprintf(w, "%4d %4d %4d  %s\n", b.Start, b.End, b.Next, b.Text(text))
		} else {
			_, err = fmt.Fprintln(w, b.Text(text))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
