package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/bjaus/ionic"
	"github.com/spf13/cobra"
)

type renderParams struct {
	table     tableParams
	delimiter string
	header    bool
	headColor string
}

func newRenderCommand(global *globalParams) *cobra.Command {
	params := &renderParams{}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render delimited text as a table",
		Long: `Render reads delimited records from a file, or standard input when no file
is given, and prints them as a table fitted to the output width.`,
		Example: `  ionic render --columns fixed:4,flex people.csv
  ps -eo pid,comm | ionic render --delimiter tab --no-hdivider`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return render(cmd, global, params, in)
		},
	}
	params.table.register(cmd)
	cmd.Flags().StringVarP(&params.delimiter, "delimiter", "d", ",", `field delimiter: a single character, or "tab"`)
	cmd.Flags().BoolVar(&params.header, "header", false, "style the first record as a header")
	cmd.Flags().StringVar(&params.headColor, "header-color", "bright-cyan", "color of the header row with --header")
	return cmd
}

func render(cmd *cobra.Command, global *globalParams, params *renderParams, in io.Reader) error {
	logger := global.newLogger(cmd.ErrOrStderr())
	opts, cols, err := params.table.resolve(cmd, global.configFile, logger)
	if err != nil {
		return err
	}
	comma, err := parseDelimiter(params.delimiter)
	if err != nil {
		return err
	}

	t, err := ionic.ReadCSV(in, opts, comma, cols...)
	if err != nil {
		return fmt.Errorf("reading records: %w", err)
	}
	if params.header && t.NumRows() > 0 {
		c, err := ionic.ParseColor(params.headColor)
		if err != nil {
			return err
		}
		if err := t.SetRow(0, ionic.WithColor(c), ionic.WithAlignment(ionic.AlignCenter)); err != nil {
			return err
		}
	}
	logger.Debug("rendering table", "rows", t.NumRows(), "columns", t.NumColumns(), "budget", t.Budget())

	_, err = t.WriteTo(cmd.OutOrStdout())
	return err
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("invalid delimiter %q: want a single character", s)
	}
	return r, nil
}
