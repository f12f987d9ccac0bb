// Command ionic renders delimited text as a fixed-width table and demonstrates
// the layout engine of package ionic.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

// globalParams are the persistent flags of the root command.
type globalParams struct {
	verbose    bool
	configFile string
}

// newLogger returns a text logger on w. Debug records are only emitted with
// --verbose.
func (p *globalParams) newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if p.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newRootCommand returns the base command with every subcommand attached.
func newRootCommand() *cobra.Command {
	params := &globalParams{}
	root := &cobra.Command{
		Use:           "ionic",
		Short:         "Render text tables for the terminal",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&params.verbose, "verbose", "v", false, "log layout decisions to stderr")
	root.PersistentFlags().StringVar(&params.configFile, "config", "", "YAML file with table options and column formats")

	root.AddCommand(
		newRenderCommand(params),
		newWrapCommand(),
		newDemoCommand(params),
	)
	return root
}

func main() {
	root := newRootCommand()
	// Translates ANSI sequences on Windows consoles; a no-op elsewhere.
	root.SetOut(colorable.NewColorableStdout())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
