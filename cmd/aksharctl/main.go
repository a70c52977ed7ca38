// Command aksharctl is a reference host for the akshar-ime core: it wires
// key-event-shaped CLI commands onto engine.Engine, demonstrating the
// spec's host/engine contract (out of scope for the core itself) without
// being part of the library surface.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "aksharctl",
		Short: "Reference host for the akshar-ime romanization engine",
		Long: `aksharctl drives an akshar-ime engine the way a host IME framework
would: it resolves a dictionary path, loads or creates an engine, and
exposes suggest/learn/run operations over it.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("dict", "", "path to dictionary file (default: XDG config dir)")

	root.AddCommand(newSuggestCmd(), newLearnCmd(), newRunCmd())
	return root
}

// newLogger returns a console-writer zerolog.Logger at Info level, or Debug
// when verbose is set. Matches the reference corpus's Docker-backed client
// (tassa-yoniso-manasi-karoto/go-pythainlp) convention of a single
// human-readable console logger at the CLI boundary.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
