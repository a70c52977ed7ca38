package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sapienskid/akshar-ime/engine"
)

func newSuggestCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "suggest <preedit>",
		Short: "Print ranked Devanagari candidates for a Roman preedit prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := newLogger(verbose)
			path := resolveDictPath(cmd)

			e := engine.Open(path, &logger)
			for i, s := range e.Suggest(args[0], count) {
				fmt.Printf("%d. %s (score %d)\n", i+1, s.Devanagari, s.Score)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "maximum number of suggestions")
	return cmd
}
