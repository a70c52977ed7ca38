package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sapienskid/akshar-ime/engine"
)

func newLearnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn <roman> <devanagari>",
		Short: "Record a confirmed (roman, devanagari) pair and save the dictionary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := newLogger(verbose)
			path := resolveDictPath(cmd)

			e := engine.Open(path, &logger)
			e.Learn(args[0], args[1])
			if err := e.Save(); err != nil {
				return fmt.Errorf("aksharctl: save dictionary: %w", err)
			}
			fmt.Printf("learned: %s -> %s\n", args[0], args[1])
			return nil
		},
	}
	return cmd
}
