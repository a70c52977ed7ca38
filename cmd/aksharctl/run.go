package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sapienskid/akshar-ime/engine"
	"github.com/sapienskid/akshar-ime/romanizer"
)

// newRunCmd returns a minimal line-buffered REPL demonstrating spec.md §6's
// host/engine event mapping: typed text accumulates into a preedit buffer,
// a blank line (Enter) commits the top suggestion (or the primary
// transliteration if there are no suggestions yet), ":N" commits the Nth
// suggestion instead, and "exit" saves the dictionary and quits. This is a
// terminal-friendly stand-in for the host's actual per-keystroke delivery
// (backspace/escape handling, space-commits-on-word-boundary) described in
// spec.md §6, which requires raw terminal key events this CLI does not
// capture.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Interactive REPL exercising the suggest/learn cycle end to end",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := newLogger(verbose)
			path := resolveDictPath(cmd)

			e := engine.Open(path, &logger)
			fmt.Println("akshar-ime reference REPL. Type to build preedit, blank line to commit, ':N' to pick a suggestion, 'exit' to save and quit.")

			preedit := &strings.Builder{}
			scanner := bufio.NewScanner(os.Stdin)

		replLoop:
			for {
				suggestions := e.Suggest(preedit.String(), 5)
				printPrompt(preedit.String(), suggestions)

				if !scanner.Scan() {
					break
				}
				line := strings.TrimRight(scanner.Text(), "\r\n")

				switch {
				case line == "exit":
					break replLoop
				case line == "":
					commitTop(e, preedit, suggestions)
				case strings.HasPrefix(line, ":") && len(line) > 1:
					commitSelection(e, preedit, suggestions, line[1:])
				default:
					preedit.WriteString(line)
				}
			}

			fmt.Println("saving dictionary...")
			if err := e.Save(); err != nil {
				return fmt.Errorf("aksharctl: save dictionary: %w", err)
			}
			fmt.Printf("dictionary saved to %q\n", path)
			return nil
		},
	}
	return cmd
}

func printPrompt(preedit string, suggestions []engine.Suggestion) {
	fmt.Printf("\npreedit: [%s]\n", preedit)
	if len(suggestions) == 0 {
		fmt.Println("no suggestions yet")
		return
	}
	for i, s := range suggestions {
		fmt.Printf("  :%d %s (score %d)\n", i+1, s.Devanagari, s.Score)
	}
}

// commitTop implements the Space/Enter host mapping: commit = topSuggestion
// or romanizer.GenerateCandidates(preedit)[0] or "".
func commitTop(e *engine.Engine, preedit *strings.Builder, suggestions []engine.Suggestion) {
	roman := preedit.String()
	var commit string
	switch {
	case len(suggestions) > 0:
		commit = suggestions[0].Devanagari
	default:
		if cands := romanizer.GenerateCandidates(roman); len(cands) > 0 {
			commit = cands[0]
		}
	}
	if commit == "" {
		preedit.Reset()
		return
	}
	fmt.Printf("committing: %s\n", commit)
	e.Learn(roman, commit)
	preedit.Reset()
}

func commitSelection(e *engine.Engine, preedit *strings.Builder, suggestions []engine.Suggestion, nStr string) {
	n, err := strconv.Atoi(nStr)
	if err != nil || n < 1 || n > len(suggestions) {
		return
	}
	roman := preedit.String()
	commit := suggestions[n-1].Devanagari
	fmt.Printf("committing: %s\n", commit)
	e.Learn(roman, commit)
	preedit.Reset()
}
