package main

import (
	"fmt"

	"github.com/cyrusae/pbjson/internal/state"
	"github.com/cyrusae/pbjson/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a state document",
	Long: `Show the default state document, or a subsystem's document.

A document that has never been written shows all fields empty.

Examples:
  pbjson show
  pbjson show --human
  pbjson show:tracking
  pbjson --subsystem glossary show`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	root := mustResolveRoot()

	doc, err := store.Load(root, subsystemName)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	if !humanOutput {
		outputJSON(doc)
		return nil
	}

	total := 0
	for _, name := range state.Fields {
		entries := *doc.Field(name)
		if len(entries) == 0 {
			continue
		}
		if total > 0 {
			fmt.Println()
		}
		fmt.Printf("%s:\n", name)
		for _, e := range entries {
			fmt.Printf("  %s\n", e)
		}
		total += len(entries)
	}
	if total == 0 {
		fmt.Printf("No entries%s\n", subsystemLabel(subsystemName))
	}

	return nil
}
