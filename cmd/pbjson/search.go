package main

import (
	"fmt"
	"strings"

	"github.com/cyrusae/pbjson/internal/index"
	"github.com/cyrusae/pbjson/internal/state"
	"github.com/spf13/cobra"
)

var (
	searchField string
	searchLimit int
)

func init() {
	searchCmd.Flags().StringVar(&searchField, "field", "", "Restrict matches to one field (e.g. built)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search indexed entries across all subsystems",
	Long: `Search the SQLite index for entries matching a term.

The term matches whole words, with the last word treated as a prefix.
The index is derived from the JSON state files; run 'pbjson rebuild'
after recording entries or pulling changes from git.

Examples:
  pbjson search fetcher
  pbjson search cache --field built --limit 10
  pbjson search sorting --subsystem glossary`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	root := mustResolveRoot()

	if searchField != "" && !state.IsField(searchField) {
		exitWithError(ExitError, "unknown field %q (valid fields: %s)", searchField, strings.Join(state.Fields, ", "))
	}

	if !index.Exists(root) {
		exitWithError(ExitConfigError, "search index not found\n\nRun 'pbjson rebuild' to create it.")
	}

	db, err := index.Open(index.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	defer db.Close()

	matches, err := db.Search(args[0], searchField, subsystemName, searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching index: %v", err)
	}

	if humanOutput {
		if len(matches) == 0 {
			fmt.Printf("No matches for %q\n", args[0])
		} else {
			for i, m := range matches {
				fmt.Printf("%d. %s%s: %s\n", i+1, m.Field, subsystemLabel(m.Subsystem), m.Entry)
			}
		}
	} else {
		if matches == nil {
			matches = []index.Match{}
		}
		outputJSON(matches)
	}

	return nil
}
