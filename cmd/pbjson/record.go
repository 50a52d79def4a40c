package main

import (
	"fmt"

	"github.com/cyrusae/pbjson/internal/journal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recordCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record <kind> <text>",
	Short: "Append a dated entry to the project state",
	Long: `Append a dated entry to one of the state document's lists.

Kinds:
  decided   architectural decisions made with user agreement
  built     completed work, searchable by filename or feature
  question  open questions needing user input or a decision
  file      important entry points (keep to a handful)
  context   constraints, preferences, background facts

Examples:
  pbjson record decided "Use Obsidian for output - fast generation + graph view"
  pbjson record question "Should we cache synthesis results?"
  pbjson record:tracking built "arxiv_fetcher.py (fetches from arXiv API)"
  pbjson --subsystem glossary record context "Token cost not a concern"`,
	Args: cobra.ExactArgs(2),
	RunE: runRecord,
}

// RecordResponse is the JSON confirmation for a record command.
type RecordResponse struct {
	Status    string `json:"status"`
	Field     string `json:"field"`
	Subsystem string `json:"subsystem,omitempty"`
	Entry     string `json:"entry"`
}

func runRecord(cmd *cobra.Command, args []string) error {
	root := mustResolveRoot()

	res, err := journal.Record(root, args[0], args[1], subsystemName)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	if humanOutput {
		fmt.Printf("Added to %s%s: %s\n", res.Field, subsystemLabel(res.Subsystem), args[1])
	} else {
		outputJSON(RecordResponse{
			Status:    "recorded",
			Field:     res.Field,
			Subsystem: res.Subsystem,
			Entry:     res.Entry,
		})
	}

	return nil
}
