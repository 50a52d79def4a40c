package main

import (
	"fmt"

	"github.com/cyrusae/pbjson/internal/journal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <partial> <decision>",
	Short: "Resolve an open question with a decision",
	Long: `Move an open question to the resolved list, pairing it with the decision.

The question is matched by case-insensitive substring. With no match, the
open questions are listed so the search can be refined; with more than one
match, the matches are listed and nothing changes. A question is only
resolved when the match is unambiguous.

Examples:
  pbjson resolve "caching" "Cache by DOI, invalidate on manual edit"
  pbjson resolve:features "performance" "Use async processing"
  pbjson --subsystem glossary resolve "sorting" "Sort by last-modified date"`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

// ResolveResponse is the JSON output of a resolve command.
type ResolveResponse struct {
	Status        string   `json:"status"`
	Subsystem     string   `json:"subsystem,omitempty"`
	Question      string   `json:"question,omitempty"`
	Decision      string   `json:"decision,omitempty"`
	Search        string   `json:"search,omitempty"`
	Matches       []string `json:"matches,omitempty"`
	OpenQuestions []string `json:"open_questions,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	root := mustResolveRoot()
	partial, decision := args[0], args[1]

	res, err := journal.Resolve(root, partial, decision, subsystemName)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	// Not-found and ambiguous outcomes exit 0: they are reports, not
	// failures, and the caller is expected to retry with different input.
	switch res.Outcome {
	case journal.NotFound:
		if humanOutput {
			fmt.Printf("No question found matching%s: %q\n", subsystemLabel(res.Subsystem), partial)
			if len(res.OpenQuestions) > 0 {
				fmt.Println("\nOpen questions:")
				for _, q := range res.OpenQuestions {
					fmt.Printf("  - %s\n", q)
				}
			}
		} else {
			outputJSON(ResolveResponse{
				Status:        "not_found",
				Subsystem:     res.Subsystem,
				Search:        partial,
				OpenQuestions: res.OpenQuestions,
			})
		}

	case journal.Ambiguous:
		if humanOutput {
			fmt.Printf("Multiple matches found (%d):\n", len(res.Matches))
			for i, q := range res.Matches {
				fmt.Printf("  %d. %s\n", i+1, q)
			}
			fmt.Println("\nPlease be more specific")
		} else {
			outputJSON(ResolveResponse{
				Status:    "ambiguous",
				Subsystem: res.Subsystem,
				Search:    partial,
				Matches:   res.Matches,
			})
		}

	default:
		if humanOutput {
			fmt.Printf("Resolved%s: %s\n", subsystemLabel(res.Subsystem), res.Question)
			fmt.Printf("  Decision: %s\n", res.Decision)
		} else {
			outputJSON(ResolveResponse{
				Status:    "resolved",
				Subsystem: res.Subsystem,
				Question:  res.Question,
				Decision:  res.Decision,
			})
		}
	}

	return nil
}
