package main

import (
	"fmt"

	"github.com/cyrusae/pbjson/internal/index"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the search index from the state files",
	Long: `Rebuild the SQLite search index from the JSON state files.

The index covers project.json and every <name>-state.json in the state
root. Use this after pulling changes from git or editing state files by
hand; the JSON files are always the source of truth.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

// RebuildResponse is the JSON output of a rebuild command.
type RebuildResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
	Path    string `json:"path"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	root := mustResolveRoot()

	db, err := index.Open(index.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	defer db.Close()

	count, err := db.Rebuild(root)
	if err != nil {
		exitWithError(exitCodeFor(err), "rebuilding index: %v", err)
	}

	if humanOutput {
		fmt.Printf("Indexed %d entries in %s\n", count, index.DBPath(root))
	} else {
		outputJSON(RebuildResponse{
			Status:  "rebuilt",
			Entries: count,
			Path:    index.DBPath(root),
		})
	}

	return nil
}
