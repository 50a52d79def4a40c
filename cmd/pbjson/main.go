// Package main provides the pbjson CLI entry point.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cyrusae/pbjson/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// subsystemName selects which state document a command operates on
var subsystemName string

func main() {
	if len(os.Args) < 2 {
		rootCmd.Help()
		os.Exit(ExitError)
	}

	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing arguments) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pbjson",
	Short: "Dated project state logger",
	Long: `pbjson records short, dated project notes (decisions, completed work,
open questions, resolutions, notable files, context) in flat JSON state files.

State lives in project.json, or in <name>-state.json when a subsystem is
named. The files are git-friendly append-only logs; an ephemeral SQLite
index built with 'pbjson rebuild' powers cross-subsystem search. All
commands output JSON by default for easy integration with AI agents and
other tools.

The state root is the current directory unless PBJSON_ROOT is set (a .env
file is honored) or state_root is configured in ~/.config/pbjson/config.yml.`,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&subsystemName, "subsystem", "", "Operate on <name>-state.json instead of project.json")
	rootCmd.Version = Version
}

// normalizeArgs rewrites the colon shorthand ("record:tracking", "resolve:glossary")
// into the --subsystem flag form before cobra parses the command line.
func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	name, subsystem, ok := strings.Cut(args[0], ":")
	if !ok || subsystem == "" {
		return args
	}

	switch name {
	case "record", "resolve", "show":
		out := []string{name, "--subsystem", subsystem}
		return append(out, args[1:]...)
	}
	return args
}

// mustResolveRoot resolves the state root directory, exits on error.
func mustResolveRoot() string {
	root, err := config.ResolveRoot()
	if err != nil {
		exitWithError(ExitConfigError, "resolving state root: %v", err)
	}
	return root
}
