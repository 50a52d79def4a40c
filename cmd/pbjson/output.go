package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cyrusae/pbjson/internal/store"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitCodeFor maps store-layer errors to exit codes.
func exitCodeFor(err error) int {
	var malformed *store.MalformedStateError
	if errors.As(err, &malformed) {
		return ExitDataError
	}
	return ExitError
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// subsystemLabel formats a subsystem name for human-readable output.
func subsystemLabel(subsystem string) string {
	if subsystem == "" {
		return ""
	}
	return " [" + subsystem + "]"
}
