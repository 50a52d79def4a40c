// Package store persists state documents as flat JSON files in a root directory.
//
// The default document lives in project.json; a subsystem's document lives in
// <subsystem>-state.json alongside it. The flat naming keeps multi-subsystem
// projects inside a single directory, which matters in deployment contexts
// that reject nested directories on upload.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cyrusae/pbjson/internal/state"
)

const (
	// DefaultFile is the backing file for the default document.
	DefaultFile = "project.json"
	// SubsystemSuffix is appended to a subsystem name to form its backing file.
	SubsystemSuffix = "-state.json"
	// LockSuffix is appended to a backing file name to form its lock file.
	LockSuffix = ".lock"
)

// Path returns the backing file for a subsystem's document within root.
// An empty subsystem resolves to the default document.
func Path(root, subsystem string) string {
	if subsystem == "" {
		return filepath.Join(root, DefaultFile)
	}
	return filepath.Join(root, subsystem+SubsystemSuffix)
}

// LockPath returns the lock file guarding a subsystem's backing file.
func LockPath(root, subsystem string) string {
	return Path(root, subsystem) + LockSuffix
}

// MalformedStateError reports a backing file that exists but cannot be parsed.
type MalformedStateError struct {
	Path string
	Err  error
}

func (e *MalformedStateError) Error() string {
	return fmt.Sprintf("state file %s contains invalid JSON: %v", e.Path, e.Err)
}

func (e *MalformedStateError) Unwrap() error { return e.Err }

// IOFailureError reports a backing file that cannot be read or written.
type IOFailureError struct {
	Path string
	Err  error
}

func (e *IOFailureError) Error() string {
	return fmt.Sprintf("state file %s: %v", e.Path, e.Err)
}

func (e *IOFailureError) Unwrap() error { return e.Err }

// Load reads the document for a subsystem from root.
//
// A missing backing file yields a fresh empty document without touching disk;
// the file is only materialized by the first Save. Documents written by older
// versions have any missing list fields back-filled as empty. Load never
// mutates the file.
func Load(root, subsystem string) (*state.Document, error) {
	path := Path(root, subsystem)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return state.New(subsystem), nil
		}
		return nil, &IOFailureError{Path: path, Err: err}
	}

	var doc state.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedStateError{Path: path, Err: err}
	}

	doc.Normalize(subsystem)
	return &doc, nil
}

// Save serializes the full document and overwrites the backing file.
//
// Output is 2-space-indented JSON with one entry per line, for readability
// and stable git diffs. This is a whole-file overwrite, so callers must
// always mutate a freshly loaded document.
func Save(root string, doc *state.Document, subsystem string) error {
	path := Path(root, subsystem)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &IOFailureError{Path: path, Err: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &IOFailureError{Path: path, Err: err}
	}

	return nil
}
