// Package journal implements the entry-recording and question-resolution
// operations over the state store.
package journal

import (
	"strings"
	"time"

	"github.com/cyrusae/pbjson/internal/lock"
	"github.com/cyrusae/pbjson/internal/state"
	"github.com/cyrusae/pbjson/internal/store"
)

// RecordResult describes a successful record operation.
type RecordResult struct {
	Field     string
	Subsystem string
	Entry     string
}

// Record appends a dated entry of the given kind to the subsystem's document.
//
// The kind is validated before any file is touched, so an unknown kind
// mutates nothing. The full load→append→save cycle runs under an exclusive
// file lock so concurrent invocations serialize instead of losing updates.
func Record(root, kind, text, subsystem string) (*RecordResult, error) {
	field, err := state.FieldForKind(kind)
	if err != nil {
		return nil, err
	}

	lk, err := lock.Acquire(store.LockPath(root, subsystem))
	if err != nil {
		return nil, err
	}
	defer lk.Release()

	doc, err := store.Load(root, subsystem)
	if err != nil {
		return nil, err
	}

	entry := state.NewEntry(time.Now(), text)
	list := doc.Field(field)
	*list = append(*list, entry)

	if err := store.Save(root, doc, subsystem); err != nil {
		return nil, err
	}

	return &RecordResult{Field: field, Subsystem: subsystem, Entry: entry}, nil
}

// Outcome is the three-way result of a resolve attempt.
type Outcome int

const (
	// Resolved means exactly one open question matched and was moved.
	Resolved Outcome = iota
	// NotFound means no open question matched; nothing changed.
	NotFound
	// Ambiguous means more than one open question matched; nothing changed.
	Ambiguous
)

// ResolveResult describes the outcome of a resolve attempt.
type ResolveResult struct {
	Outcome   Outcome
	Subsystem string

	// Set when Outcome is Resolved.
	Question   string // raw question text, date prefix stripped
	Decision   string
	Resolution string // full entry appended to the resolved list

	// Set when Outcome is Ambiguous.
	Matches []string

	// Set when Outcome is NotFound, so the caller can refine the search.
	OpenQuestions []string
}

// Resolve moves the open question matching partial to the resolved list,
// pairing its text with decision.
//
// Matching is a case-insensitive substring test against each open question.
// Zero matches or more than one leave the document untouched and report the
// candidates; the tool never guesses which question the caller meant.
func Resolve(root, partial, decision, subsystem string) (*ResolveResult, error) {
	lk, err := lock.Acquire(store.LockPath(root, subsystem))
	if err != nil {
		return nil, err
	}
	defer lk.Release()

	doc, err := store.Load(root, subsystem)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(partial)
	var matches []string
	for _, q := range doc.OpenQuestions {
		if strings.Contains(strings.ToLower(q), lowered) {
			matches = append(matches, q)
		}
	}

	switch len(matches) {
	case 0:
		open := make([]string, len(doc.OpenQuestions))
		copy(open, doc.OpenQuestions)
		return &ResolveResult{
			Outcome:       NotFound,
			Subsystem:     subsystem,
			OpenQuestions: open,
		}, nil
	case 1:
		// Fall through to resolve the single match.
	default:
		return &ResolveResult{
			Outcome:   Ambiguous,
			Subsystem: subsystem,
			Matches:   matches,
		}, nil
	}

	matched := matches[0]
	questionText := state.EntryText(matched)
	resolution := state.NewResolution(time.Now(), questionText, decision)

	doc.OpenQuestions = removeFirst(doc.OpenQuestions, matched)
	doc.Resolved = append(doc.Resolved, resolution)

	if err := store.Save(root, doc, subsystem); err != nil {
		return nil, err
	}

	return &ResolveResult{
		Outcome:    Resolved,
		Subsystem:  subsystem,
		Question:   questionText,
		Decision:   decision,
		Resolution: resolution,
	}, nil
}

// removeFirst returns list without its first element equal to target,
// preserving the order of everything else.
func removeFirst(list []string, target string) []string {
	for i, v := range list {
		if v == target {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return list
}
