// Package state defines the project state document and its dated entry format.
package state

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Document holds the dated entry lists for one project or subsystem.
// All six list fields are present after Normalize, even when empty, so
// readers of the JSON file never have to guess which keys exist.
type Document struct {
	Decided        []string `json:"decided"`
	Built          []string `json:"built"`
	OpenQuestions  []string `json:"open_questions"`
	Resolved       []string `json:"resolved"`
	ImportantFiles []string `json:"important_files"`
	Context        []string `json:"context"`
	SubsystemName  string   `json:"subsystem_name,omitempty"`
}

// Field names as they appear in the JSON document.
const (
	FieldDecided        = "decided"
	FieldBuilt          = "built"
	FieldOpenQuestions  = "open_questions"
	FieldResolved       = "resolved"
	FieldImportantFiles = "important_files"
	FieldContext        = "context"
)

// Fields lists the list-valued fields in document order.
var Fields = []string{
	FieldDecided,
	FieldBuilt,
	FieldOpenQuestions,
	FieldResolved,
	FieldImportantFiles,
	FieldContext,
}

// kindToField maps the entry kinds accepted by record to document fields.
var kindToField = map[string]string{
	"decided":  FieldDecided,
	"built":    FieldBuilt,
	"question": FieldOpenQuestions,
	"file":     FieldImportantFiles,
	"context":  FieldContext,
}

// UnknownKindError reports an entry kind that record does not accept.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown kind %q (valid kinds: %s)", e.Kind, strings.Join(ValidKinds(), ", "))
}

// FieldForKind returns the document field an entry kind appends to.
func FieldForKind(kind string) (string, error) {
	field, ok := kindToField[kind]
	if !ok {
		return "", &UnknownKindError{Kind: kind}
	}
	return field, nil
}

// ValidKinds returns the accepted entry kinds, sorted.
func ValidKinds() []string {
	kinds := make([]string, 0, len(kindToField))
	for k := range kindToField {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// IsField reports whether name is one of the document's list fields.
func IsField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// New returns an empty document with all list fields initialized.
func New(subsystem string) *Document {
	d := &Document{SubsystemName: subsystem}
	d.Normalize(subsystem)
	return d
}

// Normalize back-fills nil list fields with empty lists and sets the
// subsystem label if absent. Older state files that predate a field gain
// it as an empty list; existing data is never touched.
func (d *Document) Normalize(subsystem string) {
	for _, name := range Fields {
		list := d.Field(name)
		if *list == nil {
			*list = []string{}
		}
	}
	if subsystem != "" && d.SubsystemName == "" {
		d.SubsystemName = subsystem
	}
}

// Field returns a pointer to the named list field.
// Panics on an unknown name; callers validate with IsField or FieldForKind.
func (d *Document) Field(name string) *[]string {
	switch name {
	case FieldDecided:
		return &d.Decided
	case FieldBuilt:
		return &d.Built
	case FieldOpenQuestions:
		return &d.OpenQuestions
	case FieldResolved:
		return &d.Resolved
	case FieldImportantFiles:
		return &d.ImportantFiles
	case FieldContext:
		return &d.Context
	}
	panic(fmt.Sprintf("state: unknown field %q", name))
}

// entrySeparator sits between the ISO date prefix and the entry text.
const entrySeparator = " - "

// ResolutionMarker joins a resolved question's text to its decision.
const ResolutionMarker = " → Decided: "

// NewEntry formats text as a dated entry line for the given day.
// The YYYY-MM-DD prefix sorts chronologically as a plain string.
func NewEntry(day time.Time, text string) string {
	return day.Format("2006-01-02") + entrySeparator + text
}

// EntryText strips the leading date prefix from an entry line.
// Lines without a prefix are returned unchanged.
func EntryText(entry string) string {
	if _, text, ok := strings.Cut(entry, entrySeparator); ok {
		return text
	}
	return entry
}

// NewResolution formats a resolution entry pairing a question's raw text
// with the decision that settles it.
func NewResolution(day time.Time, questionText, decision string) string {
	return NewEntry(day, questionText+ResolutionMarker+decision)
}
