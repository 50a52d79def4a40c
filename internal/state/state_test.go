package state

import (
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	doc := New("tracking")

	for _, name := range Fields {
		list := doc.Field(name)
		if *list == nil {
			t.Errorf("New() field %s is nil, want empty list", name)
		}
		if len(*list) != 0 {
			t.Errorf("New() field %s has %d entries, want 0", name, len(*list))
		}
	}
	if doc.SubsystemName != "tracking" {
		t.Errorf("New() SubsystemName = %q, want %q", doc.SubsystemName, "tracking")
	}
}

func TestNew_NoSubsystem(t *testing.T) {
	doc := New("")
	if doc.SubsystemName != "" {
		t.Errorf("New(\"\") SubsystemName = %q, want empty", doc.SubsystemName)
	}
}

func TestNormalize_BackfillsMissingFields(t *testing.T) {
	doc := &Document{
		Decided: []string{"2026-01-08 - keep it"},
	}
	doc.Normalize("")

	if len(doc.Decided) != 1 || doc.Decided[0] != "2026-01-08 - keep it" {
		t.Errorf("Normalize() altered existing data: %v", doc.Decided)
	}
	for _, name := range []string{FieldBuilt, FieldOpenQuestions, FieldResolved, FieldImportantFiles, FieldContext} {
		if *doc.Field(name) == nil {
			t.Errorf("Normalize() left field %s nil", name)
		}
	}
}

func TestNormalize_SetsSubsystemOnlyIfAbsent(t *testing.T) {
	doc := &Document{SubsystemName: "original"}
	doc.Normalize("other")
	if doc.SubsystemName != "original" {
		t.Errorf("Normalize() overwrote subsystem: %q", doc.SubsystemName)
	}

	doc = &Document{}
	doc.Normalize("tracking")
	if doc.SubsystemName != "tracking" {
		t.Errorf("Normalize() SubsystemName = %q, want %q", doc.SubsystemName, "tracking")
	}
}

func TestFieldForKind(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"decided", FieldDecided},
		{"built", FieldBuilt},
		{"question", FieldOpenQuestions},
		{"file", FieldImportantFiles},
		{"context", FieldContext},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			got, err := FieldForKind(tt.kind)
			if err != nil {
				t.Fatalf("FieldForKind(%q) error = %v", tt.kind, err)
			}
			if got != tt.want {
				t.Errorf("FieldForKind(%q) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestFieldForKind_Unknown(t *testing.T) {
	_, err := FieldForKind("bogus")
	if err == nil {
		t.Fatal("FieldForKind(\"bogus\") should return error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "bogus") {
		t.Errorf("error %q does not name the bad kind", msg)
	}
	for _, kind := range ValidKinds() {
		if !strings.Contains(msg, kind) {
			t.Errorf("error %q does not list valid kind %q", msg, kind)
		}
	}
}

func TestValidKinds_Sorted(t *testing.T) {
	kinds := ValidKinds()
	want := []string{"built", "context", "decided", "file", "question"}
	if len(kinds) != len(want) {
		t.Fatalf("ValidKinds() = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("ValidKinds()[%d] = %q, want %q", i, kinds[i], want[i])
		}
	}
}

func TestIsField(t *testing.T) {
	for _, name := range Fields {
		if !IsField(name) {
			t.Errorf("IsField(%q) = false", name)
		}
	}
	if IsField("decided ") || IsField("subsystem_name") || IsField("") {
		t.Error("IsField() accepted a non-field name")
	}
}

func TestNewEntry(t *testing.T) {
	day := time.Date(2026, 1, 8, 15, 30, 0, 0, time.UTC)
	got := NewEntry(day, "caching strategy?")
	want := "2026-01-08 - caching strategy?"
	if got != want {
		t.Errorf("NewEntry() = %q, want %q", got, want)
	}
}

func TestEntryText(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  string
	}{
		{"dated", "2026-01-08 - caching strategy?", "caching strategy?"},
		{"no prefix", "caching strategy?", "caching strategy?"},
		{"separator in text", "2026-01-08 - a - b", "a - b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EntryText(tt.entry); got != tt.want {
				t.Errorf("EntryText(%q) = %q, want %q", tt.entry, got, tt.want)
			}
		})
	}
}

func TestNewResolution(t *testing.T) {
	day := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
	got := NewResolution(day, "caching strategy?", "Cache by DOI")
	want := "2026-01-09 - caching strategy? → Decided: Cache by DOI"
	if got != want {
		t.Errorf("NewResolution() = %q, want %q", got, want)
	}
}

func TestField_AppendThroughPointer(t *testing.T) {
	doc := New("")
	list := doc.Field(FieldBuilt)
	*list = append(*list, "2026-01-08 - thing")

	if len(doc.Built) != 1 {
		t.Errorf("append through Field() not reflected: %v", doc.Built)
	}
}
