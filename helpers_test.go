package clubsite

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestSafeFileName(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":          "photo.jpg",
		"my photo (1).jpg":   "my_photo__1_.jpg",
		"../../etc/passwd":   ".._.._etc_passwd",
		"Fall-Kickoff_2025!": "Fall-Kickoff_2025_",
	}
	for in, want := range cases {
		if got := safeFileName(in); got != want {
			t.Errorf("safeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLongDate(t *testing.T) {
	d := time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC)
	if got := longDate(d); got != "September 3, 2025" {
		t.Errorf("longDate = %q", got)
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"a", "", "  ", "b", "\t"})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("FilterEmpty = %v", got)
	}
}

func TestMergeJSONReplacesOnlyGivenKeys(t *testing.T) {
	base := ContentItem{ID: "1", Title: "Old", Description: "Keep me", Category: "events"}

	merged, err := mergeJSON(base, map[string]json.RawMessage{
		"title": json.RawMessage(`"New"`),
	})
	if err != nil {
		t.Fatalf("mergeJSON failed: %v", err)
	}
	if merged.Title != "New" {
		t.Errorf("Title = %q, want New", merged.Title)
	}
	if merged.Description != "Keep me" || merged.Category != "events" {
		t.Errorf("untouched fields changed: %+v", merged)
	}
}

func TestMergeJSONPreservedKeys(t *testing.T) {
	base := ContentItem{ID: "1", Title: "Old"}

	merged, err := mergeJSON(base, map[string]json.RawMessage{
		"id":    json.RawMessage(`"99"`),
		"title": json.RawMessage(`"New"`),
	}, "id")
	if err != nil {
		t.Fatalf("mergeJSON failed: %v", err)
	}
	if merged.ID != "1" {
		t.Errorf("ID = %q, preserved key should win over the partial", merged.ID)
	}
	if merged.Title != "New" {
		t.Errorf("Title = %q, want New", merged.Title)
	}
}
