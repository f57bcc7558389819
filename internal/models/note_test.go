package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeNoteID(t *testing.T) {
	cases := map[string]string{
		"abc":      "note:abc",
		"note:abc": "note:abc",
		"":         "note:",
	}
	for in, want := range cases {
		if got := NormalizeNoteID(in); got != want {
			t.Errorf("NormalizeNoteID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncateBody(t *testing.T) {
	long := strings.Repeat("é", 250)
	doc := Document{"_id": "note:1", "body": long, "title": "t"}

	got := doc.TruncateBody(200)
	body := got["body"].(string)
	if n := len([]rune(body)); n != 200 {
		t.Fatalf("body length = %d, want 200", n)
	}
	if !strings.HasPrefix(long, body) {
		t.Error("truncated body is not a prefix of the original")
	}
	if doc["body"].(string) != long {
		t.Error("original document was modified")
	}
	if got["title"] != "t" || got["_id"] != "note:1" {
		t.Errorf("other fields changed: %v", got)
	}
}

func TestTruncateBody_ShortOrMissing(t *testing.T) {
	doc := Document{"body": "short"}
	if got := doc.TruncateBody(200)["body"]; got != "short" {
		t.Errorf("body = %v", got)
	}
	noBody := Document{"_id": "note:1"}
	if _, ok := noBody.TruncateBody(200)["body"]; ok {
		t.Error("body key should not be introduced")
	}
}

func TestTruncateBody_NilDocument(t *testing.T) {
	var docs []Document
	if err := json.Unmarshal([]byte(`[null,{"body":"x"}]`), &docs); err != nil {
		t.Fatal(err)
	}
	if got := docs[0].TruncateBody(200); got != nil {
		t.Errorf("nil document became %v", got)
	}
	out, err := json.Marshal([]Document{docs[0].TruncateBody(200)})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "[null]" {
		t.Errorf("encoded = %s, want [null]", out)
	}
}

func TestEntitySchemas(t *testing.T) {
	schemas, err := EntitySchemas()
	if err != nil {
		t.Fatalf("EntitySchemas: %v", err)
	}
	if len(schemas) != 3 {
		t.Fatalf("got %d schemas, want 3", len(schemas))
	}

	var note map[string]any
	if err := json.Unmarshal([]byte(schemas[0]), &note); err != nil {
		t.Fatalf("note schema is not JSON: %v", err)
	}
	if note["title"] != "Note" {
		t.Errorf("title = %v", note["title"])
	}
	props, ok := note["properties"].(map[string]any)
	if !ok {
		t.Fatalf("properties missing: %v", note)
	}
	for _, key := range []string{"_id", "_rev", "bookId", "title", "body", "status"} {
		if _, ok := props[key]; !ok {
			t.Errorf("note schema lacks %q", key)
		}
	}
	status := props["status"].(map[string]any)
	if enum, _ := status["enum"].([]any); len(enum) != len(NoteStatuses) {
		t.Errorf("status enum = %v", status["enum"])
	}
	if !strings.Contains(schemas[1], `"parentBookId"`) {
		t.Error("book schema lacks parentBookId")
	}
	if !strings.Contains(schemas[2], `"color"`) {
		t.Error("tag schema lacks color")
	}
}
