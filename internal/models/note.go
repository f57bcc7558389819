// Package models defines the Inkdrop entity types exposed to agents.
package models

import (
	"strings"
	"unicode/utf8"
)

// ID namespaces used by the Inkdrop database.
const (
	NotePrefix = "note:"
	BookPrefix = "book:"
	TagPrefix  = "tag:"

	// TrashBookID is the pseudo notebook that deleted notes are moved to.
	TrashBookID = "trash"
)

// Note statuses.
const (
	StatusNone      = "none"
	StatusActive    = "active"
	StatusOnHold    = "onHold"
	StatusCompleted = "completed"
	StatusDropped   = "dropped"
)

// NoteStatuses lists every legal note status.
var NoteStatuses = []string{StatusNone, StatusActive, StatusOnHold, StatusCompleted, StatusDropped}

// Document is a backend document as received on the wire. It is kept untyped
// so that fields the adapter does not know about reach the agent unmodified.
type Document map[string]any

// TruncateBody returns a shallow copy of d whose "body" is cut to at most max
// characters. Documents without a string body are returned as a copy unchanged
// and a nil document stays nil.
func (d Document) TruncateBody(max int) Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	if body, ok := d["body"].(string); ok && utf8.RuneCountInString(body) > max {
		out["body"] = string([]rune(body)[:max])
	}
	return out
}

// Note is a Markdown note.
type Note struct {
	ID                string   `json:"_id" jsonschema:"minLength=6,maxLength=128,pattern=^note:" jsonschema_description:"The unique document ID which should start with note: and the remains are randomly generated string"`
	Rev               string   `json:"_rev,omitempty" jsonschema_description:"The current MVCC-token/revision of this document (mandatory and immutable)"`
	BookID            string   `json:"bookId" jsonschema:"minLength=5,maxLength=128,pattern=^(book:|trash$)" jsonschema_description:"The notebook ID"`
	Title             string   `json:"title" jsonschema:"maxLength=128" jsonschema_description:"The note title"`
	Doctype           string   `json:"doctype" jsonschema:"enum=markdown" jsonschema_description:"The format type of the body field. It currently can take markdown only"`
	Body              string   `json:"body" jsonschema:"maxLength=1048576" jsonschema_description:"The content of the note represented with Markdown"`
	Status            string   `json:"status,omitempty" jsonschema:"enum=none,enum=active,enum=onHold,enum=completed,enum=dropped" jsonschema_description:"The status of the note"`
	Share             string   `json:"share,omitempty" jsonschema:"enum=private,enum=public" jsonschema_description:"The sharing mode of the note"`
	NumOfTasks        int      `json:"numOfTasks,omitempty" jsonschema_description:"The number of tasks, extracted from body"`
	NumOfCheckedTasks int      `json:"numOfCheckedTasks,omitempty" jsonschema_description:"The number of checked tasks, extracted from body"`
	Tags              []string `json:"tags,omitempty" jsonschema_description:"The list of tag IDs"`
	Pinned            bool     `json:"pinned" jsonschema_description:"Whether the note is pinned to top"`
	Timestamp         int64    `json:"timestamp,omitempty" jsonschema_description:"The date time when the note was last active, represented with Unix timestamps in milliseconds"`
	CreatedAt         int64    `json:"createdAt" jsonschema_description:"The date time when the note was created, represented with Unix timestamps in milliseconds"`
	UpdatedAt         int64    `json:"updatedAt" jsonschema_description:"The date time when the note was last updated, represented with Unix timestamps in milliseconds"`
}

// Book is a notebook. Books are owned by the backend and only read here.
type Book struct {
	ID           string `json:"_id" jsonschema:"minLength=6,maxLength=128,pattern=^book:" jsonschema_description:"The unique notebook ID which should start with book: and the remains are randomly generated string"`
	Rev          string `json:"_rev,omitempty" jsonschema_description:"The current MVCC-token/revision of this document"`
	Name         string `json:"name" jsonschema:"maxLength=64" jsonschema_description:"The notebook name"`
	ParentBookID string `json:"parentBookId,omitempty" jsonschema_description:"The ID of the parent notebook"`
	Count        int    `json:"count,omitempty" jsonschema_description:"It indicates the number of notes in the notebook"`
	CreatedAt    int64  `json:"createdAt" jsonschema_description:"The date time when the notebook was created, represented with Unix timestamps in milliseconds"`
	UpdatedAt    int64  `json:"updatedAt" jsonschema_description:"The date time when the notebook was last updated, represented with Unix timestamps in milliseconds"`
}

// Tag labels notes across notebooks.
type Tag struct {
	ID        string `json:"_id" jsonschema:"minLength=6,maxLength=128,pattern=^tag:" jsonschema_description:"The unique tag ID which should start with tag: and the remains are randomly generated string"`
	Rev       string `json:"_rev,omitempty" jsonschema_description:"The current MVCC-token/revision of this document"`
	Name      string `json:"name" jsonschema:"maxLength=64" jsonschema_description:"The name of the tag"`
	Color     string `json:"color,omitempty" jsonschema:"enum=default,enum=red,enum=orange,enum=yellow,enum=olive,enum=green,enum=teal,enum=blue,enum=violet,enum=purple,enum=pink,enum=brown,enum=grey,enum=black" jsonschema_description:"The color type of the tag"`
	Count     int    `json:"count,omitempty" jsonschema_description:"It indicates the number of notes with the tag"`
	CreatedAt int64  `json:"createdAt" jsonschema_description:"The date time when the tag was created, represented with Unix timestamps in milliseconds"`
	UpdatedAt int64  `json:"updatedAt" jsonschema_description:"The date time when the tag was last updated, represented with Unix timestamps in milliseconds"`
}

// NormalizeNoteID adds the note: namespace when id lacks it.
func NormalizeNoteID(id string) string {
	if strings.HasPrefix(id, NotePrefix) {
		return id
	}
	return NotePrefix + id
}
