package command

import (
	"regexp"

	"github.com/inkdropapp/mcp-server/internal/models"
)

// Command names.
const (
	ReadNote      = "read-note"
	SearchNotes   = "search-notes"
	ListNotes     = "list-notes"
	CreateNote    = "create-note"
	UpdateNote    = "update-note"
	ListNotebooks = "list-notebooks"
	ListTags      = "list-tags"
)

// Sort orders accepted by list-notes.
const (
	SortUpdatedAt = "updatedAt"
	SortCreatedAt = "createdAt"
	SortTitle     = "title"
)

const (
	maxTitleLength = 128
	maxBodyLength  = 1048576
)

var (
	bookIDPattern = regexp.MustCompile(`^(book:|trash$)`)
	noteIDPattern = regexp.MustCompile(`^note:`)
)

func bookIDField() Field {
	return Field{
		Name:        "bookId",
		Type:        String,
		Description: "The notebook ID",
		Required:    true,
		MinLength:   5,
		MaxLength:   128,
		Pattern:     bookIDPattern,
	}
}

// noteFields are the editable note fields shared by create-note and update-note.
func noteFields() []Field {
	return []Field{
		bookIDField(),
		{
			Name:        "title",
			Type:        String,
			Description: "The note title",
			Required:    true,
			MaxLength:   maxTitleLength,
		},
		{
			Name:        "body",
			Type:        String,
			Description: "The content of the note represented with Markdown",
			Required:    true,
			MaxLength:   maxBodyLength,
		},
		{
			Name:        "status",
			Type:        String,
			Description: "The status of the note",
			Enum:        models.NoteStatuses,
		},
	}
}

var registry = []Schema{
	{
		Name:        ReadNote,
		Description: "Retrieve the complete contents of the note by its ID from the database.",
		Fields: []Field{
			{
				Name:        "noteId",
				Type:        String,
				Description: "ID of the note to retrieve. It can be found as `_id` in the note docs",
				Required:    true,
			},
		},
	},
	{
		Name:        SearchNotes,
		Description: searchNotesDescription,
		Fields: []Field{
			{
				Name:        "keyword",
				Type:        String,
				Description: "Keyword to search for.",
				Required:    true,
			},
		},
	},
	{
		Name: ListNotes,
		Description: "List notes in a notebook, optionally narrowed by tags and a keyword. " +
			"Note bodies are truncated in 200 characters; call `read-note` for the full content.",
		Fields: []Field{
			{
				Name:        "bookId",
				Type:        String,
				Description: "The notebook ID to list notes from. It can be found as `_id` in the book docs",
				Required:    true,
			},
			{
				Name:        "tagIds",
				Type:        StringArray,
				Description: "Tag IDs the notes must have. They can be found as `_id` in the tag docs",
				Default:     []string{},
			},
			{
				Name:        "keyword",
				Type:        String,
				Description: "Additional keyword in the search qualifier syntax (see `search-notes`)",
			},
			{
				Name:        "sort",
				Type:        String,
				Description: "Sort field",
				Enum:        []string{SortUpdatedAt, SortCreatedAt, SortTitle},
				Default:     SortUpdatedAt,
			},
			{
				Name:        "descending",
				Type:        Boolean,
				Description: "Reverse the sort order",
				Default:     true,
			},
		},
	},
	{
		Name:        CreateNote,
		Description: "Create a new note in the database",
		Fields:      noteFields(),
	},
	{
		Name:        UpdateNote,
		Description: "Update the existing note in the database",
		Fields: append([]Field{
			{
				Name:        "_id",
				Type:        String,
				Description: "The unique document ID which should start with `note:` and the remains are randomly generated string",
				Required:    true,
				MinLength:   6,
				MaxLength:   128,
				Pattern:     noteIDPattern,
			},
			{
				Name:        "_rev",
				Type:        String,
				Description: "This is a CouchDB specific field. The current MVCC-token/revision of this document (mandatory and immutable).",
				Required:    true,
			},
		}, noteFields()...),
	},
	{
		Name:        ListNotebooks,
		Description: "Retrieve a list of all notebooks",
	},
	{
		Name:        ListTags,
		Description: "Retrieve a list of all tags",
	},
}

// All returns every command schema in registration order.
func All() []Schema {
	return append([]Schema(nil), registry...)
}

// Lookup returns the schema of the named command.
func Lookup(name string) (Schema, bool) {
	for _, s := range registry {
		if s.Name == name {
			return s, true
		}
	}
	return Schema{}, false
}

const searchNotesDescription = "List all notes that contain a given keyword.\n" +
	"The result does not include entire note bodies as they are truncated in 200 characters.\n" +
	"You have to retrieve the full note content by calling `read-note`.\n" +
	"Here are tips to specify keywords effectively:\n" +
	`
## Use special qualifiers to narrow down results

You can use special qualifiers to get more accurate results. See the qualifiers and their usage examples:

- **book**
  ` + "`book:Blog`" + `: Searches for notes in the 'Blog' notebook.
- **tag**
  ` + "`tag:JavaScript`" + `: Searches for all notes having the 'JavaScript' tag.
- **status**
  ` + "`status:onHold`" + `: Searches for all notes with the 'On hold' status.
- **title**
  ` + "`title:\"JavaScript setTimeout\"`" + `: Searches for the note with the specified title.
- **body**
  ` + "`body:KEYWORD`" + `: Searches for a specific word in all notes.

### Combine qualifiers

You can combine the filter qualifiers to refine data even more.

**Find notes that contain the word 'Hello' and have the 'Issue' tag.**

` + "```text\nHello tag:Issue\n```" + `

**Find notes that contain the word 'Typescript,' have the 'Contribution' tag, and the 'Completed' status**

` + "```text\nTypescript tag:Contribution status:Completed\n```" + `

## Search for text with spaces

To find the text that includes spaces, put the text into the double quotation marks ("):

` + "```text\n\"database associations\"\n```" + `

## Exclude text from search

To exclude text from the search results or ignore a specific qualifier, put the minus sign (-) before it. You can also combine the exclusions. See the examples:

- ` + "`-book:Backend \"closure functions\"`" + `: Ignores the 'Backend' notebook while searching for the 'closure functions' phrase.
- ` + "`-tag:JavaScript`" + `: Ignores all notes having the 'JavaScript' tag.
- ` + "`-book:Typescript tag:work \"Data types\"`" + `: Ignores the 'Typescript' notebook and the 'work' tag while searching for the 'Data types' phrase.
- ` + "`-status:dropped title:\"Sprint 10.0\" debounce`" + `: Ignores notes with the 'Dropped' status while searching for the 'debounce' word in the note with the 'Sprint 10.0' title.
- ` + "`-\"Phrase to ignore\" \"in the rest of a sentence\"`" + `: Ignores the 'Phrase to ignore' part while searching for 'in the rest of a sentence'.

Note that you can't specify excluding modifiers only without including conditions.

**WARNING**: Make sure to enter a text to search for after the exclusion modifier.

- Will work: ` + "`-book:Backend \"closure functions\"`" + `
- Won't work: ` + "`-book:Backend`" + `. There's no query. Inkdrop doesn't understand what to search for.
`
