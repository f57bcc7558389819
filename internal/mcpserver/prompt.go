package mcpserver

import (
	"strings"

	"github.com/inkdropapp/mcp-server/internal/models"
)

const promptName = "inkdrop-prompt"

const promptIntro = `Inkdrop is a Markdown note-taking app designed for programmers to help their coding workflow.
This server provides access to the Inkdrop database. Use it to search notes, create new notes, and track issues written in the notes.

Key capabilities:
- Search notes by keyword
- List notes in a notebook, narrowed by tags
- Get a note by its ID
- Create and update notes
- Get a list of all notebooks and tags

Best practices:
- When searching:
  - Use specific, targeted queries for better results (e.g., "auth mobile app" rather than just "auth")
  - Apply relevant filters when asked or when you can infer the appropriate filters to narrow results
  - Use ` + "`read-note`" + ` to get the full note content
- When updating:
  - Read the note first and pass its ` + "`_rev`" + ` unchanged; a stale revision is rejected by the server
  - To delete a note, move it to the ` + "`trash`" + ` notebook

Model schemas:
`

// promptText renders the usage guide followed by the Note, Book and Tag schemas.
func promptText() (string, error) {
	schemas, err := models.EntitySchemas()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(promptIntro)
	for _, s := range schemas {
		b.WriteString("\n```json\n")
		b.WriteString(s)
		b.WriteString("\n```\n")
	}
	return b.String(), nil
}
