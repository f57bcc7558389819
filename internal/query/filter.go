// Package query builds Inkdrop search expressions from structured filters.
//
// The output is plain string concatenation. The keyword is treated as an opaque
// expression in the backend's qualifier syntax and is never parsed here; the
// backend alone decides whether the result is well formed.
package query

import (
	"strings"

	"github.com/inkdropapp/mcp-server/internal/models"
)

// Compile merges the notebook, tags and free-text keyword into one expression:
//
//	bookId:<id> tagId:<id>... <keyword>
//
// Namespace prefixes are stripped from the ids. Tag order is preserved and
// duplicates are kept. An empty result means "match all".
func Compile(bookID string, tagIDs []string, keyword string) string {
	terms := make([]string, 0, len(tagIDs)+2)
	if bookID != "" {
		terms = append(terms, "bookId:"+strings.TrimPrefix(bookID, models.BookPrefix))
	}
	for _, id := range tagIDs {
		terms = append(terms, "tagId:"+strings.TrimPrefix(id, models.TagPrefix))
	}
	if keyword != "" {
		terms = append(terms, keyword)
	}
	return strings.TrimSpace(strings.Join(terms, " "))
}
