// Package noteservice maps agent commands onto Inkdrop server calls and shapes
// the results returned to the agent.
package noteservice

import (
	"context"

	"github.com/inkdropapp/mcp-server/internal/inkdrop"
	"github.com/inkdropapp/mcp-server/internal/models"
	"github.com/inkdropapp/mcp-server/internal/query"
)

// Result limits and shaping.
const (
	SearchLimit   = 10
	ListLimit     = 100
	SummaryLength = 200
)

// Resource paths on the Inkdrop server.
const (
	notesPath = "notes"
	booksPath = "books"
	tagsPath  = "tags"
)

// Backend is the transport used by the service. *inkdrop.Client implements it.
type Backend interface {
	Fetch(ctx context.Context, path string, params inkdrop.Params, out any) error
	Submit(ctx context.Context, path string, body, out any) error
}

// ListOptions filter a notebook listing.
type ListOptions struct {
	BookID     string
	TagIDs     []string
	Keyword    string
	Sort       string
	Descending bool
}

// Service executes note operations against the backend. It holds no state
// between calls.
type Service struct {
	backend Backend
}

// NewService creates a new note service.
func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// ReadNote returns the full note document. A bare id is looked up as note:<id>.
func (s *Service) ReadNote(ctx context.Context, id string) (models.Document, error) {
	var doc models.Document
	if err := s.backend.Fetch(ctx, models.NormalizeNoteID(id), nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SearchNotes runs a keyword search and returns note summaries.
func (s *Service) SearchNotes(ctx context.Context, keyword string) ([]models.Document, error) {
	return s.fetchSummaries(ctx, inkdrop.Params{
		"keyword": keyword,
		"limit":   SearchLimit,
	})
}

// ListNotes returns summaries of the notes in a notebook matching opts.
func (s *Service) ListNotes(ctx context.Context, opts ListOptions) ([]models.Document, error) {
	params := inkdrop.Params{
		"keyword":    optional(query.Compile(opts.BookID, opts.TagIDs, opts.Keyword)),
		"limit":      ListLimit,
		"sort":       optional(opts.Sort),
		"descending": opts.Descending,
	}
	return s.fetchSummaries(ctx, params)
}

// SaveNote submits a note to the server. The server creates the note when the
// document has no _id and updates it otherwise; its response is returned as is.
func (s *Service) SaveNote(ctx context.Context, note map[string]any) (models.Document, error) {
	var res models.Document
	if err := s.backend.Submit(ctx, notesPath, note, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// ListBooks returns every notebook.
func (s *Service) ListBooks(ctx context.Context) ([]models.Document, error) {
	return s.fetchList(ctx, booksPath)
}

// ListTags returns every tag.
func (s *Service) ListTags(ctx context.Context) ([]models.Document, error) {
	return s.fetchList(ctx, tagsPath)
}

func (s *Service) fetchList(ctx context.Context, path string) ([]models.Document, error) {
	var docs []models.Document
	if err := s.backend.Fetch(ctx, path, nil, &docs); err != nil {
		return nil, err
	}
	return nonNilSlice(docs), nil
}

func (s *Service) fetchSummaries(ctx context.Context, params inkdrop.Params) ([]models.Document, error) {
	var notes []models.Document
	if err := s.backend.Fetch(ctx, notesPath, params, &notes); err != nil {
		return nil, err
	}
	out := make([]models.Document, len(notes))
	for i, n := range notes {
		out[i] = n.TruncateBody(SummaryLength)
	}
	return out, nil
}

// optional maps an empty string to an omitted parameter.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
