package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/inkdropapp/mcp-server/internal/command"
	"github.com/inkdropapp/mcp-server/internal/noteservice"
)

// executor runs a command whose arguments have already been validated.
type executor func(ctx context.Context, args command.Args) (any, error)

func (s *Server) executors() map[string]executor {
	return map[string]executor{
		command.ReadNote: func(ctx context.Context, args command.Args) (any, error) {
			return s.svc.ReadNote(ctx, args.String("noteId"))
		},
		command.SearchNotes: func(ctx context.Context, args command.Args) (any, error) {
			return s.svc.SearchNotes(ctx, args.String("keyword"))
		},
		command.ListNotes: func(ctx context.Context, args command.Args) (any, error) {
			return s.svc.ListNotes(ctx, noteservice.ListOptions{
				BookID:     args.String("bookId"),
				TagIDs:     args.Strings("tagIds"),
				Keyword:    args.String("keyword"),
				Sort:       args.String("sort"),
				Descending: args.Bool("descending"),
			})
		},
		command.CreateNote: s.saveNote,
		command.UpdateNote: s.saveNote,
		command.ListNotebooks: func(ctx context.Context, _ command.Args) (any, error) {
			return s.svc.ListBooks(ctx)
		},
		command.ListTags: func(ctx context.Context, _ command.Args) (any, error) {
			return s.svc.ListTags(ctx)
		},
	}
}

// saveNote backs both create-note and update-note.
func (s *Server) saveNote(ctx context.Context, args command.Args) (any, error) {
	return s.svc.SaveNote(ctx, args.Map())
}

// dispatch validates the raw arguments, runs the command and renders its
// result as indented JSON. Any failure becomes an error result carrying the
// cause; nothing is retried and no partial result is returned.
func (s *Server) dispatch(schema command.Schema, exec executor) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := s.logger.With(
			slog.String("command", schema.Name),
			slog.String("invocation_id", uuid.NewString()),
		)
		log.Debug("command received")

		args, err := schema.Validate(req.GetArguments())
		if err != nil {
			return failed(log, err), nil
		}

		res, err := exec(ctx, args)
		if err != nil {
			return failed(log, err), nil
		}

		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return failed(log, fmt.Errorf("encode result: %w", err)), nil
		}
		log.Debug("command completed")
		return mcp.NewToolResultText(string(out)), nil
	}
}

func failed(log *slog.Logger, err error) *mcp.CallToolResult {
	log.Warn("command failed", slog.String("error", err.Error()))
	return mcp.NewToolResultError(err.Error())
}
