// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the Inkdrop database to LLM agents.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/inkdropapp/mcp-server/internal/command"
	"github.com/inkdropapp/mcp-server/internal/noteservice"
)

const (
	serverName    = "Inkdrop"
	serverVersion = "1.0.0"

	noteURIPrefix   = "inkdrop://note/"
	noteURITemplate = noteURIPrefix + "{noteId}"
)

// Server wraps the MCP server with the Inkdrop commands.
type Server struct {
	mcp      *server.MCPServer
	svc      *noteservice.Service
	logger   *slog.Logger
	handlers map[string]server.ToolHandlerFunc
}

// New creates a new MCP server with every command, the note resource template
// and the usage prompt registered.
func New(svc *noteservice.Service, logger *slog.Logger) *Server {
	s := &Server{
		svc:      svc,
		logger:   logger,
		handlers: make(map[string]server.ToolHandlerFunc),
	}

	s.mcp = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)

	executors := s.executors()
	for _, schema := range command.All() {
		exec, ok := executors[schema.Name]
		if !ok {
			panic(fmt.Sprintf("mcpserver: no executor for command %q", schema.Name))
		}
		h := s.dispatch(schema, exec)
		s.handlers[schema.Name] = h
		s.mcp.AddTool(newTool(schema), h)
	}

	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(noteURITemplate, "note",
			mcp.WithTemplateDescription("A note data"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.readNoteResource,
	)

	s.mcp.AddPrompt(
		mcp.NewPrompt(promptName,
			mcp.WithPromptDescription("Instructions for using the Inkdrop MCP server effectively"),
		),
		s.getPrompt,
	)

	return s
}

// ServeStdio serves MCP over the given line-delimited streams until in is
// closed or ctx is cancelled. Protocol errors are reported through the logger.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))
	return stdio.Listen(ctx, in, out)
}

// HTTPHandler returns the MCP streamable HTTP transport.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) readNoteResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	noteID, err := url.PathUnescape(strings.TrimPrefix(uri, noteURIPrefix))
	if err != nil || noteID == "" || !strings.HasPrefix(uri, noteURIPrefix) {
		return nil, fmt.Errorf("invalid note uri: %s", uri)
	}

	note, err := s.svc.ReadNote(ctx, noteID)
	if err != nil {
		s.logger.Warn("read note resource failed", slog.String("uri", uri), slog.String("error", err.Error()))
		return nil, err
	}
	out, err := json.MarshalIndent(note, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode note: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(out),
		},
	}, nil
}

func (s *Server) getPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	text, err := promptText()
	if err != nil {
		return nil, err
	}
	return mcp.NewGetPromptResult(
		"Instructions for using the Inkdrop MCP server effectively",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleAssistant, mcp.NewTextContent(text)),
		},
	), nil
}
