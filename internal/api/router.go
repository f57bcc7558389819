package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MCPPath is where the MCP streamable HTTP transport is mounted.
const MCPPath = "/mcp"

// NewRouter creates a chi router serving the MCP transport and health checks.
// authEnabled controls whether Bearer token auth is enforced on MCPPath;
// health checks are always unauthenticated. Access logs go to logger.
func NewRouter(mcpHandler http.Handler, authEnabled bool, token string, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", health)
	r.Get("/health/ready", health)

	r.Group(func(r chi.Router) {
		if authEnabled {
			r.Use(BearerAuth(token))
		}
		r.Handle(MCPPath, mcpHandler)
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
