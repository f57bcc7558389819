// Package api serves the MCP streamable HTTP transport behind a chi router.
package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const bearerScheme = "Bearer "

// BearerAuth rejects MCP requests that do not carry
// "Authorization: Bearer <token>". Rejections are answered with a
// WWW-Authenticate challenge and a JSON error body.
func BearerAuth(token string) func(http.Handler) http.Handler {
	want := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := bearerToken(r)
			if !ok || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="inkdrop-mcp"`)
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, bearerScheme) {
		return "", false
	}
	return strings.TrimPrefix(auth, bearerScheme), true
}
