// Package testutil provides a fake Inkdrop server for tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Credentials accepted by the fake server.
const (
	Username = "tester"
	Password = "s3cret"
)

// Request is a recorded inbound request.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Username string
	Password string
	HasAuth  bool
	Body     []byte
}

// JSON decodes the recorded body into a generic map.
func (r Request) JSON(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(r.Body, &m); err != nil {
		t.Fatalf("request body is not a JSON object: %v (%s)", err, r.Body)
	}
	return m
}

type reply struct {
	status int
	body   string
}

// Backend is an httptest server that records requests and serves canned replies
// keyed by "METHOD /path". Unknown routes answer 404.
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	replies  map[string]reply
	requests []Request
}

// NewBackend starts a fake server that is closed when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{replies: make(map[string]reply)}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)
	return b
}

// Reply registers the response for method and path. Path is matched against
// the unescaped URL path, e.g. "/note:abc".
func (b *Backend) Reply(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replies[method+" "+path] = reply{status: status, body: body}
}

// ReplyJSON is Reply with a value marshalled to JSON.
func (b *Backend) ReplyJSON(t *testing.T, method, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}
	b.Reply(method, path, http.StatusOK, string(data))
}

// Requests returns a copy of every request received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// Last returns the most recent request and fails the test if there is none.
func (b *Backend) Last(t *testing.T) Request {
	t.Helper()
	reqs := b.Requests()
	if len(reqs) == 0 {
		t.Fatal("backend received no requests")
	}
	return reqs[len(reqs)-1]
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	user, pass, ok := r.BasicAuth()

	b.mu.Lock()
	b.requests = append(b.requests, Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		Query:    r.URL.Query(),
		Username: user,
		Password: pass,
		HasAuth:  ok,
		Body:     body,
	})
	rep, found := b.replies[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !found {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}
