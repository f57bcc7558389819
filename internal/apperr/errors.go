// Package apperr defines the failure taxonomy shared by every command.
//
// None of these errors are retried. They travel unchanged from the layer that
// raised them up to the MCP dispatcher, which reports them to the agent.
package apperr

import "fmt"

// ValidationError reports an argument that does not satisfy its command schema.
// It is raised before any network call.
type ValidationError struct {
	Command string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: invalid argument %q: %s", e.Command, e.Field, e.Reason)
}

// BackendError is a non-2xx response from the Inkdrop server.
type BackendError struct {
	Status     int
	StatusText string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error [%d] %s", e.Status, e.StatusText)
}

// DecodeError means the response body was not valid JSON or not the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError is a connection-level failure (DNS, refused, timeout).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
