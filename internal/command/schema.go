// Package command declares the argument contracts of every agent-facing command
// and validates raw arguments against them.
//
// A Schema is plain data. The same value drives validation here and the tool
// input schema advertised over MCP.
package command

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/inkdropapp/mcp-server/internal/apperr"
)

// Type is the semantic type of an argument.
type Type int

const (
	String Type = iota
	Boolean
	StringArray
)

func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case StringArray:
		return "array of strings"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Field describes one argument.
type Field struct {
	Name        string
	Type        Type
	Description string
	Required    bool
	// MinLength and MaxLength bound strings in characters. Zero disables the bound.
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Enum      []string
	// Default is applied when an optional field is absent. Nil means no default.
	Default any
}

// Schema is the argument contract of a command.
type Schema struct {
	Name        string
	Description string
	Fields      []Field
}

// Field returns the field with the given name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks raw against the schema and returns the accepted arguments.
// Keys the schema does not declare are dropped and defaults are filled in.
// The first violation is returned as an *apperr.ValidationError.
func (s Schema) Validate(raw map[string]any) (Args, error) {
	args := make(Args, len(s.Fields))
	for _, f := range s.Fields {
		v, ok := raw[f.Name]
		if !ok || v == nil {
			if f.Required {
				return nil, s.invalid(f, "is required")
			}
			if f.Default != nil {
				args[f.Name] = f.Default
			}
			continue
		}

		value, err := coerce(f.Type, v)
		if err != nil {
			return nil, s.invalid(f, err.Error())
		}
		if err := validation.Validate(value, f.rules()...); err != nil {
			return nil, s.invalid(f, err.Error())
		}
		args[f.Name] = value
	}
	return args, nil
}

func (s Schema) invalid(f Field, reason string) error {
	return &apperr.ValidationError{Command: s.Name, Field: f.Name, Reason: reason}
}

// rules translates the field constraints into ozzo-validation rules.
func (f Field) rules() []validation.Rule {
	var rules []validation.Rule
	if f.Type != String {
		return rules
	}
	// ozzo skips empty values for every rule below, so a lower bound needs Required.
	if f.MinLength > 0 {
		rules = append(rules, validation.Required)
	}
	if f.MinLength > 0 || f.MaxLength > 0 {
		rules = append(rules, validation.RuneLength(f.MinLength, f.MaxLength))
	}
	if f.Pattern != nil {
		rules = append(rules, validation.Match(f.Pattern).Error("must match "+f.Pattern.String()))
	}
	if len(f.Enum) > 0 {
		in := make([]any, len(f.Enum))
		for i, e := range f.Enum {
			in[i] = e
		}
		msg := fmt.Sprintf("must be one of %v", f.Enum)
		// "" is not a member, and In alone would let it through.
		rules = append(rules, validation.Required.Error(msg), validation.In(in...).Error(msg))
	}
	return rules
}

func coerce(t Type, v any) (any, error) {
	switch t {
	case String:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case Boolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case StringArray:
		switch vv := v.(type) {
		case []string:
			return append([]string{}, vv...), nil
		case []any:
			out := make([]string, len(vv))
			for i, item := range vv {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("item %d must be a string", i)
				}
				out[i] = s
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("must be a %s", t)
}

// Args are validated command arguments.
type Args map[string]any

// Has reports whether name was supplied or defaulted.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the string argument name, or "" when absent.
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Bool returns the boolean argument name, or false when absent.
func (a Args) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// Strings returns the string list argument name, or nil when absent.
func (a Args) Strings(name string) []string {
	s, _ := a[name].([]string)
	return s
}

// Map returns the arguments as a plain map, suitable for forwarding as a JSON body.
func (a Args) Map() map[string]any {
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
