package models

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

var reflector = &jsonschema.Reflector{
	Anonymous:      true,
	DoNotReference: true,
	ExpandedStruct: true,
}

// EntitySchemas returns the Note, Book and Tag JSON schemas, indented, in that order.
func EntitySchemas() ([]string, error) {
	entities := []struct {
		name string
		v    any
	}{
		{"Note", &Note{}},
		{"Book", &Book{}},
		{"Tag", &Tag{}},
	}

	out := make([]string, 0, len(entities))
	for _, e := range entities {
		s := reflector.Reflect(e.v)
		s.Version = ""
		s.Title = e.name
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal %s schema: %w", e.name, err)
		}
		out = append(out, string(data))
	}
	return out, nil
}
