package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/inkdropapp/mcp-server/internal/command"
)

// newTool publishes a command schema as an MCP tool definition.
func newTool(s command.Schema) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(s.Description)}
	for _, f := range s.Fields {
		opts = append(opts, toolProperty(f))
	}
	return mcp.NewTool(s.Name, opts...)
}

func toolProperty(f command.Field) mcp.ToolOption {
	props := []mcp.PropertyOption{mcp.Description(f.Description)}
	if f.Required {
		props = append(props, mcp.Required())
	}

	switch f.Type {
	case command.Boolean:
		if b, ok := f.Default.(bool); ok {
			props = append(props, mcp.DefaultBool(b))
		}
		return mcp.WithBoolean(f.Name, props...)
	case command.StringArray:
		props = append(props, mcp.Items(map[string]any{"type": "string"}))
		if f.Default != nil {
			props = append(props, defaultValue(f.Default))
		}
		return mcp.WithArray(f.Name, props...)
	default:
		if f.MinLength > 0 {
			props = append(props, mcp.MinLength(f.MinLength))
		}
		if f.MaxLength > 0 {
			props = append(props, mcp.MaxLength(f.MaxLength))
		}
		if f.Pattern != nil {
			props = append(props, mcp.Pattern(f.Pattern.String()))
		}
		if len(f.Enum) > 0 {
			props = append(props, mcp.Enum(f.Enum...))
		}
		if s, ok := f.Default.(string); ok {
			props = append(props, mcp.DefaultString(s))
		}
		return mcp.WithString(f.Name, props...)
	}
}

func defaultValue(v any) mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["default"] = v
	}
}
