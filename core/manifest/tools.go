package manifest

import (
	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vadiminshakov/micros/core/exercise"
)

// ConvertToMCPTools describes exercises as MCP tools. Every param becomes a
// required property of an object schema.
func ConvertToMCPTools(defs []exercise.Definition) []*mcp.Tool {
	mcpTools := make([]*mcp.Tool, len(defs))

	for i, def := range defs {
		inputSchema := &jsonschema.Schema{
			Type:       "object",
			Properties: make(map[string]*jsonschema.Schema, len(def.Params)),
		}

		for _, p := range def.Params {
			inputSchema.Properties[p.Name] = &jsonschema.Schema{
				Type:        string(p.Kind),
				Description: p.Description,
			}
			inputSchema.Required = append(inputSchema.Required, p.Name)
		}

		mcpTools[i] = &mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: inputSchema,
		}
	}

	return mcpTools
}
