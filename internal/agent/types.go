package agent

import (
	"context"
	"fmt"

	"github.com/agnivade/levenshtein"

	"itodo/pkg/llmprovider"
)

// maxSuggestDistance bounds how far a misspelled tool name may be from a
// registered one before no suggestion is made.
const maxSuggestDistance = 3

// Tool represents an operation the assistant may invoke.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// ToolRegistry manages available tools. Tools are listed in registration order.
type ToolRegistry struct {
	tools map[string]Tool
	order []string
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry, replacing any tool with the same name.
func (r *ToolRegistry) Register(tool Tool) {
	if _, exists := r.tools[tool.Name()]; !exists {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Resolve retrieves a tool by name or returns an error wrapping
// ErrToolNotFound that names the closest registered tool.
func (r *ToolRegistry) Resolve(name string) (Tool, error) {
	if tool, ok := r.tools[name]; ok {
		return tool, nil
	}
	if suggestion := r.Suggest(name); suggestion != "" {
		return nil, fmt.Errorf("%w: %q, did you mean %q?", ErrToolNotFound, name, suggestion)
	}
	return nil, fmt.Errorf("%w: %q", ErrToolNotFound, name)
}

// Suggest returns the registered tool name closest to name, or "" when none
// is within maxSuggestDistance edits.
func (r *ToolRegistry) Suggest(name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range r.order {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// List returns all registered tools.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// ToFunctionDefinitions converts tools to LLM function calling format.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.order))
	for _, tool := range r.List() {
		tools = append(tools, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return tools
}
