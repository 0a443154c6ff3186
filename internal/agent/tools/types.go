package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"itodo/internal/model"
	"itodo/internal/todo"
)

// ActionOutput is what every todo tool returns to the assistant. Message is
// always set, so the assistant can narrate failures as well as successes.
type ActionOutput struct {
	Message string   `json:"message"`
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Todos   []string `json:"todos"`
}

func newActionOutput(out todo.CommandOutput) ActionOutput {
	res := ActionOutput{
		Message: out.Message,
		Success: out.Success(),
		Todos:   out.Todos,
	}
	if out.Err != nil {
		res.Error = out.Err.Error()
	}
	if res.Todos == nil {
		res.Todos = []string{}
	}
	return res
}

// argString accepts any JSON scalar. Models sometimes send an index as a
// number or a boolean where a string is declared, so the raw literal is kept.
type argString string

func (s *argString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = argString(str)
	default:
		*s = argString(data)
	}
	return nil
}

// parseParams decodes the model-supplied arguments into dst.
func parseParams(input map[string]interface{}, dst interface{}) error {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := json.Unmarshal(inputBytes, dst); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}

func scopeFrom(ctx context.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		return model.Scope{}, todo.ErrNoScope
	}
	return sc, nil
}

func stringProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}
