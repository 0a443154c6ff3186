package orchestrator

import "errors"

var (
	ErrEmptyLLMResponse = errors.New("empty LLM response")
	ErrEmptyQuery       = errors.New("empty query")
)
