package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"

	deepSeekBaseURL = "https://api.deepseek.com/v1"
	qwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// OpenAIAdapter serves Provider for any OpenAI-compatible chat completions
// API (OpenAI, DeepSeek, Qwen).
type OpenAIAdapter struct {
	client *openai.Client
	name   string
	model  string
}

// NewOpenAIAdapter creates an adapter for the named OpenAI-compatible provider.
// An empty baseURL selects the provider's public endpoint.
func NewOpenAIAdapter(name, apiKey, baseURL, model string, timeout time.Duration) *OpenAIAdapter {
	cfg := openai.DefaultConfig(apiKey)
	switch {
	case baseURL != "":
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	case name == ProviderDeepSeek:
		cfg.BaseURL = deepSeekBaseURL
	case name == ProviderQwen:
		cfg.BaseURL = qwenBaseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(cfg),
		name:   name,
		model:  model,
	}
}

// GenerateContent implements Provider.
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq, err := toOpenAIRequest(a.model, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}
	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: %w", a.name, ErrEmptyResponse)
	}

	return &Response{
		Content:      fromOpenAIMessage(resp.Choices[0].Message),
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name implements Provider.
func (a *OpenAIAdapter) Name() string { return a.name }

// Model implements Provider.
func (a *OpenAIAdapter) Model() string { return a.model }

func toOpenAIRequest(model string, req *Request) (openai.ChatCompletionRequest, error) {
	out := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		out.Messages = append(out.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: joinText(req.SystemInstruction.Parts),
		})
	}
	for _, msg := range req.Messages {
		msgs, err := toOpenAIMessages(msg)
		if err != nil {
			return openai.ChatCompletionRequest{}, err
		}
		out.Messages = append(out.Messages, msgs...)
	}

	for _, t := range req.Tools {
		out.Tools = append(out.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	return out, nil
}

// toOpenAIMessages expands one normalized message. Tool results become one
// message per call because the API pairs them by tool_call_id.
func toOpenAIMessages(msg Message) ([]openai.ChatCompletionMessage, error) {
	switch msg.Role {
	case RoleTool:
		out := make([]openai.ChatCompletionMessage, 0, len(msg.Parts))
		for _, p := range msg.Parts {
			if p.FunctionResponse == nil {
				continue
			}
			out = append(out, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    encodeToolResult(p.FunctionResponse.Response),
				Name:       p.FunctionResponse.Name,
				ToolCallID: p.FunctionResponse.ID,
			})
		}
		return out, nil

	case RoleAssistant:
		m := openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: joinText(msg.Parts),
		}
		for _, p := range msg.Parts {
			if p.FunctionCall == nil {
				continue
			}
			args, err := json.Marshal(p.FunctionCall.Args)
			if err != nil {
				return nil, fmt.Errorf("encode arguments for %s: %w", p.FunctionCall.Name, err)
			}
			m.ToolCalls = append(m.ToolCalls, openai.ToolCall{
				ID:   p.FunctionCall.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      p.FunctionCall.Name,
					Arguments: string(args),
				},
			})
		}
		return []openai.ChatCompletionMessage{m}, nil

	default:
		return []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: joinText(msg.Parts),
		}}, nil
	}
}

// encodeToolResult renders a tool result for the model. A result that cannot
// be encoded is reported to the model as an error object.
func encodeToolResult(v interface{}) string {
	raw, err := json.Marshal(v)
	if err == nil {
		return string(raw)
	}
	fallback, ferr := json.Marshal(map[string]string{"error": "unencodable tool result: " + err.Error()})
	if ferr != nil {
		return `{"error":"unencodable tool result"}`
	}
	return string(fallback)
}

// fromOpenAIMessage keeps tool calls with malformed arguments so the caller
// can hand the problem back to the model instead of failing the request.
func fromOpenAIMessage(m openai.ChatCompletionMessage) Message {
	msg := Message{Role: RoleAssistant}
	if m.Content != "" {
		msg.Parts = append(msg.Parts, Part{Text: m.Content})
	}
	for _, tc := range m.ToolCalls {
		call := &FunctionCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: map[string]interface{}{},
		}
		if strings.TrimSpace(tc.Function.Arguments) != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &call.Args); err != nil {
				call.Args = map[string]interface{}{}
				call.ArgsError = fmt.Errorf("invalid arguments for %s: %w", tc.Function.Name, err)
			}
		}
		if call.Args == nil {
			call.Args = map[string]interface{}{}
		}
		msg.Parts = append(msg.Parts, Part{FunctionCall: call})
	}
	return msg
}

func joinText(parts []Part) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
