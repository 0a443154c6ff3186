package llmprovider

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const (
	ProviderGemini     = "gemini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// GeminiAdapter serves Provider through the Google GenAI SDK.
type GeminiAdapter struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiAdapter creates a Gemini adapter for the Gemini Developer API.
func NewGeminiAdapter(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiAdapter, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiAdapter{client: client, model: model, timeout: timeout}, nil
}

// GenerateContent implements Provider.
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, toGenAIContents(req.Messages), toGenAIConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}

	out := &Response{
		Content:      fromGenAIContent(resp.Candidates[0].Content),
		ProviderName: ProviderGemini,
		ModelName:    a.model,
		Usage:        &Usage{},
	}
	if md := resp.UsageMetadata; md != nil {
		out.Usage = &Usage{
			InputTokens:  int(md.PromptTokenCount),
			OutputTokens: int(md.CandidatesTokenCount),
			TotalTokens:  int(md.TotalTokenCount),
		}
	}
	return out, nil
}

// Name implements Provider.
func (a *GeminiAdapter) Name() string { return ProviderGemini }

// Model implements Provider.
func (a *GeminiAdapter) Model() string { return a.model }

func toGenAIConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != nil {
		cfg.SystemInstruction = toGenAIContent(*req.SystemInstruction)
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		cfg.Temperature = &temp
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if len(req.Tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, len(req.Tools))
		for i, t := range req.Tools {
			decls[i] = &genai.FunctionDeclaration{
				Name:                 t.Name,
				Description:          t.Description,
				ParametersJsonSchema: t.Parameters,
			}
		}
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}
	return cfg
}

// Gemini has no tool role: function results travel in user turns and the
// assistant is called "model".
func genAIRole(role string) string {
	if role == RoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}

func toGenAIContent(msg Message) *genai.Content {
	parts := make([]*genai.Part, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		switch {
		case p.FunctionCall != nil:
			parts = append(parts, &genai.Part{FunctionCall: &genai.FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}})
		case p.FunctionResponse != nil:
			parts = append(parts, &genai.Part{FunctionResponse: &genai.FunctionResponse{
				ID:       p.FunctionResponse.ID,
				Name:     p.FunctionResponse.Name,
				Response: responseAsMap(p.FunctionResponse.Response),
			}})
		default:
			parts = append(parts, &genai.Part{Text: p.Text})
		}
	}
	return &genai.Content{Role: genAIRole(msg.Role), Parts: parts}
}

func toGenAIContents(msgs []Message) []*genai.Content {
	contents := make([]*genai.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = toGenAIContent(msg)
	}
	return contents
}

func fromGenAIContent(content *genai.Content) Message {
	msg := Message{Role: RoleAssistant}
	for _, p := range content.Parts {
		if p == nil {
			continue
		}
		switch {
		case p.FunctionCall != nil:
			msg.Parts = append(msg.Parts, Part{FunctionCall: &FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}})
		case p.Text != "" && !p.Thought:
			msg.Parts = append(msg.Parts, Part{Text: p.Text})
		}
	}
	return msg
}
