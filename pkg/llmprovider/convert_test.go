package llmprovider

import (
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

func TestResponseAsMap(t *testing.T) {
	type result struct {
		Message string `json:"message"`
		Success bool   `json:"success"`
	}

	m := responseAsMap(result{Message: "Added", Success: true})
	if m["message"] != "Added" || m["success"] != true {
		t.Errorf("unexpected map: %v", m)
	}

	wrapped := responseAsMap("plain string")
	if wrapped["output"] != "plain string" {
		t.Errorf("expected wrapped output, got %v", wrapped)
	}

	same := map[string]interface{}{"k": "v"}
	if got := responseAsMap(same); got["k"] != "v" {
		t.Errorf("expected passthrough, got %v", got)
	}
}

func conversation() *Request {
	return &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "be helpful"}}},
		Messages: []Message{
			{Role: RoleUser, Parts: []Part{{Text: "add milk and eggs"}}},
			{Role: RoleAssistant, Parts: []Part{
				{FunctionCall: &FunctionCall{ID: "c1", Name: "addTodoItem", Args: map[string]interface{}{"todoText": "milk"}}},
				{FunctionCall: &FunctionCall{ID: "c2", Name: "addTodoItem", Args: map[string]interface{}{"todoText": "eggs"}}},
			}},
			{Role: RoleTool, Parts: []Part{
				{FunctionResponse: &FunctionResponse{ID: "c1", Name: "addTodoItem", Response: map[string]interface{}{"message": "ok"}}},
				{FunctionResponse: &FunctionResponse{ID: "c2", Name: "addTodoItem", Response: map[string]interface{}{"message": "ok"}}},
			}},
		},
		Tools: []Tool{{Name: "addTodoItem", Description: "Add", Parameters: map[string]interface{}{"type": "object"}}},
	}
}

func TestToOpenAIRequest(t *testing.T) {
	req, err := toOpenAIRequest("deepseek-chat", conversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// system + user + assistant + one message per tool result
	if len(req.Messages) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != openai.ChatMessageRoleSystem || req.Messages[0].Content != "be helpful" {
		t.Errorf("unexpected system message: %+v", req.Messages[0])
	}
	if calls := req.Messages[2].ToolCalls; len(calls) != 2 || calls[1].Function.Arguments != `{"todoText":"eggs"}` {
		t.Errorf("unexpected tool calls: %+v", calls)
	}
	if req.Messages[4].Role != openai.ChatMessageRoleTool || req.Messages[4].ToolCallID != "c2" {
		t.Errorf("unexpected tool message: %+v", req.Messages[4])
	}
	if len(req.Tools) != 1 || req.Tools[0].Function.Name != "addTodoItem" {
		t.Errorf("unexpected tools: %+v", req.Tools)
	}
}

func TestFromOpenAIMessage(t *testing.T) {
	msg := fromOpenAIMessage(openai.ChatCompletionMessage{
		Content: "sure",
		ToolCalls: []openai.ToolCall{{
			ID:       "c1",
			Function: openai.FunctionCall{Name: "deleteTodoItem", Arguments: `{"todoIndex":"1"}`},
		}},
	})
	if len(msg.Parts) != 2 || msg.Parts[1].FunctionCall.Args["todoIndex"] != "1" {
		t.Errorf("unexpected message: %+v", msg)
	}
	if msg.Parts[1].FunctionCall.ArgsError != nil {
		t.Errorf("unexpected args error: %v", msg.Parts[1].FunctionCall.ArgsError)
	}
}

func TestFromOpenAIMessage_MalformedArgumentsKeepTheCall(t *testing.T) {
	msg := fromOpenAIMessage(openai.ChatCompletionMessage{
		ToolCalls: []openai.ToolCall{
			{ID: "c1", Function: openai.FunctionCall{Name: "addTodoItem", Arguments: "{not json"}},
			{ID: "c2", Function: openai.FunctionCall{Name: "listTodoItems", Arguments: "null"}},
		},
	})
	if len(msg.Parts) != 2 {
		t.Fatalf("expected both calls, got %+v", msg.Parts)
	}

	bad := msg.Parts[0].FunctionCall
	if bad.ID != "c1" || bad.ArgsError == nil || len(bad.Args) != 0 {
		t.Errorf("expected c1 kept with an args error and empty args, got %+v", bad)
	}
	if null := msg.Parts[1].FunctionCall; null.ArgsError != nil || null.Args == nil {
		t.Errorf("expected null arguments to decode as an empty object, got %+v", null)
	}
}

func TestEncodeToolResult(t *testing.T) {
	if got := encodeToolResult(map[string]string{"message": "ok"}); got != `{"message":"ok"}` {
		t.Errorf("unexpected encoding %s", got)
	}
	got := encodeToolResult(map[string]interface{}{"bad": make(chan int)})
	if !strings.HasPrefix(got, `{"error":"unencodable tool result`) {
		t.Errorf("expected an error object, got %s", got)
	}
}

func TestToOpenAIRequest_UnencodableArguments(t *testing.T) {
	req := &Request{Messages: []Message{{Role: RoleAssistant, Parts: []Part{
		{FunctionCall: &FunctionCall{ID: "c1", Name: "addTodoItem", Args: map[string]interface{}{"todoText": make(chan int)}}},
	}}}}
	if _, err := toOpenAIRequest("m", req); err == nil {
		t.Errorf("expected an error for unencodable arguments")
	}
}

func TestToGenAIContents(t *testing.T) {
	req := conversation()
	contents := toGenAIContents(req.Messages)

	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}
	if contents[1].Role != genai.RoleModel || contents[2].Role != genai.RoleUser {
		t.Errorf("unexpected roles: %s, %s", contents[1].Role, contents[2].Role)
	}
	if fr := contents[2].Parts[0].FunctionResponse; fr == nil || fr.Response["message"] != "ok" {
		t.Errorf("unexpected function response: %+v", contents[2].Parts[0])
	}

	cfg := toGenAIConfig(req)
	if cfg.SystemInstruction == nil || len(cfg.Tools) != 1 || len(cfg.Tools[0].FunctionDeclarations) != 1 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestFromGenAIContent(t *testing.T) {
	msg := fromGenAIContent(&genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{
		{Text: "thinking", Thought: true},
		{Text: "Done."},
		{FunctionCall: &genai.FunctionCall{Name: "listTodoItems", Args: map[string]any{}}},
		nil,
	}})

	if len(msg.Parts) != 2 || msg.Parts[0].Text != "Done." || msg.Parts[1].FunctionCall.Name != "listTodoItems" {
		t.Errorf("unexpected message: %+v", msg)
	}
}
