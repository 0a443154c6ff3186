package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"itodo/internal/agent"
	"itodo/internal/model"
	"itodo/internal/todo"
	"itodo/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// scriptedLLM replays responses in order and records every request.
type scriptedLLM struct {
	responses []*llmprovider.Response
	err       error
	requests  []llmprovider.Request
}

func (m *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	snapshot := *req
	snapshot.Messages = append([]llmprovider.Message(nil), req.Messages...)
	m.requests = append(m.requests, snapshot)

	if m.err != nil {
		return nil, m.err
	}
	if len(m.responses) == 0 {
		return nil, errors.New("script exhausted")
	}
	resp := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return resp, nil
}

func text(s string) *llmprovider.Response {
	return &llmprovider.Response{Content: llmprovider.Message{
		Role:  llmprovider.RoleAssistant,
		Parts: []llmprovider.Part{{Text: s}},
	}}
}

func call(id, name string, args map[string]interface{}) *llmprovider.Response {
	return &llmprovider.Response{Content: llmprovider.Message{
		Role:  llmprovider.RoleAssistant,
		Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{ID: id, Name: name, Args: args}}},
	}}
}

// recordingTool appends its todoText argument to a shared list.
type recordingTool struct {
	mu     sync.Mutex
	added  []string
	scopes []string
}

func (t *recordingTool) Name() string        { return "addTodoItem" }
func (t *recordingTool) Description() string { return "Add a todo" }
func (t *recordingTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (t *recordingTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sc, _ := model.GetScopeFromContext(ctx)
	t.scopes = append(t.scopes, sc.SessionID)
	text, _ := params["todoText"].(string)
	if text == "" {
		return nil, errors.New("todoText is required")
	}
	t.added = append(t.added, text)
	return map[string]interface{}{"message": "Added " + text}, nil
}

type stubLists struct {
	state todo.State
	err   error
}

func (s stubLists) Detail(ctx context.Context, sc model.Scope) (todo.State, error) {
	return s.state, s.err
}

func newOrchestrator(t *testing.T, llm LLM, lists ListReader) (*Orchestrator, *recordingTool) {
	t.Helper()
	tool := &recordingTool{}
	registry := agent.NewToolRegistry()
	registry.Register(tool)

	o := New(llm, registry, lists, &mockLogger{}, Config{Instructions: "Be helpful.", MaxSteps: 3})
	t.Cleanup(o.Close)
	return o, tool
}

func TestOrchestrator_ProcessQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("simple text response", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{text("Hello there!")}}
		o, _ := newOrchestrator(t, llm, nil)

		result, err := o.ProcessQuery(ctx, "s1", "hi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "Hello there!" {
			t.Errorf("expected 'Hello there!', got %q", result)
		}
		if got := llm.requests[0].SystemInstruction.Parts[0].Text; got != "Be helpful." {
			t.Errorf("unexpected system instruction %q", got)
		}
		if len(llm.requests[0].Tools) != 1 {
			t.Errorf("expected tools to be declared")
		}
	})

	t.Run("tool call then answer", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{
			{Content: llmprovider.Message{Parts: []llmprovider.Part{
				{FunctionCall: &llmprovider.FunctionCall{ID: "c1", Name: "addTodoItem", Args: map[string]interface{}{"todoText": "milk"}}},
				{FunctionCall: &llmprovider.FunctionCall{ID: "c2", Name: "addTodoItem", Args: map[string]interface{}{"todoText": "eggs"}}},
			}}},
			text("Added milk and eggs."),
		}}
		o, tool := newOrchestrator(t, llm, nil)

		result, err := o.ProcessQuery(ctx, "s1", "add milk and eggs")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "Added milk and eggs." {
			t.Errorf("unexpected answer %q", result)
		}
		if strings.Join(tool.added, ",") != "milk,eggs" {
			t.Errorf("expected both calls executed in order, got %v", tool.added)
		}
		if strings.Join(tool.scopes, ",") != "s1,s1" {
			t.Errorf("expected session scope in tool context, got %v", tool.scopes)
		}

		second := llm.requests[1].Messages
		if len(second) != 3 {
			t.Fatalf("expected user, assistant, tool messages; got %d", len(second))
		}
		if second[1].Role != llmprovider.RoleAssistant {
			t.Errorf("expected assistant role, got %q", second[1].Role)
		}
		results := second[2].Parts
		if second[2].Role != llmprovider.RoleTool || len(results) != 2 || results[1].FunctionResponse.ID != "c2" {
			t.Errorf("unexpected tool message: %+v", second[2])
		}
	})

	t.Run("unknown tool is reported to the model", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{
			call("c1", "addTodoItm", map[string]interface{}{"todoText": "milk"}),
			text("Sorry."),
		}}
		o, tool := newOrchestrator(t, llm, nil)

		if _, err := o.ProcessQuery(ctx, "s1", "add milk"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tool.added) != 0 {
			t.Errorf("expected no execution, got %v", tool.added)
		}
		resp := llm.requests[1].Messages[2].Parts[0].FunctionResponse.Response.(map[string]string)
		if !strings.Contains(resp["error"], `did you mean "addTodoItem"`) {
			t.Errorf("expected suggestion, got %q", resp["error"])
		}
	})

	t.Run("malformed arguments are reported to the model", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{
			{Content: llmprovider.Message{Parts: []llmprovider.Part{
				{FunctionCall: &llmprovider.FunctionCall{
					ID:        "c1",
					Name:      "addTodoItem",
					Args:      map[string]interface{}{},
					ArgsError: errors.New("invalid arguments for addTodoItem: unexpected end of JSON input"),
				}},
			}}},
			text("Let me try that again."),
		}}
		o, tool := newOrchestrator(t, llm, nil)

		result, err := o.ProcessQuery(ctx, "s1", "add milk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "Let me try that again." {
			t.Errorf("unexpected answer %q", result)
		}
		if len(tool.added) != 0 || len(tool.scopes) != 0 {
			t.Errorf("expected the call not to be executed, got %v", tool.scopes)
		}
		res := llm.requests[1].Messages[2].Parts[0].FunctionResponse
		if res.ID != "c1" || !strings.Contains(res.Response.(map[string]string)["error"], "invalid arguments") {
			t.Errorf("unexpected function response %+v", res)
		}
	})

	t.Run("tool failure is reported to the model", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{
			call("c1", "addTodoItem", map[string]interface{}{}),
			text("I could not add that."),
		}}
		o, _ := newOrchestrator(t, llm, nil)

		if _, err := o.ProcessQuery(ctx, "s1", "add"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp := llm.requests[1].Messages[2].Parts[0].FunctionResponse.Response.(map[string]string)
		if resp["error"] != "todoText is required" {
			t.Errorf("unexpected tool error %q", resp["error"])
		}
	})

	t.Run("max steps exceeded", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{
			call("c1", "addTodoItem", map[string]interface{}{"todoText": "again"}),
		}}
		o, tool := newOrchestrator(t, llm, nil)

		result, err := o.ProcessQuery(ctx, "s1", "loop")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != MsgMaxStepsExceeded {
			t.Errorf("unexpected answer %q", result)
		}
		if len(tool.added) != 3 {
			t.Errorf("expected 3 executions, got %d", len(tool.added))
		}
	})

	t.Run("llm error", func(t *testing.T) {
		llm := &scriptedLLM{err: errors.New("boom")}
		o, _ := newOrchestrator(t, llm, nil)

		if _, err := o.ProcessQuery(ctx, "s1", "hi"); err == nil || !strings.Contains(err.Error(), "boom") {
			t.Errorf("expected wrapped LLM error, got %v", err)
		}
	})

	t.Run("empty response", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{text("  ")}}
		o, _ := newOrchestrator(t, llm, nil)

		if _, err := o.ProcessQuery(ctx, "s1", "hi"); !errors.Is(err, ErrEmptyLLMResponse) {
			t.Errorf("expected ErrEmptyLLMResponse, got %v", err)
		}
	})

	t.Run("empty query", func(t *testing.T) {
		llm := &scriptedLLM{}
		o, _ := newOrchestrator(t, llm, nil)

		if _, err := o.ProcessQuery(ctx, "s1", " "); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("expected ErrEmptyQuery, got %v", err)
		}
		if len(llm.requests) != 0 {
			t.Errorf("expected no LLM call")
		}
	})
}

func TestOrchestrator_ListContext(t *testing.T) {
	ctx := context.Background()

	t.Run("renders positions and cursor", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{text("ok")}}
		lists := stubLists{state: todo.State{Todos: []string{"milk", "eggs"}, Editing: true, EditIndex: 1}}
		o, _ := newOrchestrator(t, llm, lists)

		if _, err := o.ProcessQuery(ctx, "s1", "what is on my list?"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := llm.requests[0].SystemInstruction.Parts[0].Text
		for _, want := range []string{"Be helpful.", "0: milk", "1: eggs", "editing the todo at index 1"} {
			if !strings.Contains(got, want) {
				t.Errorf("system instruction missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("empty list", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{text("ok")}}
		o, _ := newOrchestrator(t, llm, stubLists{})

		if _, err := o.ProcessQuery(ctx, "s1", "hi"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := llm.requests[0].SystemInstruction.Parts[0].Text; !strings.Contains(got, ListContextEmpty) {
			t.Errorf("expected empty marker, got %q", got)
		}
	})

	t.Run("reader error", func(t *testing.T) {
		llm := &scriptedLLM{}
		o, _ := newOrchestrator(t, llm, stubLists{err: todo.ErrNoScope})

		if _, err := o.ProcessQuery(ctx, "s1", "hi"); !errors.Is(err, todo.ErrNoScope) {
			t.Errorf("expected reader error, got %v", err)
		}
	})
}

func TestOrchestrator_History(t *testing.T) {
	ctx := context.Background()
	llm := &scriptedLLM{responses: []*llmprovider.Response{text("first"), text("second")}}
	o, _ := newOrchestrator(t, llm, nil)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	o.now = func() time.Time { return now }

	if _, err := o.ProcessQuery(ctx, "s1", "one"); err != nil {
		t.Fatal(err)
	}
	if _, err := o.ProcessQuery(ctx, "s1", "two"); err != nil {
		t.Fatal(err)
	}

	t.Run("previous turns are sent", func(t *testing.T) {
		msgs := llm.requests[1].Messages
		if len(msgs) != 3 || msgs[0].Parts[0].Text != "one" || msgs[1].Parts[0].Text != "first" {
			t.Errorf("unexpected history: %+v", msgs)
		}
	})

	t.Run("visible turns", func(t *testing.T) {
		turns := o.History("s1")
		want := []Turn{
			{Role: llmprovider.RoleUser, Text: "one"},
			{Role: llmprovider.RoleAssistant, Text: "first"},
			{Role: llmprovider.RoleUser, Text: "two"},
			{Role: llmprovider.RoleAssistant, Text: "second"},
		}
		if len(turns) != len(want) {
			t.Fatalf("expected %d turns, got %d", len(want), len(turns))
		}
		for i := range want {
			if turns[i] != want[i] {
				t.Errorf("turn %d = %+v, want %+v", i, turns[i], want[i])
			}
		}
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		if turns := o.History("s2"); len(turns) != 0 {
			t.Errorf("expected no history for s2, got %v", turns)
		}
	})

	t.Run("history expires", func(t *testing.T) {
		now = now.Add(DefaultHistoryTTL + time.Second)
		if turns := o.History("s1"); len(turns) != 0 {
			t.Errorf("expected expired history, got %v", turns)
		}
		if removed := o.evictExpired(); removed != 1 {
			t.Errorf("expected 1 eviction, got %d", removed)
		}
	})
}

func TestOrchestrator_HistoryIsBounded(t *testing.T) {
	llm := &scriptedLLM{responses: []*llmprovider.Response{text("ok")}}
	o, _ := newOrchestrator(t, llm, nil)

	for i := 0; i < MaxSessionHistory; i++ {
		if _, err := o.ProcessQuery(context.Background(), "s1", "q"); err != nil {
			t.Fatal(err)
		}
	}
	if got := len(o.History("s1")); got != MaxSessionHistory {
		t.Errorf("expected %d turns, got %d", MaxSessionHistory, got)
	}
}

func TestOrchestrator_CloseIsIdempotent(t *testing.T) {
	o := New(&scriptedLLM{}, agent.NewToolRegistry(), nil, &mockLogger{}, Config{})
	o.Close()
	o.Close()
}
