package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"itodo/internal/model"
	"itodo/pkg/llmprovider"
)

// ProcessQuery runs the ReAct loop (reason, act, observe) for one user
// message and returns the assistant's final answer.
func (o *Orchestrator) ProcessQuery(ctx context.Context, sessionID, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	sc := model.Scope{SessionID: sessionID}
	ctx = model.SetScopeToContext(ctx, sc)

	listContext, err := o.buildListContext(ctx, sc)
	if err != nil {
		o.l.Errorf(ctx, "%s: %v", LogPrefixProcessQuery, err)
		return "", err
	}

	messages := append(o.loadHistory(sessionID), llmprovider.Message{
		Role:  llmprovider.RoleUser,
		Parts: []llmprovider.Part{{Text: query}},
	})
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: o.cfg.Instructions + listContext}},
		},
		Messages: messages,
		Tools:    o.registry.ToFunctionDefinitions(),
	}

	for step := 0; step < o.cfg.MaxSteps; step++ {
		o.l.Debugf(ctx, LogMsgAgentStep, step+1, o.cfg.MaxSteps)

		// 1. Reason
		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			o.l.Errorf(ctx, "%s: %v", LogPrefixProcessQuery, err)
			return "", fmt.Errorf(ErrMsgAgentLLMError, step, err)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			answer := strings.TrimSpace(resp.Text())
			if answer == "" {
				return "", ErrEmptyLLMResponse
			}
			o.l.Infof(ctx, LogMsgAgentFinished, step+1)
			o.saveTurn(sessionID, query, answer)
			return answer, nil
		}

		// 2. Act, 3. Observe
		results := make([]llmprovider.Part, 0, len(calls))
		for _, call := range calls {
			results = append(results, llmprovider.Part{FunctionResponse: &llmprovider.FunctionResponse{
				ID:       call.ID,
				Name:     call.Name,
				Response: o.executeTool(ctx, call),
			}})
		}
		assistantMsg := resp.Content
		assistantMsg.Role = llmprovider.RoleAssistant
		req.Messages = append(req.Messages,
			assistantMsg,
			llmprovider.Message{Role: llmprovider.RoleTool, Parts: results},
		)
	}

	o.l.Warnf(ctx, LogMsgAgentMaxSteps, o.cfg.MaxSteps)
	return MsgMaxStepsExceeded, nil
}

// executeTool never fails the loop: lookup and execution errors are handed
// back to the model so it can correct itself or explain.
func (o *Orchestrator) executeTool(ctx context.Context, call llmprovider.FunctionCall) interface{} {
	o.l.Infof(ctx, LogMsgAgentCallingTool, call.Name, call.Args)

	if call.ArgsError != nil {
		o.l.Warnf(ctx, LogMsgToolExecutionError, call.Name, call.ArgsError)
		return map[string]string{"error": call.ArgsError.Error()}
	}

	tool, err := o.registry.Resolve(call.Name)
	if err != nil {
		o.l.Warnf(ctx, LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}

	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		o.l.Errorf(ctx, LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}
