package http

import (
	"itodo/internal/agent"
	"itodo/internal/agent/orchestrator"
	"itodo/internal/agent/tools"
)

// --- Request DTOs ---

type invokeReq struct {
	Args map[string]interface{} `json:"args"`
}

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

// --- Response DTOs ---

type actionResp struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type listActionsResp struct {
	Actions []actionResp `json:"actions"`
}

func (h *handler) newListActionsResp(ts []agent.Tool) listActionsResp {
	actions := make([]actionResp, len(ts))
	for i, t := range ts {
		actions[i] = actionResp{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		}
	}
	return listActionsResp{Actions: actions}
}

type invokeResp struct {
	Message string   `json:"message"`
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Todos   []string `json:"todos"`
}

func (h *handler) newInvokeResp(out tools.ActionOutput) invokeResp {
	return invokeResp{
		Message: out.Message,
		Success: out.Success,
		Error:   out.Error,
		Todos:   out.Todos,
	}
}

type chatResp struct {
	Reply   string              `json:"reply"`
	History []orchestrator.Turn `json:"history"`
}
