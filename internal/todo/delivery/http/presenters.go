package http

import "itodo/internal/todo"

// --- Request DTOs ---

type textReq struct {
	Text string `json:"text"`
}

type indexReq struct {
	Index int
}

// --- Response DTOs ---

type stateResp struct {
	Todos       []string `json:"todos"`
	Editing     bool     `json:"editing"`
	EditIndex   *int     `json:"edit_index,omitempty"`
	Input       string   `json:"input"`
	ActionLabel string   `json:"action_label"`
}

func newStateResp(s todo.State) stateResp {
	resp := stateResp{
		Todos:       s.Todos,
		Editing:     s.Editing,
		Input:       s.Input,
		ActionLabel: s.ActionLabel(),
	}
	if resp.Todos == nil {
		resp.Todos = []string{}
	}
	if s.Editing {
		idx := s.EditIndex
		resp.EditIndex = &idx
	}
	return resp
}

type mutationResp struct {
	State   stateResp `json:"state"`
	Applied bool      `json:"applied"`
	Message string    `json:"message,omitempty"`
}

func (h *handler) newMutationResp(out todo.Output) mutationResp {
	return mutationResp{
		State:   newStateResp(out.State),
		Applied: out.Applied,
		Message: out.Message,
	}
}
