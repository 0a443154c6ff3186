package web

import (
	"itodo/internal/agent/orchestrator"
	"itodo/internal/todo"
)

// --- Form DTOs ---

type submitForm struct {
	Text string `form:"text"`
}

type askForm struct {
	Message string `form:"message"`
}

// --- View model ---

type pageData struct {
	State            todo.State
	Notice           string
	AssistantTitle   string
	AssistantInitial string
	Turns            []orchestrator.Turn
	ChatEnabled      bool
}

func (h *handler) newPageData(state todo.State, notice, sessionID string) pageData {
	data := pageData{
		State:            state,
		Notice:           notice,
		AssistantTitle:   h.cfg.AssistantTitle,
		AssistantInitial: h.cfg.AssistantInitial,
		ChatEnabled:      h.assistant != nil,
	}
	if h.assistant != nil {
		data.Turns = h.assistant.History(sessionID)
	}
	return data
}
