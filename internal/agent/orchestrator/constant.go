package orchestrator

import "time"

// Log prefixes
const (
	LogPrefixProcessQuery    = "internal.agent.orchestrator.ProcessQuery"
	LogPrefixCleanupSessions = "internal.agent.orchestrator.cleanupExpiredSessions"
)

// List context template
const (
	ListContextHeader = "\n\n[CURRENT TODO LIST - zero-based positions]\n"
	ListContextEmpty  = "(the list is empty)"
	ListContextItem   = "%d: %s\n"
	ListContextEdit   = "The user is currently editing the todo at index %d.\n"
)

// Error messages
const (
	ErrMsgAgentLLMError    = "agent LLM error at step %d: %w"
	MsgMaxStepsExceeded    = "Sorry, that took too many steps. Please try breaking the request into smaller parts."
	ErrMsgListContextError = "failed to read todo list: %w"
)

// Log messages
const (
	LogMsgAgentStep          = "Agent step %d/%d"
	LogMsgAgentFinished      = "Agent finished at step %d"
	LogMsgAgentCallingTool   = "Agent calling tool: %s with args: %+v"
	LogMsgToolExecutionError = "Tool %s failed: %v"
	LogMsgAgentMaxSteps      = "Agent exceeded max steps (%d)"
	LogMsgSessionsCleanedUp  = "Cleaned up %d expired sessions"
)

// Defaults
const (
	DefaultMaxSteps        = 5
	DefaultHistoryTTL      = 10 * time.Minute
	MaxSessionHistory      = 10 // last 5 turns
	SessionCleanupInterval = time.Minute
)
