package orchestrator

import (
	"context"
	"time"

	"itodo/pkg/llmprovider"
)

// History returns the visible turns of a session's conversation.
func (o *Orchestrator) History(sessionID string) []Turn {
	o.cacheMutex.RLock()
	defer o.cacheMutex.RUnlock()

	mem, ok := o.sessionCache[sessionID]
	if !ok || o.expired(mem) {
		return nil
	}
	turns := make([]Turn, 0, len(mem.Messages))
	for _, msg := range mem.Messages {
		var text string
		for _, p := range msg.Parts {
			text += p.Text
		}
		turns = append(turns, Turn{Role: msg.Role, Text: text})
	}
	return turns
}

func (o *Orchestrator) loadHistory(sessionID string) []llmprovider.Message {
	o.cacheMutex.RLock()
	defer o.cacheMutex.RUnlock()

	mem, ok := o.sessionCache[sessionID]
	if !ok || o.expired(mem) {
		return nil
	}
	out := make([]llmprovider.Message, len(mem.Messages))
	copy(out, mem.Messages)
	return out
}

func (o *Orchestrator) saveTurn(sessionID, query, answer string) {
	o.cacheMutex.Lock()
	defer o.cacheMutex.Unlock()

	mem, ok := o.sessionCache[sessionID]
	if !ok || o.expired(mem) {
		mem = &SessionMemory{SessionID: sessionID}
		o.sessionCache[sessionID] = mem
	}
	mem.Messages = append(mem.Messages,
		llmprovider.Message{Role: llmprovider.RoleUser, Parts: []llmprovider.Part{{Text: query}}},
		llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: answer}}},
	)
	if len(mem.Messages) > MaxSessionHistory {
		mem.Messages = mem.Messages[len(mem.Messages)-MaxSessionHistory:]
	}
	mem.LastUpdated = o.now()
}

func (o *Orchestrator) expired(mem *SessionMemory) bool {
	return o.now().Sub(mem.LastUpdated) > o.cfg.HistoryTTL
}

func (o *Orchestrator) evictExpired() int {
	o.cacheMutex.Lock()
	defer o.cacheMutex.Unlock()

	removed := 0
	for id, mem := range o.sessionCache {
		if o.expired(mem) {
			delete(o.sessionCache, id)
			removed++
		}
	}
	return removed
}

func (o *Orchestrator) cleanupExpiredSessions(interval time.Duration) {
	defer close(o.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-o.stop:
			return
		case <-ticker.C:
			if removed := o.evictExpired(); removed > 0 {
				o.l.Debugf(context.Background(), "%s: "+LogMsgSessionsCleanedUp, LogPrefixCleanupSessions, removed)
			}
		}
	}
}
