package orchestrator

import (
	"sync"
	"time"

	"itodo/internal/agent"
	pkgLog "itodo/pkg/log"
)

type Orchestrator struct {
	llm          LLM
	registry     *agent.ToolRegistry
	lists        ListReader
	l            pkgLog.Logger
	cfg          Config
	sessionCache map[string]*SessionMemory
	cacheMutex   sync.RWMutex
	now          func() time.Time
	stop         chan struct{}
	done         chan struct{}
	closeOnce    sync.Once
}

// New starts an orchestrator and its session cleanup loop. lists may be nil.
// Call Close to stop the loop.
func New(llm LLM, registry *agent.ToolRegistry, lists ListReader, l pkgLog.Logger, cfg Config) *Orchestrator {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.HistoryTTL <= 0 {
		cfg.HistoryTTL = DefaultHistoryTTL
	}
	o := &Orchestrator{
		llm:          llm,
		registry:     registry,
		lists:        lists,
		l:            l,
		cfg:          cfg,
		sessionCache: make(map[string]*SessionMemory),
		now:          time.Now,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	go o.cleanupExpiredSessions(SessionCleanupInterval)

	return o
}

// Close stops the cleanup loop. It is safe to call more than once.
func (o *Orchestrator) Close() {
	o.closeOnce.Do(func() {
		close(o.stop)
		<-o.done
	})
}
