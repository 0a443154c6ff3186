package httpserver

import (
	"github.com/gin-gonic/gin"

	"itodo/pkg/response"
)

const (
	ServiceName    = "itodo"
	ServiceVersion = "1.0.0"
)

// statusResp is the body of the health, ready and live endpoints.
type statusResp struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	Environment   string `json:"environment,omitempty"`
	AssistantChat *bool  `json:"assistant_chat,omitempty"`
	Sessions      *int   `json:"active_sessions,omitempty"`
}

func (srv HTTPServer) status(status string) statusResp {
	return statusResp{
		Status:      status,
		Service:     ServiceName,
		Version:     ServiceVersion,
		Environment: srv.environment,
	}
}

// healthCheck
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck also reports whether the chat endpoint has an LLM behind it and
// how many sessions are live. The action registry is always available.
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := srv.status("ready")
	chat := srv.chatEnabled
	resp.AssistantChat = &chat
	if srv.sessions != nil {
		n := srv.sessions.Len()
		resp.Sessions = &n
	}
	response.OK(c, resp)
}

// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
