package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"itodo/internal/agent/tools"
	pkgErrors "itodo/pkg/errors"
	"itodo/pkg/response"
)

// ListActions godoc
// @Summary     List assistant actions
// @Description Returns every registered operation with its parameter schema.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} listActionsResp
// @Router      /api/v1/assistant/actions [GET]
func (h *handler) ListActions(c *gin.Context) {
	response.OK(c, h.newListActionsResp(h.registry.List()))
}

// InvokeAction godoc
// @Summary     Invoke an assistant action
// @Description Runs a registered operation with string arguments. Domain failures are narrated
// @Description in the message with success=false rather than returned as HTTP errors.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       name path string    true  "Action name"
// @Param       body body invokeReq false "Arguments"
// @Success     200 {object} invokeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown action"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/assistant/actions/{name} [POST]
func (h *handler) InvokeAction(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.processScope(c); err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processInvokeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tool, err := h.registry.Resolve(c.Param("name"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	res, err := tool.Execute(ctx, req.Args)
	if err != nil {
		h.l.Errorf(ctx, "agent.delivery.http.InvokeAction: %s: %v", tool.Name(), err)
		response.Error(c, h.mapError(err))
		return
	}

	out, ok := res.(tools.ActionOutput)
	if !ok {
		h.l.Errorf(ctx, "agent.delivery.http.InvokeAction: %s returned %T", tool.Name(), res)
		response.Error(c, h.mapError(fmt.Errorf("unexpected result %T", res)))
		return
	}

	response.OK(c, h.newInvokeResp(out))
}

// Chat godoc
// @Summary     Chat with the assistant
// @Description Sends a message to the LLM-backed assistant, which may call the todo actions.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "No LLM provider configured"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	if h.assistant == nil {
		response.Error(c, pkgErrors.ErrServiceUnavailable)
		return
	}

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	reply, err := h.assistant.ProcessQuery(ctx, sc.SessionID, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "agent.delivery.http.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, chatResp{Reply: reply, History: h.assistant.History(sc.SessionID)})
}
