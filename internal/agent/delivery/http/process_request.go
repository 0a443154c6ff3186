package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"itodo/internal/middleware"
	"itodo/internal/model"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.ScopeFromGin(c)
	if !ok {
		return model.Scope{}, errNoSession
	}
	return sc, nil
}

// processInvokeReq binds the optional {"args": {...}} body.
func (h *handler) processInvokeReq(c *gin.Context) (invokeReq, error) {
	var req invokeReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	if req.Args == nil {
		req.Args = map[string]interface{}{}
	}
	return req, nil
}

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
