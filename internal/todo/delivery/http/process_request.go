package http

import (
	"strconv"

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

// processTextReq binds the {"text": ...} body. Empty text is allowed; the
// use case decides whether it is a no-op.
func (h *handler) processTextReq(c *gin.Context) (model.Scope, textReq, error) {
	var req textReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processIndexReq parses the :index path parameter.
func (h *handler) processIndexReq(c *gin.Context) (model.Scope, indexReq, error) {
	var req indexReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		return sc, req, errMalformedIndex
	}
	req.Index = idx
	return sc, req, nil
}
