package http

import (
	"github.com/gin-gonic/gin"

	"itodo/internal/todo"
	"itodo/pkg/response"
)

// Detail godoc
// @Summary     Get the todo list
// @Description Returns the session's todos, edit cursor and pending input.
// @Tags        Todos
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	state, err := h.uc.Detail(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "todo.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStateResp(state))
}

// Add godoc
// @Summary     Add a todo
// @Description Appends a todo. Empty text is ignored and reported as applied=false.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Todo text"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Add(ctx, sc, todo.AddInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "todo.delivery.http.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// SetInput godoc
// @Summary     Stage pending input
// @Description Stores text in the pending input buffer without touching the list.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Pending text"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos/input [PUT]
func (h *handler) SetInput(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SetInput(ctx, sc, todo.SetInputInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "todo.delivery.http.SetInput: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// Delete godoc
// @Summary     Delete a todo
// @Description Removes the todo at the given zero-based position.
// @Tags        Todos
// @Produce     json
// @Param       index path int true "Todo position"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Malformed index"
// @Failure     404 {object} response.Resp "No todo at index"
// @Router      /api/v1/todos/{index} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processIndexReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Delete(ctx, sc, todo.DeleteInput{Index: req.Index})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// BeginEdit godoc
// @Summary     Start editing a todo
// @Description Points the edit cursor at the todo and loads its text into the pending input.
// @Tags        Todos
// @Produce     json
// @Param       index path int true "Todo position"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Malformed index"
// @Failure     404 {object} response.Resp "No todo at index"
// @Router      /api/v1/todos/{index}/edit [POST]
func (h *handler) BeginEdit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processIndexReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.BeginEdit(ctx, sc, todo.BeginEditInput{Index: req.Index})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// CommitEdit godoc
// @Summary     Commit the active edit
// @Description Replaces the todo under the cursor. Without a cursor or with empty text nothing changes.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body textReq true "New text"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos/edit/commit [POST]
func (h *handler) CommitEdit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CommitEdit(ctx, sc, todo.CommitEditInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "todo.delivery.http.CommitEdit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// CancelEdit godoc
// @Summary     Cancel the active edit
// @Description Clears the edit cursor and the pending input.
// @Tags        Todos
// @Produce     json
// @Success     200 {object} mutationResp
// @Router      /api/v1/todos/edit/cancel [POST]
func (h *handler) CancelEdit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CancelEdit(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "todo.delivery.http.CancelEdit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(out))
}
