package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"itodo/internal/todo"
)

// Index renders the page.
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		c.String(http.StatusInternalServerError, msgSomethingWrong)
		return
	}

	state, err := h.uc.Detail(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "todo.delivery.web.Index: %v", err)
		c.String(http.StatusInternalServerError, msgSomethingWrong)
		return
	}

	c.HTML(http.StatusOK, "index.html", h.newPageData(state, h.takeNotice(c), sc.SessionID))
}

// Submit backs the primary button. Empty text keeps the page as it was.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		h.redirect(c, msgSomethingWrong)
		return
	}

	var form submitForm
	if err := c.ShouldBind(&form); err != nil {
		h.redirect(c, "")
		return
	}

	if _, err := h.uc.Submit(ctx, sc, todo.SubmitInput{Text: form.Text}); err != nil {
		h.l.Errorf(ctx, "todo.delivery.web.Submit: %v", err)
		h.redirect(c, msgSomethingWrong)
		return
	}
	h.redirect(c, "")
}

// Delete removes a row. A stale row is narrated rather than failing.
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		h.redirect(c, msgSomethingWrong)
		return
	}

	idx, ok := h.processIndex(c)
	if !ok {
		h.redirect(c, fmt.Sprintf(msgNoTodoAtIndex, strconv.Quote(c.Param("index"))))
		return
	}

	if _, err := h.uc.Delete(ctx, sc, todo.DeleteInput{Index: idx}); err != nil {
		h.redirect(c, h.notice(c, err, idx))
		return
	}
	h.redirect(c, "")
}

// BeginEdit loads a row into the input and switches the button to Update.
func (h *handler) BeginEdit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		h.redirect(c, msgSomethingWrong)
		return
	}

	idx, ok := h.processIndex(c)
	if !ok {
		h.redirect(c, fmt.Sprintf(msgNoTodoAtIndex, strconv.Quote(c.Param("index"))))
		return
	}

	if _, err := h.uc.BeginEdit(ctx, sc, todo.BeginEditInput{Index: idx}); err != nil {
		h.redirect(c, h.notice(c, err, idx))
		return
	}
	h.redirect(c, "")
}

// CancelEdit abandons the active edit.
func (h *handler) CancelEdit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		h.redirect(c, msgSomethingWrong)
		return
	}

	if _, err := h.uc.CancelEdit(ctx, sc); err != nil {
		h.l.Errorf(ctx, "todo.delivery.web.CancelEdit: %v", err)
		h.redirect(c, msgSomethingWrong)
		return
	}
	h.redirect(c, "")
}

// Ask forwards the panel's message to the assistant. The reply shows up in
// the conversation on the next render.
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	if h.assistant == nil {
		h.redirect(c, msgChatDisabled)
		return
	}

	sc, ok := h.processScope(c)
	if !ok {
		h.redirect(c, msgSomethingWrong)
		return
	}

	var form askForm
	if err := c.ShouldBind(&form); err != nil || form.Message == "" {
		h.redirect(c, "")
		return
	}

	if _, err := h.assistant.ProcessQuery(ctx, sc.SessionID, form.Message); err != nil {
		h.l.Errorf(ctx, "todo.delivery.web.Ask: %v", err)
		h.redirect(c, msgChatFailed)
		return
	}
	h.redirect(c, "")
}

func (h *handler) notice(c *gin.Context, err error, idx int) string {
	if errors.Is(err, todo.ErrIndexOutOfRange) {
		return fmt.Sprintf(msgNoTodoAtIndex, strconv.Itoa(idx))
	}
	h.l.Errorf(c.Request.Context(), "todo.delivery.web: %v", err)
	return msgSomethingWrong
}
