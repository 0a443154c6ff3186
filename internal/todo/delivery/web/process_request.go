package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"itodo/internal/middleware"
	"itodo/internal/model"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, bool) {
	sc, ok := middleware.ScopeFromGin(c)
	if !ok {
		h.l.Errorf(c.Request.Context(), "todo.delivery.web: request without session scope")
	}
	return sc, ok
}

func (h *handler) processIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// redirect sends the browser back to the page with an optional one-shot notice.
func (h *handler) redirect(c *gin.Context, notice string) {
	if notice != "" {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(noticeCookie, notice, noticeMaxAgeSec, pagePath, "", false, true)
	}
	c.Redirect(http.StatusSeeOther, pagePath)
}

// takeNotice reads and clears the one-shot notice.
func (h *handler) takeNotice(c *gin.Context) string {
	notice, err := c.Cookie(noticeCookie)
	if err != nil || notice == "" {
		return ""
	}
	c.SetCookie(noticeCookie, "", -1, pagePath, "", false, true)
	return notice
}
