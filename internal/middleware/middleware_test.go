package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"itodo/internal/middleware"
	"itodo/pkg/log"
)

const knownID = "6f1c2e0a-3b7d-4c1e-9a55-0d2b8e7f4a11"

func newRouter(cfg middleware.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), cfg)

	r := gin.New()
	r.Use(mw.Session())
	r.GET("/whoami", mw.RateLimit(), func(c *gin.Context) {
		sc, ok := middleware.ScopeFromGin(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no scope")
			return
		}
		c.String(http.StatusOK, sc.SessionID)
	})
	return r
}

func TestSession(t *testing.T) {
	r := newRouter(middleware.Config{CookieName: "sid", CookieMaxAge: time.Hour})

	t.Run("issues a new session", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if _, err := uuid.Parse(w.Body.String()); err != nil {
			t.Errorf("expected a UUID session, got %q", w.Body.String())
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != "sid" || cookies[0].Value != w.Body.String() || !cookies[0].HttpOnly {
			t.Errorf("unexpected cookies: %+v", cookies)
		}
		if got := w.Header().Get(middleware.SessionHeader); got != w.Body.String() {
			t.Errorf("expected session header %q, got %q", w.Body.String(), got)
		}
	})

	t.Run("reuses cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: knownID})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Body.String() != knownID {
			t.Errorf("expected %s, got %s", knownID, w.Body.String())
		}
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: uuid.NewString()})
		req.Header.Set(middleware.SessionHeader, knownID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Body.String() != knownID {
			t.Errorf("expected %s, got %s", knownID, w.Body.String())
		}
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(middleware.SessionHeader, "../../etc/passwd")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Body.String() == "../../etc/passwd" {
			t.Errorf("malformed id was accepted")
		}
		if _, err := uuid.Parse(w.Body.String()); err != nil {
			t.Errorf("expected a fresh UUID, got %q", w.Body.String())
		}
	})
}

func TestRateLimit(t *testing.T) {
	get := func(r *gin.Engine, id string) int {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(middleware.SessionHeader, id)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("limits per session", func(t *testing.T) {
		// 6/min gives a burst of one request.
		r := newRouter(middleware.Config{RateLimitPerMin: 6})

		if code := get(r, knownID); code != http.StatusOK {
			t.Fatalf("first request: expected 200, got %d", code)
		}
		if code := get(r, knownID); code != http.StatusTooManyRequests {
			t.Errorf("second request: expected 429, got %d", code)
		}
		if code := get(r, uuid.NewString()); code != http.StatusOK {
			t.Errorf("other session: expected 200, got %d", code)
		}
	})

	t.Run("concurrent first requests share one bucket", func(t *testing.T) {
		r := newRouter(middleware.Config{RateLimitPerMin: 6})
		id := uuid.NewString()

		const requests = 32
		codes := make(chan int, requests)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < requests; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				codes <- get(r, id)
			}()
		}
		close(start)
		wg.Wait()
		close(codes)

		allowed := 0
		for code := range codes {
			if code == http.StatusOK {
				allowed++
			}
		}
		if allowed != 1 {
			t.Errorf("expected exactly 1 request within the burst, got %d", allowed)
		}
	})

	t.Run("disabled when not positive", func(t *testing.T) {
		r := newRouter(middleware.Config{})
		for i := 0; i < 20; i++ {
			if code := get(r, knownID); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, code)
			}
		}
	})
}
