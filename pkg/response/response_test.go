package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "itodo/pkg/errors"
	"itodo/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		write       func(c *gin.Context)
		wantStatus  int
		wantCode    int
		wantMessage string
		wantAborted bool
	}{
		{
			name:        "OK",
			write:       func(c *gin.Context) { response.OK(c, []string{"milk"}) },
			wantStatus:  http.StatusOK,
			wantCode:    0,
			wantMessage: response.MessageSuccess,
		},
		{
			name:        "plain error is a validation failure",
			write:       func(c *gin.Context) { response.Error(c, errors.New("text is required")) },
			wantStatus:  http.StatusBadRequest,
			wantCode:    response.ValidationErrorCode,
			wantMessage: "text is required",
		},
		{
			name: "HTTPError keeps its status",
			write: func(c *gin.Context) {
				response.Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, "no todo at index 3"))
			},
			wantStatus:  http.StatusNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "no todo at index 3",
		},
		{
			name:        "wrapped HTTPError keeps its status",
			write:       func(c *gin.Context) { response.Error(c, errors.Join(pkgErrors.ErrServiceUnavailable)) },
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    http.StatusServiceUnavailable,
			wantMessage: "service unavailable",
		},
		{
			name:        "TooManyRequests aborts",
			write:       response.TooManyRequests,
			wantStatus:  http.StatusTooManyRequests,
			wantCode:    http.StatusTooManyRequests,
			wantMessage: "too many requests",
			wantAborted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.write(c)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if resp.ErrorCode != tt.wantCode {
				t.Errorf("expected error_code %d, got %d", tt.wantCode, resp.ErrorCode)
			}
			if resp.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, resp.Message)
			}
			if c.IsAborted() != tt.wantAborted {
				t.Errorf("aborted = %v, want %v", c.IsAborted(), tt.wantAborted)
			}
		})
	}
}

func TestOK_Data(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.OK(c, map[string]string{"input": "buy milk"})

	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if resp.Data["input"] != "buy milk" {
		t.Errorf("unexpected data payload: %v", resp.Data)
	}
}

func TestErrorWithData_NilDataIsEmptyObject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.ErrorWithData(c, pkgErrors.NewHTTPError(http.StatusNotFound, "missing"), nil)

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("expected an empty data object, got %v", resp.Data)
	}
}
