package response

// Resp is the envelope of every JSON response. ErrorCode is 0 on success
// and the HTTP status (or ValidationErrorCode) otherwise.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}
