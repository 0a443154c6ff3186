package response

const (
	MessageSuccess      = "Success"
	ValidationErrorCode = 1
)
