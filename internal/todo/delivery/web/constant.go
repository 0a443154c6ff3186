package web

const (
	pagePath        = "/"
	noticeCookie    = "itodo_notice"
	noticeMaxAgeSec = 60

	msgNoTodoAtIndex  = "Invalid operation: there is no todo at index %s."
	msgChatDisabled   = "Chat is not configured on this server."
	msgChatFailed     = "The assistant could not answer right now. Please try again."
	msgSomethingWrong = "Something went wrong. Please try again."
)
