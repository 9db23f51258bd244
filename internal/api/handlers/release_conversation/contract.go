package release_conversation

type ConversationService interface {
	ReleaseConversation(conversationID string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
