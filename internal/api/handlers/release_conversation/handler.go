package release_conversation

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
)

const (
	msgMissingConversationID = "ID диалога обязателен"
)

type Handler struct {
	service ConversationService
	logger  Logger
}

func NewHandler(service ConversationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/conversations/{conversationId}/release
// Вызывается клиентом при закрытии экрана диалога: отписка от real-time
// канала и сброс кеша страницы.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	conversationID := vars["conversationId"]

	if conversationID == "" {
		h.logger.Warn("POST /conversations/{id}/release - Missing conversation ID")
		handlers.RespondBadRequest(w, msgMissingConversationID)
		return
	}

	h.service.ReleaseConversation(conversationID)

	h.logger.Info("POST /conversations/{id}/release - Conversation released: conversation_id=%s", conversationID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
