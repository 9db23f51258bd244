package send_message

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
	"github.com/m04kA/EVP-GatewayService/internal/service/conversations"
	"github.com/m04kA/EVP-GatewayService/internal/service/conversations/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMessage     = "некорректное сообщение"
	msgNotFound           = "диалог не найден"
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

// Handle POST /api/v1/conversations/{conversationId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	conversationID := vars["conversationId"]

	var req models.SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /conversations/{id}/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SendMessage(r.Context(), conversationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, conversations.ErrConversationNotFound):
			h.logger.Warn("POST /conversations/{id}/messages - Conversation not found: conversation_id=%s",
				conversationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, conversations.ErrInvalidInput):
			h.logger.Warn("POST /conversations/{id}/messages - Invalid message: conversation_id=%s, user_id=%d: %v",
				conversationID, req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidMessage)

		default:
			h.logger.Error("POST /conversations/{id}/messages - Failed to send message: conversation_id=%s, error=%v",
				conversationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /conversations/{id}/messages - Message sent: message_id=%s, conversation_id=%s, user_id=%d",
		result.ID, conversationID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
