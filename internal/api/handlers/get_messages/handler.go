package get_messages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
	"github.com/m04kA/EVP-GatewayService/internal/service/conversations"
)

// defaultPageLimit размер страницы по умолчанию
const defaultPageLimit = 50

const (
	msgMissingUserID  = "ID пользователя обязателен"
	msgInvalidUserID  = "некорректный ID пользователя"
	msgInvalidLimit   = "некорректный размер страницы"
	msgNotFound       = "диалог не найден"
	msgInvalidRequest = "некорректные параметры запроса"
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

// Handle GET /api/v1/conversations/{conversationId}/messages
// Query params: userId (required), cursor (optional), limit (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	conversationID := vars["conversationId"]

	// Извлекаем userId из query параметров
	userIDStr := r.URL.Query().Get("userId")
	if userIDStr == "" {
		h.logger.Warn("GET /conversations/{id}/messages - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /conversations/{id}/messages - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	cursor := r.URL.Query().Get("cursor")

	limit := defaultPageLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			h.logger.Warn("GET /conversations/{id}/messages - Invalid limit: %s", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	result, err := h.service.GetMessages(r.Context(), userID, conversationID, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, conversations.ErrConversationNotFound):
			h.logger.Warn("GET /conversations/{id}/messages - Conversation not found: conversation_id=%s",
				conversationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, conversations.ErrInvalidInput):
			h.logger.Warn("GET /conversations/{id}/messages - Invalid input: conversation_id=%s: %v",
				conversationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /conversations/{id}/messages - Failed to fetch messages: conversation_id=%s, error=%v",
				conversationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /conversations/{id}/messages - Fetched %d messages: conversation_id=%s, user_id=%d",
		len(result.Messages), conversationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
