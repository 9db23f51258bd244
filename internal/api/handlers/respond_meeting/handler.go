package respond_meeting

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
	"github.com/m04kA/EVP-GatewayService/internal/service/meetings"
	"github.com/m04kA/EVP-GatewayService/internal/service/meetings/models"
)

const (
	msgInvalidMeetingID   = "некорректный ID встречи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidResponse    = "ответ должен быть accepted или declined"
	msgNotFound           = "встреча не найдена"
)

type Handler struct {
	service MeetingService
	logger  Logger
}

func NewHandler(service MeetingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/meetings/{meetingId}/respond
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	meetingIDStr := vars["meetingId"]

	meetingID, err := strconv.ParseInt(meetingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /meetings/{id}/respond - Invalid meeting ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	var req models.RespondMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /meetings/{id}/respond - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Respond(r.Context(), meetingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, meetings.ErrMeetingNotFound):
			h.logger.Warn("PATCH /meetings/{id}/respond - Meeting not found: meeting_id=%d", meetingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, meetings.ErrInvalidResponse):
			h.logger.Warn("PATCH /meetings/{id}/respond - Invalid response: meeting_id=%d, response=%s",
				meetingID, req.Response)
			handlers.RespondBadRequest(w, msgInvalidResponse)

		default:
			h.logger.Error("PATCH /meetings/{id}/respond - Failed to respond: meeting_id=%d, error=%v",
				meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /meetings/{id}/respond - Meeting %s: meeting_id=%d, user_id=%d",
		result.Status, meetingID, req.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
