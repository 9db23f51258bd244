package cancel_meeting

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
	"github.com/m04kA/EVP-GatewayService/internal/service/meetings"
)

const (
	msgInvalidMeetingID   = "некорректный ID встречи"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle PATCH /api/v1/meetings/{meetingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	meetingIDStr := vars["meetingId"]

	meetingID, err := strconv.ParseInt(meetingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /meetings/{id}/cancel - Invalid meeting ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	var req CancelMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /meetings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), meetingID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, meetings.ErrMeetingNotFound):
			h.logger.Warn("PATCH /meetings/{id}/cancel - Meeting not found: meeting_id=%d", meetingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /meetings/{id}/cancel - Failed to cancel meeting: meeting_id=%d, error=%v",
				meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /meetings/{id}/cancel - Meeting cancelled: meeting_id=%d, user_id=%d",
		meetingID, req.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
