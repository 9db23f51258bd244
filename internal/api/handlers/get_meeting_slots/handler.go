package get_meeting_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
	getMeetingSlots "github.com/m04kA/EVP-GatewayService/internal/usecase/get_meeting_slots"
)

const (
	msgMissingUserID        = "ID пользователя обязателен"
	msgInvalidUserID        = "некорректный ID пользователя"
	msgMissingCounterpartID = "ID собеседника обязателен"
	msgInvalidCounterpartID = "некорректный ID собеседника"
	msgInvalidInput         = "некорректные параметры запроса"
	msgUpstreamUnavailable  = "не удалось получить занятые слоты"
)

type Handler struct {
	useCase GetMeetingSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetMeetingSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/meeting-slots
// Query params: userId (required), counterpartId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из query параметров
	userIDStr := r.URL.Query().Get("userId")
	if userIDStr == "" {
		h.logger.Warn("GET /meeting-slots - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /meeting-slots - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Извлекаем counterpartId из query параметров
	counterpartIDStr := r.URL.Query().Get("counterpartId")
	if counterpartIDStr == "" {
		h.logger.Warn("GET /meeting-slots - Missing counterpart ID")
		handlers.RespondBadRequest(w, msgMissingCounterpartID)
		return
	}

	counterpartID, err := strconv.ParseInt(counterpartIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /meeting-slots - Invalid counterpart ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCounterpartID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMeetingSlots.Request{
		UserID:        userID,
		CounterpartID: counterpartID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMeetingSlots.ErrInvalidInput):
			h.logger.Warn("GET /meeting-slots - Invalid input: user_id=%d, counterpart_id=%d: %v",
				userID, counterpartID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getMeetingSlots.ErrUpstream):
			h.logger.Error("GET /meeting-slots - Upstream failure: user_id=%d, counterpart_id=%d, error=%v",
				userID, counterpartID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamUnavailable)

		default:
			h.logger.Error("GET /meeting-slots - Failed to build slot grid: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /meeting-slots - Slot grid built: user_id=%d, counterpart_id=%d, days=%d",
		userID, counterpartID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
