package book_meeting

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
	bookMeeting "github.com/m04kA/EVP-GatewayService/internal/usecase/book_meeting"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные встречи"
	msgInvalidInterval    = "некорректный интервал встречи"
	msgDateOutsideWindow  = "дата вне трехдневного окна расписания"
	msgSlotNotOnGrid      = "время начала не совпадает с сеткой слотов"
	msgSlotConflict       = "слот занят у одного из участников"
	msgUpstreamRejected   = "платформа отклонила создание встречи"
)

type Handler struct {
	useCase BookMeetingUseCase
	logger  Logger
}

func NewHandler(useCase BookMeetingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/meetings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /meetings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /meetings - Failed to parse request: %v", err)
		// Определяем, что именно не распарсилось
		if _, dateErr := time.Parse(domain.DateFormat, req.Date); dateErr != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookMeeting.ErrInvalidInput):
			h.logger.Warn("POST /meetings - Invalid input: organizer=%d, participant=%d: %v",
				req.OrganizerID, req.ParticipantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookMeeting.ErrInvalidInterval):
			h.logger.Warn("POST /meetings - Invalid interval: organizer=%d, start=%s",
				req.OrganizerID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, bookMeeting.ErrDateOutsideWindow):
			h.logger.Warn("POST /meetings - Date outside window: organizer=%d, date=%s",
				req.OrganizerID, req.Date)
			handlers.RespondBadRequest(w, msgDateOutsideWindow)

		case errors.Is(err, bookMeeting.ErrSlotNotOnGrid):
			h.logger.Warn("POST /meetings - Start time not on grid: organizer=%d, start=%s",
				req.OrganizerID, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotNotOnGrid)

		case errors.Is(err, bookMeeting.ErrSlotConflict):
			h.logger.Warn("POST /meetings - Slot conflict: organizer=%d, participant=%d",
				req.OrganizerID, req.ParticipantID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, bookMeeting.ErrUpstream):
			h.logger.Warn("POST /meetings - Platform rejected request: organizer=%d, error=%v",
				req.OrganizerID, err)
			handlers.RespondError(w, http.StatusBadGateway, upstreamMessage(err))

		default:
			h.logger.Error("POST /meetings - Failed to book meeting: organizer=%d, participant=%d, error=%v",
				req.OrganizerID, req.ParticipantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /meetings - Meeting booked successfully: meeting_id=%d, organizer=%d, participant=%d",
		result.ID, req.OrganizerID, req.ParticipantID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// upstreamMessage достает сообщение платформы, если оно есть.
// Платформа локализует свои сообщения об ошибках, их можно показывать как есть.
func upstreamMessage(err error) string {
	var apiErr *platformapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return msgUpstreamRejected
}
