package purchase_ticket

import (
	"errors"
	"net/http"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
	"github.com/m04kA/EVP-GatewayService/internal/service/tickets"
	"github.com/m04kA/EVP-GatewayService/internal/service/tickets/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOrder       = "некорректные данные заказа"
)

type Handler struct {
	service TicketService
	logger  Logger
}

func NewHandler(service TicketService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/ticket-orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PurchaseTicketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /ticket-orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Purchase(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrInvalidInput):
			h.logger.Warn("POST /ticket-orders - Invalid order: user_id=%d, event_id=%d: %v",
				req.UserID, req.EventID, err)
			handlers.RespondBadRequest(w, msgInvalidOrder)

		default:
			h.logger.Error("POST /ticket-orders - Failed to create order: user_id=%d, event_id=%d, error=%v",
				req.UserID, req.EventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /ticket-orders - Order created: order_id=%s, user_id=%d, status=%s",
		result.ID, req.UserID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
