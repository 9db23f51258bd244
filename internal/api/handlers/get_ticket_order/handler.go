package get_ticket_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
	"github.com/m04kA/EVP-GatewayService/internal/service/tickets"
)

const (
	msgMissingOrderID = "ID заказа обязателен"
	msgNotFound       = "заказ не найден"
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

// Handle GET /api/v1/ticket-orders/{orderId}
// Используется клиентом для опроса статуса оплаты после возврата из платежного шлюза
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["orderId"]

	if orderID == "" {
		h.logger.Warn("GET /ticket-orders/{id} - Missing order ID")
		handlers.RespondBadRequest(w, msgMissingOrderID)
		return
	}

	result, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrOrderNotFound):
			h.logger.Warn("GET /ticket-orders/{id} - Order not found: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /ticket-orders/{id} - Failed to fetch order: order_id=%s, error=%v",
				orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /ticket-orders/{id} - Order fetched: order_id=%s, status=%s", orderID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
