package get_ticket_order

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/service/tickets/models"
)

type TicketService interface {
	GetOrder(ctx context.Context, orderID string) (*models.TicketOrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
