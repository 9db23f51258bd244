package purchase_ticket

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/service/tickets/models"
)

type TicketService interface {
	Purchase(ctx context.Context, req *models.PurchaseTicketRequest) (*models.TicketOrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
