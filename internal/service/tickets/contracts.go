package tickets

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
)

// PlatformClient интерфейс клиента REST API платформы
type PlatformClient interface {
	CreateTicketOrder(ctx context.Context, req *platformapi.CreateTicketOrderRequest, idempotencyKey string) (*domain.TicketOrder, error)
	GetTicketOrder(ctx context.Context, orderID string) (*domain.TicketOrder, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
