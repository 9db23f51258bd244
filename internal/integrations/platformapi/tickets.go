package platformapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// CreateTicketOrder создает заказ билетов.
// Платформа инициирует оплату во внешнем платежном шлюзе и возвращает
// заказ с payment_url; сам платежный шлюз вне зоны ответственности сервиса.
func (c *Client) CreateTicketOrder(ctx context.Context, req *CreateTicketOrderRequest, idempotencyKey string) (*domain.TicketOrder, error) {
	var dto TicketOrderDTO
	err := c.doJSON(ctx, http.MethodPost, "/ticket-orders", idempotencyKey, req, &dto, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// GetTicketOrder получает заказ билетов по ID
func (c *Client) GetTicketOrder(ctx context.Context, orderID string) (*domain.TicketOrder, error) {
	var dto TicketOrderDTO
	err := c.doJSON(ctx, http.MethodGet,
		fmt.Sprintf("/ticket-orders/%s", url.PathEscape(orderID)), "", nil, &dto, http.StatusOK)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return dto.ToDomain(), nil
}
