package tickets

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
	"github.com/m04kA/EVP-GatewayService/internal/service/tickets/models"
)

// Service сервис для работы с заказами билетов.
// Оплата выполняется внешним платежным шлюзом платформы: сервис создает
// заказ, получает payment_url и отдает его клиенту как есть.
type Service struct {
	platform PlatformClient
	logger   Logger
}

// NewService создает новый экземпляр сервиса билетов
func NewService(platform PlatformClient, logger Logger) *Service {
	return &Service{
		platform: platform,
		logger:   logger,
	}
}

// Purchase создает заказ билетов на событие.
// Запрос к платформе идемпотентен: каждая покупка получает свой
// Idempotency-Key, повтор после сетевой ошибки не создаст второй заказ.
func (s *Service) Purchase(ctx context.Context, req *models.PurchaseTicketRequest) (*models.TicketOrderResponse, error) {
	s.logger.Info("Purchase: user=%d, event=%d, ticket_type=%d, quantity=%d",
		req.UserID, req.EventID, req.TicketTypeID, req.Quantity)

	if err := validatePurchase(req); err != nil {
		s.logger.Warn("Purchase: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	order, err := s.platform.CreateTicketOrder(ctx, &platformapi.CreateTicketOrderRequest{
		UserID:       req.UserID,
		EventID:      req.EventID,
		TicketTypeID: req.TicketTypeID,
		Quantity:     req.Quantity,
	}, uuid.NewString())
	if err != nil {
		s.logger.Error("Purchase: platform error for user=%d, event=%d: %v", req.UserID, req.EventID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.logger.Info("Purchase: created order id=%s, status=%s", order.ID, order.Status)
	return models.FromDomainTicketOrder(order), nil
}

// GetOrder получает заказ билетов по ID.
// Используется клиентом для опроса статуса после возврата из платежного шлюза.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*models.TicketOrderResponse, error) {
	s.logger.Info("GetOrder: fetching order id=%s", orderID)

	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", ErrInvalidInput)
	}

	order, err := s.platform.GetTicketOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, platformapi.ErrOrderNotFound) {
			s.logger.Warn("GetOrder: order id=%s not found", orderID)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetOrder: platform error for order id=%s: %v", orderID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return models.FromDomainTicketOrder(order), nil
}

func validatePurchase(req *models.PurchaseTicketRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if req.EventID <= 0 {
		return fmt.Errorf("%w: event id must be positive", ErrInvalidInput)
	}
	if req.TicketTypeID <= 0 {
		return fmt.Errorf("%w: ticket type id must be positive", ErrInvalidInput)
	}
	if req.Quantity < 1 || req.Quantity > domain.MaxTicketQuantity {
		return fmt.Errorf("%w: quantity must be between 1 and %d", ErrInvalidInput, domain.MaxTicketQuantity)
	}
	return nil
}
