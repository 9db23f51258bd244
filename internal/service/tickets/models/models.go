package models

import (
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// Request модели

// PurchaseTicketRequest запрос на покупку билетов
type PurchaseTicketRequest struct {
	UserID       int64 `json:"userId"`
	EventID      int64 `json:"eventId"`
	TicketTypeID int64 `json:"ticketTypeId"`
	Quantity     int   `json:"quantity"`
}

// Response модели

// TicketOrderResponse ответ с данными заказа билетов
type TicketOrderResponse struct {
	ID           string `json:"id"`
	UserID       int64  `json:"userId"`
	EventID      int64  `json:"eventId"`
	TicketTypeID int64  `json:"ticketTypeId"`
	Quantity     int    `json:"quantity"`
	AmountCents  int64  `json:"amountCents"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	PaymentURL   string `json:"paymentUrl,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// FromDomainTicketOrder конвертирует доменную модель в response
func FromDomainTicketOrder(o *domain.TicketOrder) *TicketOrderResponse {
	return &TicketOrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		EventID:      o.EventID,
		TicketTypeID: o.TicketTypeID,
		Quantity:     o.Quantity,
		AmountCents:  o.AmountCents,
		Currency:     o.Currency,
		Status:       string(o.Status),
		PaymentURL:   o.PaymentURL,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.Format(time.RFC3339),
	}
}
