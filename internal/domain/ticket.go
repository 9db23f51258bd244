package domain

import "time"

// TicketOrderStatus статус заказа билетов
type TicketOrderStatus string

const (
	OrderStatusPending   TicketOrderStatus = "pending"
	OrderStatusPaid      TicketOrderStatus = "paid"
	OrderStatusFailed    TicketOrderStatus = "failed"
	OrderStatusCancelled TicketOrderStatus = "cancelled"
)

// TicketOrder заказ билетов на событие.
// Оплата выполняется внешним платежным шлюзом платформы;
// шлюз передает пользователю PaymentURL и следит за статусом.
type TicketOrder struct {
	ID           string
	UserID       int64
	EventID      int64
	TicketTypeID int64
	Quantity     int
	AmountCents  int64
	Currency     string
	Status       TicketOrderStatus
	PaymentURL   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinal возвращает true, если статус заказа финальный
func (o *TicketOrder) IsFinal() bool {
	return o.Status == OrderStatusPaid || o.Status == OrderStatusFailed || o.Status == OrderStatusCancelled
}
