package platformapi

import (
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// ErrorResponse модель ошибки от платформы
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SlotDTO занятый слот участника
type SlotDTO struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Topic        string    `json:"topic"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	SlotableType string    `json:"slotable_type"`
	SlotableID   int64     `json:"slotable_id"`
}

// ToDomain конвертирует DTO в доменную модель
func (d *SlotDTO) ToDomain() *domain.BookedSlot {
	return &domain.BookedSlot{
		ID:           d.ID,
		UserID:       d.UserID,
		Topic:        d.Topic,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		SlotableType: d.SlotableType,
		SlotableID:   d.SlotableID,
	}
}

// MeetingDTO встреча
type MeetingDTO struct {
	ID            int64     `json:"id"`
	OrganizerID   int64     `json:"organizer_id"`
	ParticipantID int64     `json:"participant_id"`
	Topic         string    `json:"topic"`
	Location      string    `json:"location"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToDomain конвертирует DTO в доменную модель
func (d *MeetingDTO) ToDomain() *domain.Meeting {
	return &domain.Meeting{
		ID:            d.ID,
		OrganizerID:   d.OrganizerID,
		ParticipantID: d.ParticipantID,
		Topic:         d.Topic,
		Location:      d.Location,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		Status:        domain.MeetingStatus(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// CreateMeetingRequest запрос на создание встречи
type CreateMeetingRequest struct {
	OrganizerID   int64     `json:"organizer_id"`
	ParticipantID int64     `json:"participant_id"`
	Topic         string    `json:"topic"`
	Location      string    `json:"location"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

// ConversationDTO диалог
type ConversationDTO struct {
	ID             string     `json:"id"`
	Subject        string     `json:"subject"`
	ParticipantIDs []int64    `json:"participant_ids"`
	LastMessageAt  *time.Time `json:"last_message_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ToDomain конвертирует DTO в доменную модель
func (d *ConversationDTO) ToDomain() *domain.Conversation {
	return &domain.Conversation{
		ID:             d.ID,
		Subject:        d.Subject,
		ParticipantIDs: d.ParticipantIDs,
		LastMessageAt:  d.LastMessageAt,
		CreatedAt:      d.CreatedAt,
	}
}

// ReadReceiptDTO отметка о прочтении
type ReadReceiptDTO struct {
	UserID int64     `json:"user_id"`
	ReadAt time.Time `json:"read_at"`
}

// MessageDTO сообщение диалога
type MessageDTO struct {
	ID             string           `json:"id"`
	ConversationID string           `json:"conversation_id"`
	SenderID       int64            `json:"sender_id"`
	Body           string           `json:"body"`
	ReadReceipts   []ReadReceiptDTO `json:"read_receipts"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ToDomain конвертирует DTO в доменную модель
func (d *MessageDTO) ToDomain() *domain.Message {
	receipts := make([]domain.ReadReceipt, 0, len(d.ReadReceipts))
	for _, r := range d.ReadReceipts {
		receipts = append(receipts, domain.ReadReceipt{UserID: r.UserID, ReadAt: r.ReadAt})
	}
	return &domain.Message{
		ID:             d.ID,
		ConversationID: d.ConversationID,
		SenderID:       d.SenderID,
		Body:           d.Body,
		ReadReceipts:   receipts,
		CreatedAt:      d.CreatedAt,
	}
}

// MessagePageDTO страница сообщений
type MessagePageDTO struct {
	Messages   []MessageDTO `json:"messages"`
	NextCursor string       `json:"next_cursor"`
}

// SendMessageRequest запрос на отправку сообщения
type SendMessageRequest struct {
	SenderID int64  `json:"sender_id"`
	Body     string `json:"body"`
}

// JobOfferDTO вакансия
type JobOfferDTO struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	ContractType string    `json:"contract_type"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToDomain конвертирует DTO в доменную модель
func (d *JobOfferDTO) ToDomain() *domain.JobOffer {
	return &domain.JobOffer{
		ID:           d.ID,
		CompanyID:    d.CompanyID,
		Title:        d.Title,
		Description:  d.Description,
		Location:     d.Location,
		ContractType: d.ContractType,
		Published:    d.Published,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UpsertJobOfferRequest запрос на создание/обновление вакансии
type UpsertJobOfferRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContractType string `json:"contract_type"`
	Published    bool   `json:"published"`
}

// TicketOrderDTO заказ билетов
type TicketOrderDTO struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	EventID      int64     `json:"event_id"`
	TicketTypeID int64     `json:"ticket_type_id"`
	Quantity     int       `json:"quantity"`
	AmountCents  int64     `json:"amount_cents"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	PaymentURL   string    `json:"payment_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToDomain конвертирует DTO в доменную модель
func (d *TicketOrderDTO) ToDomain() *domain.TicketOrder {
	return &domain.TicketOrder{
		ID:           d.ID,
		UserID:       d.UserID,
		EventID:      d.EventID,
		TicketTypeID: d.TicketTypeID,
		Quantity:     d.Quantity,
		AmountCents:  d.AmountCents,
		Currency:     d.Currency,
		Status:       domain.TicketOrderStatus(d.Status),
		PaymentURL:   d.PaymentURL,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// CreateTicketOrderRequest запрос на создание заказа билетов
type CreateTicketOrderRequest struct {
	UserID       int64 `json:"user_id"`
	EventID      int64 `json:"event_id"`
	TicketTypeID int64 `json:"ticket_type_id"`
	Quantity     int   `json:"quantity"`
}
