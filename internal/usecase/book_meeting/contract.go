package book_meeting

import (
	"context"
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
)

// PlatformClient интерфейс клиента REST API платформы
type PlatformClient interface {
	ListBookedSlots(ctx context.Context, userID int64) ([]*domain.BookedSlot, error)
	CreateMeeting(ctx context.Context, req *platformapi.CreateMeetingRequest, idempotencyKey string) (*domain.Meeting, error)
}

// SlotCache интерфейс кеша занятых слотов
type SlotCache interface {
	Get(userID int64) ([]*domain.BookedSlot, bool)
	Set(userID int64, slots []*domain.BookedSlot)
	Invalidate(userIDs ...int64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
