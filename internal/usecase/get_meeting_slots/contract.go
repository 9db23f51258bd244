package get_meeting_slots

import (
	"context"
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// PlatformClient интерфейс клиента REST API платформы
type PlatformClient interface {
	ListBookedSlots(ctx context.Context, userID int64) ([]*domain.BookedSlot, error)
}

// SlotCache интерфейс кеша занятых слотов
type SlotCache interface {
	Get(userID int64) ([]*domain.BookedSlot, bool)
	Set(userID int64, slots []*domain.BookedSlot)
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
