package book_meeting

import (
	"time"

	"github.com/m04kA/EVP-GatewayService/pkg/types"
)

// Request модель запроса на бронирование встречи
type Request struct {
	OrganizerID   int64            // ID организатора (текущий пользователь)
	ParticipantID int64            // ID представителя компании
	Topic         string           // Тема встречи
	Location      string           // Место встречи (стенд, зал)
	Date          time.Time        // День из трехдневного окна (без времени)
	StartTime     types.TimeString // Начало слота из фиксированной сетки ("10:00")
}

// Response модель ответа с созданной встречей
type Response struct {
	ID            int64
	OrganizerID   int64
	ParticipantID int64
	Topic         string
	Location      string
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	CreatedAt     time.Time
}
