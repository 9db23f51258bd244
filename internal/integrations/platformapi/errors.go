package platformapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("platformapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("platformapi client: invalid response")

	// ErrUnauthorized возвращается при отказе платформы в авторизации
	ErrUnauthorized = errors.New("platformapi client: unauthorized")

	// ErrMeetingNotFound возвращается, когда встреча не найдена
	ErrMeetingNotFound = errors.New("platformapi client: meeting not found")

	// ErrConversationNotFound возвращается, когда диалог не найден
	ErrConversationNotFound = errors.New("platformapi client: conversation not found")

	// ErrMessageNotFound возвращается, когда сообщение не найдено
	ErrMessageNotFound = errors.New("platformapi client: message not found")

	// ErrJobOfferNotFound возвращается, когда вакансия не найдена
	ErrJobOfferNotFound = errors.New("platformapi client: job offer not found")

	// ErrOrderNotFound возвращается, когда заказ билетов не найден
	ErrOrderNotFound = errors.New("platformapi client: ticket order not found")
)

// APIError ошибка, возвращенная платформой вместе с сообщением для пользователя.
// Сообщение платформы поднимается до клиента как есть; при его отсутствии
// вызывающая сторона подставляет общий fallback-текст.
type APIError struct {
	StatusCode int
	Message    string
}

// Error реализует интерфейс error
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("platformapi: upstream error, status %d", e.StatusCode)
	}
	return fmt.Sprintf("platformapi: upstream error, status %d: %s", e.StatusCode, e.Message)
}
