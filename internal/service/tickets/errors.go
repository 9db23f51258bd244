package tickets

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ билетов не найден
	ErrOrderNotFound = errors.New("tickets.service: ticket order not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("tickets.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tickets.service: internal error")
)
