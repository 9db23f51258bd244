package meetings

import "errors"

var (
	// ErrMeetingNotFound возвращается, когда встреча не найдена
	ErrMeetingNotFound = errors.New("meetings.service: meeting not found")

	// ErrInvalidResponse возвращается при недопустимом ответе на приглашение
	ErrInvalidResponse = errors.New("meetings.service: invalid meeting response")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("meetings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("meetings.service: internal error")
)
