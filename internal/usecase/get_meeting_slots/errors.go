package get_meeting_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_meeting_slots: invalid input data")

	// ErrUpstream возвращается, когда платформа не отдала занятые слоты
	ErrUpstream = errors.New("get_meeting_slots: failed to fetch booked slots")
)
