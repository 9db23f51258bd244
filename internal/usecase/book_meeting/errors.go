package book_meeting

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_meeting: invalid input data")

	// ErrInvalidInterval возвращается, когда вычисленный интервал некорректен
	// (конец не позже начала). Проверяется на границе workflow, а не в предикате.
	ErrInvalidInterval = errors.New("book_meeting: invalid meeting interval")

	// ErrDateOutsideWindow возвращается, когда дата вне трехдневного окна расписания
	ErrDateOutsideWindow = errors.New("book_meeting: date is outside the schedule window")

	// ErrSlotNotOnGrid возвращается, когда время начала не совпадает с сеткой слотов
	ErrSlotNotOnGrid = errors.New("book_meeting: start time is not on the slot grid")

	// ErrSlotConflict возвращается, когда интервал пересекается с занятым слотом
	// одного из участников. Запрос к платформе при этом НЕ выполняется.
	ErrSlotConflict = errors.New("book_meeting: slot conflicts with an existing booking")

	// ErrUpstream возвращается, когда платформа отклонила создание встречи
	ErrUpstream = errors.New("book_meeting: platform rejected the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_meeting: internal error")
)
