package joboffers

import "errors"

var (
	// ErrJobOfferNotFound возвращается, когда вакансия не найдена
	ErrJobOfferNotFound = errors.New("joboffers.service: job offer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("joboffers.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("joboffers.service: internal error")
)
