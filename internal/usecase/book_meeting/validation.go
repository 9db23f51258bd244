package book_meeting

import (
	"fmt"
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OrganizerID <= 0 {
		return fmt.Errorf("%w: organizerID must be positive", ErrInvalidInput)
	}

	if req.ParticipantID <= 0 {
		return fmt.Errorf("%w: participantID must be positive", ErrInvalidInput)
	}

	if req.OrganizerID == req.ParticipantID {
		return fmt.Errorf("%w: organizer and participant must differ", ErrInvalidInput)
	}

	if req.Topic == "" {
		return fmt.Errorf("%w: topic is required", ErrInvalidInput)
	}

	if len(req.Topic) > domain.MaxTopicLength {
		return fmt.Errorf("%w: topic exceeds %d characters", ErrInvalidInput, domain.MaxTopicLength)
	}

	if len(req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDateInWindow проверяет, что дата попадает в трехдневное окно расписания
func validateDateInWindow(date time.Time, now time.Time) (domain.Day, error) {
	window := domain.ThreeDayRange(now)
	key := date.Format(domain.DateFormat)

	for _, day := range window {
		if day.Date == key {
			return day, nil
		}
	}

	return domain.Day{}, fmt.Errorf("%w: %s is not within %s..%s",
		ErrDateOutsideWindow, key, window[0].Date, window[len(window)-1].Date)
}

// findGridSlot находит слот фиксированной сетки по времени начала
func findGridSlot(startTime string) (domain.TimeSlot, error) {
	for _, slot := range domain.TimeSlots() {
		if slot.Start.String() == startTime {
			return slot, nil
		}
	}
	return domain.TimeSlot{}, fmt.Errorf("%w: %s", ErrSlotNotOnGrid, startTime)
}
