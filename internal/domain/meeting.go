package domain

import "time"

// MeetingStatus статус встречи
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusAccepted  MeetingStatus = "accepted"
	MeetingStatusDeclined  MeetingStatus = "declined"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// Meeting встреча между организатором и представителем компании
type Meeting struct {
	ID            int64
	OrganizerID   int64
	ParticipantID int64
	Topic         string
	Location      string
	StartTime     time.Time
	EndTime       time.Time
	Status        MeetingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если встреча занимает слоты участников
func (m *Meeting) IsActive() bool {
	return m.Status == MeetingStatusPending || m.Status == MeetingStatusAccepted
}

// CanBeResponded возвращает true, если на приглашение можно ответить
func (m *Meeting) CanBeResponded() bool {
	return m.Status == MeetingStatusPending
}

// CanBeCancelled возвращает true, если встречу можно отменить
func (m *Meeting) CanBeCancelled() bool {
	return m.Status == MeetingStatusPending || m.Status == MeetingStatusAccepted
}

// Interval возвращает занимаемый встречей интервал [StartTime, EndTime)
func (m *Meeting) Interval() Interval {
	return Interval{Start: m.StartTime, End: m.EndTime}
}

// BookedSlot занятый интервал участника, полученный от платформы.
// Slotable - сущность, породившая бронь (встреча, конференция, воркшоп).
type BookedSlot struct {
	ID           int64
	UserID       int64
	Topic        string
	StartTime    time.Time
	EndTime      time.Time
	SlotableType string
	SlotableID   int64
}

// Interval возвращает интервал брони
func (s *BookedSlot) Interval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// SlotIntervals извлекает интервалы из списка занятых слотов
func SlotIntervals(slots []*BookedSlot) []Interval {
	intervals := make([]Interval, 0, len(slots))
	for _, s := range slots {
		intervals = append(intervals, s.Interval())
	}
	return intervals
}
