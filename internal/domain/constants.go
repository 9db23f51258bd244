package domain

// Параметры сетки слотов событийного дня
const (
	// SlotDurationMinutes длительность одного слота встречи
	SlotDurationMinutes = 30

	// EventDayStart начало событийного дня
	EventDayStart = "08:00"

	// EventDayEnd конец событийного дня (правая граница, не входит)
	EventDayEnd = "24:00"

	// ScheduleWindowDays размер скользящего окна расписания (сегодня + 2 дня)
	ScheduleWindowDays = 3
)

// Business validation constants
const (
	MaxTopicLength    = 200
	MaxLocationLength = 200
	MaxMessageLength  = 4000
	MaxTicketQuantity = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveMeetingStatuses список статусов, не занимающих слот.
// Используется при фильтрации занятых интервалов.
var InactiveMeetingStatuses = []MeetingStatus{
	MeetingStatusDeclined,
	MeetingStatusCancelled,
}

// ActiveMeetingStatuses список статусов, занимающих слот участника
var ActiveMeetingStatuses = []MeetingStatus{
	MeetingStatusPending,
	MeetingStatusAccepted,
}
