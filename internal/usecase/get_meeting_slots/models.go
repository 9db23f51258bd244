package get_meeting_slots

// Request модель запроса сетки слотов
type Request struct {
	UserID        int64 // ID текущего пользователя
	CounterpartID int64 // ID второго участника будущей встречи
}

// Response трехдневное окно расписания с доступностью каждого слота
type Response struct {
	Days []DayView
}

// DayView один день окна с сеткой слотов
type DayView struct {
	Date    string // ISO ключ дня ("2025-09-01")
	Display string // Человекочитаемая метка
	Slots   []SlotView
}

// SlotView слот сетки с признаком доступности для обоих участников
type SlotView struct {
	Start     string // "10:00"
	End       string // "10:30"
	Display   string // "10:00 - 10:30"
	Available bool
}
