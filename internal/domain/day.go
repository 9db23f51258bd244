package domain

import (
	"fmt"
	"time"
)

// Day один день скользящего окна расписания
type Day struct {
	Date     string    // ISO дата "2006-01-02", стабильный ключ
	Display  string    // Человекочитаемая метка ("Пн, 2 сентября")
	FullDate time.Time // Полночь этого дня в локальной таймзоне
}

// weekdayLabels короткие названия дней недели
var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Пн",
	time.Tuesday:   "Вт",
	time.Wednesday: "Ср",
	time.Thursday:  "Чт",
	time.Friday:    "Пт",
	time.Saturday:  "Сб",
	time.Sunday:    "Вс",
}

// monthLabels названия месяцев в родительном падеже
var monthLabels = map[time.Month]string{
	time.January:   "января",
	time.February:  "февраля",
	time.March:     "марта",
	time.April:     "апреля",
	time.May:       "мая",
	time.June:      "июня",
	time.July:      "июля",
	time.August:    "августа",
	time.September: "сентября",
	time.October:   "октября",
	time.November:  "ноября",
	time.December:  "декабря",
}

// ThreeDayRange возвращает скользящее окно расписания: сегодня и два
// следующих календарных дня в локальной таймзоне переданного now.
// Функция чистая относительно now; на границе суток результат меняется
// вместе с now - окно всегда отражает "сегодня" на момент вызова.
func ThreeDayRange(now time.Time) [ScheduleWindowDays]Day {
	var days [ScheduleWindowDays]Day

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i := 0; i < ScheduleWindowDays; i++ {
		d := midnight.AddDate(0, 0, i)
		days[i] = Day{
			Date:     d.Format(DateFormat),
			Display:  fmt.Sprintf("%s, %d %s", weekdayLabels[d.Weekday()], d.Day(), monthLabels[d.Month()]),
			FullDate: d,
		}
	}

	return days
}
