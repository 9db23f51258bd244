package domain

import "time"

// Interval полуоткрытый временной интервал [Start, End).
// Используется для проверки пересечений занятых слотов.
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid возвращает true, если начало строго раньше конца
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Overlaps возвращает true, если интервалы действительно пересекаются.
// Граничные случаи (конец одного равен началу другого) НЕ считаются пересечением.
//
// Примеры:
// - [09:00, 09:30) и [09:15, 09:45) → пересечение
// - [09:00, 09:30) и [09:30, 10:00) → нет пересечения (граничат)
// - [09:00, 10:00) и [09:15, 09:45) → пересечение (полное вложение)
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// IsAvailable проверяет, что интервал-кандидат не пересекается ни с одним
// занятым интервалом. Предикат чистый и не валидирует кандидата:
// корректность границ (start < end) проверяется на уровне workflow.
func IsAvailable(candidate Interval, booked []Interval) bool {
	for _, b := range booked {
		if candidate.Overlaps(b) {
			return false
		}
	}
	return true
}

// UnionIntervals объединяет несколько списков интервалов в один.
// Дедупликация не выполняется - для проверки пересечений она не нужна.
func UnionIntervals(lists ...[]Interval) []Interval {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	union := make([]Interval, 0, total)
	for _, l := range lists {
		union = append(union, l...)
	}
	return union
}
