package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/EVP-GatewayService/pkg/types"
)

// TimeSlot фиксированный 30-минутный интервал событийного дня
type TimeSlot struct {
	Start   types.TimeString // Время начала ("09:00")
	End     types.TimeString // Время конца ("09:30")
	Display string           // Метка для отображения ("09:00 - 09:30")
}

// TimeSlots возвращает фиксированную сетку слотов событийного дня:
// 30-минутные интервалы от EventDayStart до EventDayEnd.
// Сетка постоянна, параметров и ошибок нет.
func TimeSlots() []TimeSlot {
	start, _ := types.TimeString(EventDayStart).Minutes()
	end, _ := types.TimeString(EventDayEnd).Minutes()

	slots := make([]TimeSlot, 0, (end-start)/SlotDurationMinutes)

	for m := start; m+SlotDurationMinutes <= end; m += SlotDurationMinutes {
		slotStart, _ := types.NewTimeStringFromMinutes(m)
		slotEnd, _ := types.NewTimeStringFromMinutes(m + SlotDurationMinutes)

		slots = append(slots, TimeSlot{
			Start:   slotStart,
			End:     slotEnd,
			Display: fmt.Sprintf("%s - %s", slotStart, slotEnd),
		})
	}

	return slots
}

// SlotInterval вычисляет литеральные метки начала и конца слота
// для конкретного дня в таймзоне этого дня.
func SlotInterval(day Day, slot TimeSlot) (Interval, error) {
	startMin, err := slot.Start.Minutes()
	if err != nil {
		return Interval{}, err
	}
	endMin, err := slot.End.Minutes()
	if err != nil {
		return Interval{}, err
	}

	return Interval{
		Start: day.FullDate.Add(time.Duration(startMin) * time.Minute),
		End:   day.FullDate.Add(time.Duration(endMin) * time.Minute),
	}, nil
}
