package get_meeting_slots

import (
	getMeetingSlots "github.com/m04kA/EVP-GatewayService/internal/usecase/get_meeting_slots"
)

// SlotResponse слот сетки с признаком доступности
type SlotResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

// DayResponse один день окна расписания
type DayResponse struct {
	Date    string         `json:"date"`
	Display string         `json:"display"`
	Slots   []SlotResponse `json:"slots"`
}

// MeetingSlotsResponse трехдневное окно расписания
type MeetingSlotsResponse struct {
	Days []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMeetingSlots.Response) *MeetingSlotsResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		slots := make([]SlotResponse, 0, len(d.Slots))
		for _, s := range d.Slots {
			slots = append(slots, SlotResponse{
				Start:     s.Start,
				End:       s.End,
				Display:   s.Display,
				Available: s.Available,
			})
		}
		days = append(days, DayResponse{
			Date:    d.Date,
			Display: d.Display,
			Slots:   slots,
		})
	}
	return &MeetingSlotsResponse{Days: days}
}
