package get_calendar

import (
	getCalendar "github.com/m04kA/SMC-ReservationService/internal/usecase/get_calendar"
)

// CellResponse одна ячейка сетки в HTTP ответе
type CellResponse struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	InCurrentMonth bool   `json:"inCurrentMonth"`
	IsPast         bool   `json:"isPast"`
	HasActivity    bool   `json:"hasActivity"`
	Selectable     bool   `json:"selectable"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year     int            `json:"year"`
	Month    int            `json:"month"`
	Weekdays []string       `json:"weekdays"`
	Cells    []CellResponse `json:"cells"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	cells := make([]CellResponse, len(resp.Cells))
	for i, c := range resp.Cells {
		cells[i] = CellResponse{
			Date:           c.Date.String(),
			Day:            c.Day,
			InCurrentMonth: c.InCurrentMonth,
			IsPast:         c.IsPast,
			HasActivity:    c.HasActivity,
			Selectable:     c.Selectable,
		}
	}
	return &CalendarResponse{
		Year:     resp.Year,
		Month:    resp.Month,
		Weekdays: resp.Weekdays,
		Cells:    cells,
	}
}
