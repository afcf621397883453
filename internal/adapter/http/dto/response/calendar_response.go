package response

import (
	"time"

	"installer_crm/internal/domain/entities"
)

type CalendarEventResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	OfferID   string    `json:"offer_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCalendarEvent(e entities.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		ID:        e.ID,
		Title:     e.Title,
		Start:     e.Start,
		End:       e.End,
		OfferID:   e.OfferID,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromCalendarEvents(items []entities.CalendarEvent) []CalendarEventResponse {
	out := make([]CalendarEventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromCalendarEvent(e))
	}
	return out
}
