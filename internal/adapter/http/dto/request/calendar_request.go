package request

import (
	"strings"
	"time"

	"installer_crm/internal/domain/entities"
)

type CalendarEventRequest struct {
	Title   string    `json:"title" binding:"required"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	OfferID string    `json:"offer_id"`
	Notes   string    `json:"notes"`
}

func (r CalendarEventRequest) ToEntity(id string) entities.CalendarEvent {
	return entities.CalendarEvent{
		Meta:    entities.Meta{ID: strings.TrimSpace(id)},
		Title:   r.Title,
		Start:   r.Start.UTC(),
		End:     r.End.UTC(),
		OfferID: strings.TrimSpace(r.OfferID),
		Notes:   r.Notes,
	}
}
