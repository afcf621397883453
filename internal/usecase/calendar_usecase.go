package usecase

import (
	"context"
	"sort"
	"strings"

	"installer_crm/internal/domain/entities"
	"installer_crm/internal/usecase/interfaces"
)

type ICalendarUseCase interface {
	List(ctx context.Context) []entities.CalendarEvent
	Get(ctx context.Context, id string) (entities.CalendarEvent, error)
	Save(ctx context.Context, e entities.CalendarEvent) (entities.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

type CalendarUseCase struct {
	store interfaces.IEntityStore[entities.CalendarEvent]
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(store interfaces.IEntityStore[entities.CalendarEvent]) *CalendarUseCase {
	return &CalendarUseCase{store: store}
}

// List returns events ordered by start time.
func (u *CalendarUseCase) List(ctx context.Context) []entities.CalendarEvent {
	events := u.store.Load(ctx)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return events
}

func (u *CalendarUseCase) Get(ctx context.Context, id string) (entities.CalendarEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CalendarEvent{}, ErrInvalidID
	}
	e, ok := u.store.Get(ctx, id)
	if !ok {
		return entities.CalendarEvent{}, ErrEventNotFound
	}
	return e, nil
}

// Save requires a title and a start; a missing end means a zero-length slot.
func (u *CalendarUseCase) Save(ctx context.Context, e entities.CalendarEvent) (entities.CalendarEvent, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" || e.Start.IsZero() {
		return entities.CalendarEvent{}, ErrInvalidEvent
	}
	if e.End.IsZero() {
		e.End = e.Start
	}
	if e.End.Before(e.Start) {
		return entities.CalendarEvent{}, ErrInvalidEvent
	}
	if e.ID != "" {
		prev, err := u.Get(ctx, e.ID)
		if err != nil {
			return entities.CalendarEvent{}, err
		}
		e.CreatedAt = prev.CreatedAt
	}
	return u.store.Save(ctx, e), nil
}

func (u *CalendarUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	u.store.Delete(ctx, id)
	return nil
}
