package services

import (
	"context"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// CalendarReaderSvc defines read operations for the shared calendar.
type CalendarReaderSvc interface {
	ListEvents(ctx context.Context, actor domain.Actor) ([]domain.CalendarEvent, error)
	GetEventByID(ctx context.Context, actor domain.Actor, eventID string) (*domain.CalendarEvent, error)
}

// CalendarWriterSvc defines write operations for the shared calendar.
type CalendarWriterSvc interface {
	CreateEvent(ctx context.Context, actor domain.Actor, req dto.CreateCalendarEventRequest) (*domain.CalendarEvent, error)
	UpdateEvent(ctx context.Context, actor domain.Actor, eventID string, req dto.UpdateCalendarEventRequest) (*domain.CalendarEvent, error)
	DeleteEvent(ctx context.Context, actor domain.Actor, eventID string) error
	RestoreEvent(ctx context.Context, actor domain.Actor, eventID string) (*domain.CalendarEvent, error)
	PurgeEvent(ctx context.Context, actor domain.Actor, eventID string) error
}

// CalendarSvcFacade combines all calendar-related service interfaces.
type CalendarSvcFacade interface {
	CalendarReaderSvc
	CalendarWriterSvc
}
