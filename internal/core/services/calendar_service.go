package services

import (
	"context"
	"log/slog"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

type calendarService struct {
	entityCRUD[domain.CalendarEvent]
}

// NewCalendarService creates the shared calendar service.
func NewCalendarService(repo portsrepo.CalendarRepository) portssvc.CalendarSvcFacade {
	return &calendarService{entityCRUD[domain.CalendarEvent]{repo: repo, kind: "calendar event"}}
}

func (s *calendarService) ListEvents(ctx context.Context, actor domain.Actor) ([]domain.CalendarEvent, error) {
	return s.list(ctx, actor)
}

func (s *calendarService) GetEventByID(ctx context.Context, actor domain.Actor, eventID string) (*domain.CalendarEvent, error) {
	return s.get(ctx, actor, eventID)
}

func (s *calendarService) CreateEvent(ctx context.Context, actor domain.Actor, req dto.CreateCalendarEventRequest) (*domain.CalendarEvent, error) {
	record := map[string]any{
		"title":           req.Title,
		"start_at":        req.StartAt,
		"end_at":          req.EndAt,
		"all_day":         req.AllDay,
		"location":        req.Location,
		"organizer_email": actor.Email,
		"category":        req.Category,
	}
	if req.Attendees != nil {
		record["attendees"] = req.Attendees
	}
	event, err := s.create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Calendar event created",
		slog.String("event_id", event.EventID),
		slog.String("organizer", event.OrganizerEmail))
	return event, nil
}

func (s *calendarService) UpdateEvent(ctx context.Context, actor domain.Actor, eventID string, req dto.UpdateCalendarEventRequest) (*domain.CalendarEvent, error) {
	record := map[string]any{}
	setIf(record, "title", req.Title)
	setIf(record, "start_at", req.StartAt)
	setIf(record, "end_at", req.EndAt)
	setIf(record, "all_day", req.AllDay)
	setIf(record, "location", req.Location)
	setIf(record, "category", req.Category)
	setIf(record, "attendees", req.Attendees)
	return s.update(ctx, actor, eventID, record)
}

func (s *calendarService) DeleteEvent(ctx context.Context, actor domain.Actor, eventID string) error {
	return s.softDelete(ctx, actor, eventID)
}

func (s *calendarService) RestoreEvent(ctx context.Context, actor domain.Actor, eventID string) (*domain.CalendarEvent, error) {
	return s.restore(ctx, actor, eventID)
}

func (s *calendarService) PurgeEvent(ctx context.Context, actor domain.Actor, eventID string) error {
	return s.purge(ctx, actor, eventID)
}
