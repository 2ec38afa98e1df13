package dto

import "github.com/nimbusworks/intranet_portal_app/internal/core/domain"

// CreateCalendarEventRequest defines the data for creating a calendar
// event. The organizer is taken from the authenticated actor.
type CreateCalendarEventRequest struct {
	Title     string   `json:"title" binding:"required"`
	StartAt   string   `json:"startAt" binding:"required,dateonly"`
	EndAt     string   `json:"endAt" binding:"omitempty,dateonly"`
	AllDay    bool     `json:"allDay"`
	Location  string   `json:"location"`
	Category  string   `json:"category"`
	Attendees []string `json:"attendees"`
}

// UpdateCalendarEventRequest defines a partial calendar event update.
type UpdateCalendarEventRequest struct {
	Title     *string   `json:"title"`
	StartAt   *string   `json:"startAt" binding:"omitempty,dateonly"`
	EndAt     *string   `json:"endAt" binding:"omitempty,dateonly"`
	AllDay    *bool     `json:"allDay"`
	Location  *string   `json:"location"`
	Category  *string   `json:"category"`
	Attendees *[]string `json:"attendees"`
}

// CalendarEventListResponse wraps a calendar event listing.
type CalendarEventListResponse struct {
	Events []domain.CalendarEvent `json:"events"`
}
