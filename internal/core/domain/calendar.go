package domain

import "time"

// CalendarEvent is an entry in the shared portal calendar.
type CalendarEvent struct {
	EventID        string     `json:"eventId"`
	Title          string     `json:"title"`
	StartAt        *time.Time `json:"startAt,omitempty"`
	EndAt          *time.Time `json:"endAt,omitempty"`
	AllDay         bool       `json:"allDay"`
	Location       string     `json:"location"`
	OrganizerEmail string     `json:"organizerEmail"`
	Category       string     `json:"category"`
	Attendees      []string   `json:"attendees"`
	SoftDeleteFields
	AuditFields
}

// OwnerIdentity returns the organizer email used for visibility filtering.
func (e CalendarEvent) OwnerIdentity() string {
	return e.OrganizerEmail
}
