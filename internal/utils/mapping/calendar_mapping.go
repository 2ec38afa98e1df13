package mapping

import "github.com/nimbusworks/intranet_portal_app/internal/core/domain"

// CalendarDict maps shared calendar events to list columns, keeping the
// classic SharePoint event column names.
var CalendarDict = withCommon(
	FieldDef{Domain: "title", External: "Title", Type: Text},
	FieldDef{Domain: "start_at", External: "EventDate", Type: Date},
	FieldDef{Domain: "end_at", External: "EndDate", Type: Date},
	FieldDef{Domain: "all_day", External: "AllDayEvent", Type: Boolean},
	FieldDef{Domain: "location", External: "Location", Type: Text},
	FieldDef{Domain: "organizer_email", External: "OrganizerEmail", Type: Text},
	FieldDef{Domain: "category", External: "Category", Type: Text},
	FieldDef{Domain: "attendees", External: "Attendees", Type: JSONBlob},
)

// DecodeCalendarEvent projects a raw item field bag into a domain CalendarEvent.
func DecodeCalendarEvent(id string, fields map[string]any) domain.CalendarEvent {
	vals := CalendarDict.FromExternal(fields)
	return domain.CalendarEvent{
		EventID:          id,
		Title:            Str(vals, "title"),
		StartAt:          TimePtr(vals, "start_at"),
		EndAt:            TimePtr(vals, "end_at"),
		AllDay:           BoolVal(vals, "all_day"),
		Location:         Str(vals, "location"),
		OrganizerEmail:   Str(vals, "organizer_email"),
		Category:         Str(vals, "category"),
		Attendees:        StrList(vals, "attendees"),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}
