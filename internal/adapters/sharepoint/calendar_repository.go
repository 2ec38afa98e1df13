package sharepoint

import (
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	"github.com/nimbusworks/intranet_portal_app/internal/utils/mapping"
)

// CalendarRepository manages the shared calendar list.
type CalendarRepository struct {
	*listRepository[domain.CalendarEvent]
}

var _ portsrepo.CalendarRepository = (*CalendarRepository)(nil)

// NewCalendarRepository builds the repository; no I/O happens here.
func NewCalendarRepository(store listStore, listName string) *CalendarRepository {
	return &CalendarRepository{
		listRepository: newListRepository(
			store,
			listName,
			mapping.CalendarDict,
			mapping.DecodeCalendarEvent,
			[]string{"title"},
			nil,
		),
	}
}
