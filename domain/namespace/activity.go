package namespace

import (
	"eventdesk/event"
	"eventdesk/persistence"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

// QueryActivity returns the latest changes of a project, newest first.
func QueryActivity(projectID types.ID, limit int, sec *session.Session) ([]event.EventRecord, error) {
	err := persistence.ActiveStore.View(projectID, func(d *persistence.ProjectData) error {
		return AuthorizeView(d, sec)
	})
	if err != nil {
		return nil, err
	}
	return event.DefaultJournal.Recent(projectID, limit), nil
}
