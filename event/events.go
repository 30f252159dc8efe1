package event

import (
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

// CreateEvent records a change of one project entity in the activity journal
// and hands it to the registered handlers.
func CreateEvent(projectID types.ID, sourceType string, sourceId int, sourceDesc string, category EventCategory,
	updatedProperties []UpdatedProperty, identity *session.Identity) *EventRecord {

	record := EventRecord{
		Event: Event{
			ProjectID:  projectID,
			SourceType: sourceType,
			SourceId:   sourceId,
			SourceDesc: sourceDesc,

			EventCategory:     category,
			UpdatedProperties: updatedProperties,
		},
		Timestamp: types.CurrentTimestamp(),
	}
	if identity != nil {
		record.CreatorId = identity.ID
		record.CreatorName = identity.Name
	}
	EventPersistCreateFunc(&record)
	InvokeHandlersFunc(&record)
	return &record
}
