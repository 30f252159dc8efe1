package event

import (
	"github.com/fundwit/go-commons/types"
)

const (
	EventCategoryCreated         = "CREATED"
	EventCategoryDeleted         = "DELETED"
	EventCategoryPropertyUpdated = "PROPERTY_UPDATED"
	EventCategoryReplaced        = "REPLACED"
)

type EventCategory string

type Event struct {
	ProjectID types.ID `json:"projectId"`

	SourceId   int    `json:"sourceId"`
	SourceType string `json:"sourceType"`
	SourceDesc string `json:"sourceDesc"`

	CreatorId   types.ID `json:"creatorId"`
	CreatorName string   `json:"creatorName"`

	EventCategory     EventCategory     `json:"eventCategory"` // CREATED, DELETED, PROPERTY_UPDATED, REPLACED
	UpdatedProperties UpdatedProperties `json:"updatedProperties,omitempty"`
}

type EventRecord struct {
	Event

	Sequence  uint64          `json:"sequence"`
	Timestamp types.Timestamp `json:"timestamp"`
}

type UpdatedProperty struct {
	PropertyName string `json:"propertyName"`

	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

type UpdatedProperties []UpdatedProperty
