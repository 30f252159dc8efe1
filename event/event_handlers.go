package event

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// EventHandler reacts to one change record. Handlers not interested in the
// record return nil.
type EventHandler func(e *EventRecord) *EventHandleResult

type EventHandleResult struct {
	Success           bool
	Message           string
	HandlerIdentifier string
}

var EventHandlers []EventHandler

var InvokeHandlersFunc = invokeHandlers

// invokeHandlers runs every handler in order. A panicking handler is reported
// as a failed result and does not stop the others.
func invokeHandlers(record *EventRecord) []EventHandleResult {
	entry := logrus.WithFields(logrus.Fields{
		"projectId": record.ProjectID,
		"source":    record.SourceType,
		"sourceId":  record.SourceId,
		"category":  record.EventCategory,
		"sequence":  record.Sequence,
	})

	results := []EventHandleResult{}
	for _, handler := range EventHandlers {
		r := safeHandle(handler, record)
		if r == nil {
			continue
		}
		results = append(results, *r)

		if r.Success {
			entry.WithField("handler", r.HandlerIdentifier).Debug(r.Message)
		} else {
			entry.WithField("handler", r.HandlerIdentifier).Error(r.Message)
		}
	}
	return results
}

func safeHandle(handler EventHandler, record *EventRecord) (r *EventHandleResult) {
	defer func() {
		if err := recover(); err != nil {
			r = &EventHandleResult{Success: false, Message: fmt.Sprintf("handler panic: %v", err)}
		}
	}()
	return handler(record)
}
