// Package entity holds the create/update/delete/import flow shared by every
// project-owned collection.
package entity

import (
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/domain/namespace"
	"eventdesk/event"
	"eventdesk/persistence"
	"eventdesk/session"
	"fmt"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
)

// Entity is a record that can be renumbered and coerced on import.
type Entity[T any] interface {
	persistence.Record
	WithID(id int) T
	Normalized() T
}

// Kind binds one collection of ProjectData to its permissions.
type Kind[T Entity[T]] struct {
	SourceType string

	EditPermission   authority.Permission
	DeletePermission authority.Permission

	Collection func(d *persistence.ProjectData) *persistence.Collection[T]
	Describe   func(record T) string
}

func (k Kind[T]) deletePermission() authority.Permission {
	if k.DeletePermission != "" {
		return k.DeletePermission
	}
	return k.EditPermission
}

func (k Kind[T]) describe(record T) string {
	if k.Describe == nil {
		return ""
	}
	return k.Describe(record)
}

func (k Kind[T]) Query(projectID types.ID, sec *session.Session) ([]T, error) {
	var records []T
	err := persistence.ActiveStore.View(projectID, func(d *persistence.ProjectData) error {
		if err := namespace.AuthorizeView(d, sec); err != nil {
			return err
		}
		records = k.Collection(d).List()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (k Kind[T]) Detail(projectID types.ID, id int, sec *session.Session) (*T, error) {
	var record T
	err := persistence.ActiveStore.View(projectID, func(d *persistence.ProjectData) error {
		if err := namespace.AuthorizeView(d, sec); err != nil {
			return err
		}
		found := false
		if record, found = k.Collection(d).Find(id); !found {
			return bizerror.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create builds a record with the next free id, validates it and appends it.
func (k Kind[T]) Create(projectID types.ID, build func(id int) T, sec *session.Session) (*T, error) {
	var record T
	err := persistence.ActiveStore.Transaction(projectID, func(d *persistence.ProjectData) error {
		if err := namespace.Authorize(d, k.EditPermission, sec); err != nil {
			return err
		}
		c := k.Collection(d)
		record = build(c.NextID())
		if err := domain.Validate(record); err != nil {
			return &bizerror.ErrBadParam{Cause: err}
		}
		c.Append(record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"projectId": projectID, "type": k.SourceType, "id": record.GetID()}).Debug("record created")
	event.CreateEvent(projectID, k.SourceType, record.GetID(), k.describe(record), event.EventCategoryCreated,
		event.CompareProperties(nil, record), &sec.Identity)
	return &record, nil
}

// Update merges a patch into the record and validates the merged result.
// A failed validation leaves the stored record untouched.
func (k Kind[T]) Update(projectID types.ID, id int, apply func(T) T, sec *session.Session) (*T, error) {
	return k.Mutate(projectID, id, k.EditPermission, func(record T) (T, error) { return apply(record), nil }, sec)
}

// Mutate is Update under another permission.
func (k Kind[T]) Mutate(projectID types.ID, id int, perm authority.Permission, apply func(T) (T, error), sec *session.Session) (*T, error) {
	var before, after T
	err := persistence.ActiveStore.Transaction(projectID, func(d *persistence.ProjectData) error {
		if err := namespace.Authorize(d, perm, sec); err != nil {
			return err
		}
		c := k.Collection(d)
		found := false
		if before, found = c.Find(id); !found {
			return bizerror.ErrNotFound
		}
		var err error
		if after, err = apply(before); err != nil {
			return err
		}
		after = after.WithID(id)
		if err := domain.Validate(after); err != nil {
			return &bizerror.ErrBadParam{Cause: err}
		}
		c.Replace(after)
		return nil
	})
	if err != nil {
		return nil, err
	}

	changes := event.CompareProperties(before, after)
	logrus.WithFields(logrus.Fields{"projectId": projectID, "type": k.SourceType, "id": id}).Debug("record updated")
	if len(changes) > 0 {
		event.CreateEvent(projectID, k.SourceType, id, k.describe(after), event.EventCategoryPropertyUpdated, changes, &sec.Identity)
	}
	return &after, nil
}

func (k Kind[T]) Delete(projectID types.ID, id int, sec *session.Session) error {
	var removed T
	err := persistence.ActiveStore.Transaction(projectID, func(d *persistence.ProjectData) error {
		if err := namespace.Authorize(d, k.deletePermission(), sec); err != nil {
			return err
		}
		c := k.Collection(d)
		found := false
		if removed, found = c.Find(id); !found {
			return bizerror.ErrNotFound
		}
		c.Remove(id)
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"projectId": projectID, "type": k.SourceType, "id": id}).Debug("record deleted")
	event.CreateEvent(projectID, k.SourceType, id, k.describe(removed), event.EventCategoryDeleted, nil, &sec.Identity)
	return nil
}

// ReplaceAll swaps the whole collection for imported records. Every record is
// normalized first; records without a usable id get the next free one. A
// record failing validation rejects the whole import.
func (k Kind[T]) ReplaceAll(projectID types.ID, records []T, sec *session.Session) ([]T, error) {
	normalized, err := Normalize(records)
	if err != nil {
		return nil, err
	}

	err = persistence.ActiveStore.Transaction(projectID, func(d *persistence.ProjectData) error {
		if err := namespace.Authorize(d, k.EditPermission, sec); err != nil {
			return err
		}
		k.Collection(d).ReplaceAll(normalized)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"projectId": projectID, "type": k.SourceType, "count": len(normalized)}).Info("collection replaced")
	event.CreateEvent(projectID, k.SourceType, 0, fmt.Sprintf("%d records", len(normalized)), event.EventCategoryReplaced, nil, &sec.Identity)
	return normalized, nil
}

// Normalize coerces imported records and assigns synthetic ids to records with
// an id <= 0 or an id already taken by an earlier record.
func Normalize[T Entity[T]](records []T) ([]T, error) {
	next := 0
	for _, r := range records {
		if r.GetID() > next {
			next = r.GetID()
		}
	}

	result := make([]T, 0, len(records))
	seen := map[int]bool{}
	for i, r := range records {
		r = r.Normalized()
		if r.GetID() <= 0 || seen[r.GetID()] {
			next++
			r = r.WithID(next)
		}
		if err := domain.Validate(r); err != nil {
			return nil, &bizerror.ErrBadParam{Cause: fmt.Errorf("row %d: %w", i+1, err)}
		}
		seen[r.GetID()] = true
		result = append(result, r)
	}
	return result, nil
}
