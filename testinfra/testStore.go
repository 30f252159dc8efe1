package testinfra

import (
	"eventdesk/account"
	"eventdesk/domain"
	"eventdesk/persistence"
	"time"

	"github.com/fundwit/go-commons/types"
)

const TestOrganizationID types.ID = 1

type TestStore struct {
	Store *persistence.MemoryStore

	previousStore     *persistence.MemoryStore
	previousDirectory *account.Directory
}

// StartTestStore swaps the active store and directory for fresh ones holding
// one empty project per id, all in organization TestOrganizationID.
func StartTestStore(projectIDs ...types.ID) *TestStore {
	ts := &TestStore{
		Store:             persistence.NewMemoryStore(),
		previousStore:     persistence.ActiveStore,
		previousDirectory: account.ActiveDirectory,
	}
	for _, id := range projectIDs {
		ts.Store.AddProject(persistence.NewProjectData(domain.Project{
			ID: id, OrganizationID: TestOrganizationID, Name: "project" + id.String(),
			Config:     domain.EventConfig{EventName: "event" + id.String()},
			CreateTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}))
	}
	persistence.ActiveStore = ts.Store
	account.ActiveDirectory = account.NewDirectory(account.Organization{ID: TestOrganizationID, Name: "test org"})
	return ts
}

func StopTestStore(ts *TestStore) {
	if ts == nil {
		return
	}
	persistence.ActiveStore = ts.previousStore
	account.ActiveDirectory = ts.previousDirectory
}

// Project returns the committed state of a project, for assertions.
func (ts *TestStore) Project(id types.ID) *persistence.ProjectData {
	var r *persistence.ProjectData
	_ = ts.Store.View(id, func(d *persistence.ProjectData) error {
		r = d.Clone()
		return nil
	})
	return r
}
