package persistence

import (
	"eventdesk/bizerror"
	"eventdesk/domain"
	"sync"

	"github.com/fundwit/go-commons/types"
)

// MemoryStore keeps every project in memory. Writers are serialized; a
// transaction works on a private copy that replaces the project state only
// when the callback succeeds.
type MemoryStore struct {
	lock     sync.RWMutex
	order    []types.ID
	projects map[types.ID]*ProjectData
}

// ActiveStore is the store every manager works on.
var ActiveStore = NewMemoryStore()

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: map[types.ID]*ProjectData{}}
}

// View runs fn against the committed state of a project. fn must not mutate it.
func (s *MemoryStore) View(projectID types.ID, fn func(d *ProjectData) error) error {
	s.lock.RLock()
	defer s.lock.RUnlock()

	d, found := s.projects[projectID]
	if !found {
		return bizerror.ErrNotFound
	}
	return fn(d)
}

// Transaction runs fn against a copy of the project state and commits the copy
// when fn returns nil.
func (s *MemoryStore) Transaction(projectID types.ID, fn func(d *ProjectData) error) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	d, found := s.projects[projectID]
	if !found {
		return bizerror.ErrNotFound
	}
	tx := d.Clone()
	if err := fn(tx); err != nil {
		return err
	}
	s.projects[projectID] = tx
	return nil
}

// AddProject appends a project; an existing project with the same id is replaced in place.
func (s *MemoryStore) AddProject(d *ProjectData) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, found := s.projects[d.Project.ID]; !found {
		s.order = append(s.order, d.Project.ID)
	}
	s.projects[d.Project.ID] = d.Clone()
}

// RemoveProject deletes a project unless it is the last one. A non-nil
// authorize runs against the project under the same write lock and aborts
// the removal with its error.
func (s *MemoryStore) RemoveProject(projectID types.ID, authorize func(d *ProjectData) error) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	d, found := s.projects[projectID]
	if !found {
		return bizerror.ErrNotFound
	}
	if authorize != nil {
		if err := authorize(d); err != nil {
			return err
		}
	}
	if len(s.order) <= 1 {
		return bizerror.ErrLastProjectDelete
	}
	delete(s.projects, projectID)
	for i, id := range s.order {
		if id == projectID {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Projects lists the project metadata in creation order.
func (s *MemoryStore) Projects() []domain.Project {
	s.lock.RLock()
	defer s.lock.RUnlock()

	r := make([]domain.Project, 0, len(s.order))
	for _, id := range s.order {
		r = append(r, s.projects[id].Project)
	}
	return r
}

func (s *MemoryStore) Has(projectID types.ID) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	_, found := s.projects[projectID]
	return found
}

// First returns the id of the oldest project, 0 when empty.
func (s *MemoryStore) First() types.ID {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if len(s.order) == 0 {
		return 0
	}
	return s.order[0]
}

func (s *MemoryStore) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.order)
}

// Members returns the memberships of every project, used to rebuild a
// principal's event memberships.
func (s *MemoryStore) Members() []domain.ProjectMember {
	s.lock.RLock()
	defer s.lock.RUnlock()

	r := []domain.ProjectMember{}
	for _, id := range s.order {
		r = append(r, s.projects[id].Members...)
	}
	return r
}
