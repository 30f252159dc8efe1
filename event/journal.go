package event

import (
	"sync"

	"github.com/fundwit/go-commons/types"
)

const DefaultJournalCapacity = 200

var (
	DefaultJournal         = NewJournal(DefaultJournalCapacity)
	EventPersistCreateFunc = eventPersistCreate
)

func eventPersistCreate(record *EventRecord) {
	DefaultJournal.Append(record)
}

// Journal keeps the latest change records of every project, newest last.
type Journal struct {
	lock     sync.RWMutex
	capacity int
	sequence uint64
	records  map[types.ID][]EventRecord
}

func NewJournal(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &Journal{capacity: capacity, records: map[types.ID][]EventRecord{}}
}

// Append assigns the next sequence number to record and stores a copy.
func (j *Journal) Append(record *EventRecord) {
	j.lock.Lock()
	defer j.lock.Unlock()

	j.sequence++
	record.Sequence = j.sequence
	list := append(j.records[record.ProjectID], *record)
	if len(list) > j.capacity {
		list = append([]EventRecord{}, list[len(list)-j.capacity:]...)
	}
	j.records[record.ProjectID] = list
}

// Recent returns up to limit records of a project, newest first. A limit <= 0 returns all.
func (j *Journal) Recent(projectID types.ID, limit int) []EventRecord {
	j.lock.RLock()
	defer j.lock.RUnlock()

	list := j.records[projectID]
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}
	r := make([]EventRecord, 0, limit)
	for i := len(list) - 1; i >= 0 && len(r) < limit; i-- {
		r = append(r, list[i])
	}
	return r
}

// Forget drops the records of a deleted project.
func (j *Journal) Forget(projectID types.ID) {
	j.lock.Lock()
	defer j.lock.Unlock()
	delete(j.records, projectID)
}
