package task

import (
	"eventdesk/authority"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/persistence"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

var Kind = entity.Kind[domain.Task]{
	SourceType:       "TASK",
	EditPermission:   authority.PermEditPlanning,
	DeletePermission: authority.PermDeleteTask,
	Collection:       func(d *persistence.ProjectData) *persistence.Collection[domain.Task] { return &d.Tasks },
	Describe:         func(t domain.Task) string { return t.Title },
}

var (
	QueryTasksFunc       = QueryTasks
	DetailTaskFunc       = DetailTask
	CreateTaskFunc       = CreateTask
	UpdateTaskFunc       = UpdateTask
	DeleteTaskFunc       = DeleteTask
	ReplaceTasksFunc     = ReplaceTasks
	ToggleTaskStatusFunc = ToggleTaskStatus
)

func QueryTasks(projectID types.ID, sec *session.Session) ([]domain.Task, error) {
	return Kind.Query(projectID, sec)
}

func DetailTask(projectID types.ID, id int, sec *session.Session) (*domain.Task, error) {
	return Kind.Detail(projectID, id, sec)
}

func CreateTask(projectID types.ID, c *domain.TaskCreation, sec *session.Session) (*domain.Task, error) {
	return Kind.Create(projectID, c.BuildTask, sec)
}

func UpdateTask(projectID types.ID, id int, u *domain.TaskUpdating, sec *session.Session) (*domain.Task, error) {
	return Kind.Update(projectID, id, u.Apply, sec)
}

// DeleteTask needs delete:task; edit:planning alone is not enough.
func DeleteTask(projectID types.ID, id int, sec *session.Session) error {
	return Kind.Delete(projectID, id, sec)
}

func ReplaceTasks(projectID types.ID, tasks []domain.Task, sec *session.Session) ([]domain.Task, error) {
	return Kind.ReplaceAll(projectID, tasks, sec)
}

// ToggleTaskStatus flips a task between done and pending; an in-progress task becomes done.
func ToggleTaskStatus(projectID types.ID, id int, sec *session.Session) (*domain.Task, error) {
	return Kind.Update(projectID, id, func(t domain.Task) domain.Task {
		if t.Status == domain.TaskStatusDone {
			t.Status = domain.TaskStatusPending
		} else {
			t.Status = domain.TaskStatusDone
		}
		return t
	}, sec)
}
