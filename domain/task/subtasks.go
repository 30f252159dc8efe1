package task

import (
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/session"
	"strings"

	"github.com/fundwit/go-commons/types"
)

var (
	AddSubtaskFunc    = AddSubtask
	ToggleSubtaskFunc = ToggleSubtask
	RemoveSubtaskFunc = RemoveSubtask
)

// AddSubtask appends a subtask numbered max+1 within its task.
func AddSubtask(projectID types.ID, taskID int, c *domain.SubtaskCreation, sec *session.Session) (*domain.Task, error) {
	title := strings.TrimSpace(c.Title)
	return Kind.Mutate(projectID, taskID, authority.PermEditPlanning, func(t domain.Task) (domain.Task, error) {
		next := 0
		for _, s := range t.Subtasks {
			if s.ID > next {
				next = s.ID
			}
		}
		t.Subtasks = append(t.Subtasks, domain.Subtask{ID: next + 1, Title: title})
		return t, nil
	}, sec)
}

func ToggleSubtask(projectID types.ID, taskID, subtaskID int, sec *session.Session) (*domain.Task, error) {
	return Kind.Mutate(projectID, taskID, authority.PermEditPlanning, func(t domain.Task) (domain.Task, error) {
		for i := range t.Subtasks {
			if t.Subtasks[i].ID == subtaskID {
				t.Subtasks[i].Completed = !t.Subtasks[i].Completed
				return t, nil
			}
		}
		return t, bizerror.ErrNotFound
	}, sec)
}

func RemoveSubtask(projectID types.ID, taskID, subtaskID int, sec *session.Session) (*domain.Task, error) {
	return Kind.Mutate(projectID, taskID, authority.PermEditPlanning, func(t domain.Task) (domain.Task, error) {
		for i := range t.Subtasks {
			if t.Subtasks[i].ID == subtaskID {
				t.Subtasks = append(t.Subtasks[:i:i], t.Subtasks[i+1:]...)
				if len(t.Subtasks) == 0 {
					t.Subtasks = nil
				}
				return t, nil
			}
		}
		return t, bizerror.ErrNotFound
	}, sec)
}
