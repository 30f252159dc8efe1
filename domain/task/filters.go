package task

import (
	"eventdesk/domain"
)

const (
	FilterAll      = "all"
	UnassignedName = "Sin asignar"
)

type TaskFilter struct {
	Category string `form:"category"`
	Status   string `form:"status"`
}

func matches(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// FilterTasks keeps the tasks matching both the category and the status filter.
func FilterTasks(tasks []domain.Task, f TaskFilter) []domain.Task {
	r := []domain.Task{}
	for _, t := range tasks {
		if matches(f.Category, t.Category) && matches(f.Status, string(t.Status)) {
			r = append(r, t)
		}
	}
	return r
}

// Categories lists the distinct task categories in first-seen order.
func Categories(tasks []domain.Task) []string {
	r := []string{}
	seen := map[string]bool{}
	for _, t := range tasks {
		if !seen[t.Category] {
			seen[t.Category] = true
			r = append(r, t.Category)
		}
	}
	return r
}

// AssigneeName resolves the assignee of t among the team members. Missing or
// dangling references resolve to UnassignedName.
func AssigneeName(t domain.Task, members []domain.TeamMember) string {
	if t.AssigneeID == nil {
		return UnassignedName
	}
	for _, m := range members {
		if m.ID == *t.AssigneeID {
			return m.DisplayName()
		}
	}
	return UnassignedName
}
