package domain

import (
	"eventdesk/common"
	"strings"
)

const DefaultTaskCategory = "General"

type Task struct {
	ID          int          `json:"id" yaml:"id"`
	Category    string       `json:"category" yaml:"category"`
	Title       string       `json:"title" yaml:"title" binding:"required,lte=255"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Status      TaskStatus   `json:"status" yaml:"status" binding:"oneof=pending in-progress done"`
	Priority    TaskPriority `json:"priority" yaml:"priority" binding:"oneof=low medium high critical"`
	Date        string       `json:"date,omitempty" yaml:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	AssigneeID  *int         `json:"assigneeId,omitempty" yaml:"assigneeId,omitempty"`
	Subtasks    []Subtask    `json:"subtasks,omitempty" yaml:"subtasks,omitempty" binding:"dive"`
}

type Subtask struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title" binding:"required,lte=255"`
	Completed bool   `json:"completed" yaml:"completed"`
}

func (t Task) GetID() int { return t.ID }

func (t Task) WithID(id int) Task {
	t.ID = id
	return t
}

type TaskCreation struct {
	Category    string       `json:"category"`
	Title       string       `json:"title" binding:"required,lte=255"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status" binding:"omitempty,oneof=pending in-progress done"`
	Priority    TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Date        string       `json:"date" binding:"omitempty,datetime=2006-01-02"`
	AssigneeID  *int         `json:"assigneeId"`
}

// BuildTask fills defaults for the optional fields.
func (c TaskCreation) BuildTask(id int) Task {
	t := Task{
		ID:          id,
		Category:    strings.TrimSpace(c.Category),
		Title:       strings.TrimSpace(c.Title),
		Description: c.Description,
		Status:      c.Status,
		Priority:    c.Priority,
		Date:        c.Date,
		AssigneeID:  c.AssigneeID,
	}
	if t.Category == "" {
		t.Category = DefaultTaskCategory
	}
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	if t.Priority == "" {
		t.Priority = TaskPriorityMedium
	}
	return t
}

// TaskUpdating is a partial task: nil fields are left untouched.
// An empty Date clears the date and an AssigneeID of 0 clears the assignee.
type TaskUpdating struct {
	Category    *string       `json:"category"`
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	Date        *string       `json:"date"`
	AssigneeID  *int          `json:"assigneeId"`
}

func (u TaskUpdating) Apply(t Task) Task {
	if u.Category != nil {
		t.Category = strings.TrimSpace(*u.Category)
	}
	if u.Title != nil {
		t.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.AssigneeID != nil {
		if *u.AssigneeID == 0 {
			t.AssigneeID = nil
		} else {
			id := *u.AssigneeID
			t.AssigneeID = &id
		}
	}
	return t
}

// Normalized coerces an imported task into the closed enum domains.
func (t Task) Normalized() Task {
	t.Title = strings.TrimSpace(t.Title)
	t.Category = strings.TrimSpace(t.Category)
	if t.Category == "" {
		t.Category = DefaultTaskCategory
	}
	t.Status = CoerceTaskStatus(string(t.Status))
	t.Priority = CoerceTaskPriority(string(t.Priority))
	if _, ok := common.ParseDate(t.Date); !ok {
		t.Date = ""
	}
	if t.AssigneeID != nil && *t.AssigneeID <= 0 {
		t.AssigneeID = nil
	}
	subtasks := make([]Subtask, 0, len(t.Subtasks))
	nextID := 0
	for _, s := range t.Subtasks {
		if s.ID > nextID {
			nextID = s.ID
		}
	}
	seen := map[int]bool{}
	for _, s := range t.Subtasks {
		s.Title = strings.TrimSpace(s.Title)
		if s.Title == "" {
			continue
		}
		if s.ID <= 0 || seen[s.ID] {
			nextID++
			s.ID = nextID
		}
		seen[s.ID] = true
		subtasks = append(subtasks, s)
	}
	if len(subtasks) == 0 {
		subtasks = nil
	}
	t.Subtasks = subtasks
	return t
}

type SubtaskCreation struct {
	Title string `json:"title" binding:"required,lte=255"`
}

// Clone copies the subtasks and the assignee so the copy can be mutated freely.
func (t Task) Clone() Task {
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		t.AssigneeID = &id
	}
	if t.Subtasks != nil {
		t.Subtasks = append([]Subtask{}, t.Subtasks...)
	}
	return t
}
