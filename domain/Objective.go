package domain

import "strings"

// Objective is a strategic goal of the event.
type Objective struct {
	ID     int             `json:"id" yaml:"id"`
	Text   string          `json:"text" yaml:"text" binding:"required,lte=500"`
	Status ObjectiveStatus `json:"status" yaml:"status" binding:"oneof=pending defined"`
}

func (o Objective) GetID() int { return o.ID }

func (o Objective) WithID(id int) Objective {
	o.ID = id
	return o
}

type ObjectiveCreation struct {
	Text   string          `json:"text" binding:"required,lte=500"`
	Status ObjectiveStatus `json:"status" binding:"omitempty,oneof=pending defined"`
}

func (c ObjectiveCreation) BuildObjective(id int) Objective {
	o := Objective{ID: id, Text: strings.TrimSpace(c.Text), Status: c.Status}
	if o.Status == "" {
		o.Status = ObjectiveStatusPending
	}
	return o
}

type ObjectiveUpdating struct {
	Text   *string          `json:"text"`
	Status *ObjectiveStatus `json:"status"`
}

func (u ObjectiveUpdating) Apply(o Objective) Objective {
	if u.Text != nil {
		o.Text = strings.TrimSpace(*u.Text)
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
	return o
}

func (o Objective) Normalized() Objective {
	o.Text = strings.TrimSpace(o.Text)
	o.Status = CoerceObjectiveStatus(string(o.Status))
	return o
}
