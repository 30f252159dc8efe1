// Package strategy manages the strategic objectives of an event.
package strategy

import (
	"eventdesk/authority"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/persistence"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

var Kind = entity.Kind[domain.Objective]{
	SourceType:     "OBJECTIVE",
	EditPermission: authority.PermEditPlanning,
	Collection:     func(d *persistence.ProjectData) *persistence.Collection[domain.Objective] { return &d.Objectives },
	Describe:       func(o domain.Objective) string { return o.Text },
}

var (
	QueryObjectivesFunc   = QueryObjectives
	CreateObjectiveFunc   = CreateObjective
	UpdateObjectiveFunc   = UpdateObjective
	DeleteObjectiveFunc   = DeleteObjective
	ReplaceObjectivesFunc = ReplaceObjectives
)

func QueryObjectives(projectID types.ID, sec *session.Session) ([]domain.Objective, error) {
	return Kind.Query(projectID, sec)
}

func CreateObjective(projectID types.ID, c *domain.ObjectiveCreation, sec *session.Session) (*domain.Objective, error) {
	return Kind.Create(projectID, c.BuildObjective, sec)
}

func UpdateObjective(projectID types.ID, id int, u *domain.ObjectiveUpdating, sec *session.Session) (*domain.Objective, error) {
	return Kind.Update(projectID, id, u.Apply, sec)
}

func DeleteObjective(projectID types.ID, id int, sec *session.Session) error {
	return Kind.Delete(projectID, id, sec)
}

func ReplaceObjectives(projectID types.ID, objectives []domain.Objective, sec *session.Session) ([]domain.Objective, error) {
	return Kind.ReplaceAll(projectID, objectives, sec)
}
