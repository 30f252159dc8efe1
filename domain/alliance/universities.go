// Package alliance manages the university partnerships of an event.
package alliance

import (
	"eventdesk/authority"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/persistence"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

var Kind = entity.Kind[domain.University]{
	SourceType:     "UNIVERSITY",
	EditPermission: authority.PermEditAlliances,
	Collection:     func(d *persistence.ProjectData) *persistence.Collection[domain.University] { return &d.Universities },
	Describe:       func(u domain.University) string { return u.Name },
}

var (
	QueryUniversitiesFunc   = QueryUniversities
	DetailUniversityFunc    = DetailUniversity
	CreateUniversityFunc    = CreateUniversity
	UpdateUniversityFunc    = UpdateUniversity
	DeleteUniversityFunc    = DeleteUniversity
	ReplaceUniversitiesFunc = ReplaceUniversities
)

func QueryUniversities(projectID types.ID, sec *session.Session) ([]domain.University, error) {
	return Kind.Query(projectID, sec)
}

func DetailUniversity(projectID types.ID, id int, sec *session.Session) (*domain.University, error) {
	return Kind.Detail(projectID, id, sec)
}

func CreateUniversity(projectID types.ID, c *domain.UniversityCreation, sec *session.Session) (*domain.University, error) {
	return Kind.Create(projectID, c.BuildUniversity, sec)
}

func UpdateUniversity(projectID types.ID, id int, u *domain.UniversityUpdating, sec *session.Session) (*domain.University, error) {
	return Kind.Update(projectID, id, u.Apply, sec)
}

func DeleteUniversity(projectID types.ID, id int, sec *session.Session) error {
	return Kind.Delete(projectID, id, sec)
}

func ReplaceUniversities(projectID types.ID, universities []domain.University, sec *session.Session) ([]domain.University, error) {
	return Kind.ReplaceAll(projectID, universities, sec)
}
