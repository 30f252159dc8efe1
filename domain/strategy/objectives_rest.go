package strategy

import (
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

var PathObjectives = entity.CollectionPath("objectives")

func RegisterObjectivesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	api := entity.CollectionApi[domain.Objective, domain.ObjectiveCreation, domain.ObjectiveUpdating]{
		Query: func(projectID types.ID, sec *session.Session) ([]domain.Objective, error) {
			return QueryObjectivesFunc(projectID, sec)
		},
		Detail: func(projectID types.ID, id int, sec *session.Session) (*domain.Objective, error) {
			return Kind.Detail(projectID, id, sec)
		},
		Create: func(projectID types.ID, c *domain.ObjectiveCreation, sec *session.Session) (*domain.Objective, error) {
			return CreateObjectiveFunc(projectID, c, sec)
		},
		Update: func(projectID types.ID, id int, u *domain.ObjectiveUpdating, sec *session.Session) (*domain.Objective, error) {
			return UpdateObjectiveFunc(projectID, id, u, sec)
		},
		Delete: func(projectID types.ID, id int, sec *session.Session) error {
			return DeleteObjectiveFunc(projectID, id, sec)
		},
		Replace: func(projectID types.ID, records []domain.Objective, sec *session.Session) ([]domain.Objective, error) {
			return ReplaceObjectivesFunc(projectID, records, sec)
		},
	}
	api.Register(r, PathObjectives, middleWares...)
}
