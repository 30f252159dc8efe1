package alliance

import (
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

var PathUniversities = entity.CollectionPath("universities")

func RegisterUniversitiesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	api := entity.CollectionApi[domain.University, domain.UniversityCreation, domain.UniversityUpdating]{
		Query: func(projectID types.ID, sec *session.Session) ([]domain.University, error) {
			return QueryUniversitiesFunc(projectID, sec)
		},
		Detail: func(projectID types.ID, id int, sec *session.Session) (*domain.University, error) {
			return DetailUniversityFunc(projectID, id, sec)
		},
		Create: func(projectID types.ID, c *domain.UniversityCreation, sec *session.Session) (*domain.University, error) {
			return CreateUniversityFunc(projectID, c, sec)
		},
		Update: func(projectID types.ID, id int, u *domain.UniversityUpdating, sec *session.Session) (*domain.University, error) {
			return UpdateUniversityFunc(projectID, id, u, sec)
		},
		Delete: func(projectID types.ID, id int, sec *session.Session) error {
			return DeleteUniversityFunc(projectID, id, sec)
		},
		Replace: func(projectID types.ID, records []domain.University, sec *session.Session) ([]domain.University, error) {
			return ReplaceUniversitiesFunc(projectID, records, sec)
		},
	}
	api.Register(r, PathUniversities, middleWares...)
}
