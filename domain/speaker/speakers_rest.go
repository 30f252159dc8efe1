package speaker

import (
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

var PathSpeakers = entity.CollectionPath("speakers")

func RegisterSpeakersRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	api := entity.CollectionApi[domain.Speaker, domain.SpeakerCreation, domain.SpeakerUpdating]{
		Query: func(projectID types.ID, sec *session.Session) ([]domain.Speaker, error) {
			return QuerySpeakersFunc(projectID, sec)
		},
		Detail: func(projectID types.ID, id int, sec *session.Session) (*domain.Speaker, error) {
			return DetailSpeakerFunc(projectID, id, sec)
		},
		Create: func(projectID types.ID, c *domain.SpeakerCreation, sec *session.Session) (*domain.Speaker, error) {
			return CreateSpeakerFunc(projectID, c, sec)
		},
		Update: func(projectID types.ID, id int, u *domain.SpeakerUpdating, sec *session.Session) (*domain.Speaker, error) {
			return UpdateSpeakerFunc(projectID, id, u, sec)
		},
		Delete: func(projectID types.ID, id int, sec *session.Session) error {
			return DeleteSpeakerFunc(projectID, id, sec)
		},
		Replace: func(projectID types.ID, records []domain.Speaker, sec *session.Session) ([]domain.Speaker, error) {
			return ReplaceSpeakersFunc(projectID, records, sec)
		},
		Filter: func(c *gin.Context, speakers []domain.Speaker) []domain.Speaker {
			f := SpeakerFilter{}
			if err := c.ShouldBindQuery(&f); err != nil {
				panic(&bizerror.ErrBadParam{Cause: err})
			}
			return FilterSpeakers(speakers, f)
		},
	}
	api.Register(r, PathSpeakers, middleWares...)
}
