package sponsor

import (
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

var PathSponsors = entity.CollectionPath("sponsors")

func RegisterSponsorsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	api := entity.CollectionApi[domain.Sponsor, domain.SponsorCreation, domain.SponsorUpdating]{
		Query: func(projectID types.ID, sec *session.Session) ([]domain.Sponsor, error) {
			return QuerySponsorsFunc(projectID, sec)
		},
		Detail: func(projectID types.ID, id int, sec *session.Session) (*domain.Sponsor, error) {
			return DetailSponsorFunc(projectID, id, sec)
		},
		Create: func(projectID types.ID, c *domain.SponsorCreation, sec *session.Session) (*domain.Sponsor, error) {
			return CreateSponsorFunc(projectID, c, sec)
		},
		Update: func(projectID types.ID, id int, u *domain.SponsorUpdating, sec *session.Session) (*domain.Sponsor, error) {
			return UpdateSponsorFunc(projectID, id, u, sec)
		},
		Delete: func(projectID types.ID, id int, sec *session.Session) error {
			return DeleteSponsorFunc(projectID, id, sec)
		},
		Replace: func(projectID types.ID, records []domain.Sponsor, sec *session.Session) ([]domain.Sponsor, error) {
			return ReplaceSponsorsFunc(projectID, records, sec)
		},
		Filter: func(c *gin.Context, sponsors []domain.Sponsor) []domain.Sponsor {
			f := SponsorFilter{}
			if err := c.ShouldBindQuery(&f); err != nil {
				panic(&bizerror.ErrBadParam{Cause: err})
			}
			return FilterSponsors(sponsors, f)
		},
	}
	api.Register(r, PathSponsors, middleWares...)
}
