package team

import (
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

var PathTeamMembers = entity.CollectionPath("team-members")

func RegisterTeamRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	api := entity.CollectionApi[domain.TeamMember, domain.TeamMemberCreation, domain.TeamMemberUpdating]{
		Query: func(projectID types.ID, sec *session.Session) ([]domain.TeamMember, error) {
			return QueryTeamMembersFunc(projectID, sec)
		},
		Detail: func(projectID types.ID, id int, sec *session.Session) (*domain.TeamMember, error) {
			return DetailTeamMemberFunc(projectID, id, sec)
		},
		Create: func(projectID types.ID, c *domain.TeamMemberCreation, sec *session.Session) (*domain.TeamMember, error) {
			return CreateTeamMemberFunc(projectID, c, sec)
		},
		Update: func(projectID types.ID, id int, u *domain.TeamMemberUpdating, sec *session.Session) (*domain.TeamMember, error) {
			return UpdateTeamMemberFunc(projectID, id, u, sec)
		},
		Delete: func(projectID types.ID, id int, sec *session.Session) error {
			return DeleteTeamMemberFunc(projectID, id, sec)
		},
		Replace: func(projectID types.ID, records []domain.TeamMember, sec *session.Session) ([]domain.TeamMember, error) {
			return ReplaceTeamMembersFunc(projectID, records, sec)
		},
	}
	api.Register(r, PathTeamMembers, middleWares...)
}
