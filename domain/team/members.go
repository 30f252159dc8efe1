// Package team manages the organizing committee. Removing a member never
// touches the tasks assigned to them.
package team

import (
	"eventdesk/authority"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/persistence"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

var Kind = entity.Kind[domain.TeamMember]{
	SourceType:     "TEAM_MEMBER",
	EditPermission: authority.PermManageTeam,
	Collection:     func(d *persistence.ProjectData) *persistence.Collection[domain.TeamMember] { return &d.TeamMembers },
	Describe:       domain.TeamMember.DisplayName,
}

var (
	QueryTeamMembersFunc   = QueryTeamMembers
	DetailTeamMemberFunc   = DetailTeamMember
	CreateTeamMemberFunc   = CreateTeamMember
	UpdateTeamMemberFunc   = UpdateTeamMember
	DeleteTeamMemberFunc   = DeleteTeamMember
	ReplaceTeamMembersFunc = ReplaceTeamMembers
)

func QueryTeamMembers(projectID types.ID, sec *session.Session) ([]domain.TeamMember, error) {
	return Kind.Query(projectID, sec)
}

func DetailTeamMember(projectID types.ID, id int, sec *session.Session) (*domain.TeamMember, error) {
	return Kind.Detail(projectID, id, sec)
}

func CreateTeamMember(projectID types.ID, c *domain.TeamMemberCreation, sec *session.Session) (*domain.TeamMember, error) {
	return Kind.Create(projectID, c.BuildTeamMember, sec)
}

func UpdateTeamMember(projectID types.ID, id int, u *domain.TeamMemberUpdating, sec *session.Session) (*domain.TeamMember, error) {
	return Kind.Update(projectID, id, u.Apply, sec)
}

func DeleteTeamMember(projectID types.ID, id int, sec *session.Session) error {
	return Kind.Delete(projectID, id, sec)
}

func ReplaceTeamMembers(projectID types.ID, members []domain.TeamMember, sec *session.Session) ([]domain.TeamMember, error) {
	return Kind.ReplaceAll(projectID, members, sec)
}
