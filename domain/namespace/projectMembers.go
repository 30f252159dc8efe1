package namespace

import (
	"eventdesk/account"
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/event"
	"eventdesk/persistence"
	"eventdesk/session"
	"time"

	"github.com/fundwit/go-commons/types"
)

const sourceTypeProjectMember = "PROJECT_MEMBER"

var (
	QueryProjectNamesFunc    = QueryProjectNames
	QueryAccountNamesFunc    = account.QueryAccountNames
	DetailProjectMembersFunc = DetailProjectMembers
)

// CreateProjectMember grants an event role, replacing the member's previous role.
func CreateProjectMember(d *domain.ProjectMemberCreation, sec *session.Session) error {
	if err := domain.Validate(d); err != nil {
		return &bizerror.ErrBadParam{Cause: err}
	}
	if _, found := account.ActiveDirectory.FindUser(d.MemberID); !found {
		return bizerror.ErrNotFound
	}

	var previous string
	err := persistence.ActiveStore.Transaction(d.ProjectID, func(tx *persistence.ProjectData) error {
		if err := Authorize(tx, authority.PermManageTeam, sec); err != nil {
			return err
		}
		// members can not grant for themselves
		if sec.Identity.ID == d.MemberID {
			return bizerror.ErrProjectMemberSelfGrant
		}

		record := domain.ProjectMember{ProjectID: d.ProjectID, MemberID: d.MemberID, Role: d.Role, CreateTime: time.Now()}
		for i, m := range tx.Members {
			if m.MemberID != d.MemberID {
				continue
			}
			previous = m.Role
			if isLastDirector(tx.Members, d.MemberID) && d.Role != string(authority.EventRoleDirector) {
				return bizerror.ErrLastDirectorRevoke
			}
			record.CreateTime = m.CreateTime
			tx.Members[i] = record
			return nil
		}
		tx.Members = append(tx.Members, record)
		return nil
	})
	if err != nil {
		return err
	}
	event.CreateEvent(d.ProjectID, sourceTypeProjectMember, 0, d.MemberID.String(), event.EventCategoryPropertyUpdated,
		event.UpdatedProperties{{PropertyName: "role", OldValue: previous, NewValue: d.Role}}, &sec.Identity)
	return nil
}

func QueryProjectMemberDetails(q *domain.ProjectMemberQuery, sec *session.Session) ([]domain.ProjectMemberDetail, error) {
	if sec.Principal() == nil {
		return nil, bizerror.ErrUnauthenticated
	}
	var result []domain.ProjectMember
	for _, pm := range persistence.ActiveStore.Members() {
		if q.ProjectID != nil && pm.ProjectID != *q.ProjectID {
			continue
		}
		if q.MemberID != nil && pm.MemberID != *q.MemberID {
			continue
		}
		result = append(result, pm)
	}

	visible := map[types.ID]bool{}
	for _, p := range persistence.ActiveStore.Projects() {
		visible[p.ID] = sec.CanView(ProjectScope(p))
	}
	filtered := []domain.ProjectMember{}
	for _, pm := range result {
		if visible[pm.ProjectID] {
			filtered = append(filtered, pm)
		}
	}

	return DetailProjectMembersFunc(filtered)
}

func DetailProjectMembers(pms []domain.ProjectMember) ([]domain.ProjectMemberDetail, error) {
	details := []domain.ProjectMemberDetail{}
	if len(pms) == 0 {
		return details, nil
	}

	var projectIds []types.ID
	var memberIds []types.ID
	for _, pm := range pms {
		projectIds = append(projectIds, pm.ProjectID)
		memberIds = append(memberIds, pm.MemberID)
	}

	projectIdNameMap, err := QueryProjectNamesFunc(projectIds)
	if err != nil {
		return nil, err
	}
	memberIdNameMap, err := QueryAccountNamesFunc(memberIds)
	if err != nil {
		return nil, err
	}

	for _, pm := range pms {
		detail := domain.ProjectMemberDetail{ProjectMember: pm, ProjectName: "Unknown", MemberName: "Unknown"}
		if projectName, found := projectIdNameMap[pm.ProjectID]; found {
			detail.ProjectName = projectName
		}
		if accountName, found := memberIdNameMap[pm.MemberID]; found {
			detail.MemberName = accountName
		}
		details = append(details, detail)
	}
	return details, nil
}

// DeleteProjectMember revokes the event role of a member. Revoking a member
// that holds no role is a no-op.
func DeleteProjectMember(d *domain.ProjectMemberDeletion, sec *session.Session) error {
	removed := ""
	err := persistence.ActiveStore.Transaction(d.ProjectID, func(tx *persistence.ProjectData) error {
		if err := Authorize(tx, authority.PermManageTeam, sec); err != nil {
			return err
		}
		for i, m := range tx.Members {
			if m.MemberID != d.MemberID {
				continue
			}
			// must have at least one director for a project
			if isLastDirector(tx.Members, d.MemberID) {
				return bizerror.ErrLastDirectorRevoke
			}
			removed = m.Role
			tx.Members = append(tx.Members[:i:i], tx.Members[i+1:]...)
			return nil
		}
		return nil
	})
	if err != nil || removed == "" {
		return err
	}
	event.CreateEvent(d.ProjectID, sourceTypeProjectMember, 0, d.MemberID.String(), event.EventCategoryDeleted,
		event.UpdatedProperties{{PropertyName: "role", OldValue: removed}}, &sec.Identity)
	return nil
}

func isLastDirector(members []domain.ProjectMember, memberID types.ID) bool {
	director := string(authority.EventRoleDirector)
	self, others := false, 0
	for _, m := range members {
		if m.Role != director {
			continue
		}
		if m.MemberID == memberID {
			self = true
		} else {
			others++
		}
	}
	return self && others == 0
}
