package authority

type OrgRole string

const (
	OrgRoleOwner  OrgRole = "OWNER"
	OrgRoleAdmin  OrgRole = "ADMIN"
	OrgRoleMember OrgRole = "MEMBER"
)

type EventRole string

const (
	EventRoleDirector    EventRole = "DIRECTOR"
	EventRoleCoordinator EventRole = "COORDINATOR"
	EventRoleViewer      EventRole = "VIEWER"
)

// OrgRolePermissions is the static grant table for organization memberships.
var OrgRolePermissions = map[OrgRole]Permissions{
	OrgRoleOwner:  {PermManageOrg, PermCreateEvent},
	OrgRoleAdmin:  {PermManageOrg, PermCreateEvent},
	OrgRoleMember: {},
}

// EventRolePermissions is the static grant table for event memberships.
var EventRolePermissions = map[EventRole]Permissions{
	EventRoleDirector: {PermManageTeam, PermManageFinances, PermManageConfig, PermEditPlanning, PermDeleteTask,
		PermEditSpeakers, PermEditSponsors, PermEditAlliances, PermEditMarketing},
	EventRoleCoordinator: {PermEditPlanning, PermEditSpeakers, PermEditSponsors, PermEditAlliances, PermEditMarketing},
	EventRoleViewer:      {},
}

func IsOrgRole(role string) bool {
	_, found := OrgRolePermissions[OrgRole(role)]
	return found
}

func IsEventRole(role string) bool {
	_, found := EventRolePermissions[EventRole(role)]
	return found
}

// RolePermissions returns the grants of role within a scope kind; unknown
// roles grant nothing.
func RolePermissions(kind ScopeKind, role string) Permissions {
	switch kind {
	case ScopeOrganization:
		return OrgRolePermissions[OrgRole(role)]
	case ScopeEvent:
		return EventRolePermissions[EventRole(role)]
	}
	return nil
}
