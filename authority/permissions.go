package authority

// Permission is an opaque capability tag drawn from a closed set.
type Permission string

const (
	PermManageOrg      Permission = "manage:org"
	PermCreateEvent    Permission = "create:event"
	PermManageTeam     Permission = "manage:team"
	PermManageFinances Permission = "manage:finances"
	PermManageConfig   Permission = "manage:config"
	PermEditPlanning   Permission = "edit:planning"
	PermDeleteTask     Permission = "delete:task"
	PermEditSpeakers   Permission = "edit:speakers"
	PermEditSponsors   Permission = "edit:sponsors"
	PermEditAlliances  Permission = "edit:alliances"
	PermEditMarketing  Permission = "edit:marketing"
)

// KnownPermissions is the closed permission set.
var KnownPermissions = Permissions{
	PermManageOrg, PermCreateEvent, PermManageTeam, PermManageFinances, PermManageConfig,
	PermEditPlanning, PermDeleteTask, PermEditSpeakers, PermEditSponsors, PermEditAlliances, PermEditMarketing,
}

type Permissions []Permission

func (c Permissions) Has(perm Permission) bool {
	for _, v := range c {
		if v == perm {
			return true
		}
	}
	return false
}

// ParsePermission reports whether s names a known permission.
func ParsePermission(s string) (Permission, bool) {
	p := Permission(s)
	return p, KnownPermissions.Has(p)
}
