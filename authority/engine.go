package authority

import "github.com/fundwit/go-commons/types"

// Principal is the authenticated actor whose permissions are evaluated.
type Principal struct {
	ID          types.ID
	Memberships Memberships
}

// Scope narrows where a role's permissions apply. Either id may be zero.
type Scope struct {
	OrganizationID types.ID
	EventID        types.ID
}

func OrgScope(orgID types.ID) Scope {
	return Scope{OrganizationID: orgID}
}

func EventScope(eventID types.ID) Scope {
	return Scope{EventID: eventID}
}

func (s Scope) IsZero() bool {
	return s.OrganizationID == 0 && s.EventID == 0
}

// HasPermission evaluates perm for principal in scope. Each id named by the
// scope is checked against the principal's membership in exactly that scope;
// a grant in either is enough. A nil principal or an empty scope never holds
// any permission.
func HasPermission(principal *Principal, perm Permission, scope Scope) bool {
	if principal == nil || scope.IsZero() {
		return false
	}
	if m, found := principal.Memberships.Find(ScopeOrganization, scope.OrganizationID); found {
		if RolePermissions(ScopeOrganization, m.Role).Has(perm) {
			return true
		}
	}
	if m, found := principal.Memberships.Find(ScopeEvent, scope.EventID); found {
		if RolePermissions(ScopeEvent, m.Role).Has(perm) {
			return true
		}
	}
	return false
}

// CanView reports whether principal holds any membership in the scope.
func CanView(principal *Principal, scope Scope) bool {
	if principal == nil || scope.IsZero() {
		return false
	}
	if _, found := principal.Memberships.Find(ScopeOrganization, scope.OrganizationID); found {
		return true
	}
	_, found := principal.Memberships.Find(ScopeEvent, scope.EventID)
	return found
}

// GrantedPermissions lists every known permission held in scope, in table order.
func GrantedPermissions(principal *Principal, scope Scope) Permissions {
	r := Permissions{}
	for _, p := range KnownPermissions {
		if HasPermission(principal, p, scope) {
			r = append(r, p)
		}
	}
	return r
}
