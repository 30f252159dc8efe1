package account

import (
	"eventdesk/authority"
	"eventdesk/persistence"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

var (
	LoadPermFunc = loadPerms
)

func LoadPermFuncReset() {
	LoadPermFunc = loadPerms
}

// MembershipLoader adapts LoadPermFunc for session.SimpleAuthFilter.
func MembershipLoader() session.MembershipLoader {
	return func(uid types.ID) authority.Memberships {
		return LoadPermFunc(uid)
	}
}

// as a simple initial solution, project member relationships are the event memberships
func loadPerms(uid types.ID) authority.Memberships {
	ms := ActiveDirectory.OrgMemberships(uid)
	for _, pm := range persistence.ActiveStore.Members() {
		if pm.MemberID == uid {
			ms = ms.With(authority.Membership{Kind: authority.ScopeEvent, ScopeID: pm.ProjectID, Role: pm.Role})
		}
	}
	return ms
}
