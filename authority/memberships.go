package authority

import (
	"github.com/fundwit/go-commons/types"
)

type ScopeKind string

const (
	ScopeOrganization ScopeKind = "organization"
	ScopeEvent        ScopeKind = "event"
)

// Membership binds a principal to a role inside one organization or one event.
type Membership struct {
	Kind    ScopeKind `json:"kind" yaml:"kind"`
	ScopeID types.ID  `json:"scopeId" yaml:"scopeId"`
	Role    string    `json:"role" yaml:"role"`
}

type Memberships []Membership

func (c Memberships) Find(kind ScopeKind, scopeID types.ID) (Membership, bool) {
	if scopeID == 0 {
		return Membership{}, false
	}
	for _, v := range c {
		if v.Kind == kind && v.ScopeID == scopeID {
			return v, true
		}
	}
	return Membership{}, false
}

// With returns a copy where the membership of m's scope is replaced by m.
func (c Memberships) With(m Membership) Memberships {
	r := make(Memberships, 0, len(c)+1)
	for _, v := range c {
		if v.Kind == m.Kind && v.ScopeID == m.ScopeID {
			continue
		}
		r = append(r, v)
	}
	return append(r, m)
}

// Without returns a copy without the membership of the given scope.
func (c Memberships) Without(kind ScopeKind, scopeID types.ID) Memberships {
	r := make(Memberships, 0, len(c))
	for _, v := range c {
		if v.Kind == kind && v.ScopeID == scopeID {
			continue
		}
		r = append(r, v)
	}
	return r
}

// EventIDs lists the events the memberships give access to.
func (c Memberships) EventIDs() []types.ID {
	ids := []types.ID{}
	for _, v := range c {
		if v.Kind == ScopeEvent {
			ids = append(ids, v.ScopeID)
		}
	}
	return ids
}
