package session

import (
	"context"
	"eventdesk/authority"
	"time"

	"github.com/fundwit/go-commons/types"
)

const (
	TabDashboard = "dashboard"
	TabSettings  = "settings"
)

// projectTabs are the tabs bound to the configuration of one project; they
// fall back to the dashboard when that project disappears.
var projectTabs = map[string]bool{TabSettings: true}

// Session carries the principal and its workspace through every core call.
type Session struct {
	Context context.Context `json:"-"`

	Token       string                `json:"token"`
	Identity    Identity              `json:"identity"`
	Memberships authority.Memberships `json:"memberships"`
	Workspace   Workspace             `json:"workspace"`

	SigningTime time.Time `json:"-"`
}

type Identity struct {
	ID    types.ID `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
}

// Workspace is the per-session view state: the current project and tab.
type Workspace struct {
	CurrentProjectID types.ID `json:"currentProjectId"`
	ActiveTab        string   `json:"activeTab"`
}

// MoveTo points the workspace at project id; a project-config tab resets to
// the dashboard when the project changes.
func (w *Workspace) MoveTo(id types.ID) {
	if w.CurrentProjectID != id && projectTabs[w.ActiveTab] {
		w.ActiveTab = TabDashboard
	}
	if w.ActiveTab == "" {
		w.ActiveTab = TabDashboard
	}
	w.CurrentProjectID = id
}

// Principal returns nil for an unauthenticated session.
func (s *Session) Principal() *authority.Principal {
	if s == nil || s.Identity.ID == 0 {
		return nil
	}
	return &authority.Principal{ID: s.Identity.ID, Memberships: s.Memberships}
}

func (s *Session) HasPermission(perm authority.Permission, scope authority.Scope) bool {
	return authority.HasPermission(s.Principal(), perm, scope)
}

func (s *Session) CanView(scope authority.Scope) bool {
	return authority.CanView(s.Principal(), scope)
}

func (s *Session) Grant(m authority.Membership) {
	if s == nil {
		return
	}
	s.Memberships = s.Memberships.With(m)
}

func (s Session) Clone() Session {
	c := s
	c.Memberships = append(authority.Memberships{}, s.Memberships...)
	return c
}

// Ctx returns the request context or the background context.
func (s *Session) Ctx() context.Context {
	if s == nil || s.Context == nil {
		return context.Background()
	}
	return s.Context
}
