package sessions

import (
	"eventdesk/account"
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/domain/namespace"
	"eventdesk/metrics"
	"eventdesk/persistence"
	"eventdesk/session"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

var (
	LoginFunc         = Login
	DetailSessionFunc = DetailSession
)

// Login opens a session for a user picked from the directory. There is no
// password: the directory is the whole authentication.
func Login(req *session.LoginRequest) (*session.Session, error) {
	user, found := account.ActiveDirectory.FindUser(req.UserID)
	if !found {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, bizerror.ErrUnauthenticated
	}

	s := &session.Session{
		Token:       uuid.New().String(),
		Identity:    session.Identity{ID: user.ID, Name: user.DisplayName(), Email: user.Email},
		Memberships: account.LoadPermFunc(user.ID),
		SigningTime: time.Now(),
	}
	s.Workspace.MoveTo(firstVisibleProject(s).ID)
	session.TokenCache.Set(s.Token, s, cache.DefaultExpiration)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	logrus.WithField("userId", user.ID).Info("user logged in")
	return s, nil
}

// Logout forgets the token; unknown tokens are ignored.
func Logout(token string) {
	if token != "" {
		session.TokenCache.Delete(token)
	}
}

func firstVisibleProject(s *session.Session) (first domain.Project) {
	for _, p := range persistence.ActiveStore.Projects() {
		if s.CanView(namespace.ProjectScope(p)) {
			return p
		}
	}
	return first
}

// SessionDetail is the session plus what the workspace needs to render: the
// current project and the permissions held on it.
type SessionDetail struct {
	*session.Session
	CurrentProject *domain.Project        `json:"currentProject"`
	Permissions    authority.Permissions `json:"permissions"`
}

func DetailSession(sec *session.Session) (*SessionDetail, error) {
	if time.Since(sec.SigningTime) > session.TokenExpiration {
		return nil, bizerror.ErrUnauthenticated
	}
	d := &SessionDetail{Session: sec, Permissions: authority.Permissions{}}
	if p, err := namespace.CurrentProject(sec); err == nil {
		d.CurrentProject = p
		d.Permissions = authority.GrantedPermissions(sec.Principal(), namespace.ProjectScope(*p))
	} else if err != bizerror.ErrForbidden && err != bizerror.ErrNotFound {
		return nil, err
	}
	session.StoreSession(sec)
	return d, nil
}

// Tabs lists the dashboard sections a workspace can show.
var Tabs = []string{session.TabDashboard, "strategy", "planning", "timeline", "team", "budget", "speakers",
	"sponsors", "alliances", "marketing", session.TabSettings}

func SwitchTab(tab string, sec *session.Session) error {
	for _, t := range Tabs {
		if t == tab {
			sec.Workspace.ActiveTab = tab
			session.StoreSession(sec)
			return nil
		}
	}
	return &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown tab %q", tab)}
}
