package testinfra

import (
	"eventdesk/authority"
	"eventdesk/session"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

// ExecuteRequest serves req with router and returns the status, body and raw response.
func ExecuteRequest(req *http.Request, router *gin.Engine) (int, string, *http.Response) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	resp := w.Result()
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), resp
}

// BuildSession builds an authenticated session holding the given memberships.
func BuildSession(uid types.ID, memberships ...authority.Membership) *session.Session {
	return &session.Session{
		Token:       "token-" + uid.String(),
		Identity:    session.Identity{ID: uid, Name: "user" + uid.String()},
		Memberships: memberships,
	}
}

func EventRole(projectID types.ID, role authority.EventRole) authority.Membership {
	return authority.Membership{Kind: authority.ScopeEvent, ScopeID: projectID, Role: string(role)}
}

func OrgRole(orgID types.ID, role authority.OrgRole) authority.Membership {
	return authority.Membership{Kind: authority.ScopeOrganization, ScopeID: orgID, Role: string(role)}
}

// SessionInjector puts s into every request, standing in for the auth filter.
func SessionInjector(s *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.InjectSessionIntoGinContext(c, s)
		c.Next()
	}
}
