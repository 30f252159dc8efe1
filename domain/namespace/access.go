package namespace

import (
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/metrics"
	"eventdesk/persistence"
	"eventdesk/session"
)

// ProjectScope names both the organization and the event of a project, so a
// grant from either membership applies.
func ProjectScope(p domain.Project) authority.Scope {
	return authority.Scope{OrganizationID: p.OrganizationID, EventID: p.ID}
}

// Authorize checks perm on the project held by d.
func Authorize(d *persistence.ProjectData, perm authority.Permission, sec *session.Session) error {
	if sec.HasPermission(perm, ProjectScope(d.Project)) {
		return nil
	}
	metrics.Denied(string(perm))
	return bizerror.ErrForbidden
}

// AuthorizeView checks that sec holds any membership covering the project.
func AuthorizeView(d *persistence.ProjectData, sec *session.Session) error {
	if sec.CanView(ProjectScope(d.Project)) {
		return nil
	}
	metrics.Denied("view")
	return bizerror.ErrForbidden
}
