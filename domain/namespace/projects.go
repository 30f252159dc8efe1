package namespace

import (
	"eventdesk/account"
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/event"
	"eventdesk/idgen"
	"eventdesk/metrics"
	"eventdesk/persistence"
	"eventdesk/session"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
	"github.com/sony/sonyflake"
)

const sourceTypeProject = "PROJECT"

var (
	idWorker = sonyflake.NewSonyflake(sonyflake.Settings{})
)

// QueryProjects lists the projects visible to sec in creation order.
// Organization members see every project of their organization.
func QueryProjects(sec *session.Session) ([]domain.Project, error) {
	if sec.Principal() == nil {
		return nil, bizerror.ErrUnauthenticated
	}
	projects := []domain.Project{}
	for _, p := range persistence.ActiveStore.Projects() {
		if sec.CanView(ProjectScope(p)) {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func DetailProject(id types.ID, sec *session.Session) (*domain.Project, error) {
	var project domain.Project
	err := persistence.ActiveStore.View(id, func(d *persistence.ProjectData) error {
		if err := AuthorizeView(d, sec); err != nil {
			return err
		}
		project = d.Project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject adds an empty project, makes it current and grants the
// creator the DIRECTOR role on it.
func CreateProject(c *domain.ProjectCreating, sec *session.Session) (*domain.Project, error) {
	orgID := account.ActiveDirectory.Organization().ID
	if !sec.HasPermission(authority.PermCreateEvent, authority.OrgScope(orgID)) {
		metrics.Denied(string(authority.PermCreateEvent))
		return nil, bizerror.ErrForbidden
	}
	if err := domain.Validate(c); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}

	now := time.Now()
	p := domain.Project{ID: idgen.NextID(idWorker), OrganizationID: orgID, Name: c.Name,
		Config: domain.EventConfig{EventName: c.Name}, CreateTime: now, Creator: sec.Identity.ID}
	director := domain.ProjectMember{ProjectID: p.ID, MemberID: sec.Identity.ID, Role: string(authority.EventRoleDirector), CreateTime: now}

	d := persistence.NewProjectData(p)
	d.Members = []domain.ProjectMember{director}
	persistence.ActiveStore.AddProject(d)
	metrics.ProjectsCurrent.Set(float64(persistence.ActiveStore.Len()))

	sec.Grant(authority.Membership{Kind: authority.ScopeEvent, ScopeID: p.ID, Role: director.Role})
	sec.Workspace.MoveTo(p.ID)

	event.CreateEvent(p.ID, sourceTypeProject, 0, p.Name, event.EventCategoryCreated, nil, &sec.Identity)
	logrus.WithField("projectId", p.ID).Info("project created")
	return &p, nil
}

func UpdateProject(id types.ID, u *domain.ProjectUpdating, sec *session.Session) error {
	if err := domain.Validate(u); err != nil {
		return &bizerror.ErrBadParam{Cause: err}
	}
	var before, after domain.Project
	err := persistence.ActiveStore.Transaction(id, func(d *persistence.ProjectData) error {
		if err := Authorize(d, authority.PermManageOrg, sec); err != nil {
			return err
		}
		before = d.Project
		d.Project.Name = u.Name
		after = d.Project
		return nil
	})
	if err != nil {
		return err
	}
	event.CreateEvent(id, sourceTypeProject, 0, after.Name, event.EventCategoryPropertyUpdated,
		event.CompareProperties(before, after), &sec.Identity)
	return nil
}

// UpdateEventConfig replaces the event configuration of a project.
func UpdateEventConfig(id types.ID, c *domain.EventConfig, sec *session.Session) (*domain.Project, error) {
	var before, after domain.Project
	err := persistence.ActiveStore.Transaction(id, func(d *persistence.ProjectData) error {
		if err := Authorize(d, authority.PermManageConfig, sec); err != nil {
			return err
		}
		if err := domain.Validate(c); err != nil {
			return &bizerror.ErrBadParam{Cause: err}
		}
		before = d.Project
		d.Project.Config = *c
		after = d.Project
		return nil
	})
	if err != nil {
		return nil, err
	}
	event.CreateEvent(id, sourceTypeProject, 0, after.Name, event.EventCategoryPropertyUpdated,
		event.CompareProperties(before.Config, after.Config), &sec.Identity)
	return &after, nil
}

// DeleteProject removes a project and all of its data. The last project can
// not be deleted. A session pointing at the deleted project moves to the first
// remaining one.
func DeleteProject(id types.ID, sec *session.Session) error {
	err := persistence.ActiveStore.RemoveProject(id, func(d *persistence.ProjectData) error {
		return Authorize(d, authority.PermManageOrg, sec)
	})
	if err != nil {
		return err
	}
	metrics.ProjectsCurrent.Set(float64(persistence.ActiveStore.Len()))
	event.DefaultJournal.Forget(id)

	sec.Memberships = sec.Memberships.Without(authority.ScopeEvent, id)
	if sec.Workspace.CurrentProjectID == id {
		sec.Workspace.MoveTo(persistence.ActiveStore.First())
	}
	logrus.WithField("projectId", id).Info("project deleted")
	return nil
}

// SwitchTo makes id the current project of sec. An unknown id falls back to
// the first project; it never fails.
func SwitchTo(id types.ID, sec *session.Session) types.ID {
	if !persistence.ActiveStore.Has(id) {
		id = persistence.ActiveStore.First()
	}
	sec.Workspace.MoveTo(id)
	return id
}

// CurrentProject resolves the current project of sec, repairing a pointer to
// a project that no longer exists.
func CurrentProject(sec *session.Session) (*domain.Project, error) {
	id := sec.Workspace.CurrentProjectID
	if id == 0 || !persistence.ActiveStore.Has(id) {
		id = SwitchTo(id, sec)
	}
	if id == 0 {
		return nil, bizerror.ErrNotFound
	}
	return DetailProject(id, sec)
}

func QueryProjectNames(ids []types.ID) (map[types.ID]string, error) {
	result := map[types.ID]string{}
	if len(ids) == 0 {
		return result, nil
	}
	wanted := map[types.ID]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	for _, p := range persistence.ActiveStore.Projects() {
		if wanted[p.ID] {
			result[p.ID] = p.Name
		}
	}
	return result, nil
}
